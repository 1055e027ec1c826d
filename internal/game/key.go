package game

const (
	WhiteKeyWidth  = 50
	WhiteKeyHeight = 190
	BlackKeyWidth  = 28
	BlackKeyHeight = 120

	KeyboardTop = 710
)

type Key struct {
	X, Y, Width, Height int32
	IsWhite             bool
	IsPressed           bool
}

func (k *Key) Press()   { k.IsPressed = true }
func (k *Key) Release() { k.IsPressed = false }

// Keyboard holds every white key, left to right, followed by the black keys.
type Keyboard struct {
	Keys  []Key
	White int
}

// hasBlackAfter reports whether a black key sits to the right of white key i,
// counting from C.
func hasBlackAfter(i int) bool {
	n := i % 7
	return n != 2 && n != 6
}

func NewKeyboard(whiteKeys int) *Keyboard {
	kb := &Keyboard{White: whiteKeys}
	for i := 0; i < whiteKeys; i++ {
		kb.Keys = append(kb.Keys, Key{
			X:       int32(i * WhiteKeyWidth),
			Y:       KeyboardTop,
			Width:   WhiteKeyWidth,
			Height:  WhiteKeyHeight,
			IsWhite: true,
		})
	}
	for i := 0; i < whiteKeys-1; i++ {
		if !hasBlackAfter(i) {
			continue
		}
		kb.Keys = append(kb.Keys, Key{
			X:      int32((i+1)*WhiteKeyWidth - BlackKeyWidth/2),
			Y:      KeyboardTop,
			Width:  BlackKeyWidth,
			Height: BlackKeyHeight,
		})
	}
	return kb
}

// Key returns nil for an index outside the keyboard.
func (kb *Keyboard) Key(index int) *Key {
	if index < 0 || index >= len(kb.Keys) {
		return nil
	}
	return &kb.Keys[index]
}

// BlackAfter returns the index of the n-th black key at or to the right of
// white key w, or -1.
func (kb *Keyboard) BlackAfter(w, n int) int {
	idx := kb.White
	for i := 0; i < kb.White-1; i++ {
		if !hasBlackAfter(i) {
			continue
		}
		if i >= w {
			if n == 0 {
				return idx
			}
			n--
		}
		idx++
	}
	return -1
}
