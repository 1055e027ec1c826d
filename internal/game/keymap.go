package game

import "github.com/Lazyfiki/SightRead/internal/input"

// Layout relates key indices to staff slots: white key WhiteKeyOffset plays
// the TopSlot position and each white key to the right one slot lower.
type Layout struct {
	WhiteKeyOffset int
	TopSlot        int
}

var DefaultLayout = Layout{WhiteKeyOffset: 15, TopSlot: TopSlot}

func (l Layout) Matches(keyIndex int, n Note) bool {
	return keyIndex-l.WhiteKeyOffset == l.TopSlot-n.Position
}

// KeyboardMap is built once and never modified.
type KeyboardMap struct {
	index map[input.Code]int
}

func NewKeyboardMap(m map[input.Code]int) KeyboardMap {
	index := make(map[input.Code]int, len(m))
	for k, v := range m {
		index[k] = v
	}
	return KeyboardMap{index: index}
}

func (m KeyboardMap) Lookup(code input.Code) (int, bool) {
	i, ok := m.index[code]
	return i, ok
}

func (m KeyboardMap) Codes() []input.Code {
	codes := make([]input.Code, 0, len(m.index))
	for c := range m.index {
		codes = append(codes, c)
	}
	return codes
}

func (m KeyboardMap) Len() int {
	return len(m.index)
}
