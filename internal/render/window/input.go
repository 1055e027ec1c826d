package window

import (
	"unicode"

	"github.com/Lazyfiki/SightRead/internal/input"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Input reads the key queue raylib filled during the last Present.
type Input struct {
	watched []int32
}

// NewInput watches codes for releases; raylib has no key-up queue.
func NewInput(codes []input.Code) *Input {
	in := &Input{}
	for _, c := range codes {
		if k, ok := Key(c); ok {
			in.watched = append(in.watched, k)
		}
	}
	return in
}

func (in *Input) Poll() []input.Event {
	var events []input.Event
	if rl.WindowShouldClose() {
		events = append(events, input.Event{Type: input.Quit})
	}
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if code, ok := Code(key); ok {
			events = append(events, input.Event{Type: input.KeyDown, Code: code})
		}
	}
	for _, key := range in.watched {
		if rl.IsKeyReleased(key) {
			code, _ := Code(key)
			events = append(events, input.Event{Type: input.KeyUp, Code: code})
		}
	}
	return events
}

// Code converts a raylib key. Printable keys are reported as their upper case
// ASCII value.
func Code(key int32) (input.Code, bool) {
	if key < 32 || key > 126 {
		return 0, false
	}
	return input.RuneCode(rune(key)), true
}

func Key(c input.Code) (int32, bool) {
	if c < 32 || c > 126 {
		return 0, false
	}
	return int32(unicode.ToUpper(rune(c))), true
}
