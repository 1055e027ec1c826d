package score

import (
	"github.com/Lazyfiki/SightRead/internal/game"
	"github.com/Lazyfiki/SightRead/internal/input"
)

// Judge is the only writer of the counters and of the pressed flags.
type Judge struct {
	keymap   game.KeyboardMap
	keyboard *game.Keyboard
	sequence *game.Sequence
	counters *game.Counters
	layout   game.Layout

	// OnJudge, when set, sees every judged note before the sequence advances.
	OnJudge func(note game.Note, keyIndex int, j game.Judgement)
}

func NewJudge(
	keymap game.KeyboardMap,
	keyboard *game.Keyboard,
	sequence *game.Sequence,
	counters *game.Counters,
	layout game.Layout,
) *Judge {
	return &Judge{
		keymap:   keymap,
		keyboard: keyboard,
		sequence: sequence,
		counters: counters,
		layout:   layout,
	}
}

// Handle reports whether ev asked to quit.
func (j *Judge) Handle(ev input.Event) bool {
	switch ev.Type {
	case input.KeyDown:
		j.KeyDown(ev.Code)
	case input.KeyUp:
		j.KeyUp(ev.Code)
	case input.Quit:
		return true
	}
	return false
}

func (j *Judge) KeyDown(code input.Code) {
	index, ok := j.keymap.Lookup(code)
	if !ok {
		return
	}
	if key := j.keyboard.Key(index); key != nil {
		key.Press()
	}

	note := j.sequence.Current()
	result := game.Incorrect
	if j.layout.Matches(index, note) {
		result = game.Correct
		j.counters.Correct++
	} else {
		j.counters.Wrong++
	}
	if j.OnJudge != nil {
		j.OnJudge(note, index, result)
	}
	j.sequence.Judge(result)
}

func (j *Judge) KeyUp(code input.Code) {
	index, ok := j.keymap.Lookup(code)
	if !ok {
		return
	}
	if key := j.keyboard.Key(index); key != nil {
		key.Release()
	}
}
