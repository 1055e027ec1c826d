package render

import (
	"fmt"

	"github.com/Lazyfiki/SightRead/internal/game"
	"github.com/Lazyfiki/SightRead/internal/theme"
)

const (
	staffPadding = 200
	trebleTop    = 100
	bassTop      = 350

	noteLeft    = 300
	noteSpacing = (Width - 400 - 100) / game.NotesPerStaff
	slotHeight  = 18
	glyphRaise  = 72

	ledgerY     = bassTop - 74
	ledgerLeft  = 5
	ledgerRight = 60
)

// Snapshot is everything a frame needs. It is a copy, so drawing can never
// write back into game state.
type Snapshot struct {
	Keys           []game.Key
	Notes          [game.NotesPerStaff]game.Note
	Counters       game.Counters
	NotesPerMinute float64
}

type Scene struct {
	Renderer Renderer
	Theme    theme.Theme
}

func NoteX(i int) int32 {
	return int32(noteSpacing*i + noteLeft)
}

func NoteY(position int) int32 {
	return int32(position*slotHeight - glyphRaise)
}

func (s *Scene) Draw(snap Snapshot) {
	r, th := s.Renderer, s.Theme
	r.Clear(th.Background())

	for _, k := range snap.Keys {
		r.DrawKey(k, th.KeyColor(k), th.Outline())
	}

	r.DrawStaffLines(staffPadding, trebleTop, th.Foreground())
	r.DrawStaffLines(staffPadding, bassTop, th.Foreground())
	r.DrawGlyph(game.TrebleClef, th.Foreground(), staffPadding, 54)
	r.DrawGlyph(game.BassClef, th.Foreground(), staffPadding, 284)

	for i, n := range snap.Notes {
		x := NoteX(i)
		if n.Position == game.TopSlot {
			r.DrawLine(x-ledgerLeft, ledgerY, x+ledgerRight, ledgerY, th.Foreground())
		}
		r.DrawGlyph(n.Glyph, th.NoteColor(n.Judgement), x, NoteY(n.Position))
	}

	r.DrawText(
		fmt.Sprintf("Correct: %4d   Wrong: %4d   NPM: %6.1f", snap.Counters.Correct, snap.Counters.Wrong, snap.NotesPerMinute),
		20, th.Foreground(), 20, 20,
	)

	r.Present()
}
