package theme

import (
	"image/color"

	"github.com/Lazyfiki/SightRead/internal/game"
)

type Theme interface {
	NoteColor(j game.Judgement) color.RGBA
	KeyColor(k game.Key) color.RGBA
	Background() color.RGBA
	Foreground() color.RGBA
	Outline() color.RGBA
}
