package theme

import (
	"image/color"

	"github.com/Lazyfiki/SightRead/internal/game"
)

type DefaultTheme struct{}

var (
	black   = color.RGBA{0, 0, 0, 255}
	white   = color.RGBA{255, 255, 255, 255}
	green   = color.RGBA{0, 255, 0, 255}
	red     = color.RGBA{255, 0, 0, 255}
	pressed = color.RGBA{150, 190, 255, 255}
)

func (t *DefaultTheme) NoteColor(j game.Judgement) color.RGBA {
	switch j {
	case game.Correct:
		return green
	case game.Incorrect:
		return red
	}
	return white
}

func (t *DefaultTheme) KeyColor(k game.Key) color.RGBA {
	if k.IsPressed {
		return pressed
	}
	if k.IsWhite {
		return white
	}
	return black
}

func (t *DefaultTheme) Background() color.RGBA { return black }
func (t *DefaultTheme) Foreground() color.RGBA { return white }
func (t *DefaultTheme) Outline() color.RGBA    { return black }
