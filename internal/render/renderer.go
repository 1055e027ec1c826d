package render

import (
	"image/color"

	"github.com/Lazyfiki/SightRead/internal/game"
)

// Logical canvas. Backends scale it to whatever they draw on.
const (
	Width  = 1600
	Height = 900

	StaffLines       = 5
	StaffLineSpacing = 35
)

type Renderer interface {
	Init() error
	Deinit() error

	// Clear starts a frame.
	Clear(bg color.RGBA)
	DrawKey(k game.Key, fill, outline color.RGBA)
	DrawStaffLines(paddingX, y int32, c color.RGBA)
	DrawLine(x1, y1, x2, y2 int32, c color.RGBA)
	DrawGlyph(text string, c color.RGBA, x, y int32)
	DrawText(text string, size int32, c color.RGBA, x, y int32)
	// Present ends the frame.
	Present()
}

// staffLineY is the y of line i of a staff whose top is at y.
func staffLineY(y int32, i int) int32 {
	return y + int32(i)*StaffLineSpacing + 1
}
