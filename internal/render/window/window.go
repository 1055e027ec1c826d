// Package window is the raylib backend: a native window renderer and the
// matching keyboard source.
package window

import (
	"image/color"
	"os"

	"github.com/Lazyfiki/SightRead/internal/game"
	"github.com/Lazyfiki/SightRead/internal/render"
	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
)

const title = "sight reading trainer"

type Window struct {
	FontPath string
	FontSize int32

	font   rl.Font
	loaded bool
	warned map[string]bool
}

func New(fontPath string, fontSize int32) *Window {
	return &Window{FontPath: fontPath, FontSize: fontSize, warned: map[string]bool{}}
}

// codepoints are every rune the font has to rasterize: the music symbols and
// printable ASCII for any text drawn with it.
func codepoints() []rune {
	runes := []rune(game.QuarterNote + game.TrebleClef + game.BassClef)
	for r := rune(32); r < 127; r++ {
		runes = append(runes, r)
	}
	return runes
}

// Init opens the window and loads the font once, rather than on every draw.
func (w *Window) Init() error {
	if _, err := os.Stat(w.FontPath); nil != err {
		return errors.Wrap(err, "unable to open font")
	}

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(render.Width, render.Height, title)
	if !rl.IsWindowReady() {
		return errors.New("unable to create window")
	}

	w.font = rl.LoadFontEx(w.FontPath, w.FontSize, codepoints())
	if w.font.Texture.ID == 0 {
		rl.CloseWindow()
		return errors.Errorf("unable to load font %s", w.FontPath)
	}
	rl.SetTextureFilter(w.font.Texture, rl.FilterBilinear)
	w.loaded = true
	return nil
}

func (w *Window) Deinit() error {
	if w.loaded {
		rl.UnloadFont(w.font)
		w.loaded = false
	}
	rl.CloseWindow()
	return nil
}

func (w *Window) Clear(bg color.RGBA) {
	rl.BeginDrawing()
	rl.ClearBackground(bg)
}

func (w *Window) DrawKey(k game.Key, fill, outline color.RGBA) {
	rl.DrawRectangle(k.X, k.Y, k.Width, k.Height, fill)
	rl.DrawRectangleLines(k.X, k.Y, k.Width, k.Height, outline)
}

func (w *Window) DrawStaffLines(paddingX, y int32, c color.RGBA) {
	for i := int32(0); i < render.StaffLines; i++ {
		ly := y + i*render.StaffLineSpacing + 1
		rl.DrawLine(paddingX, ly, render.Width-paddingX, ly, c)
	}
}

func (w *Window) DrawLine(x1, y1, x2, y2 int32, c color.RGBA) {
	rl.DrawLine(x1, y1, x2, y2, c)
}

// DrawGlyph skips the glyph, logging once per text, when the font is gone.
func (w *Window) DrawGlyph(text string, c color.RGBA, x, y int32) {
	if !w.loaded {
		if !w.warned[text] {
			w.warned[text] = true
			log.Error("font not loaded, skipping glyph", "glyph", text)
		}
		return
	}
	rl.DrawTextEx(w.font, text, rl.NewVector2(float32(x), float32(y)), float32(w.FontSize), 0, c)
}

func (w *Window) DrawText(text string, size int32, c color.RGBA, x, y int32) {
	rl.DrawText(text, x, y, size, c)
}

// Present also polls window events, filling the queue Input reads next frame.
func (w *Window) Present() {
	rl.EndDrawing()
}
