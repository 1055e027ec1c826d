package render

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/Lazyfiki/SightRead/internal/game"
	"github.com/Lazyfiki/SightRead/internal/theme"
	"github.com/stretchr/testify/assert"
)

func newTestTerminal(out *bytes.Buffer) *Terminal {
	t := &Terminal{Out: out, GlyphOffset: 100, fd: -1}
	t.SetSize(160, 45)
	return t
}

func TestTerminalInitRequiresTTY(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, newTestTerminal(&out).Init())
	assert.Zero(t, out.Len())
}

func TestTerminalCell(t *testing.T) {
	term := newTestTerminal(&bytes.Buffer{})
	col, row := term.cell(0, 0)
	assert.Equal(t, 1, col)
	assert.Equal(t, 1, row)

	col, row = term.cell(800, 450)
	assert.Equal(t, 81, col)
	assert.Equal(t, 23, row)

	col, row = term.cell(-50, Height+100)
	assert.Equal(t, 1, col)
	assert.Equal(t, 45, row)
}

func TestTerminalText(t *testing.T) {
	var out bytes.Buffer
	term := newTestTerminal(&out)
	term.Clear(color.RGBA{})
	term.DrawText("hello", 20, color.RGBA{1, 2, 3, 255}, 20, 20)
	term.Present()

	s := out.String()
	assert.Contains(t, s, "\033[2J")
	assert.Contains(t, s, "\033[38;2;1;2;3m\033[2;3Hhello")
}

func TestTerminalSkipsUnchangedFrames(t *testing.T) {
	var out bytes.Buffer
	term := newTestTerminal(&out)
	s := &Scene{Renderer: term, Theme: &theme.DefaultTheme{}}
	snap := Snapshot{Keys: game.NewKeyboard(32).Keys}

	s.Draw(snap)
	n := out.Len()
	assert.NotZero(t, n)

	s.Draw(snap)
	assert.Equal(t, n, out.Len())

	snap.Keys[0].IsPressed = true
	s.Draw(snap)
	assert.Greater(t, out.Len(), n)
}

func TestTerminalStaffLines(t *testing.T) {
	var out bytes.Buffer
	term := newTestTerminal(&out)
	term.Clear(color.RGBA{})
	term.DrawStaffLines(200, 100, color.RGBA{255, 255, 255, 255})
	term.Present()
	// 200..1400 on 160 columns is columns 21..141
	assert.Equal(t, StaffLines*121, strings.Count(out.String(), "─"))
}

func TestTerminalDeinit(t *testing.T) {
	var out bytes.Buffer
	assert.NoError(t, newTestTerminal(&out).Deinit())
	assert.Contains(t, out.String(), "\033[?25h")
}
