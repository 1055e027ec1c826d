package render

import (
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Lazyfiki/SightRead/internal/game"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// Terminal draws the canvas with ANSI escapes, one cell per scaled block.
// Keyboard input is expected to have put the terminal in raw mode already.
type Terminal struct {
	Out io.Writer

	// GlyphOffset moves a glyph from the top of its font box down to where
	// the symbol itself is drawn.
	GlyphOffset int32

	fd         int
	cols, rows int
	buffer     strings.Builder
	last       string
}

func NewTerminal() *Terminal {
	return &Terminal{Out: os.Stdout, GlyphOffset: 100, fd: int(os.Stdout.Fd())}
}

func (t *Terminal) Init() error {
	if !term.IsTerminal(t.fd) {
		return errors.New("stdout is not a terminal")
	}
	cols, rows, err := term.GetSize(t.fd)
	if nil != err {
		return errors.Wrap(err, "unable to get terminal size")
	}
	t.SetSize(cols, rows)

	io.WriteString(t.Out, "\033[?1049h"+ // Enable alternate buffer
		"\033[?25l"+ // Make the cursor invisible
		"\033[J") // Clear the screen
	return nil
}

func (t *Terminal) Deinit() error {
	_, err := io.WriteString(t.Out, "\033[0m"+
		"\033[?1049l"+ // Disable alternate buffer
		"\033[?25h") // Make the cursor visible
	return err
}

func (t *Terminal) SetSize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	t.cols, t.rows = cols, rows
}

// cell maps a canvas point to a 1-based terminal cell, clamped to the screen.
func (t *Terminal) cell(x, y int32) (col, row int) {
	col = int(x)*t.cols/Width + 1
	row = int(y)*t.rows/Height + 1
	if col < 1 {
		col = 1
	} else if col > t.cols {
		col = t.cols
	}
	if row < 1 {
		row = 1
	} else if row > t.rows {
		row = t.rows
	}
	return col, row
}

func (t *Terminal) moveTo(col, row int) {
	t.buffer.WriteString("\033[")
	t.buffer.WriteString(strconv.Itoa(row))
	t.buffer.WriteString(";")
	t.buffer.WriteString(strconv.Itoa(col))
	t.buffer.WriteString("H")
}

func (t *Terminal) rgb(sgr string, c color.RGBA) {
	t.buffer.WriteString("\033[")
	t.buffer.WriteString(sgr)
	t.buffer.WriteString(";2;")
	t.buffer.WriteString(strconv.Itoa(int(c.R)))
	t.buffer.WriteString(";")
	t.buffer.WriteString(strconv.Itoa(int(c.G)))
	t.buffer.WriteString(";")
	t.buffer.WriteString(strconv.Itoa(int(c.B)))
	t.buffer.WriteString("m")
}

func (t *Terminal) Clear(bg color.RGBA) {
	t.buffer.Reset()
	t.rgb("48", bg)
	t.buffer.WriteString("\033[2J")
}

func (t *Terminal) DrawKey(k game.Key, fill, outline color.RGBA) {
	c1, r1 := t.cell(k.X, k.Y)
	c2, r2 := t.cell(k.X+k.Width, k.Y+k.Height)
	// The right edge belongs to the next key.
	if c2 > c1 {
		c2--
	}
	t.rgb("48", fill)
	t.rgb("38", outline)
	for row := r1; row <= r2; row++ {
		t.moveTo(c1, row)
		t.buffer.WriteString("▏")
		t.buffer.WriteString(strings.Repeat(" ", c2-c1))
	}
	t.buffer.WriteString("\033[0m")
}

func (t *Terminal) DrawStaffLines(paddingX, y int32, c color.RGBA) {
	for i := 0; i < StaffLines; i++ {
		ly := staffLineY(y, i)
		t.DrawLine(paddingX, ly, Width-paddingX, ly, c)
	}
}

// DrawLine only draws horizontal lines, the only kind the scene uses.
func (t *Terminal) DrawLine(x1, y1, x2, y2 int32, c color.RGBA) {
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	c1, row := t.cell(x1, y1)
	c2, _ := t.cell(x2, y2)
	t.rgb("38", c)
	t.moveTo(c1, row)
	t.buffer.WriteString(strings.Repeat("─", c2-c1+1))
	t.buffer.WriteString("\033[0m")
}

func (t *Terminal) DrawGlyph(text string, c color.RGBA, x, y int32) {
	if !utf8.ValidString(text) {
		return
	}
	t.DrawText(text, 0, c, x, y+t.GlyphOffset)
}

func (t *Terminal) DrawText(text string, size int32, c color.RGBA, x, y int32) {
	col, row := t.cell(x, y)
	t.rgb("38", c)
	t.moveTo(col, row)
	t.buffer.WriteString(text)
	t.buffer.WriteString("\033[0m")
}

// Present skips the write when nothing changed since the last frame.
func (t *Terminal) Present() {
	frame := t.buffer.String()
	t.buffer.Reset()
	if frame == t.last {
		return
	}
	t.last = frame
	io.WriteString(t.Out, frame)
}
