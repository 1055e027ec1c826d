package input

import (
	"testing"
	"time"

	"github.com/Lazyfiki/SightRead/internal/clock"
	"github.com/eiannone/keyboard"
	"github.com/stretchr/testify/assert"
)

type queue [][]Event

func (q *queue) Poll() []Event {
	if len(*q) == 0 {
		return nil
	}
	head := (*q)[0]
	*q = (*q)[1:]
	return head
}

func TestRuneCodeFoldsCase(t *testing.T) {
	assert.Equal(t, RuneCode('a'), RuneCode('A'))
	assert.Equal(t, Code(';'), RuneCode(';'))
	assert.NotEqual(t, RuneCode('<'), MIDICode('<'))
}

func TestMerge(t *testing.T) {
	a := &queue{{{Type: KeyDown, Code: 1}}}
	b := &queue{{{Type: KeyUp, Code: 2}, {Type: Quit}}}
	events := Merge(a, b).Poll()
	assert.Equal(t, []Event{{Type: KeyDown, Code: 1}, {Type: KeyUp, Code: 2}, {Type: Quit}}, events)
	assert.Empty(t, Merge(a, b).Poll())
}

func TestOnly(t *testing.T) {
	q := &queue{{{Type: KeyDown, Code: 1}, {Type: Quit}, {Type: KeyUp, Code: 1}}}
	assert.Equal(t, []Event{{Type: Quit}}, Only(q, Quit).Poll())
}

func TestDeadline(t *testing.T) {
	c := &clock.Manual{}
	src := Deadline(&queue{}, c, 2*time.Second)
	assert.Empty(t, src.Poll())
	c.Advance(1999 * time.Millisecond)
	assert.Empty(t, src.Poll())
	c.Advance(time.Millisecond)
	assert.Equal(t, []Event{{Type: Quit}}, src.Poll())
	c.Advance(time.Second)
	assert.Empty(t, src.Poll(), "quit is only emitted once")
}

func TestDeadlineDisabled(t *testing.T) {
	q := &queue{}
	assert.Same(t, q, Deadline(q, &clock.Manual{}, 0))
}

func TestTerminalSynthesizesRelease(t *testing.T) {
	c := &clock.Manual{}
	keys := make(chan keyboard.KeyEvent, 8)
	term := NewTerminal(keys, c, 100*time.Millisecond)

	keys <- keyboard.KeyEvent{Rune: 'S'}
	assert.Equal(t, []Event{{Type: KeyDown, Code: RuneCode('s')}}, term.Poll())

	c.Advance(50 * time.Millisecond)
	assert.Empty(t, term.Poll())

	c.Advance(50 * time.Millisecond)
	assert.Equal(t, []Event{{Type: KeyUp, Code: RuneCode('s')}}, term.Poll())
	assert.Empty(t, term.Poll())
}

func TestTerminalRepeatReleasesFirst(t *testing.T) {
	c := &clock.Manual{}
	keys := make(chan keyboard.KeyEvent, 8)
	term := NewTerminal(keys, c, time.Second)

	keys <- keyboard.KeyEvent{Rune: 'a'}
	keys <- keyboard.KeyEvent{Rune: 'a'}
	assert.Equal(t, []Event{
		{Type: KeyDown, Code: RuneCode('a')},
		{Type: KeyUp, Code: RuneCode('a')},
		{Type: KeyDown, Code: RuneCode('a')},
	}, term.Poll())
}

func TestTerminalQuit(t *testing.T) {
	keys := make(chan keyboard.KeyEvent, 8)
	term := NewTerminal(keys, &clock.Manual{}, time.Second)
	keys <- keyboard.KeyEvent{Key: keyboard.KeyEsc}
	keys <- keyboard.KeyEvent{Key: keyboard.KeyArrowUp}
	assert.Equal(t, []Event{{Type: Quit}}, term.Poll())
}

func TestTerminalClosedChannelQuitsOnce(t *testing.T) {
	keys := make(chan keyboard.KeyEvent, 8)
	term := NewTerminal(keys, &clock.Manual{}, time.Second)
	keys <- keyboard.KeyEvent{Rune: 'a'}
	close(keys)
	assert.Equal(t, []Event{{Type: KeyDown, Code: RuneCode('a')}, {Type: Quit}}, term.Poll())
	assert.Empty(t, term.Poll())
}

func TestMIDIHandle(t *testing.T) {
	m := newMIDI()
	m.handle([]byte{0x90, 60, 100})
	m.handle([]byte{0x80, 60, 0})
	m.handle([]byte{0x91, 62, 0})
	m.handle([]byte{0xB0, 7, 127})
	m.handle([]byte{0xF8})
	m.handle([]byte{0x90, 64})
	assert.Equal(t, []Event{
		{Type: KeyDown, Code: MIDICode(60)},
		{Type: KeyUp, Code: MIDICode(60)},
		{Type: KeyUp, Code: MIDICode(62)},
	}, m.Poll())
	assert.NoError(t, m.Close())
}
