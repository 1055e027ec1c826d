package input

import (
	"time"

	"github.com/Lazyfiki/SightRead/internal/clock"
	"github.com/eiannone/keyboard"
)

type held struct {
	code    Code
	release time.Duration
}

// Terminal turns keyboard.KeyEvent values into key events. A terminal never
// reports releases, so each press is released after hold has elapsed.
type Terminal struct {
	keys  <-chan keyboard.KeyEvent
	clock clock.Clock
	hold  time.Duration
	held  []held
}

func NewTerminal(keys <-chan keyboard.KeyEvent, c clock.Clock, hold time.Duration) *Terminal {
	return &Terminal{keys: keys, clock: c, hold: hold}
}

func (t *Terminal) Poll() []Event {
	var events []Event
	now := t.clock.Now()

	remaining := t.held[:0]
	for _, h := range t.held {
		if now >= h.release {
			events = append(events, Event{Type: KeyUp, Code: h.code})
			continue
		}
		remaining = append(remaining, h)
	}
	t.held = remaining

	for {
		var key keyboard.KeyEvent
		select {
		case k, ok := <-t.keys:
			if !ok {
				// a closed channel reports once, then reads as empty
				t.keys = nil
				return append(events, Event{Type: Quit})
			}
			key = k
		default:
			return events
		}
		if nil != key.Err {
			continue
		}
		if key.Key == keyboard.KeyEsc || key.Key == keyboard.KeyCtrlC {
			events = append(events, Event{Type: Quit})
			continue
		}
		r := key.Rune
		if key.Key == keyboard.KeySpace {
			r = ' '
		}
		if r == 0 {
			continue
		}
		code := RuneCode(r)
		t.release(code, &events)
		events = append(events, Event{Type: KeyDown, Code: code})
		t.held = append(t.held, held{code: code, release: now + t.hold})
	}
}

// release drops a pending hold for code, emitting its key-up first so that
// repeated presses of the same key stay balanced.
func (t *Terminal) release(code Code, events *[]Event) {
	for i, h := range t.held {
		if h.code == code {
			*events = append(*events, Event{Type: KeyUp, Code: code})
			t.held = append(t.held[:i], t.held[i+1:]...)
			return
		}
	}
}
