package loop

import (
	"time"

	"github.com/Lazyfiki/SightRead/internal/clock"
	"github.com/Lazyfiki/SightRead/internal/input"
)

const DefaultTick = 16 * time.Millisecond

// Loop runs logic at a fixed Tick and renders once per iteration, as often as
// the renderer lets it. Without a Handle the loop only reacts to Quit events.
type Loop struct {
	Clock  clock.Clock
	Input  input.Source
	Handle func(ev input.Event) (quit bool)
	Update func(tick time.Duration)
	Render func()
	Tick   time.Duration

	running  bool
	started  bool
	previous time.Duration
	lag      time.Duration
}

func (l *Loop) tick() time.Duration {
	if l.Tick <= 0 {
		return DefaultTick
	}
	return l.Tick
}

// Run returns once a quit event has been handled. The flag is only checked
// between iterations.
func (l *Loop) Run() {
	l.start()
	for l.running {
		l.Step()
	}
}

func (l *Loop) start() {
	l.running = true
	l.started = true
	l.previous = l.Clock.Now()
}

// Step runs a single iteration: drain input, catch up on ticks, render.
func (l *Loop) Step() {
	if !l.started {
		l.start()
	}
	current := l.Clock.Now()
	l.lag += current - l.previous
	l.previous = current

	for _, ev := range l.Input.Poll() {
		quit := ev.Type == input.Quit
		if l.Handle != nil {
			quit = l.Handle(ev)
		}
		if quit {
			l.running = false
		}
	}

	tick := l.tick()
	for l.lag >= tick {
		if l.Update != nil {
			l.Update(tick)
		}
		l.lag -= tick
	}

	if l.Render != nil {
		l.Render()
	}
}

func (l *Loop) Stop() {
	l.running = false
}

func (l *Loop) Running() bool {
	return l.running
}

func (l *Loop) Lag() time.Duration {
	return l.lag
}
