package input

import (
	"time"
	"unicode"

	"github.com/Lazyfiki/SightRead/internal/clock"
)

// Code identifies a physical key. Typed keys use their lower case rune,
// MIDI notes live above the unicode range.
type Code int32

const midiCodeBase Code = unicode.MaxRune + 1

func RuneCode(r rune) Code {
	return Code(unicode.ToLower(r))
}

func MIDICode(note uint8) Code {
	return midiCodeBase + Code(note)
}

type Type uint8

const (
	KeyDown Type = iota + 1
	KeyUp
	Quit
)

type Event struct {
	Type Type
	Code Code
}

type Source interface {
	// Poll returns every event that arrived since the previous call without
	// blocking.
	Poll() []Event
}

type merged []Source

func Merge(sources ...Source) Source {
	return merged(sources)
}

func (m merged) Poll() []Event {
	var events []Event
	for _, s := range m {
		events = append(events, s.Poll()...)
	}
	return events
}

type only struct {
	src   Source
	types []Type
}

// Only passes through events of the given types.
func Only(src Source, types ...Type) Source {
	return &only{src: src, types: types}
}

func (o *only) Poll() []Event {
	var events []Event
	for _, ev := range o.src.Poll() {
		for _, t := range o.types {
			if ev.Type == t {
				events = append(events, ev)
				break
			}
		}
	}
	return events
}

type deadline struct {
	src   Source
	clock clock.Clock
	end   time.Duration
	fired bool
}

// Deadline appends a Quit once limit has passed on c. A limit of zero or less
// leaves src untouched.
func Deadline(src Source, c clock.Clock, limit time.Duration) Source {
	if limit <= 0 {
		return src
	}
	return &deadline{src: src, clock: c, end: c.Now() + limit}
}

func (d *deadline) Poll() []Event {
	events := d.src.Poll()
	if !d.fired && d.clock.Now() >= d.end {
		d.fired = true
		events = append(events, Event{Type: Quit})
	}
	return events
}
