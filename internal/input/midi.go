package input

// MIDI forwards note on/off messages from a hardware keyboard. The driver
// listener fills events from its own goroutine; Poll drains it on the loop.
type MIDI struct {
	events chan Event
	closer func() error
}

func newMIDI() *MIDI {
	return &MIDI{events: make(chan Event, 128)}
}

func (m *MIDI) Poll() []Event {
	var events []Event
	for n := len(m.events); n > 0; n-- {
		events = append(events, <-m.events)
	}
	return events
}

func (m *MIDI) Close() error {
	if m.closer == nil {
		return nil
	}
	return m.closer()
}

// handle parses one raw channel message. Running status is not used by the
// drivers we open, so a status byte is always present.
func (m *MIDI) handle(bt []byte) {
	if len(bt) < 3 {
		return
	}
	status := bt[0]
	if status >= 0xF0 {
		return
	}
	var ev Event
	switch status >> 4 {
	case 0x8:
		ev = Event{Type: KeyUp, Code: MIDICode(bt[1] & 0x7F)}
	case 0x9:
		ev = Event{Type: KeyDown, Code: MIDICode(bt[1] & 0x7F)}
		if bt[2]&0x7F == 0 {
			ev.Type = KeyUp
		}
	default:
		return
	}
	select {
	case m.events <- ev:
	default:
	}
}
