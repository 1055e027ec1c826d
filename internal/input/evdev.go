//go:build linux

package input

import (
	"encoding/binary"
	"io"
	"os"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

// https://github.com/torvalds/linux/blob/master/include/uapi/linux/input-event-codes.h
const evKey = 0x01

type keyEvent struct {
	Time  syscall.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

// evdevRunes covers the keys a layout can bind.
var evdevRunes = map[uint16]rune{
	2:  '1',
	3:  '2',
	4:  '3',
	5:  '4',
	6:  '5',
	7:  '6',
	8:  '7',
	9:  '8',
	10: '9',
	11: '0',
	12: '-',
	13: '=',
	16: 'q',
	17: 'w',
	18: 'e',
	19: 'r',
	20: 't',
	21: 'y',
	22: 'u',
	23: 'i',
	24: 'o',
	25: 'p',
	26: '[',
	27: ']',
	30: 'a',
	31: 's',
	32: 'd',
	33: 'f',
	34: 'g',
	35: 'h',
	36: 'j',
	37: 'k',
	38: 'l',
	39: ';',
	40: '\'',
	41: '`',
	43: '\\',
	44: 'z',
	45: 'x',
	46: 'c',
	47: 'v',
	48: 'b',
	49: 'n',
	50: 'm',
	51: ',',
	52: '.',
	53: '/',
	57: ' ',
}

const evdevEsc = 1

// Evdev reads a keyboard device directly, which unlike a terminal reports
// releases. Reading the device usually needs the input group.
type Evdev struct {
	file   *os.File
	events chan Event
}

func OpenEvdev(kbd string) (*Evdev, error) {
	file, err := os.Open(kbd)
	if nil != err {
		return nil, errors.Wrap(err, "unable to open keyboard device")
	}
	e := &Evdev{file: file, events: make(chan Event, 128)}
	go e.read()
	return e, nil
}

// read runs until the device fails or is closed. Events past a full buffer
// are dropped so the reader never blocks on a loop that stopped polling.
func (e *Evdev) read() {
	var ev keyEvent
	for {
		err := binary.Read(e.file, binary.LittleEndian, &ev)
		if nil != err {
			if !errors.Is(err, os.ErrClosed) && !errors.Is(err, io.EOF) {
				log.Error("unable to read keyboard input", "err", err)
			}
			return
		}
		if out, ok := evdevEvent(ev); ok {
			select {
			case e.events <- out:
			default:
			}
		}
	}
}

func (e *Evdev) Close() error {
	return e.file.Close()
}

// evdevEvent drops autorepeat (value 2), like a key held on a piano.
func evdevEvent(ev keyEvent) (Event, bool) {
	if ev.Type != evKey {
		return Event{}, false
	}
	if ev.Code == evdevEsc {
		return Event{Type: Quit}, ev.Value == 1
	}
	r, ok := evdevRunes[ev.Code]
	if !ok {
		return Event{}, false
	}
	switch ev.Value {
	case 1:
		return Event{Type: KeyDown, Code: RuneCode(r)}, true
	case 0:
		return Event{Type: KeyUp, Code: RuneCode(r)}, true
	}
	return Event{}, false
}

func (e *Evdev) Poll() []Event {
	var events []Event
	for n := len(e.events); n > 0; n-- {
		events = append(events, <-e.events)
	}
	return events
}
