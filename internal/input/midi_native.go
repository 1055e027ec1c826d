//go:build midi_native

package input

import (
	"strings"
	"sync"

	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi"
	"gitlab.com/gomidi/rtmididrv"
)

// OpenMIDI opens the first input port whose name equals device, falling back
// to the first port containing it.
func OpenMIDI(device string) (*MIDI, error) {
	drv, err := rtmididrv.New()
	if nil != err {
		return nil, errors.Wrap(err, "unable to start midi driver")
	}
	ins, err := drv.Ins()
	if nil != err {
		drv.Close()
		return nil, errors.Wrap(err, "unable to list midi inputs")
	}

	var in midi.In
	for _, p := range ins {
		if p.String() == device {
			in = p
			break
		}
	}
	if in == nil {
		for _, p := range ins {
			if strings.Contains(p.String(), device) {
				in = p
				break
			}
		}
	}
	if in == nil {
		drv.Close()
		return nil, errors.Errorf("no midi input named %q", device)
	}
	if err := in.Open(); nil != err {
		drv.Close()
		return nil, errors.Wrapf(err, "unable to open midi input %q", device)
	}

	m := newMIDI()
	if err := in.SetListener(func(bt []byte, _ int64) { m.handle(bt) }); nil != err {
		in.Close()
		drv.Close()
		return nil, errors.Wrap(err, "unable to listen on midi input")
	}

	var once sync.Once
	m.closer = func() error {
		var err error
		once.Do(func() {
			in.StopListening()
			in.Close()
			err = drv.Close()
		})
		return err
	}
	return m, nil
}

func ListMIDI() ([]string, error) {
	drv, err := rtmididrv.New()
	if nil != err {
		return nil, err
	}
	defer drv.Close()
	ins, err := drv.Ins()
	if nil != err {
		return nil, err
	}
	names := make([]string, 0, len(ins))
	for _, in := range ins {
		names = append(names, in.String())
	}
	return names, nil
}
