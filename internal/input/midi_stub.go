//go:build !midi_native

package input

import "github.com/pkg/errors"

var errNoMIDI = errors.New("midi support is not included in this build (build with -tags midi_native)")

func OpenMIDI(device string) (*MIDI, error) {
	return nil, errNoMIDI
}

func ListMIDI() ([]string, error) {
	return nil, errNoMIDI
}
