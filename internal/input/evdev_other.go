//go:build !linux

package input

import "github.com/pkg/errors"

type Evdev struct{}

func OpenEvdev(kbd string) (*Evdev, error) {
	return nil, errors.New("keyboard devices are only supported on linux")
}

func (e *Evdev) Poll() []Event {
	return nil
}

func (e *Evdev) Close() error {
	return nil
}
