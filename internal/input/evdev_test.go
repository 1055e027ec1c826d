//go:build linux

package input

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvdevEvent(t *testing.T) {
	cases := []struct {
		in  keyEvent
		out Event
		ok  bool
	}{
		{keyEvent{Type: evKey, Code: 30, Value: 1}, Event{Type: KeyDown, Code: RuneCode('a')}, true},
		{keyEvent{Type: evKey, Code: 30, Value: 0}, Event{Type: KeyUp, Code: RuneCode('a')}, true},
		{keyEvent{Type: evKey, Code: 30, Value: 2}, Event{}, false},
		{keyEvent{Type: evKey, Code: 39, Value: 1}, Event{Type: KeyDown, Code: RuneCode(';')}, true},
		{keyEvent{Type: evKey, Code: evdevEsc, Value: 1}, Event{Type: Quit}, true},
		{keyEvent{Type: evKey, Code: evdevEsc, Value: 0}, Event{Type: Quit}, false},
		{keyEvent{Type: evKey, Code: 200, Value: 1}, Event{}, false},
		{keyEvent{Type: 0x04, Code: 30, Value: 1}, Event{}, false},
	}
	for _, c := range cases {
		out, ok := evdevEvent(c.in)
		assert.Equal(t, c.ok, ok, "%+v", c.in)
		if c.ok {
			assert.Equal(t, c.out, out)
		}
	}
}

func TestOpenEvdevReadsFile(t *testing.T) {
	var buf bytes.Buffer
	for _, ev := range []keyEvent{
		{Type: evKey, Code: 31, Value: 1},
		{Type: evKey, Code: 31, Value: 2},
		{Type: evKey, Code: 31, Value: 0},
	} {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, ev))
	}
	path := filepath.Join(t.TempDir(), "event0")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	e, err := OpenEvdev(path)
	require.NoError(t, err)
	defer e.Close()

	var events []Event
	require.Eventually(t, func() bool {
		events = append(events, e.Poll()...)
		return len(events) == 2
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, []Event{{Type: KeyDown, Code: RuneCode('s')}, {Type: KeyUp, Code: RuneCode('s')}}, events)
}

func TestOpenEvdevMissing(t *testing.T) {
	_, err := OpenEvdev(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestEvdevDropsPastFullBuffer(t *testing.T) {
	var buf bytes.Buffer
	for i := 0; i < 200; i++ {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, keyEvent{Type: evKey, Code: 30, Value: int32(1 - i%2)}))
	}
	path := filepath.Join(t.TempDir(), "event0")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	e, err := OpenEvdev(path)
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		return len(e.events) == cap(e.events)
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, e.Close())
	assert.ErrorIs(t, e.file.Close(), os.ErrClosed)
	assert.Len(t, e.Poll(), cap(e.events))
}
