package config

import (
	"time"

	"github.com/Lazyfiki/SightRead/internal/game"
	"github.com/Lazyfiki/SightRead/internal/input"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

const Version = "0.3.0"

type Config struct {
	RunTime     time.Duration
	Tick        time.Duration
	Keys        string
	BlackKeys   string
	WhiteKeys   int
	Layout      game.Layout
	FontPath    string
	FontSize    int32
	Terminal    bool
	Hold        time.Duration
	Kbd         string
	MIDIDevice  string
	MIDIBase    uint8
	ListDevices bool
	Debug       bool
}

func New() (*kingpin.Application, *Config) {
	c := &Config{Layout: game.DefaultLayout}
	app := kingpin.New("sightread", "Sight reading trainer")
	app.Version(Version)
	app.HelpFlag.Short('h')

	var seconds uint
	app.Flag("time", "Run time limit in seconds, 0 for none").Short('t').Default("0").UintVar(&seconds)
	app.Flag("tick", "Fixed logic update period").Default("16ms").DurationVar(&c.Tick)
	app.Flag("keys", "Keys for consecutive white keys, starting at the top staff slot").Short('k').Default("asdfghjkl;'").StringVar(&c.Keys)
	app.Flag("black-keys", "Keys for consecutive black keys, starting at the top staff slot").Default("wetyuop").StringVar(&c.BlackKeys)
	app.Flag("white-keys", "Number of white keys on the keyboard").Default("32").IntVar(&c.WhiteKeys)
	app.Flag("offset", "White key that plays the top staff slot").Default("15").IntVar(&c.Layout.WhiteKeyOffset)
	app.Flag("font", "Music font").Default("./assets/fonts/NotoMusic-Regular.ttf").StringVar(&c.FontPath)
	app.Flag("font-size", "Music font size").Default("134").Int32Var(&c.FontSize)
	app.Flag("terminal", "Draw in the terminal instead of a window").Short('T').BoolVar(&c.Terminal)
	app.Flag("hold", "How long a key stays pressed in the terminal").Default("150ms").DurationVar(&c.Hold)
	app.Flag("kbd", "Read keys from this evdev device, for real key releases").PlaceHolder("/dev/input/eventN").StringVar(&c.Kbd)
	app.Flag("midi-device", "MIDI input device name").Short('m').StringVar(&c.MIDIDevice)
	app.Flag("midi-base", "MIDI note of the leftmost white key").Default("36").Uint8Var(&c.MIDIBase)
	app.Flag("list-devices", "List MIDI input devices and exit").BoolVar(&c.ListDevices)
	app.Flag("debug", "Enable debug logging").Short('d').BoolVar(&c.Debug)

	app.Action(func(*kingpin.ParseContext) error {
		c.RunTime = time.Duration(seconds) * time.Second
		return c.validate()
	})
	return app, c
}

func Parse(args []string) (*Config, error) {
	app, c := New()
	if _, err := app.Parse(args); nil != err {
		return nil, err
	}
	return c, nil
}

func (c *Config) validate() error {
	if c.Tick <= 0 {
		return errors.New("tick must be positive")
	}
	if c.WhiteKeys < 1 {
		return errors.New("keyboard needs at least one white key")
	}
	if c.Layout.WhiteKeyOffset < 0 {
		return errors.New("offset must not be negative")
	}
	if c.Layout.WhiteKeyOffset+c.Layout.TopSlot >= c.WhiteKeys {
		return errors.Errorf("offset %d with top slot %d does not fit on %d white keys",
			c.Layout.WhiteKeyOffset, c.Layout.TopSlot, c.WhiteKeys)
	}
	return nil
}

// KeyboardMap maps the typed keys, and every MIDI note on the keyboard, to key
// indices.
func (c *Config) KeyboardMap(kb *game.Keyboard) game.KeyboardMap {
	m := map[input.Code]int{}
	for i, r := range []rune(c.Keys) {
		index := c.Layout.WhiteKeyOffset + i
		if index >= kb.White {
			break
		}
		m[input.RuneCode(r)] = index
	}
	for i, r := range []rune(c.BlackKeys) {
		index := kb.BlackAfter(c.Layout.WhiteKeyOffset, i)
		if index < 0 {
			break
		}
		m[input.RuneCode(r)] = index
	}
	for note, index := range midiNotes(kb, c.MIDIBase) {
		m[input.MIDICode(note)] = index
	}
	return game.NewKeyboardMap(m)
}

// semitones from C to each white key of an octave
var whiteSemitones = [7]int{0, 2, 4, 5, 7, 9, 11}

// midiNotes walks the keyboard from base, which is taken to be a C.
func midiNotes(kb *game.Keyboard, base uint8) map[uint8]int {
	notes := map[uint8]int{}
	black := kb.White
	for i := 0; i < kb.White; i++ {
		note := int(base) + 12*(i/7) + whiteSemitones[i%7]
		if note > 127 {
			break
		}
		notes[uint8(note)] = i
		if i < kb.White-1 && i%7 != 2 && i%7 != 6 {
			if note+1 <= 127 {
				notes[uint8(note+1)] = black
			}
			black++
		}
	}
	return notes
}
