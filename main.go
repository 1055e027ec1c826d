package main

import (
	"fmt"
	"os"

	"github.com/Lazyfiki/SightRead/internal/clock"
	"github.com/Lazyfiki/SightRead/internal/config"
	"github.com/Lazyfiki/SightRead/internal/input"
	"github.com/Lazyfiki/SightRead/internal/random"
	"github.com/Lazyfiki/SightRead/internal/render"
	"github.com/Lazyfiki/SightRead/internal/render/window"
	"github.com/charmbracelet/log"
	"github.com/eiannone/keyboard"
	"github.com/pkg/errors"
)

func main() {
	app, cfg := config.New()
	if _, err := app.Parse(os.Args[1:]); nil != err {
		app.FatalUsage("%s\n", err)
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}
	if err := run(cfg); nil != err {
		log.Error(err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	if cfg.ListDevices {
		names, err := input.ListMIDI()
		if nil != err {
			return err
		}
		for _, n := range names {
			fmt.Println(n)
		}
		return nil
	}

	c := clock.NewSystem()
	p := &Program{Config: cfg, Clock: c, Random: random.New()}
	p.NewKeyboard()

	var primary input.Source
	if cfg.Terminal {
		keys, err := keyboard.GetKeys(128)
		if nil != err {
			return errors.Wrap(err, "unable to open keyboard")
		}
		defer func() {
			if err := keyboard.Close(); nil != err {
				log.Error("unable to close keyboard", "err", err)
			}
		}()
		primary = input.NewTerminal(keys, c, cfg.Hold)
		p.Renderer = render.NewTerminal()
	} else {
		primary = window.NewInput(p.Keymap.Codes())
		p.Renderer = window.New(cfg.FontPath, cfg.FontSize)
	}

	var kbd input.Source
	if cfg.Kbd != "" {
		e, err := input.OpenEvdev(cfg.Kbd)
		if nil != err {
			return err
		}
		defer e.Close()
		kbd = e
	}
	sources := keySources(primary, kbd)

	if cfg.MIDIDevice != "" {
		m, err := input.OpenMIDI(cfg.MIDIDevice)
		if nil != err {
			return err
		}
		defer m.Close()
		sources = append(sources, m)
		log.Info("listening for midi", "device", cfg.MIDIDevice)
	}

	// The run time limit is enforced here, as one more source of quit events.
	p.Input = input.Deadline(input.Merge(sources...), c, cfg.RunTime)

	if err := p.Renderer.Init(); nil != err {
		return errors.Wrap(err, "unable to initialise renderer")
	}
	defer func() {
		if err := p.Renderer.Deinit(); nil != err {
			log.Error("unable to restore renderer", "err", err)
		}
	}()

	if err := p.Init(); nil != err {
		return err
	}
	log.Info("starting", "keys", p.Keymap.Len(), "tick", cfg.Tick, "limit", cfg.RunTime)
	p.Run()
	return nil
}

// keySources pairs the renderer's own key source with an optional keyboard
// device. The device sees the same physical keys, so the primary source then
// only contributes Quit.
func keySources(primary, kbd input.Source) []input.Source {
	if nil == kbd {
		return []input.Source{primary}
	}
	return []input.Source{input.Only(primary, input.Quit), kbd}
}
