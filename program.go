package main

import (
	"time"

	"github.com/Lazyfiki/SightRead/internal/clock"
	"github.com/Lazyfiki/SightRead/internal/config"
	"github.com/Lazyfiki/SightRead/internal/game"
	"github.com/Lazyfiki/SightRead/internal/input"
	"github.com/Lazyfiki/SightRead/internal/loop"
	"github.com/Lazyfiki/SightRead/internal/random"
	"github.com/Lazyfiki/SightRead/internal/render"
	"github.com/Lazyfiki/SightRead/internal/score"
	"github.com/Lazyfiki/SightRead/internal/theme"
	"github.com/charmbracelet/log"
)

// Program owns every piece of game state. The loop, the judge and the scene
// all work on the same instance, on the same goroutine.
type Program struct {
	Config   *config.Config
	Clock    clock.Clock
	Random   random.Source
	Renderer render.Renderer
	Input    input.Source

	Keyboard *game.Keyboard
	Keymap   game.KeyboardMap
	Sequence *game.Sequence
	Counters game.Counters
	Judge    *score.Judge
	Scene    *render.Scene
	Loop     *loop.Loop

	played   time.Duration
	npm      float64
	reported time.Duration
}

// Init builds the game state. Renderer and Input must already be set; the
// keymap is available beforehand through NewKeyboard.
func (p *Program) Init() error {
	if p.Keyboard == nil {
		p.NewKeyboard()
	}
	p.Sequence = game.NewSequence(p.Random)
	p.Judge = score.NewJudge(p.Keymap, p.Keyboard, p.Sequence, &p.Counters, p.Config.Layout)
	p.Judge.OnJudge = func(note game.Note, keyIndex int, j game.Judgement) {
		log.Debug("judged", "position", note.Position, "key", keyIndex, "result", j)
		if p.Sequence.Cursor() == game.NotesPerStaff-1 {
			log.Debug("round complete", "round", p.Sequence.Round()+1, "correct", p.Counters.Correct, "wrong", p.Counters.Wrong)
		}
	}
	p.Scene = &render.Scene{Renderer: p.Renderer, Theme: &theme.DefaultTheme{}}
	p.Loop = &loop.Loop{
		Clock:  p.Clock,
		Input:  p.Input,
		Handle: p.Judge.Handle,
		Update: p.Update,
		Render: p.Render,
		Tick:   p.Config.Tick,
	}
	return nil
}

func (p *Program) NewKeyboard() {
	p.Keyboard = game.NewKeyboard(p.Config.WhiteKeys)
	p.Keymap = p.Config.KeyboardMap(p.Keyboard)
}

func (p *Program) Update(tick time.Duration) {
	p.played += tick
	p.npm = p.Counters.NotesPerMinute(p.played)
	if p.played-p.reported >= time.Second {
		p.reported = p.played
		log.Debug("performance", "npm", p.npm, "correct", p.Counters.Correct, "wrong", p.Counters.Wrong)
	}
}

func (p *Program) Render() {
	keys := make([]game.Key, len(p.Keyboard.Keys))
	copy(keys, p.Keyboard.Keys)
	p.Scene.Draw(render.Snapshot{
		Keys:           keys,
		Notes:          p.Sequence.Notes(),
		Counters:       p.Counters,
		NotesPerMinute: p.npm,
	})
}

func (p *Program) Run() {
	p.Loop.Run()
	log.Info("finished", "correct", p.Counters.Correct, "wrong", p.Counters.Wrong, "npm", p.npm)
}
