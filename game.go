package main

import (
	"log"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/teddyburger/assets"
	"github.com/milk9111/teddyburger/prefabs"
	"github.com/milk9111/teddyburger/render"
	"github.com/milk9111/teddyburger/scores"
	"github.com/milk9111/teddyburger/system"
)

type Game struct {
	spec  *prefabs.GameSpec
	world *system.World
	store scores.Store
	seed  uint64
	debug bool

	input    *Input
	lib      *assets.Library
	renderer *render.Renderer
	watcher  *prefabs.Watcher

	paused    bool
	quit      bool
	pauseUI   *ebitenui.UI
	gameOver  *ebitenui.UI
	clipboard bool
}

type GameConfig struct {
	Spec      *prefabs.GameSpec
	Store     scores.Store
	Library   *assets.Library
	Seed      uint64
	Debug     bool
	Watcher   *prefabs.Watcher
	Clipboard bool
}

func NewGame(cfg GameConfig) (*Game, error) {
	g := &Game{
		spec:      cfg.Spec,
		store:     cfg.Store,
		seed:      cfg.Seed,
		debug:     cfg.Debug,
		input:     NewInput(),
		lib:       cfg.Library,
		renderer:  render.NewRenderer(cfg.Library),
		watcher:   cfg.Watcher,
		clipboard: cfg.Clipboard,
	}
	if err := g.Restart(); err != nil {
		return nil, err
	}
	g.pauseUI = NewPauseUI(g)
	return g, nil
}

// Restart builds a fresh world with the current tuning.
func (g *Game) Restart() error {
	opts := []system.Option{
		system.WithScoreStore(g.store),
		system.WithSoundSink(g.lib.Play),
	}
	if g.seed != 0 {
		opts = append(opts, system.WithSeed(g.seed))
	}
	w, err := system.NewWorld(g.spec, opts...)
	if err != nil {
		return err
	}
	g.world = w
	g.gameOver = nil
	g.paused = false
	return nil
}

func (g *Game) Update() error {
	g.pollWatcher()

	in := g.input.Poll()
	if in.Exit || g.quit {
		return ebiten.Termination
	}

	if g.world.GameOver() {
		if g.gameOver == nil {
			g.gameOver = NewGameOverUI(g)
		}
		g.gameOver.Update()
		return nil
	}

	if g.input.PausePressed() {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.world.Update(time.Second/time.Duration(ebiten.TPS()), in)
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	select {
	case err := <-g.watcher.Errors:
		log.Printf("watch: %v", err)
	default:
	}

	changed := false
	for {
		name, ok := g.watcher.Poll()
		if !ok {
			break
		}
		if g.debug {
			log.Printf("watch: %s changed", name)
		}
		changed = true
	}
	if !changed {
		return
	}

	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		log.Printf("reload %s: %v", prefabs.GameSpecFile, err)
		return
	}
	spec.PlayerName = g.spec.PlayerName
	if err := g.world.ApplySpec(spec); err != nil {
		log.Printf("apply %s: %v", prefabs.GameSpecFile, err)
		return
	}
	g.spec = spec
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.world)

	switch {
	case g.gameOver != nil:
		g.gameOver.Draw(screen)
	case g.paused:
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return g.spec.World.Width, g.spec.World.Height
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
