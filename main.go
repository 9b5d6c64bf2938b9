package main

import (
	"flag"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/teddyburger/assets"
	"github.com/milk9111/teddyburger/component"
	"github.com/milk9111/teddyburger/prefabs"
	"github.com/milk9111/teddyburger/scores"
	"golang.design/x/clipboard"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging and tuning hot reload")
	playerName := flag.String("name", "", "player name recorded with the score (defaults to game.yaml)")
	scoresPath := flag.String("scores", "scores.yaml", "high score file")
	seed := flag.Uint64("seed", 0, "random seed (0 picks one from the clock)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		log.Fatal(err)
	}
	if name := strings.TrimSpace(*playerName); name != "" {
		spec.PlayerName = name
	}

	lib := assets.NewLibrary(audio.NewContext(assets.SampleRate))
	err = lib.Preload(
		[]string{spec.Burger.Sprite, spec.TeddyBear.Sprite, "french_fries", "teddy_projectile"},
		[]assets.Strip{{
			Name:        spec.Explosion.Sprite,
			FrameWidth:  int(spec.Explosion.FrameWidth),
			FrameHeight: int(spec.Explosion.FrameHeight),
			Frames:      spec.Explosion.Frames,
		}},
		component.AllSounds,
	)
	if err != nil {
		log.Printf("preload assets: %v", err)
	}

	var watcher *prefabs.Watcher
	if *debug {
		watcher, err = prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("tuning hot reload disabled: %v", err)
			watcher = nil
		} else {
			defer watcher.Close()
		}
	}

	clipboardOK := true
	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
		clipboardOK = false
	}

	game, err := NewGame(GameConfig{
		Spec:      spec,
		Store:     scores.NewFileStore(*scoresPath, spec.HUD.HighScoreCount),
		Library:   lib,
		Seed:      *seed,
		Debug:     *debug,
		Watcher:   watcher,
		Clipboard: clipboardOK,
	})
	if err != nil {
		log.Fatal(err)
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowSize(int(spec.World.Width), int(spec.World.Height))
	ebiten.SetWindowTitle(spec.Name)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
