package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/knockout/config"
	"github.com/automoto/knockout/fonts"
	"github.com/automoto/knockout/frontend"
	"github.com/automoto/knockout/persistence"
	"github.com/automoto/knockout/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(watcher *config.TuningWatcher) *Game {
	fonts.LoadDefaults()

	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewFightScene(watcher),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	tuningPath := flag.String("config", "", "YAML file with fighter tuning overrides")
	watch := flag.Bool("watch", false, "reload the -config file when it changes")
	flag.Int64Var(&config.Debug.Seed, "seed", config.Debug.Seed, "seed for the enemy's decisions")
	flag.BoolVar(&config.Debug.Trace, "trace", config.Debug.Trace, "log animator events and state changes")
	flag.BoolVar(&config.Debug.Overlay, "debug", config.Debug.Overlay, "start with the debug overlay visible")
	flag.Parse()

	var watcher *config.TuningWatcher
	if *tuningPath != "" {
		t, err := config.LoadTuning(*tuningPath)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		t.Apply()

		if *watch {
			watcher, err = config.WatchTuning(*tuningPath)
			if err != nil {
				log.Printf("Warning: Could not watch tuning file: %v", err)
			} else {
				defer watcher.Close()
			}
		}
	}

	ebiten.SetWindowTitle("Knockout")
	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := persistence.Init("knockout"); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, err := persistence.LoadSettings()
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		saved = nil
	}
	frontend.ApplySavedSettingsGlobal(saved)

	if err := ebiten.RunGame(NewGame(watcher)); err != nil {
		log.Fatal(err)
	}
}
