package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/tilefall/assets"
	"github.com/automoto/tilefall/config"
	"github.com/automoto/tilefall/fonts"
	"github.com/automoto/tilefall/scenes"
	"github.com/automoto/tilefall/shared/leveldata"
	"github.com/automoto/tilefall/systems"
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

func NewGame(levels []*leveldata.Level, reloads chan string) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewPlatformerScene(levels, reloads),
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
	configPath := flag.String("config", "", "YAML file overriding the built-in configuration")
	levelsPath := flag.String("levels", "", "load levels from this directory instead of the embedded copy")
	levelIndex := flag.Int("level", -1, "index of the level to start on")
	debug := flag.Bool("debug", false, "show collider outlines on start")
	watch := flag.Bool("watch", false, "reload the running level when its file changes (needs -levels)")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadOverlay(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	// Flags win over the overlay.
	if *levelsPath != "" {
		config.Debug.LevelsPath = *levelsPath
	}
	if *levelIndex >= 0 {
		config.Debug.LevelIndex = *levelIndex
	}
	if *debug {
		config.Debug.ShowColliders = true
	}
	if *watch {
		config.Debug.Watch = true
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	levels, err := assets.LoadLevels()
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}

	var reloads chan string
	if config.Debug.Watch {
		if config.Debug.LevelsPath == "" {
			log.Println("Warning: -watch needs -levels; embedded levels cannot change")
		} else {
			watcher, err := leveldata.NewWatcher(config.Debug.LevelsPath)
			if err != nil {
				log.Fatalf("Failed to watch %s: %v", config.Debug.LevelsPath, err)
			}
			defer watcher.Close()

			reloads = make(chan string, 4)
			go forwardReloads(watcher, reloads)
			log.Printf("Watching %s for level changes", config.Debug.LevelsPath)
		}
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("tilefall")
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(levels, reloads)); err != nil {
		log.Fatal(err)
	}
}

// forwardReloads hands watcher events to the game loop until the watcher closes.
func forwardReloads(w *leveldata.Watcher, reloads chan<- string) {
	for {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return
			}
			log.Printf("Level changed: %s", path)
			systems.RequestReload(reloads, path)
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Printf("Warning: level watcher: %v", err)
		}
	}
}
