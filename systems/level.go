package systems

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/automoto/tilefall/assets"
	"github.com/automoto/tilefall/components"
	cfg "github.com/automoto/tilefall/config"
	"github.com/automoto/tilefall/shared/leveldata"
	"github.com/automoto/tilefall/systems/factory"
	"github.com/automoto/tilefall/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// loadLevel reads a level by name. Tests swap it for an in-memory loader.
var loadLevel = assets.LoadLevel

// UpdateLevelReload respawns the active level when its file changed on disk
// or the reload key was pressed. A level that fails to parse is logged and
// the running one is kept.
func UpdateLevelReload(ecs *ecs.ECS) {
	reload := components.Reload.Get(getOrCreateControls(ecs))
	levelEntry, hasLevel := components.Level.First(ecs.World)

	requested := reload.Pending
	reload.Pending = false
	for drained := false; !drained; {
		select {
		case path, ok := <-reload.Requests:
			if !ok {
				reload.Requests = nil
				drained = true
				continue
			}
			if hasLevel && levelName(path) == components.Level.Get(levelEntry).Name {
				requested = true
			}
		default:
			drained = true
		}
	}
	if !requested || !hasLevel {
		return
	}

	level := components.Level.Get(levelEntry)
	name, index := level.Name, level.Index
	lvl, err := loadLevel(name)
	if err != nil {
		log.Printf("Warning: reload of level %s failed: %v", name, err)
		return
	}
	factory.SpawnLevel(ecs, lvl, index)
	log.Printf("Reloaded level %s", name)
}

func levelName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".tmx")
}

// RequestReload queues a changed level path for the next frame. It never
// blocks; a full queue already holds a pending reload.
func RequestReload(requests chan<- string, path string) {
	if !leveldata.IsLevelFile(path) {
		return
	}
	select {
	case requests <- path:
	default:
	}
}

// DrawLevel fills every wall collider. The collider set is what the player
// actually collides with, so the fill doubles as the level art.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.UI.ShowWallFill {
		return
	}
	view, ok := getView(ecs, screen)
	if !ok {
		return
	}

	tags.WallCollider.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if !view.visible(obj.X, obj.Y, obj.W, obj.H) {
			return
		}
		x, y := view.toScreen(obj.X, obj.Y)
		vector.FillRect(screen, float32(x), float32(y),
			float32(obj.W*view.zoom), float32(obj.H*view.zoom), cfg.WallColor, false)
	})
}

// ConnectReloads routes reload requests from requests into the scene.
func ConnectReloads(ecs *ecs.ECS, requests chan string) {
	components.Reload.Get(getOrCreateControls(ecs)).Requests = requests
}

// WithGameplayChecks wraps a system to skip execution until a level is running.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if _, ok := components.Level.First(e.World); !ok {
			return
		}
		system(e)
	}
}
