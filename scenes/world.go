package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/tilefall/config"
	"github.com/automoto/tilefall/shared/leveldata"
	"github.com/automoto/tilefall/systems"
	"github.com/automoto/tilefall/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type PlatformerScene struct {
	ecs     *ecs.ECS
	levels  []*leveldata.Level
	reloads chan string
	once    sync.Once
}

// NewPlatformerScene creates the scene for the given levels. Changed level
// paths sent on reloads respawn the running level; reloads may be nil.
func NewPlatformerScene(levels []*leveldata.Level, reloads chan string) *PlatformerScene {
	return &PlatformerScene{levels: levels, reloads: reloads}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateLevelReload)
	ecs.AddSystem(systems.UpdateWallCollision)

	// Game systems wait for a level
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemies))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCombat))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateStamina))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateHealth))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateStates))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateAnimation))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawCharacters)
	ecs.AddRenderer(cfg.Default, systems.DrawLighting)
	ecs.AddRenderer(cfg.Overlay, systems.DrawHUD)
	ecs.AddRenderer(cfg.Overlay, systems.DrawDebug)

	ps.ecs = ecs

	factory.CreateCamera(ps.ecs)
	if ps.reloads != nil {
		systems.ConnectReloads(ps.ecs, ps.reloads)
	}

	if len(ps.levels) == 0 {
		panic("No levels found in assets/levels directory")
	}

	// Clamp index to valid range
	levelIndex := cfg.Debug.LevelIndex
	if levelIndex < 0 || levelIndex >= len(ps.levels) {
		levelIndex = 0
	}
	factory.SpawnLevel(ps.ecs, ps.levels[levelIndex], levelIndex)
}
