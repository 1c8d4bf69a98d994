package factory

import (
	"log"

	"github.com/automoto/tilefall/archetypes"
	"github.com/automoto/tilefall/components"
	cfg "github.com/automoto/tilefall/config"
	"github.com/automoto/tilefall/shared/leveldata"
	"github.com/automoto/tilefall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the level entity and one pending wall tile per wall
// cell. Colliders are built later by the wall collision system.
func CreateLevel(ecs *ecs.ECS, lvl *leveldata.Level, index int) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Name:     lvl.Name,
		Index:    index,
		TileSize: lvl.TileSize,
		Width:    lvl.Width,
		Height:   lvl.Height,
	})

	for _, c := range lvl.Walls.Walls.Coords() {
		CreateWallTile(ecs, level.Entity(), c)
	}
	return level
}

// SpawnLevel replaces whatever level is running with lvl: a fresh space sized
// to the level, the level and its wall tiles, the player and the enemies.
func SpawnLevel(ecs *ecs.ECS, lvl *leveldata.Level, index int) *donburi.Entry {
	if old, ok := components.Level.First(ecs.World); ok {
		DespawnLevel(ecs, old)
	}

	w, h := lvl.PixelSize()
	ResetSpace(ecs, w, h, cfg.Level.SpaceCell)

	level := CreateLevel(ecs, lvl, index)
	CreatePlayer(ecs, level.Entity(), lvl.PlayerSpawn.X, lvl.PlayerSpawn.Y)
	for _, s := range lvl.EnemySpawns {
		CreateEnemy(ecs, level.Entity(), s.X, s.Y, s.Kind)
	}
	FocusCamera(ecs, lvl.PlayerSpawn.X, lvl.PlayerSpawn.Y)

	log.Printf("Spawned level %s: %d enemies", lvl.Name, len(lvl.EnemySpawns))
	return level
}

// DespawnLevel removes the level entity and every entity whose LevelRef
// points at it. Live hitboxes go too.
func DespawnLevel(ecs *ecs.ECS, level *donburi.Entry) {
	if !level.Valid() {
		return
	}
	owner := level.Entity()

	var doomed []*donburi.Entry
	components.LevelRef.Each(ecs.World, func(e *donburi.Entry) {
		if components.LevelRef.Get(e).Level == owner {
			doomed = append(doomed, e)
		}
	})
	tags.Hitbox.Each(ecs.World, func(e *donburi.Entry) {
		doomed = append(doomed, e)
	})

	for _, e := range doomed {
		Despawn(ecs.World, e)
	}
	ecs.World.Remove(owner)
}
