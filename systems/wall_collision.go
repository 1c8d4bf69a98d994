package systems

import (
	"log"
	"sort"

	"github.com/automoto/tilefall/components"
	cfg "github.com/automoto/tilefall/config"
	"github.com/automoto/tilefall/physics"
	"github.com/automoto/tilefall/shared/wallmesh"
	"github.com/automoto/tilefall/systems/factory"
	"github.com/automoto/tilefall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateWallCollision meshes the walls of every level that gained wall tiles
// since the last frame, and of every level that has not finished spawning. A
// touched level is rebuilt from its full tile set, so its old colliders are
// dropped first.
func UpdateWallCollision(ecs *ecs.ECS) {
	pending := make(map[donburi.Entity][]*donburi.Entry)
	tags.WallPending.Each(ecs.World, func(e *donburi.Entry) {
		level := components.LevelRef.Get(e).Level
		pending[level] = append(pending[level], e)
	})
	components.Level.Each(ecs.World, func(e *donburi.Entry) {
		if _, ok := pending[e.Entity()]; !ok && !components.Level.Get(e).Spawned {
			pending[e.Entity()] = nil
		}
	})
	if len(pending) == 0 {
		return
	}

	levels := make([]donburi.Entity, 0, len(pending))
	for level, tiles := range pending {
		if !ecs.World.Valid(level) {
			// Orphaned tiles: the level went away before it was meshed.
			for _, t := range tiles {
				factory.Despawn(ecs.World, t)
			}
			continue
		}
		levels = append(levels, level)
	}
	sort.Slice(levels, func(i, j int) bool {
		return levelIndex(ecs.World, levels[i]) < levelIndex(ecs.World, levels[j])
	})

	for _, level := range levels {
		for _, t := range pending[level] {
			t.RemoveComponent(tags.WallPending)
		}
		meshLevel(ecs, ecs.World.Entry(level))
	}
}

func levelIndex(w donburi.World, level donburi.Entity) int {
	return components.Level.Get(w.Entry(level)).Index
}

func meshLevel(ecs *ecs.ECS, levelEntry *donburi.Entry) {
	level := components.Level.Get(levelEntry)
	owner := levelEntry.Entity()

	walls := wallmesh.NewWallSet()
	tags.WallTile.Each(ecs.World, func(e *donburi.Entry) {
		if components.LevelRef.Get(e).Level == owner {
			walls.Add(*components.GridCoord.Get(e))
		}
	})

	var stale []*donburi.Entry
	tags.WallCollider.Each(ecs.World, func(e *donburi.Entry) {
		if components.LevelRef.Get(e).Level == owner {
			stale = append(stale, e)
		}
	})
	for _, e := range stale {
		factory.Despawn(ecs.World, e)
	}

	rects := wallmesh.BuildSet(level.Width, level.Height, walls)
	for _, r := range rects {
		factory.CreateWallCollider(ecs, owner, r, level.TileSize)
	}
	level.WallTiles = rects.TileCount()
	level.Colliders = len(rects)
	log.Printf("Meshed level %s: %d wall tiles -> %d colliders", level.Name, walls.Len(), len(rects))

	if !level.Spawned {
		settlePlayers(ecs, owner)
		level.Spawned = true
	}
}

// settlePlayers gives the level's player bodies their in-level settings once
// the walls exist.
func settlePlayers(ecs *ecs.ECS, owner donburi.Entity) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if components.LevelRef.Get(e).Level != owner {
			return
		}
		phys := components.Physics.Get(e)
		phys.LinearDamping = cfg.Player.LinearDamping
		if body := components.Body.Get(e); body.Body != nil {
			physics.SetLinearDamping(body.Body, phys.LinearDamping)
		}
	})
}
