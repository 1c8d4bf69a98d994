package archetypes

import (
	"github.com/automoto/tilefall/components"
	cfg "github.com/automoto/tilefall/config"
	"github.com/automoto/tilefall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Body,
		components.Health,
		components.Stamina,
		components.Debuffs,
		components.Abilities,
		components.Dash,
		components.Animation,
		components.Physics,
		components.State,
		components.LevelRef,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Body,
		components.Health,
		components.Animation,
		components.Physics,
		components.State,
		components.LevelRef,
	)
	Hitbox = newArchetype(
		tags.Hitbox,
		components.Hitbox,
		components.Object,
	)
	WallTile = newArchetype(
		tags.WallTile,
		tags.WallPending,
		components.GridCoord,
		components.LevelRef,
	)
	WallCollider = newArchetype(
		tags.WallCollider,
		components.WallCollider,
		components.Object,
		components.Body,
		components.LevelRef,
	)
	Space = newArchetype(
		components.Space,
		components.PhysicsWorld,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Controls = newArchetype(
		components.Input,
		components.Debug,
		components.Reload,
		components.Lighting,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}

