package factory

import (
	"github.com/automoto/tilefall/archetypes"
	"github.com/automoto/tilefall/components"
	cfg "github.com/automoto/tilefall/config"
	"github.com/automoto/tilefall/physics"
	"github.com/automoto/tilefall/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player centered on x, y. The body starts without
// linear damping; it is switched on once the level has finished spawning.
func CreatePlayer(ecs *ecs.ECS, level donburi.Entity, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	size := cfg.Player.Radius * 2
	obj := resolv.NewObject(x-cfg.Player.Radius, y-cfg.Player.Radius, size, size)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.AddTags("character", tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	space, world := Spaces(ecs.World)
	if space != nil {
		space.Add(obj)
	}
	if world != nil {
		body, shape := world.AddCircle(x, y, cfg.Player.Radius, cfg.Player.Density,
			cfg.Physics.WallFriction, cfg.Player.Elasticity, physics.CollisionPlayer)
		components.Body.SetValue(player, components.BodyData{Body: body, Shape: shape})
	}

	components.Player.SetValue(player, components.PlayerData{
		Direction: components.Vector{X: 1, Y: 0},
		SpawnX:    x,
		SpawnY:    y,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})
	components.Stamina.SetValue(player, components.StaminaData{
		Current: cfg.Stamina.Max,
		Max:     cfg.Stamina.Max,
	})
	components.Abilities.SetValue(player, components.AbilitiesData{
		Unlocked: []components.Ability{components.AbilitySwitchLight},
	})
	components.LevelRef.SetValue(player, components.LevelRefData{Level: level})
	components.Animation.Set(player, GenerateAnimations("player"))

	return player
}
