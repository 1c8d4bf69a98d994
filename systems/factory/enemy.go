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

// CreateEnemy spawns an enemy centered on x, y. Unknown type names fall back
// to the configured default type.
func CreateEnemy(ecs *ecs.ECS, level donburi.Entity, x, y float64, enemyTypeName string) *donburi.Entry {
	enemyType, exists := cfg.Enemy.Types[enemyTypeName]
	if !exists {
		enemyTypeName = cfg.Enemy.DefaultType
		enemyType = cfg.Enemy.Types[enemyTypeName]
	}

	enemy := archetypes.Enemy.Spawn(ecs)

	w, h := enemyType.Width, enemyType.Height
	obj := resolv.NewObject(x-w/2, y-h/2, w, h)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.AddTags("character", tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})

	space, world := Spaces(ecs.World)
	if space != nil {
		space.Add(obj)
	}
	if world != nil {
		body, shape := world.AddBox(x, y, w, h, enemyType.Density, cfg.Physics.WallFriction, physics.CollisionEnemy)
		components.Body.SetValue(enemy, components.BodyData{Body: body, Shape: shape})
	}

	enemyData := components.EnemyData{
		TypeName:   enemyTypeName,
		TypeConfig: &enemyType,
		Direction:  components.Vector{X: -1, Y: 0}, // Start facing left
	}

	// Pre-calculate and cache color tint
	enemyData.TintColor.Reset()
	tint := enemyType.Tint
	if tint.A != 0 && (tint.R != 255 || tint.G != 255 || tint.B != 255 || tint.A != 255) {
		enemyData.TintColor.Scale(
			float32(tint.R)/255.0,
			float32(tint.G)/255.0,
			float32(tint.B)/255.0,
			float32(tint.A)/255.0,
		)
	}

	components.Enemy.SetValue(enemy, enemyData)
	components.State.SetValue(enemy, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: enemyType.Health,
		Max:     enemyType.Health,
	})
	components.LevelRef.SetValue(enemy, components.LevelRefData{Level: level})
	components.Animation.Set(enemy, GenerateAnimations("enemy"))

	return enemy
}
