package factory

import (
	"github.com/automoto/tilefall/archetypes"
	"github.com/automoto/tilefall/components"
	cfg "github.com/automoto/tilefall/config"
	"github.com/automoto/tilefall/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHitbox places an attack box in front of the owner, facing dir.
func CreateHitbox(ecs *ecs.ECS, owner *donburi.Entry, dir float64) *donburi.Entry {
	hitbox := archetypes.Hitbox.Spawn(ecs)

	ownerObj := components.Object.Get(owner)
	w, h := cfg.Combat.HitboxWidth, cfg.Combat.HitboxHeight
	cx, cy := ownerObj.Center()

	x := cx + ownerObj.W/2
	if dir < 0 {
		x = cx - ownerObj.W/2 - w
	}
	obj := resolv.NewObject(x, cy-h/2, w, h, tags.ResolvHitbox)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = hitbox
	components.Object.SetValue(hitbox, components.ObjectData{Object: obj})

	if space, _ := Spaces(ecs.World); space != nil {
		space.Add(obj)
	}

	components.Hitbox.SetValue(hitbox, components.HitboxData{
		Owner:       owner.Entity(),
		Damage:      cfg.Combat.PlayerDamage,
		Knockback:   cfg.Combat.KnockbackSpeed,
		LifeTime:    cfg.Combat.AttackFrames,
		HitEntities: make(map[donburi.Entity]bool),
	})
	return hitbox
}
