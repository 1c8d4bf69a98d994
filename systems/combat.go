package systems

import (
	"github.com/automoto/tilefall/components"
	cfg "github.com/automoto/tilefall/config"
	"github.com/automoto/tilefall/systems/factory"
	"github.com/automoto/tilefall/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat moves live hitboxes with their owners, applies hits and
// removes hitboxes whose lifetime ran out.
func UpdateCombat(ecs *ecs.ECS) {
	var expired []*donburi.Entry

	tags.Hitbox.Each(ecs.World, func(hitboxEntry *donburi.Entry) {
		hitbox := components.Hitbox.Get(hitboxEntry)
		hitboxObject := components.Object.Get(hitboxEntry).Object

		if !ecs.World.Valid(hitbox.Owner) {
			expired = append(expired, hitboxEntry)
			return
		}
		owner := ecs.World.Entry(hitbox.Owner)
		updateHitboxPosition(owner, hitboxObject)
		checkHitboxCollisions(owner, hitbox, hitboxObject)

		hitbox.LifeTime--
		if hitbox.LifeTime <= 0 {
			expired = append(expired, hitboxEntry)
		}
	})

	for _, e := range expired {
		factory.Despawn(ecs.World, e)
	}
}

func updateHitboxPosition(owner *donburi.Entry, hitboxObject *resolv.Object) {
	ownerObject := components.Object.Get(owner).Object

	var directionX float64
	switch {
	case owner.HasComponent(components.Player):
		directionX = components.Player.Get(owner).Direction.X
	case owner.HasComponent(components.Enemy):
		directionX = components.Enemy.Get(owner).Direction.X
	default:
		return
	}

	if directionX >= 0 {
		hitboxObject.X = ownerObject.X + ownerObject.W
	} else {
		hitboxObject.X = ownerObject.X - hitboxObject.W
	}
	hitboxObject.Y = ownerObject.Y + (ownerObject.H-hitboxObject.H)/2
	hitboxObject.Update()
}

func checkHitboxCollisions(owner *donburi.Entry, hitbox *components.HitboxData, hitboxObject *resolv.Object) {
	check := hitboxObject.Check(0, 0, tags.ResolvEnemy)
	if check == nil {
		return
	}
	for _, obj := range check.ObjectsByTags(tags.ResolvEnemy) {
		target, ok := obj.Data.(*donburi.Entry)
		if !ok || !target.Valid() || !overlaps(hitboxObject, obj) {
			continue
		}
		if shouldHitTarget(owner, hitbox, target) {
			applyHitToEnemy(owner, target, hitbox)
		}
	}
}

func shouldHitTarget(owner *donburi.Entry, hitbox *components.HitboxData, target *donburi.Entry) bool {
	if target.Entity() == owner.Entity() {
		return false
	}
	if hitbox.HitEntities[target.Entity()] {
		return false
	}
	if !target.HasComponent(components.Enemy) {
		return false
	}
	return components.Enemy.Get(target).InvulnFrames == 0
}

func applyHitToEnemy(owner, enemyEntry *donburi.Entry, hitbox *components.HitboxData) {
	hitbox.HitEntities[enemyEntry.Entity()] = true

	enemy := components.Enemy.Get(enemyEntry)
	components.Health.Get(enemyEntry).Damage(hitbox.Damage)
	if enemy.TypeConfig != nil {
		enemy.InvulnFrames = enemy.TypeConfig.InvulnFrames
	}

	dir := cfg.DirectionRight
	if owner.HasComponent(components.Player) {
		dir = components.Player.Get(owner).Direction.X
	}
	components.Physics.Get(enemyEntry).VelX = dir * hitbox.Knockback

	state := components.State.Get(enemyEntry)
	state.Set(cfg.Hurt)
	state.StateTimer = 0
}
