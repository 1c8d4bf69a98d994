package components

import (
	"github.com/yohamta/donburi"
)

type HitboxData struct {
	Owner     donburi.Entity // The entity that created this hitbox
	Damage    int
	Knockback float64
	LifeTime  int // Frames this hitbox lasts
	// HitEntities keeps one swing from hitting the same target twice.
	HitEntities map[donburi.Entity]bool
}

var Hitbox = donburi.NewComponentType[HitboxData]()
