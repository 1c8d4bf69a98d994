package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Enemy  = donburi.NewTag().SetName("Enemy")
	Hitbox = donburi.NewTag().SetName("Hitbox")
	// WallTile marks one solid cell of the level grid.
	WallTile = donburi.NewTag().SetName("WallTile")
	// WallPending marks wall tiles that have no collider yet.
	WallPending  = donburi.NewTag().SetName("WallPending")
	WallCollider = donburi.NewTag().SetName("WallCollider")
)

// Resolv tags for overlap queries
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
	ResolvEnemy  = "Enemy"
	ResolvHitbox = "Hitbox"
)
