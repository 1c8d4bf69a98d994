package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Direction    Vector
	InvulnFrames int // Invulnerability frames timer
	AttackTimer  int // Frames left in the current swing
	// Spawn is where the player respawns, in pixels.
	SpawnX, SpawnY float64
}

var Player = donburi.NewComponentType[PlayerData]()
