package components

import (
	"github.com/automoto/tilefall/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	TypeName   string                  // "Guard", "Viper", "Imp"
	TypeConfig *config.EnemyTypeConfig // Cached reference to type configuration
	Direction  Vector
	TintColor  ebiten.ColorScale

	// Combat
	AttackCooldown int // Frames until can attack again
	InvulnFrames   int // Invincibility frames after being hit
}

var Enemy = donburi.NewComponentType[EnemyData]()
