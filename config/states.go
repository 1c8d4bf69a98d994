package config

// StateID identifies a character state for animation and logic.
type StateID int

const (
	StateNone StateID = iota - 1

	Idle
	Running
	Jumping
	Falling
	Dashing
	Attacking
	Hurt

	// Enemy AI
	StateChase
	StateEnemyAttack
)

var stateNames = map[StateID]string{
	StateNone:        "none",
	Idle:             "idle",
	Running:          "running",
	Jumping:          "jumping",
	Falling:          "falling",
	Dashing:          "dashing",
	Attacking:        "attacking",
	Hurt:             "hurt",
	StateChase:       "chase",
	StateEnemyAttack: "enemy_attack",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}
