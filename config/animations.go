package config

type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed float32
	// Freeze holds the last frame instead of looping.
	Freeze bool
}

// CharacterAnimations maps a character key to its animation definitions.
// Frames index into a strip; nothing is drawn from them yet beyond the debug
// overlay, but state timing (attack windows, dash length) reads them.
var CharacterAnimations = map[string]map[StateID]AnimationDef{
	"player": {
		Idle:      {First: 0, Last: 5, Step: 1, Speed: 8},
		Running:   {First: 0, Last: 7, Step: 1, Speed: 5},
		Jumping:   {First: 0, Last: 2, Step: 1, Speed: 10, Freeze: true},
		Falling:   {First: 0, Last: 1, Step: 1, Speed: 10},
		Dashing:   {First: 0, Last: 3, Step: 1, Speed: 4, Freeze: true},
		Attacking: {First: 0, Last: 5, Step: 1, Speed: 2, Freeze: true},
		Hurt:      {First: 0, Last: 2, Step: 1, Speed: 5, Freeze: true},
	},
	"enemy": {
		Idle:             {First: 0, Last: 3, Step: 1, Speed: 10},
		StateChase:       {First: 0, Last: 5, Step: 1, Speed: 6},
		StateEnemyAttack: {First: 0, Last: 4, Step: 1, Speed: 4, Freeze: true},
		Hurt:             {First: 0, Last: 2, Step: 1, Speed: 5, Freeze: true},
	},
}
