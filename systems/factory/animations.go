package factory

import (
	"fmt"

	"github.com/automoto/tilefall/assets/animations"
	"github.com/automoto/tilefall/components"
	cfg "github.com/automoto/tilefall/config"
)

// GenerateAnimations creates an AnimationData component based on the character key
// (e.g., "player", "enemy") which maps to a set of animation definitions in config.
func GenerateAnimations(key string) *components.AnimationData {
	defs, ok := cfg.CharacterAnimations[key]
	if !ok {
		panic(fmt.Sprintf("No animation definitions found for key: %s", key))
	}

	animData := &components.AnimationData{
		Animations:   make(map[cfg.StateID]*animations.Animation, len(defs)),
		CurrentState: cfg.Idle,
	}
	for state, def := range defs {
		anim := animations.NewAnimation(def.First, def.Last, def.Step, def.Speed)
		anim.FreezeOnComplete = def.Freeze
		animData.Animations[state] = anim
	}
	animData.CurrentAnimation = animData.Animations[cfg.Idle]
	return animData
}
