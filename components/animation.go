package components

import (
	"github.com/automoto/tilefall/assets/animations"
	"github.com/automoto/tilefall/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentState     config.StateID
	Animations       map[config.StateID]*animations.Animation
}

func (a *AnimationData) SetAnimation(state config.StateID) {
	if a.CurrentState == state && (a.CurrentAnimation != nil || a.Animations[state] == nil) {
		return
	}

	anim, ok := a.Animations[state]
	if !ok {
		a.CurrentAnimation = nil
		a.CurrentState = state
		return
	}
	a.CurrentAnimation = anim
	a.CurrentState = state
	a.CurrentAnimation.Restart()
}

var Animation = donburi.NewComponentType[AnimationData]()
