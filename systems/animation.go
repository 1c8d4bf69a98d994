package systems

import (
	"github.com/automoto/tilefall/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateAnimation(ecs *ecs.ECS) {
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		anim.SetAnimation(components.State.Get(e).CurrentState)
		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update()
		}
	})
}
