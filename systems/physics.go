package systems

import (
	"github.com/automoto/tilefall/components"
	cfg "github.com/automoto/tilefall/config"
	"github.com/automoto/tilefall/shared/gamemath"
	"github.com/automoto/tilefall/systems/factory"
	"github.com/automoto/tilefall/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// groundProbe is how far below an object the ground check looks, in pixels.
const groundProbe = 2

// UpdatePhysics pushes the velocities chosen this frame into the bodies,
// steps the world and copies the result back into Physics and Object.
func UpdatePhysics(ecs *ecs.ECS) {
	_, world := factory.Spaces(ecs.World)
	if world == nil {
		return
	}

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		if body.Body == nil {
			return
		}
		physics := components.Physics.Get(e)
		body.Body.SetVelocity(physics.VelX, physics.VelY)
	})

	world.Step(cfg.Physics.TimeStep)

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		if body.Body == nil {
			return
		}
		physics := components.Physics.Get(e)

		v := body.Body.Velocity()
		v.Y = gamemath.ClampSpeed(v.Y, cfg.Physics.MaxFallSpeed)
		body.Body.SetVelocity(v.X, v.Y)
		physics.VelX, physics.VelY = v.X, v.Y

		pos := body.Body.Position()
		obj := components.Object.Get(e)
		obj.CenterOn(pos.X, pos.Y)
		physics.OnGround = groundBelow(obj.Object)
	})
}

// groundBelow returns the solid object under obj, if any.
func groundBelow(obj *resolv.Object) *resolv.Object {
	check := obj.Check(0, groundProbe, tags.ResolvSolid)
	if check == nil {
		return nil
	}
	bottom := obj.Y + obj.H
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if solid.Y >= bottom-1 && solid.Y <= bottom+groundProbe && overlapsX(obj, solid) {
			return solid
		}
	}
	return nil
}

func overlapsX(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W
}

func overlaps(a, b *resolv.Object) bool {
	return overlapsX(a, b) && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}
