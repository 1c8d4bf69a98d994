package components

import (
	"github.com/jakecoffman/cp"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// BodyData links an entity to its rigid body.
type BodyData struct {
	Body  *cp.Body
	Shape *cp.Shape
}

var Body = donburi.NewComponentType[BodyData]()

type PhysicsData struct {
	// Velocity as of the last step, in pixels per second.
	VelX, VelY float64
	OnGround   *resolv.Object
	// LinearDamping is fed to the body's velocity update each step.
	LinearDamping float64
}

var Physics = donburi.NewComponentType[PhysicsData]()
