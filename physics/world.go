// Package physics owns the rigid-body simulation. Walls are static boxes built
// from the wall mesh; characters are dynamic bodies with locked rotation.
package physics

import (
	"math"

	"github.com/automoto/tilefall/shared/wallmesh"
	"github.com/jakecoffman/cp"
)

const (
	CollisionWall cp.CollisionType = iota + 1
	CollisionPlayer
	CollisionEnemy
)

// World wraps a chipmunk space. Positions are in pixels, y grows downward.
type World struct {
	space   *cp.Space
	statics map[*cp.Shape]struct{}
	bodies  map[*cp.Body]*cp.Shape
}

func NewWorld(gravity float64, iterations int) *World {
	space := cp.NewSpace()
	if iterations > 0 {
		space.Iterations = uint(iterations)
	}
	space.SetGravity(cp.Vector{X: 0, Y: gravity})
	return &World{
		space:   space,
		statics: make(map[*cp.Shape]struct{}),
		bodies:  make(map[*cp.Body]*cp.Shape),
	}
}

// AddStaticBox attaches a box matching the collider to the static body.
func (w *World) AddStaticBox(c wallmesh.Collider, friction float64) *cp.Shape {
	minX, minY := c.Min()
	maxX, maxY := c.Max()
	shape := cp.NewBox2(w.space.StaticBody, cp.BB{L: minX, B: minY, R: maxX, T: maxY}, 0)
	shape.SetFriction(friction)
	shape.SetCollisionType(CollisionWall)
	w.space.AddShape(shape)
	w.statics[shape] = struct{}{}
	return shape
}

// RemoveStatic drops a shape added with AddStaticBox. Unknown shapes are ignored.
func (w *World) RemoveStatic(shape *cp.Shape) {
	if _, ok := w.statics[shape]; !ok {
		return
	}
	w.space.RemoveShape(shape)
	delete(w.statics, shape)
}

// AddCircle creates a dynamic circle centered on x, y. Mass comes from
// density times area; rotation is locked.
func (w *World) AddCircle(x, y, radius, density, friction, elasticity float64, kind cp.CollisionType) (*cp.Body, *cp.Shape) {
	mass := density * math.Pi * radius * radius
	body := cp.NewBody(mass, math.Inf(1))
	body.SetPosition(cp.Vector{X: x, Y: y})
	shape := cp.NewCircle(body, radius, cp.Vector{})
	return w.addDynamic(body, shape, friction, elasticity, kind)
}

// AddBox creates a dynamic box centered on x, y with locked rotation.
func (w *World) AddBox(x, y, width, height, density, friction float64, kind cp.CollisionType) (*cp.Body, *cp.Shape) {
	mass := density * width * height
	body := cp.NewBody(mass, math.Inf(1))
	body.SetPosition(cp.Vector{X: x, Y: y})
	shape := cp.NewBox(body, width, height, 0)
	return w.addDynamic(body, shape, friction, 0, kind)
}

func (w *World) addDynamic(body *cp.Body, shape *cp.Shape, friction, elasticity float64, kind cp.CollisionType) (*cp.Body, *cp.Shape) {
	shape.SetFriction(friction)
	shape.SetElasticity(elasticity)
	shape.SetCollisionType(kind)
	w.space.AddBody(body)
	w.space.AddShape(shape)
	w.bodies[body] = shape
	return body, shape
}

// RemoveBody drops a dynamic body and its shape.
func (w *World) RemoveBody(body *cp.Body) {
	shape, ok := w.bodies[body]
	if !ok {
		return
	}
	w.space.RemoveShape(shape)
	w.space.RemoveBody(body)
	delete(w.bodies, body)
}

// StaticCount returns the number of wall boxes in the world.
func (w *World) StaticCount() int {
	return len(w.statics)
}

// BodyCount returns the number of dynamic bodies in the world.
func (w *World) BodyCount() int {
	return len(w.bodies)
}

func (w *World) Step(dt float64) {
	w.space.Step(dt)
}

// SetLinearDamping slows the body by 1/(1+dt*damping) every step on top of
// the space damping. Zero restores the default integration.
func SetLinearDamping(body *cp.Body, damping float64) {
	if damping <= 0 {
		body.SetVelocityUpdateFunc(cp.BodyUpdateVelocity)
		return
	}
	body.SetVelocityUpdateFunc(func(b *cp.Body, gravity cp.Vector, spaceDamping, dt float64) {
		cp.BodyUpdateVelocity(b, gravity, spaceDamping/(1+dt*damping), dt)
	})
}
