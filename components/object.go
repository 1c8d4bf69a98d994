package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the entity's footprint in the resolv space. Physics bodies
// own the position; objects are moved to match after every step.
type ObjectData struct {
	*resolv.Object
}

// Center returns the middle of the object's bounds.
func (o ObjectData) Center() (float64, float64) {
	return o.X + o.W/2, o.Y + o.H/2
}

// CenterOn moves the object so its middle sits on x, y.
func (o ObjectData) CenterOn(x, y float64) {
	o.X = x - o.W/2
	o.Y = y - o.H/2
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()
