package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2
	Zoom     float64
	// ZoomTween eases the zoom in after a level spawns; nil once done.
	ZoomTween *gween.Tween
}

var Camera = donburi.NewComponentType[CameraData]()
