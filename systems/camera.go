package systems

import (
	"github.com/automoto/tilefall/components"
	"github.com/automoto/tilefall/config"
	"github.com/automoto/tilefall/shared/gamemath"
	"github.com/automoto/tilefall/tags"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	if camera.ZoomTween != nil {
		zoom, done := camera.ZoomTween.Update(float32(config.Physics.TimeStep))
		camera.Zoom = float64(zoom)
		if done {
			camera.ZoomTween = nil
		}
	}

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	targetX, targetY := components.Object.Get(playerEntry).Center()

	// Keep the visible area inside the level.
	zoom := camera.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	halfW := float64(config.C.Width) / zoom / 2
	halfH := float64(config.C.Height) / zoom / 2
	levelW, levelH := level.PixelSize()
	targetX = gamemath.ClampView(targetX, halfW, levelW)
	targetY = gamemath.ClampView(targetY, halfH, levelH)

	// Center the camera on the constrained target position, with some smoothing.
	camera.Position.X = gamemath.Approach(camera.Position.X, targetX, config.Camera.FollowSmoothing)
	camera.Position.Y = gamemath.Approach(camera.Position.Y, targetY, config.Camera.FollowSmoothing)
}
