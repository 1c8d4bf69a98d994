package factory

import (
	"github.com/automoto/tilefall/archetypes"
	"github.com/automoto/tilefall/components"
	cfg "github.com/automoto/tilefall/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{Zoom: cfg.Camera.Zoom})
	return camera
}

// FocusCamera snaps the camera onto x, y and restarts the level-start zoom.
func FocusCamera(ecs *ecs.ECS, x, y float64) {
	entry, ok := components.Camera.First(ecs.World)
	if !ok {
		entry = CreateCamera(ecs)
	}
	camera := components.Camera.Get(entry)
	camera.Position = math.Vec2{X: x, Y: y}
	if cfg.Camera.ZoomDuration <= 0 {
		camera.Zoom = cfg.Camera.Zoom
		camera.ZoomTween = nil
		return
	}
	camera.Zoom = cfg.Camera.ZoomStart
	camera.ZoomTween = gween.New(
		float32(cfg.Camera.ZoomStart),
		float32(cfg.Camera.Zoom),
		float32(cfg.Camera.ZoomDuration),
		ease.OutQuad,
	)
}
