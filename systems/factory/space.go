package factory

import (
	"github.com/automoto/tilefall/archetypes"
	"github.com/automoto/tilefall/components"
	cfg "github.com/automoto/tilefall/config"
	"github.com/automoto/tilefall/physics"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	resetSpace(space, width, height, cellWidth, cellHeight)
	return space
}

// ResetSpace gives the scene a fresh resolv space and physics world sized to
// width x height pixels, creating the space entity if there is none.
func ResetSpace(ecs *ecs.ECS, width, height, cell int) *donburi.Entry {
	space, ok := components.Space.First(ecs.World)
	if !ok {
		return CreateSpace(ecs, width, height, cell, cell)
	}
	resetSpace(space, width, height, cell, cell)
	return space
}

func resetSpace(space *donburi.Entry, width, height, cellWidth, cellHeight int) {
	components.Space.Set(space, resolv.NewSpace(width, height, cellWidth, cellHeight))
	components.PhysicsWorld.SetValue(space, components.PhysicsWorldData{
		World: physics.NewWorld(cfg.Physics.Gravity, cfg.Physics.Iterations),
	})
}

// Spaces returns the scene's resolv space and physics world, or nils before
// CreateSpace has run.
func Spaces(w donburi.World) (*resolv.Space, *physics.World) {
	entry, ok := components.Space.First(w)
	if !ok {
		return nil, nil
	}
	return components.Space.Get(entry), components.PhysicsWorld.Get(entry).World
}

// Despawn removes an entity along with its resolv object and physics body.
func Despawn(w donburi.World, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	space, world := Spaces(w)
	if space != nil && e.HasComponent(components.Object) {
		if obj := components.Object.Get(e); obj.Object != nil {
			space.Remove(obj.Object)
		}
	}
	if world != nil && e.HasComponent(components.Body) {
		body := components.Body.Get(e)
		switch {
		case body.Body != nil:
			world.RemoveBody(body.Body)
		case body.Shape != nil:
			world.RemoveStatic(body.Shape)
		}
	}
	w.Remove(e.Entity())
}
