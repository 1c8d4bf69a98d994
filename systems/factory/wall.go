package factory

import (
	"github.com/automoto/tilefall/archetypes"
	"github.com/automoto/tilefall/components"
	cfg "github.com/automoto/tilefall/config"
	"github.com/automoto/tilefall/shared/wallmesh"
	"github.com/automoto/tilefall/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWallTile registers one wall cell. It carries WallPending until the
// wall collision system has meshed its level.
func CreateWallTile(ecs *ecs.ECS, level donburi.Entity, c wallmesh.GridCoord) *donburi.Entry {
	tile := archetypes.WallTile.Spawn(ecs)
	components.GridCoord.SetValue(tile, c)
	components.LevelRef.SetValue(tile, components.LevelRefData{Level: level})
	return tile
}

// CreateWallCollider emits the static collider for one merged rect: a solid
// resolv object for overlap checks and a static box in the physics world.
func CreateWallCollider(ecs *ecs.ECS, level donburi.Entity, r wallmesh.Rect, tileSize int) *donburi.Entry {
	wall := archetypes.WallCollider.Spawn(ecs)

	col := r.Collider(tileSize)
	x, y := col.Min()
	w, h := col.Size()

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	components.WallCollider.SetValue(wall, components.WallColliderData{Rect: r, Collider: col})
	components.LevelRef.SetValue(wall, components.LevelRefData{Level: level})

	space, world := Spaces(ecs.World)
	if space != nil {
		space.Add(obj)
	}
	if world != nil {
		shape := world.AddStaticBox(col, cfg.Physics.WallFriction)
		components.Body.SetValue(wall, components.BodyData{Shape: shape})
	}

	return wall
}
