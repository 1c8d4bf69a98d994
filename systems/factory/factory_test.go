package factory

import (
	"testing"

	"github.com/automoto/tilefall/components"
	cfg "github.com/automoto/tilefall/config"
	"github.com/automoto/tilefall/shared/leveldata"
	"github.com/automoto/tilefall/shared/wallmesh"
	"github.com/automoto/tilefall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

func newECS(t *testing.T) *ecs.ECS {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)
	return ecs.NewECS(donburi.NewWorld())
}

func count(w donburi.World, c donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(c)).Count(w)
}

func floorLevel() *leveldata.Level {
	walls := wallmesh.NewWallSet()
	for x := 0; x < 6; x++ {
		walls.Add(wallmesh.GridCoord{X: x, Y: 3})
	}
	return &leveldata.Level{
		Name:        "floor",
		Width:       6,
		Height:      4,
		TileSize:    8,
		Walls:       leveldata.WallGrid{Cols: 6, Rows: 4, Size: 8, Walls: walls},
		PlayerSpawn: leveldata.Spawn{X: 12, Y: 12},
		EnemySpawns: []leveldata.Spawn{
			{X: 36, Y: 12, Kind: "Viper"},
			{X: 44, Y: 12, Kind: "Dragon"},
		},
	}
}

func TestSpawnLevel(t *testing.T) {
	e := newECS(t)
	level := SpawnLevel(e, floorLevel(), 2)

	data := components.Level.Get(level)
	if data.Name != "floor" || data.Index != 2 || data.TileSize != 8 {
		t.Errorf("level data = %+v", data)
	}
	if w, h := data.PixelSize(); w != 48 || h != 32 {
		t.Errorf("pixel size = %vx%v, want 48x32", w, h)
	}
	if n := count(e.World, tags.WallTile); n != 6 {
		t.Errorf("wall tiles = %d, want 6", n)
	}
	if n := count(e.World, tags.WallPending); n != 6 {
		t.Errorf("pending tiles = %d, want 6", n)
	}
	if n := count(e.World, tags.WallCollider); n != 0 {
		t.Errorf("colliders built before meshing: %d", n)
	}
	if n := count(e.World, tags.Player); n != 1 {
		t.Errorf("players = %d, want 1", n)
	}
	if n := count(e.World, tags.Enemy); n != 2 {
		t.Errorf("enemies = %d, want 2", n)
	}

	space, world := Spaces(e.World)
	if space == nil || world == nil {
		t.Fatal("spawning a level should create the spaces")
	}
	if world.BodyCount() != 3 {
		t.Errorf("bodies = %d, want 3", world.BodyCount())
	}

	cam, ok := components.Camera.First(e.World)
	if !ok {
		t.Fatal("no camera")
	}
	if pos := components.Camera.Get(cam).Position; pos.X != 12 || pos.Y != 12 {
		t.Errorf("camera at %v, want the player spawn", pos)
	}
}

func TestCreateEnemyFallsBackToDefaultType(t *testing.T) {
	e := newECS(t)
	SpawnLevel(e, floorLevel(), 0)

	types := map[string]int{}
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		types[components.Enemy.Get(entry).TypeName]++
	})
	if types["Viper"] != 1 || types[cfg.Enemy.DefaultType] != 1 {
		t.Errorf("enemy types = %v, want one Viper and one %s", types, cfg.Enemy.DefaultType)
	}
}

func TestCreatePlayerCentersOnSpawn(t *testing.T) {
	e := newECS(t)
	SpawnLevel(e, floorLevel(), 0)
	player, _ := tags.Player.First(e.World)

	obj := components.Object.Get(player)
	if x, y := obj.Center(); x != 12 || y != 12 {
		t.Errorf("object center = (%v, %v), want (12, 12)", x, y)
	}
	if obj.W != 2*cfg.Player.Radius {
		t.Errorf("object width = %v, want %v", obj.W, 2*cfg.Player.Radius)
	}
	if pos := components.Body.Get(player).Body.Position(); pos.X != 12 || pos.Y != 12 {
		t.Errorf("body at %v, want (12, 12)", pos)
	}
	if got := components.Health.Get(player).Current; got != cfg.Player.Health {
		t.Errorf("health = %d, want %d", got, cfg.Player.Health)
	}
	if !components.Abilities.Get(player).Has(components.AbilitySwitchLight) {
		t.Error("player should start with the light switch")
	}
}

func TestCreateWallCollider(t *testing.T) {
	e := newECS(t)
	level := SpawnLevel(e, floorLevel(), 0)

	r := wallmesh.Rect{Left: 1, Right: 3, Bottom: 2, Top: 3}
	wall := CreateWallCollider(e, level.Entity(), r, 8)

	obj := components.Object.Get(wall)
	if obj.X != 8 || obj.Y != 16 || obj.W != 24 || obj.H != 16 {
		t.Errorf("object = (%v, %v, %v, %v), want (8, 16, 24, 16)", obj.X, obj.Y, obj.W, obj.H)
	}
	if !obj.HasTags(tags.ResolvSolid) {
		t.Error("wall object not tagged solid")
	}
	if components.Body.Get(wall).Shape == nil {
		t.Error("no static shape for the wall")
	}
	_, world := Spaces(e.World)
	if world.StaticCount() != 1 {
		t.Errorf("static shapes = %d, want 1", world.StaticCount())
	}

	Despawn(e.World, wall)
	if world.StaticCount() != 0 {
		t.Errorf("static shape survived despawn")
	}
	// Despawning twice is harmless.
	Despawn(e.World, wall)
}

func TestCreateHitboxPlacement(t *testing.T) {
	e := newECS(t)
	SpawnLevel(e, floorLevel(), 0)
	player, _ := tags.Player.First(e.World)

	right := components.Object.Get(CreateHitbox(e, player, cfg.DirectionRight))
	left := components.Object.Get(CreateHitbox(e, player, cfg.DirectionLeft))
	owner := components.Object.Get(player)

	if right.X != owner.X+owner.W {
		t.Errorf("right hitbox x = %v, want %v", right.X, owner.X+owner.W)
	}
	if left.X+left.W != owner.X {
		t.Errorf("left hitbox right edge = %v, want %v", left.X+left.W, owner.X)
	}
}

func TestFocusCameraWithoutZoomTween(t *testing.T) {
	e := newECS(t)
	cfg.Camera.ZoomDuration = 0

	FocusCamera(e, 5, 7)
	cam, ok := components.Camera.First(e.World)
	if !ok {
		t.Fatal("FocusCamera should create a camera")
	}
	data := components.Camera.Get(cam)
	if data.ZoomTween != nil || data.Zoom != cfg.Camera.Zoom {
		t.Errorf("zoom = %v (tween %v), want %v without tween", data.Zoom, data.ZoomTween, cfg.Camera.Zoom)
	}
}
