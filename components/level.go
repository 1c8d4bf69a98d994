package components

import (
	"github.com/automoto/tilefall/shared/wallmesh"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Name     string
	Index    int
	TileSize int
	Width    int // tiles
	Height   int // tiles
	// WallTiles and Colliders are the counts from the last mesh pass.
	WallTiles int
	Colliders int
	// Spawned flips once the player body has been given its level settings.
	Spawned bool
}

// PixelSize returns the level extent in pixels.
func (l *LevelData) PixelSize() (float64, float64) {
	return float64(l.Width * l.TileSize), float64(l.Height * l.TileSize)
}

var Level = donburi.NewComponentType[LevelData]()

// LevelRefData ties an entity to the level that owns it. Despawning the
// level despawns everything that refers to it.
type LevelRefData struct {
	Level donburi.Entity
}

var LevelRef = donburi.NewComponentType[LevelRefData]()

// GridCoord is the cell a wall tile occupies.
var GridCoord = donburi.NewComponentType[wallmesh.GridCoord]()

// WallColliderData records the rect a collider was built from.
type WallColliderData struct {
	Rect     wallmesh.Rect
	Collider wallmesh.Collider
}

var WallCollider = donburi.NewComponentType[WallColliderData]()
