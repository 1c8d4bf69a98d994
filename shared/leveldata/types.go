// Package leveldata parses TMX levels into plain data: the wall grid that
// feeds the collider mesher and the spawn points placed in the editor.
// It has no dependencies on ebitengine, donburi, resolv or cp.
package leveldata

import (
	"errors"

	"github.com/automoto/tilefall/shared/wallmesh"
)

var (
	// ErrNoWallLayer is returned when a map has no tile layer with the
	// configured wall layer name.
	ErrNoWallLayer = errors.New("wall layer not found")
	// ErrNoLevels is returned when a directory holds no .tmx files.
	ErrNoLevels = errors.New("no levels found")
)

// Level holds everything the game needs from one TMX file.
type Level struct {
	Name        string
	Path        string
	Width       int // tiles
	Height      int // tiles
	TileSize    int // pixels per tile, square
	Walls       WallGrid
	PlayerSpawn Spawn
	EnemySpawns []Spawn
}

// PixelSize returns the level extent in pixels.
func (l *Level) PixelSize() (w, h int) {
	return l.Width * l.TileSize, l.Height * l.TileSize
}

// Spawn is an editor-placed point in level pixel space.
type Spawn struct {
	X, Y float64
	Kind string // enemy type name, empty for the player
}

// WallGrid is a snapshot of one level's wall layer.
type WallGrid struct {
	Cols, Rows int
	Size       int
	Walls      wallmesh.WallSet
}

func (g WallGrid) Width() int  { return g.Cols }
func (g WallGrid) Height() int { return g.Rows }

func (g WallGrid) IsWall(x, y int) bool {
	return g.Walls.Contains(wallmesh.GridCoord{X: x, Y: y})
}
