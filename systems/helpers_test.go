package systems

import (
	"testing"

	cfg "github.com/automoto/tilefall/config"
	"github.com/automoto/tilefall/shared/leveldata"
	"github.com/automoto/tilefall/shared/wallmesh"
	"github.com/automoto/tilefall/systems/factory"
	"github.com/automoto/tilefall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

const testTileSize = 8

var enemyLetters = map[rune]string{
	'G': "Guard",
	'V': "Viper",
	'I': "Imp",
}

func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)
	return ecs.NewECS(donburi.NewWorld())
}

// testLevel builds a level from ASCII rows: '#' is a wall, 'P' the player
// spawn and G, V or I an enemy of that type. Spawns sit on tile centers.
func testLevel(name string, rows ...string) *leveldata.Level {
	lvl := &leveldata.Level{
		Name:     name,
		Height:   len(rows),
		TileSize: testTileSize,
	}
	walls := wallmesh.NewWallSet()
	for y, row := range rows {
		if len(row) > lvl.Width {
			lvl.Width = len(row)
		}
		for x, ch := range row {
			cx := float64(x*testTileSize + testTileSize/2)
			cy := float64(y*testTileSize + testTileSize/2)
			switch {
			case ch == '#':
				walls.Add(wallmesh.GridCoord{X: x, Y: y})
			case ch == 'P':
				lvl.PlayerSpawn = leveldata.Spawn{X: cx, Y: cy}
			case enemyLetters[ch] != "":
				lvl.EnemySpawns = append(lvl.EnemySpawns, leveldata.Spawn{X: cx, Y: cy, Kind: enemyLetters[ch]})
			}
		}
	}
	lvl.Walls = leveldata.WallGrid{Cols: lvl.Width, Rows: lvl.Height, Size: testTileSize, Walls: walls}
	return lvl
}

// spawnAndMesh spawns lvl and runs the wall collision system once.
func spawnAndMesh(t *testing.T, e *ecs.ECS, lvl *leveldata.Level) *donburi.Entry {
	t.Helper()
	level := factory.SpawnLevel(e, lvl, 0)
	UpdateWallCollision(e)
	return level
}

func count(w donburi.World, cs ...donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(cs...)).Count(w)
}

func firstPlayer(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	entry, ok := tags.Player.First(e.World)
	if !ok {
		t.Fatal("no player spawned")
	}
	return entry
}

func firstEnemy(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	entry, ok := tags.Enemy.First(e.World)
	if !ok {
		t.Fatal("no enemy spawned")
	}
	return entry
}

func near(a, b, eps float64) bool {
	d := a - b
	return d < eps && d > -eps
}
