package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/tilefall/shared/wallmesh"
	"github.com/lafriks/go-tiled"
)

// Layout names the layer and object groups a level is read from.
type Layout struct {
	WallLayer   string
	PlayerGroup string
	EnemyGroup  string
}

// DefaultLayout matches the shipped levels.
var DefaultLayout = Layout{
	WallLayer:   "walls",
	PlayerGroup: "Player",
	EnemyGroup:  "Enemy",
}

// LoadLevel parses a TMX file. It takes an fs.FS so callers can pass the
// embedded levels or os.DirFS while editing.
func LoadLevel(fsys fs.FS, tmxPath string, layout Layout) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth != levelMap.TileHeight {
		return nil, fmt.Errorf("%s: tiles must be square, got %dx%d", tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	level := &Level{
		Name:     strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Path:     tmxPath,
		Width:    levelMap.Width,
		Height:   levelMap.Height,
		TileSize: levelMap.TileWidth,
	}

	walls, err := wallsFromLayer(levelMap, layout.WallLayer)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tmxPath, err)
	}
	level.Walls = walls

	foundPlayer := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case layout.PlayerGroup:
			// Only the first player object counts
			if !foundPlayer && len(og.Objects) > 0 {
				o := og.Objects[0]
				level.PlayerSpawn = Spawn{X: o.X, Y: o.Y}
				foundPlayer = true
			}
		case layout.EnemyGroup:
			for _, o := range og.Objects {
				level.EnemySpawns = append(level.EnemySpawns, Spawn{
					X:    o.X,
					Y:    o.Y,
					Kind: o.Properties.GetString("enemyType"),
				})
			}
		}
	}
	if !foundPlayer {
		return nil, fmt.Errorf("%s: no object in group %q", tmxPath, layout.PlayerGroup)
	}

	// Sort enemies left-to-right so spawn order is stable across edits
	sort.SliceStable(level.EnemySpawns, func(i, j int) bool {
		return level.EnemySpawns[i].X < level.EnemySpawns[j].X
	})

	return level, nil
}

func wallsFromLayer(levelMap *tiled.Map, name string) (WallGrid, error) {
	grid := WallGrid{
		Cols: levelMap.Width,
		Rows: levelMap.Height,
		Size: levelMap.TileWidth,
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != name {
			continue
		}
		if len(layer.Tiles) < levelMap.Width*levelMap.Height {
			return grid, fmt.Errorf("layer %q has %d tiles, want %d", name, len(layer.Tiles), levelMap.Width*levelMap.Height)
		}

		grid.Walls = wallmesh.NewWallSet()
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				if layer.Tiles[y*levelMap.Width+x].IsNil() {
					continue
				}
				grid.Walls.Add(wallmesh.GridCoord{X: x, Y: y})
			}
		}
		return grid, nil
	}

	return grid, fmt.Errorf("%w: %q", ErrNoWallLayer, name)
}

// LoadAllLevels loads every .tmx file directly under dir, sorted by name.
func LoadAllLevels(fsys fs.FS, dir string, layout Layout) ([]*Level, error) {
	pattern := path.Join(dir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoLevels, dir)
	}
	sort.Strings(matches)

	levels := make([]*Level, 0, len(matches))
	for _, p := range matches {
		level, err := LoadLevel(fsys, p, layout)
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}
	return levels, nil
}
