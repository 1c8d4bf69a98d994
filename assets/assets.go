package assets

import (
	"embed"
	"io/fs"
	"log"
	"os"

	"github.com/automoto/tilefall/config"
	"github.com/automoto/tilefall/shared/leveldata"
)

//go:embed levels/*.tmx
var levelFS embed.FS

// FS returns the embedded asset tree.
func FS() fs.FS {
	return levelFS
}

// LevelSource returns the file system and directory levels are read from:
// the embedded copy by default, or a directory on disk when one is
// configured so edits can be picked up while the game runs.
func LevelSource() (fs.FS, string) {
	if config.Debug.LevelsPath != "" {
		return os.DirFS(config.Debug.LevelsPath), "."
	}
	return levelFS, config.Level.Dir
}

func layout() leveldata.Layout {
	return leveldata.Layout{
		WallLayer:   config.Level.WallLayer,
		PlayerGroup: config.Level.PlayerGroup,
		EnemyGroup:  config.Level.EnemyGroup,
	}
}

// LoadLevels reads every level from the configured source.
func LoadLevels() ([]*leveldata.Level, error) {
	fsys, dir := LevelSource()
	levels, err := leveldata.LoadAllLevels(fsys, dir, layout())
	if err != nil {
		return nil, err
	}
	for _, l := range levels {
		log.Printf("Loaded level: %s (%dx%d tiles, %d walls)", l.Name, l.Width, l.Height, l.Walls.Walls.Len())
	}
	return levels, nil
}

// LoadLevel reloads one level by name from the configured source.
func LoadLevel(name string) (*leveldata.Level, error) {
	fsys, dir := LevelSource()
	path := name + ".tmx"
	if dir != "." {
		path = dir + "/" + path
	}
	return leveldata.LoadLevel(fsys, path, layout())
}
