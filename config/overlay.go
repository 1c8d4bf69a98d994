package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// overlay mirrors the package-level sections. Decoding on top of the current
// values leaves any key missing from the file untouched.
type overlay struct {
	Window  Config        `yaml:"window"`
	Player  PlayerConfig  `yaml:"player"`
	Enemy   enemyOverlay  `yaml:"enemy"`
	Combat  CombatConfig  `yaml:"combat"`
	Stamina StaminaConfig `yaml:"stamina"`
	Health  HealthConfig  `yaml:"health"`
	Physics PhysicsConfig `yaml:"physics"`
	Camera  CameraConfig  `yaml:"camera"`
	Level   LevelConfig   `yaml:"level"`
	Debug   DebugConfig   `yaml:"debug"`
	UI      UIConfig      `yaml:"ui"`
}

// enemyOverlay holds each type as a raw node. yaml.v3 decodes map values into
// fresh zero values, so types are merged onto their current config by hand.
type enemyOverlay struct {
	Types       map[string]yaml.Node `yaml:"types"`
	DefaultType string               `yaml:"default_type"`
}

// LoadOverlay reads a YAML file and applies it over the current configuration.
func LoadOverlay(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := ApplyOverlay(data); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	log.Printf("Loaded config overlay: %s", path)
	return nil
}

// ApplyOverlay decodes YAML over the current configuration. Nothing is
// changed when decoding fails.
func ApplyOverlay(data []byte) error {
	ov := overlay{
		Window:  *C,
		Player:  Player,
		Enemy:   enemyOverlay{DefaultType: Enemy.DefaultType},
		Combat:  Combat,
		Stamina: Stamina,
		Health:  Health,
		Physics: Physics,
		Camera:  Camera,
		Level:   Level,
		Debug:   Debug,
		UI:      UI,
	}
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if ov.Physics.TimeStep <= 0 {
		return fmt.Errorf("physics.time_step must be positive, got %v", ov.Physics.TimeStep)
	}
	if ov.Level.WallLayer == "" {
		return fmt.Errorf("level.wall_layer must not be empty")
	}
	enemy, err := mergeEnemy(Enemy, ov.Enemy)
	if err != nil {
		return err
	}

	window := ov.Window
	C = &window
	Player = ov.Player
	Enemy = enemy
	Combat = ov.Combat
	Stamina = ov.Stamina
	Health = ov.Health
	Physics = ov.Physics
	Camera = ov.Camera
	Level = ov.Level
	Debug = ov.Debug
	UI = ov.UI
	return nil
}

// mergeEnemy decodes each overlaid type on top of a copy of its current
// config and checks that every type can still build a body.
func mergeEnemy(base EnemyConfig, ov enemyOverlay) (EnemyConfig, error) {
	types := make(map[string]EnemyTypeConfig, len(base.Types)+len(ov.Types))
	for k, v := range base.Types {
		types[k] = v
	}
	for name, node := range ov.Types {
		t := types[name]
		if err := node.Decode(&t); err != nil {
			return EnemyConfig{}, fmt.Errorf("enemy.types.%s: %w", name, err)
		}
		if t.Name == "" {
			t.Name = name
		}
		types[name] = t
	}

	for name, t := range types {
		if t.Width <= 0 || t.Height <= 0 || t.Density <= 0 {
			return EnemyConfig{}, fmt.Errorf("enemy.types.%s: width, height and density must be positive", name)
		}
	}
	if _, ok := types[ov.DefaultType]; !ok {
		return EnemyConfig{}, fmt.Errorf("enemy.default_type %q is not a known type", ov.DefaultType)
	}

	return EnemyConfig{Types: types, DefaultType: ov.DefaultType}, nil
}
