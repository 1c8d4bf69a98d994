package config

import "image/color"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement, in pixels per second
	JumpSpeed    float64 `yaml:"jump_speed"`
	RunSpeed     float64 `yaml:"run_speed"`
	ReleaseSpeed float64 `yaml:"release_speed"` // Horizontal speed left over after letting go of a direction
	DashSpeed    float64 `yaml:"dash_speed"`
	DashDuration float64 `yaml:"dash_duration"` // seconds

	// Body
	Radius        float64 `yaml:"radius"`
	Density       float64 `yaml:"density"`
	Elasticity    float64 `yaml:"elasticity"`
	LinearDamping float64 `yaml:"linear_damping"` // Applied once the level has spawned

	Health       int `yaml:"health"`
	InvulnFrames int `yaml:"invuln_frames"`
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name             string  `yaml:"name"`
	Health           int     `yaml:"health"`
	ChaseSpeed       float64 `yaml:"chase_speed"`
	AttackRange      float64 `yaml:"attack_range"`
	ChaseRange       float64 `yaml:"chase_range"`
	MaxVerticalChase float64 `yaml:"max_vertical_chase"`
	AttackCooldown   int     `yaml:"attack_cooldown"` // frames
	InvulnFrames     int     `yaml:"invuln_frames"`
	Damage           int     `yaml:"damage"`
	Debuff           string  `yaml:"debuff"` // "", "poison" or "fire"

	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Density float64 `yaml:"density"`

	Tint color.RGBA `yaml:"-"`
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types       map[string]EnemyTypeConfig `yaml:"types"`
	DefaultType string                     `yaml:"default_type"`
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	PlayerDamage   int     `yaml:"player_damage"`
	HitboxWidth    float64 `yaml:"hitbox_width"`
	HitboxHeight   float64 `yaml:"hitbox_height"`
	AttackFrames   int     `yaml:"attack_frames"`
	KnockbackSpeed float64 `yaml:"knockback_speed"`
}

// StaminaConfig drives the run timer and the cost of actions.
type StaminaConfig struct {
	Max          float64 `yaml:"max"`
	TickInterval float64 `yaml:"tick_interval"` // seconds per RunTimer tick
	RunDrain     float64 `yaml:"run_drain"`
	Regen        float64 `yaml:"regen"`
	DashCost     float64 `yaml:"dash_cost"`
	AttackCost   float64 `yaml:"attack_cost"`
}

// DebuffConfig describes one damage-over-time effect.
type DebuffConfig struct {
	Damage       int `yaml:"damage"`
	TickFrames   int `yaml:"tick_frames"`
	DurationTick int `yaml:"duration_ticks"`
}

type HealthConfig struct {
	Poison DebuffConfig `yaml:"poison"`
	Fire   DebuffConfig `yaml:"fire"`
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	PixelsPerMeter float64 `yaml:"pixels_per_meter"`
	Gravity        float64 `yaml:"gravity"` // pixels per second squared, positive is down
	Iterations     int     `yaml:"iterations"`
	TimeStep       float64 `yaml:"time_step"`
	WallFriction   float64 `yaml:"wall_friction"`
	MaxFallSpeed   float64 `yaml:"max_fall_speed"`
}

type CameraConfig struct {
	FollowSmoothing float64 `yaml:"follow_smoothing"` // How fast camera follows player (0.0-1.0)
	Zoom            float64 `yaml:"zoom"`
	ZoomStart       float64 `yaml:"zoom_start"`
	ZoomDuration    float64 `yaml:"zoom_duration"` // seconds
}

// LevelConfig names the TMX layers and object groups levels are read from.
type LevelConfig struct {
	Dir         string `yaml:"dir"`
	WallLayer   string `yaml:"wall_layer"`
	PlayerGroup string `yaml:"player_group"`
	EnemyGroup  string `yaml:"enemy_group"`
	SpaceCell   int    `yaml:"space_cell"`
}

type DebugConfig struct {
	ShowColliders bool   `yaml:"show_colliders"`
	Watch         bool   `yaml:"watch"`
	LevelIndex    int    `yaml:"level_index"`
	LevelsPath    string `yaml:"levels_path"` // Load levels from disk instead of the embedded copy
}

// UIConfig contains HUD configuration values
type UIConfig struct {
	BarWidth     float64 `yaml:"bar_width"`
	BarHeight    float64 `yaml:"bar_height"`
	BarMargin    float64 `yaml:"bar_margin"`
	DarkenAlpha  uint8   `yaml:"darken_alpha"`
	ShowWallFill bool    `yaml:"show_wall_fill"`
}

type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	TPS    int `yaml:"tps"`
}

var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Combat CombatConfig
var Stamina StaminaConfig
var Health HealthConfig
var Physics PhysicsConfig
var Camera CameraConfig
var Level LevelConfig
var Debug DebugConfig
var UI UIConfig

var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Grey      = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	DarkGrey  = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	WallColor = color.RGBA{R: 70, G: 60, B: 90, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green     = color.RGBA{R: 40, G: 220, B: 40, A: 255}
	Blue      = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Yellow    = color.RGBA{R: 255, G: 220, B: 0, A: 255}
	Orange    = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Purple    = color.RGBA{R: 128, G: 0, B: 255, A: 255}
)

const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	Reset()
}

// Reset restores every section to its built-in defaults.
func Reset() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Physics = PhysicsConfig{
		PixelsPerMeter: 70,
		Gravity:        9.81 * 70,
		Iterations:     10,
		TimeStep:       1.0 / 60.0,
		WallFriction:   1.0,
		MaxFallSpeed:   400,
	}

	Player = PlayerConfig{
		JumpSpeed:    220,
		RunSpeed:     45,
		ReleaseSpeed: 20,
		DashSpeed:    160,
		DashDuration: 0.35,

		Radius:        4,
		Density:       100,
		Elasticity:    0,
		LinearDamping: 1.0,

		Health:       100,
		InvulnFrames: 45,
	}

	Enemy = EnemyConfig{
		DefaultType: "Guard",
		Types: map[string]EnemyTypeConfig{
			"Guard": {
				Name:             "Guard",
				Health:           40,
				ChaseSpeed:       30,
				AttackRange:      10,
				ChaseRange:       64,
				MaxVerticalChase: 24,
				AttackCooldown:   60,
				InvulnFrames:     15,
				Damage:           10,
				Width:            6,
				Height:           8,
				Density:          50,
				Tint:             Red,
			},
			"Viper": {
				Name:             "Viper",
				Health:           25,
				ChaseSpeed:       40,
				AttackRange:      10,
				ChaseRange:       80,
				MaxVerticalChase: 16,
				AttackCooldown:   90,
				InvulnFrames:     10,
				Damage:           5,
				Debuff:           "poison",
				Width:            6,
				Height:           6,
				Density:          50,
				Tint:             Green,
			},
			"Imp": {
				Name:             "Imp",
				Health:           30,
				ChaseSpeed:       35,
				AttackRange:      12,
				ChaseRange:       72,
				MaxVerticalChase: 24,
				AttackCooldown:   75,
				InvulnFrames:     10,
				Damage:           5,
				Debuff:           "fire",
				Width:            6,
				Height:           8,
				Density:          50,
				Tint:             Orange,
			},
		},
	}

	Combat = CombatConfig{
		PlayerDamage:   15,
		HitboxWidth:    10,
		HitboxHeight:   8,
		AttackFrames:   12,
		KnockbackSpeed: 60,
	}

	Stamina = StaminaConfig{
		Max:          100,
		TickInterval: 0.25,
		RunDrain:     2,
		Regen:        5,
		DashCost:     30,
		AttackCost:   10,
	}

	Health = HealthConfig{
		Poison: DebuffConfig{Damage: 2, TickFrames: 30, DurationTick: 6},
		Fire:   DebuffConfig{Damage: 4, TickFrames: 20, DurationTick: 3},
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
		Zoom:            4,
		ZoomStart:       1.5,
		ZoomDuration:    1.2,
	}

	Level = LevelConfig{
		Dir:         "levels",
		WallLayer:   "walls",
		PlayerGroup: "Player",
		EnemyGroup:  "Enemy",
		SpaceCell:   8,
	}

	Debug = DebugConfig{}

	UI = UIConfig{
		BarWidth:     130,
		BarHeight:    8,
		BarMargin:    10,
		DarkenAlpha:  200,
		ShowWallFill: true,
	}
}
