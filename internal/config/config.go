// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade.
package config

import "github.com/vovakirdan/fuego-arcade/internal/core"

// Vec is a YAML-friendly 3D vector.
type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// V3 converts to the core vector type.
func (v Vec) V3() core.Vec3 {
	return core.Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

// WorldConfig defines the visible play field.
type WorldConfig struct {
	HalfHeight float64 `yaml:"half_height"` // world units visible above and below the origin
	Floor      float64 `yaml:"floor"`       // y of the drawn ground line; 0 draws none
}

// PlayerConfig defines where the player starts and how it looks.
type PlayerConfig struct {
	Start Vec    `yaml:"start"`
	Size  Vec    `yaml:"size"`  // full extents; collision box in geometry mode
	Asset string `yaml:"asset"` // sprite name; empty draws a box
}

// CollisionConfig selects how collision half extents are derived.
type CollisionConfig struct {
	Mode      string `yaml:"mode"`      // "geometry" or "tolerance"
	Tolerance Vec    `yaml:"tolerance"` // center distance per axis at which entities collide
}

// Collision modes.
const (
	CollisionGeometry  = "geometry"
	CollisionTolerance = "tolerance"
)

// Half returns the collision half extents for an entity of the given size.
// In tolerance mode every entity carries half the tolerance, so two of them
// collide when their centers are closer than the tolerance.
func (c CollisionConfig) Half(size Vec) core.Vec3 {
	if c.Mode == CollisionTolerance {
		return c.Tolerance.V3().Scale(0.5)
	}
	return size.V3().Scale(0.5)
}

// RampConfig tunes the ramped lateral speed.
type RampConfig struct {
	BaseSpeed   float64 `yaml:"base_speed"`
	MaxSpeed    float64 `yaml:"max_speed"`
	HoldStep    float64 `yaml:"hold_step"`     // added per repeated key-down while held
	TapStep     float64 `yaml:"tap_step"`      // added per press in a rapid tap streak
	TapWindowMs int     `yaml:"tap_window_ms"` // longest gap between presses that keeps a streak
}

// InputConfig defines lateral movement.
type InputConfig struct {
	Mode string     `yaml:"mode"` // "step" or "ramp"
	Step float64    `yaml:"step"`
	Ramp RampConfig `yaml:"ramp"`
}

// Input modes.
const (
	InputStep = "step"
	InputRamp = "ramp"
)

// BurstConfig defines the particle burst fired on a loss.
type BurstConfig struct {
	Count  int     `yaml:"count"`
	Spread float64 `yaml:"spread"` // points land within ±spread/2 on each axis
	TTLMs  int     `yaml:"ttl_ms"`
	Glyph  string  `yaml:"glyph"`
	Color  string  `yaml:"color"` // color name, e.g. "orange"
}

// DodgerConfig contains all configuration for Falling Blocks.
type DodgerConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     DodgerPlayer     `yaml:"player"`
	Obstacles  DodgerObstacles  `yaml:"obstacles"`
	Collision  CollisionConfig  `yaml:"collision"`
	Input      InputConfig      `yaml:"input"`
	Effects    BurstConfig      `yaml:"effects"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Message    string           `yaml:"message"`
}

// DodgerPlayer adds the lateral bounds to the common player settings.
type DodgerPlayer struct {
	PlayerConfig `yaml:",inline"`
	MinX         float64 `yaml:"min_x"`
	MaxX         float64 `yaml:"max_x"`
}

// DodgerObstacles defines the falling blocks.
type DodgerObstacles struct {
	SpawnChance float64 `yaml:"spawn_chance"` // per-tick probability
	SpawnY      float64 `yaml:"spawn_y"`
	MinX        float64 `yaml:"min_x"`
	MaxX        float64 `yaml:"max_x"`
	Size        Vec     `yaml:"size"`
	FallSpeed   float64 `yaml:"fall_speed"` // world units per tick
	DespawnY    float64 `yaml:"despawn_y"`
}

// FlappyConfig contains all configuration for Flappy Fuego.
type FlappyConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     FlappyPlayer     `yaml:"player"`
	Physics    FlappyPhysics    `yaml:"physics"`
	Pipes      FlappyPipes      `yaml:"pipes"`
	Collision  CollisionConfig  `yaml:"collision"`
	Effects    BurstConfig      `yaml:"effects"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Message    string           `yaml:"message"`
}

// FlappyPlayer adds the vertical bound to the common player settings.
type FlappyPlayer struct {
	PlayerConfig `yaml:",inline"`
	Bound        float64 `yaml:"bound"` // |y| beyond this ends the game
}

// FlappyPhysics defines physics parameters for Flappy Fuego.
type FlappyPhysics struct {
	Gravity     float64 `yaml:"gravity"`
	FlapImpulse float64 `yaml:"flap_impulse"`
}

// FlappyPipes defines the recycled pipe pairs.
type FlappyPipes struct {
	Count       int     `yaml:"count"`
	StartX      float64 `yaml:"start_x"`
	Spacing     float64 `yaml:"spacing"`
	Size        Vec     `yaml:"size"`
	Gap         float64 `yaml:"gap"`          // distance from the gap center to each pipe's inner offset
	CenterRange float64 `yaml:"center_range"` // gap centers fall in [-range, range]
	Speed       float64 `yaml:"speed"`
	RecycleX    float64 `yaml:"recycle_x"`
	ResetX      float64 `yaml:"reset_x"`
}

// JumpConfig contains all configuration for Jump Fuego.
type JumpConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Physics    JumpPhysics      `yaml:"physics"`
	Obstacles  JumpObstacles    `yaml:"obstacles"`
	Collision  CollisionConfig  `yaml:"collision"`
	Effects    BurstConfig      `yaml:"effects"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Message    string           `yaml:"message"`
}

// JumpPhysics defines physics parameters for Jump Fuego.
type JumpPhysics struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`
	Floor       float64 `yaml:"floor"` // player rest height
}

// JumpObstacles defines the scrolling walls.
type JumpObstacles struct {
	SpawnChance float64 `yaml:"spawn_chance"`
	SpawnX      float64 `yaml:"spawn_x"`
	SpawnY      float64 `yaml:"spawn_y"`
	Size        Vec     `yaml:"size"`
	Speed       float64 `yaml:"speed"`
	MinSpacing  float64 `yaml:"min_spacing"` // distance the last wall must travel before the next spawns
	DespawnX    float64 `yaml:"despawn_x"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Multiplier added to speed at max difficulty
	GapReduction     float64 `yaml:"gap_reduction"`     // Gap reduction at max difficulty, world units
	SpacingReduction float64 `yaml:"spacing_reduction"` // Spacing reduction at max difficulty, world units
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
