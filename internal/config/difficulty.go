package config

import "github.com/vovakirdan/fuego-arcade/internal/core"

// Lower bounds that keep a fully scaled game playable.
const (
	minGap     = 0.5
	minSpacing = 1.0
)

// DifficultyManager calculates dynamic game parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: core.ClampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
// Without progression the level stays at the initial level.
func (d *DifficultyManager) Level(score int, ticks uint64) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = core.ClampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns a per-tick speed scaled by the difficulty level.
func (d *DifficultyManager) Speed(base float64, score int, ticks uint64) float64 {
	level := d.Level(score, ticks)
	// Speed increases from base to base * (1 + speedMultiplier)
	return base * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// Gap returns the pipe gap narrowed by the difficulty level.
func (d *DifficultyManager) Gap(base float64, score int, ticks uint64) float64 {
	level := d.Level(score, ticks)
	if level == 0 {
		return base
	}
	return max(base-level*d.cfg.Scaling.GapReduction, minGap)
}

// Spacing returns the obstacle spacing shortened by the difficulty level.
func (d *DifficultyManager) Spacing(base float64, score int, ticks uint64) float64 {
	level := d.Level(score, ticks)
	if level == 0 {
		return base
	}
	return max(base-level*d.cfg.Scaling.SpacingReduction, minSpacing)
}
