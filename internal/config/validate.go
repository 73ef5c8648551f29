package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/fuego-arcade/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

func invalid(game, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalid, game, fmt.Sprintf(format, args...))
}

// shape names a configured size for error messages.
type shape struct {
	field string
	size  Vec
}

func validateCommon(game string, world WorldConfig, col CollisionConfig, fx BurstConfig, d DifficultyConfig, shapes ...shape) error {
	if world.HalfHeight <= 0 {
		return invalid(game, "world.half_height must be positive")
	}
	switch col.Mode {
	case CollisionGeometry:
		// Boxes without width or height can never collide.
		for _, sh := range shapes {
			if sh.size.X <= 0 || sh.size.Y <= 0 {
				return invalid(game, "%s needs positive x and y in geometry collision mode", sh.field)
			}
			if sh.size.Z < 0 {
				return invalid(game, "%s.z must not be negative", sh.field)
			}
		}
	case CollisionTolerance:
		if col.Tolerance.X <= 0 || col.Tolerance.Y <= 0 {
			return invalid(game, "collision.tolerance needs positive x and y")
		}
		if col.Tolerance.Z < 0 {
			return invalid(game, "collision.tolerance.z must not be negative")
		}
	default:
		return invalid(game, "collision.mode %q (use geometry or tolerance)", col.Mode)
	}
	if fx.Count < 0 || fx.TTLMs < 0 || fx.Spread < 0 {
		return invalid(game, "effects values must not be negative")
	}
	if _, ok := core.ParseColor(fx.Color); !ok && fx.Color != "" {
		return invalid(game, "effects.color %q", fx.Color)
	}
	if len([]rune(fx.Glyph)) > 1 {
		return invalid(game, "effects.glyph must be a single character")
	}
	if d.InitialLevel < 0 || d.InitialLevel > 1 {
		return invalid(game, "difficulty.initial_level must be within [0, 1]")
	}
	switch d.Progression.Type {
	case "score", "time", "none", "":
	default:
		return invalid(game, "difficulty.progression.type %q", d.Progression.Type)
	}
	return nil
}

func validateChance(game, field string, p float64) error {
	if p < 0 || p > 1 {
		return invalid(game, "%s must be within [0, 1]", field)
	}
	return nil
}

// Validate checks a Falling Blocks configuration.
func (c DodgerConfig) Validate() error {
	const game = "dodger"
	err := validateCommon(game, c.World, c.Collision, c.Effects, c.Difficulty,
		shape{"player.size", c.Player.Size}, shape{"obstacles.size", c.Obstacles.Size})
	if err != nil {
		return err
	}
	if c.Player.MinX > c.Player.MaxX {
		return invalid(game, "player.min_x is greater than player.max_x")
	}
	if c.Obstacles.MinX > c.Obstacles.MaxX {
		return invalid(game, "obstacles.min_x is greater than obstacles.max_x")
	}
	if err := validateChance(game, "obstacles.spawn_chance", c.Obstacles.SpawnChance); err != nil {
		return err
	}
	if c.Obstacles.DespawnY >= c.Obstacles.SpawnY {
		return invalid(game, "obstacles.despawn_y must be below obstacles.spawn_y")
	}
	switch c.Input.Mode {
	case InputStep:
		if c.Input.Step <= 0 {
			return invalid(game, "input.step must be positive")
		}
	case InputRamp:
		r := c.Input.Ramp
		if r.BaseSpeed <= 0 || r.MaxSpeed < r.BaseSpeed {
			return invalid(game, "input.ramp needs 0 < base_speed <= max_speed")
		}
		if r.HoldStep < 0 || r.TapStep < 0 || r.TapWindowMs < 0 {
			return invalid(game, "input.ramp steps must not be negative")
		}
	default:
		return invalid(game, "input.mode %q (use step or ramp)", c.Input.Mode)
	}
	return nil
}

// Validate checks a Flappy Fuego configuration.
func (c FlappyConfig) Validate() error {
	const game = "flappy"
	err := validateCommon(game, c.World, c.Collision, c.Effects, c.Difficulty,
		shape{"player.size", c.Player.Size}, shape{"pipes.size", c.Pipes.Size})
	if err != nil {
		return err
	}
	if c.Player.Bound <= 0 {
		return invalid(game, "player.bound must be positive")
	}
	if c.Pipes.Count < 1 {
		return invalid(game, "pipes.count must be at least 1")
	}
	if c.Pipes.Gap <= 0 {
		return invalid(game, "pipes.gap must be positive")
	}
	if c.Pipes.RecycleX >= c.Pipes.ResetX {
		return invalid(game, "pipes.recycle_x must be left of pipes.reset_x")
	}
	return nil
}

// Validate checks a Jump Fuego configuration.
func (c JumpConfig) Validate() error {
	const game = "jump"
	err := validateCommon(game, c.World, c.Collision, c.Effects, c.Difficulty,
		shape{"player.size", c.Player.Size}, shape{"obstacles.size", c.Obstacles.Size})
	if err != nil {
		return err
	}
	if c.Physics.Gravity >= 0 {
		return invalid(game, "physics.gravity must be negative")
	}
	if c.Physics.JumpImpulse <= 0 {
		return invalid(game, "physics.jump_impulse must be positive")
	}
	if err := validateChance(game, "obstacles.spawn_chance", c.Obstacles.SpawnChance); err != nil {
		return err
	}
	if c.Obstacles.MinSpacing < 0 {
		return invalid(game, "obstacles.min_spacing must not be negative")
	}
	if c.Obstacles.DespawnX >= c.Obstacles.SpawnX {
		return invalid(game, "obstacles.despawn_x must be left of obstacles.spawn_x")
	}
	return nil
}
