package config

import (
	_ "embed"
)

//go:embed defaults/dodger.yaml
var defaultDodgerYAML []byte

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

//go:embed defaults/jump.yaml
var defaultJumpYAML []byte

const defaultMessage = "Game Over! Press R to restart"

func defaultBurst() BurstConfig {
	return BurstConfig{
		Count:  100,
		Spread: 2,
		TTLMs:  1000,
		Glyph:  "*",
		Color:  "bright_yellow",
	}
}

// fixedDifficulty keeps every per-tick constant at its base value until a
// preset enables progression.
func fixedDifficulty(progression string, maxAt int, scaling ScalingConfig) DifficultyConfig {
	return DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.0,
		Progression: ProgressionConfig{
			Type:  progression,
			MaxAt: maxAt,
		},
		Scaling: scaling,
	}
}

// DefaultDodgerConfig returns the default Falling Blocks configuration.
func DefaultDodgerConfig() DodgerConfig {
	return DodgerConfig{
		World: WorldConfig{HalfHeight: 4.5},
		Player: DodgerPlayer{
			PlayerConfig: PlayerConfig{
				Start: Vec{X: 0, Y: -2},
				Size:  Vec{X: 1, Y: 1, Z: 1},
			},
			MinX: -3,
			MaxX: 3,
		},
		Obstacles: DodgerObstacles{
			SpawnChance: 0.02,
			SpawnY:      3,
			MinX:        -3,
			MaxX:        3,
			Size:        Vec{X: 1, Y: 1, Z: 1},
			FallSpeed:   0.05,
			DespawnY:    -4,
		},
		Collision: CollisionConfig{
			Mode:      CollisionTolerance,
			Tolerance: Vec{X: 0.9, Y: 0.9},
		},
		Input: InputConfig{
			Mode: InputRamp,
			Step: 0.5,
			Ramp: RampConfig{
				BaseSpeed:   0.5,
				MaxSpeed:    1.0,
				HoldStep:    0.05,
				TapStep:     0.1,
				TapWindowMs: 250,
			},
		},
		Effects: defaultBurst(),
		Difficulty: fixedDifficulty("score", 100, ScalingConfig{
			SpeedMultiplier: 1.0,
		}),
		Message: defaultMessage,
	}
}

// DefaultFlappyConfig returns the default Flappy Fuego configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: WorldConfig{HalfHeight: 3.5},
		Player: FlappyPlayer{
			PlayerConfig: PlayerConfig{
				Start: Vec{X: 2, Y: 0},
				Size:  Vec{X: 0.5, Y: 0.5, Z: 0.5},
				Asset: "fuego",
			},
			Bound: 3,
		},
		Physics: FlappyPhysics{
			Gravity:     -0.005,
			FlapImpulse: 0.08,
		},
		Pipes: FlappyPipes{
			Count:       3,
			StartX:      6,
			Spacing:     4,
			Size:        Vec{X: 0.5, Y: 4, Z: 0.5},
			Gap:         1.5,
			CenterRange: 1,
			Speed:       0.05,
			RecycleX:    -6,
			ResetX:      6,
		},
		Collision: CollisionConfig{Mode: CollisionGeometry},
		Effects:   defaultBurst(),
		Difficulty: fixedDifficulty("score", 50, ScalingConfig{
			SpeedMultiplier: 1.0,
			GapReduction:    0.5,
		}),
		Message: defaultMessage,
	}
}

// DefaultJumpConfig returns the default Jump Fuego configuration.
func DefaultJumpConfig() JumpConfig {
	return JumpConfig{
		World: WorldConfig{HalfHeight: 3.5, Floor: -3.25},
		Player: PlayerConfig{
			Start: Vec{X: -2, Y: -2.8},
			Size:  Vec{X: 0.75, Y: 0.75, Z: 0.75},
			Asset: "fuego",
		},
		Physics: JumpPhysics{
			Gravity:     -0.015,
			JumpImpulse: 0.30,
			Floor:       -2.8,
		},
		Obstacles: JumpObstacles{
			SpawnChance: 0.02,
			SpawnX:      6,
			SpawnY:      -2,
			Size:        Vec{X: 0.5, Y: 1.5, Z: 1},
			Speed:       0.09,
			MinSpacing:  2.5,
			DespawnX:    -6,
		},
		Collision: CollisionConfig{
			Mode:      CollisionTolerance,
			Tolerance: Vec{X: 0.6, Y: 1.0},
		},
		Effects: defaultBurst(),
		Difficulty: fixedDifficulty("score", 100, ScalingConfig{
			SpeedMultiplier:  1.0,
			SpacingReduction: 1.0,
		}),
		Message: defaultMessage,
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "dodger":
		return defaultDodgerYAML
	case "flappy":
		return defaultFlappyYAML
	case "jump":
		return defaultJumpYAML
	default:
		return nil
	}
}
