package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchGoDefaults(t *testing.T) {
	tests := []struct {
		id   string
		want any
		got  func([]byte) (any, error)
	}{
		{"dodger", DefaultDodgerConfig(), func(b []byte) (any, error) {
			var c DodgerConfig
			err := yaml.Unmarshal(b, &c)
			return c, err
		}},
		{"flappy", DefaultFlappyConfig(), func(b []byte) (any, error) {
			var c FlappyConfig
			err := yaml.Unmarshal(b, &c)
			return c, err
		}},
		{"jump", DefaultJumpConfig(), func(b []byte) (any, error) {
			var c JumpConfig
			err := yaml.Unmarshal(b, &c)
			return c, err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			data := GetDefaultYAML(tt.id)
			if len(data) == 0 {
				t.Fatal("no embedded default")
			}
			got, err := tt.got(data)
			if err != nil {
				t.Fatalf("embedded default does not parse: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("embedded default differs from Go default:\n got %+v\nwant %+v", got, tt.want)
			}
		})
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultDodgerConfig().Validate(); err != nil {
		t.Errorf("dodger: %v", err)
	}
	if err := DefaultFlappyConfig().Validate(); err != nil {
		t.Errorf("flappy: %v", err)
	}
	if err := DefaultJumpConfig().Validate(); err != nil {
		t.Errorf("jump: %v", err)
	}
}

func TestUnknownGameHasNoDefault(t *testing.T) {
	if GetDefaultYAML("pong") != nil {
		t.Error("unknown game should have no embedded default")
	}
}

func TestPartialFileOverridesNamedKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dodger.yaml")
	data := []byte("obstacles:\n  fall_speed: 0.2\nmessage: Squashed\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDodger(path)
	if err != nil {
		t.Fatalf("LoadDodger() failed: %v", err)
	}

	if cfg.Obstacles.FallSpeed != 0.2 {
		t.Errorf("FallSpeed = %v, expected 0.2", cfg.Obstacles.FallSpeed)
	}
	if cfg.Message != "Squashed" {
		t.Errorf("Message = %q, expected %q", cfg.Message, "Squashed")
	}
	def := DefaultDodgerConfig()
	if cfg.Obstacles.SpawnChance != def.Obstacles.SpawnChance || cfg.Player.MaxX != def.Player.MaxX {
		t.Error("keys absent from the file should keep their defaults")
	}
}

func TestCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFlappy(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom path should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("pipes: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFlappy(bad); err == nil {
		t.Error("malformed custom file should fail")
	}

	invalidPath := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalidPath, []byte("collision:\n  mode: magnetic\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadJump(invalidPath); !errors.Is(err, ErrInvalid) {
		t.Errorf("err = %v, expected ErrInvalid", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DodgerConfig)
	}{
		{"inverted player bounds", func(c *DodgerConfig) { c.Player.MinX, c.Player.MaxX = 3, -3 }},
		{"spawn chance above one", func(c *DodgerConfig) { c.Obstacles.SpawnChance = 1.5 }},
		{"despawn above spawn", func(c *DodgerConfig) { c.Obstacles.DespawnY = 5 }},
		{"unknown input mode", func(c *DodgerConfig) { c.Input.Mode = "mouse" }},
		{"ramp max below base", func(c *DodgerConfig) { c.Input.Ramp.MaxSpeed = 0.1 }},
		{"unknown color", func(c *DodgerConfig) { c.Effects.Color = "ultraviolet" }},
		{"zero world", func(c *DodgerConfig) { c.World.HalfHeight = 0 }},
		{"empty tolerance", func(c *DodgerConfig) { c.Collision.Tolerance = Vec{} }},
		{"tolerance without height", func(c *DodgerConfig) { c.Collision.Tolerance = Vec{X: 0.9} }},
		{"negative tolerance depth", func(c *DodgerConfig) { c.Collision.Tolerance.Z = -1 }},
		{"flat obstacle in geometry mode", func(c *DodgerConfig) {
			c.Collision.Mode = CollisionGeometry
			c.Obstacles.Size = Vec{X: 1}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultDodgerConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestValidateRejectsShapelessBoxes(t *testing.T) {
	flappy := DefaultFlappyConfig()
	flappy.Pipes.Size.Y = 0
	if err := flappy.Validate(); !errors.Is(err, ErrInvalid) {
		t.Errorf("flappy with zero pipe height: Validate() = %v, expected ErrInvalid", err)
	}

	flappy = DefaultFlappyConfig()
	flappy.Player.Size = Vec{}
	if err := flappy.Validate(); !errors.Is(err, ErrInvalid) {
		t.Errorf("flappy with zero player size: Validate() = %v, expected ErrInvalid", err)
	}

	jump := DefaultJumpConfig()
	jump.Collision.Tolerance.X = 0
	if err := jump.Validate(); !errors.Is(err, ErrInvalid) {
		t.Errorf("jump with zero tolerance width: Validate() = %v, expected ErrInvalid", err)
	}

	// Sizes only matter for drawing in tolerance mode.
	jump = DefaultJumpConfig()
	jump.Obstacles.Size = Vec{}
	if err := jump.Validate(); err != nil {
		t.Errorf("jump with tolerance collision: Validate() = %v, expected nil", err)
	}
}

func TestCollisionHalf(t *testing.T) {
	size := Vec{X: 1, Y: 2, Z: 0.5}

	geo := CollisionConfig{Mode: CollisionGeometry}.Half(size)
	if geo.X != 0.5 || geo.Y != 1 || geo.Z != 0.25 {
		t.Errorf("geometry half = %v", geo)
	}

	tol := CollisionConfig{Mode: CollisionTolerance, Tolerance: Vec{X: 0.6, Y: 1.0}}.Half(size)
	if tol.X != 0.3 || tol.Y != 0.5 || tol.Z != 0 {
		t.Errorf("tolerance half = %v", tol)
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(name); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", name, err)
		}
	}
	if _, err := ParsePreset("nightmare"); !errors.Is(err, ErrInvalid) {
		t.Errorf("unknown preset err = %v, expected ErrInvalid", err)
	}
}

func TestApplyPreset(t *testing.T) {
	d := DefaultJumpConfig().Difficulty

	ApplyPreset(&d, "")
	if d.Enabled {
		t.Error("empty preset should leave progression disabled")
	}

	ApplyPreset(&d, DifficultyHard)
	if !d.Enabled || d.InitialLevel != 0.7 {
		t.Errorf("hard preset gave enabled=%v level=%v", d.Enabled, d.InitialLevel)
	}

	ApplyPreset(&d, DifficultyFixed)
	if d.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestDifficultyDisabledKeepsBaseValues(t *testing.T) {
	dm := NewDifficultyManager(DefaultJumpConfig().Difficulty)

	if got := dm.Speed(0.09, 1000, 100000); got != 0.09 {
		t.Errorf("Speed = %v, expected the base 0.09", got)
	}
	if got := dm.Spacing(2.5, 1000, 100000); got != 2.5 {
		t.Errorf("Spacing = %v, expected the base 2.5", got)
	}
	if got := dm.Gap(1.5, 1000, 100000); got != 1.5 {
		t.Errorf("Gap = %v, expected the base 1.5", got)
	}
}

func TestDifficultyScoreProgression(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0, GapReduction: 2.0, SpacingReduction: 1.0},
	})

	tests := []struct {
		score int
		level float64
	}{
		{0, 0},
		{5, 0.5},
		{10, 1},
		{50, 1},
	}
	for _, tt := range tests {
		if got := dm.Level(tt.score, 0); math.Abs(got-tt.level) > 1e-9 {
			t.Errorf("Level(%d) = %v, expected %v", tt.score, got, tt.level)
		}
	}

	if got := dm.Speed(0.05, 10, 0); math.Abs(got-0.1) > 1e-9 {
		t.Errorf("Speed at max = %v, expected 0.1", got)
	}
	if got := dm.Gap(1.5, 10, 0); got != minGap {
		t.Errorf("Gap at max = %v, expected the floor %v", got, minGap)
	}
	if got := dm.Spacing(2.5, 5, 0); math.Abs(got-2.0) > 1e-9 {
		t.Errorf("Spacing at half = %v, expected 2.0", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
	})
	if got := dm.Level(0, 50); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("Level = %v, expected 0.75", got)
	}
}
