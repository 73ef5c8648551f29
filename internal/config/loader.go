package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDodger loads Falling Blocks configuration.
// Search order: customPath -> ~/.arcade/configs/dodger.yaml -> ./configs/dodger.yaml -> embedded default
func LoadDodger(customPath string) (DodgerConfig, error) {
	cfg, err := load("dodger", customPath, defaultDodgerYAML, DefaultDodgerConfig())
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadFlappy loads Flappy Fuego configuration.
// Search order: customPath -> ~/.arcade/configs/flappy.yaml -> ./configs/flappy.yaml -> embedded default
func LoadFlappy(customPath string) (FlappyConfig, error) {
	cfg, err := load("flappy", customPath, defaultFlappyYAML, DefaultFlappyConfig())
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadJump loads Jump Fuego configuration.
// Search order: customPath -> ~/.arcade/configs/jump.yaml -> ./configs/jump.yaml -> embedded default
func LoadJump(customPath string) (JumpConfig, error) {
	cfg, err := load("jump", customPath, defaultJumpYAML, DefaultJumpConfig())
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// load resolves a game config. Every source is decoded over the hardcoded
// default, so a partial file only overrides the keys it names. A custom path
// must exist and parse; the user and local files are skipped when missing or
// malformed.
func load[T any](gameID, customPath string, embedded []byte, def T) (T, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return def, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decodeOver(data, def)
		if err != nil {
			return def, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	name := gameID + ".yaml"
	for _, path := range []string{userConfigPath(name), filepath.Join("configs", name)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decodeOver(data, def); err == nil {
			return cfg, nil
		}
	}

	// Fall back to the hardcoded default if the embed is unusable
	if cfg, err := decodeOver(embedded, def); err == nil {
		return cfg, nil
	}
	return def, nil
}

// decodeOver unmarshals data on top of a copy of base.
func decodeOver[T any](data []byte, base T) (T, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ParsePreset validates a difficulty preset name. An empty name means no
// preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (use easy, normal, hard or fixed)", ErrInvalid, name)
	}
}

// ApplyPreset modifies a difficulty section based on a preset. An empty
// preset leaves it untouched.
func ApplyPreset(d *DifficultyConfig, preset DifficultyPreset) {
	switch {
	case preset == "":
		return
	case IsFixedPreset(preset):
		d.Enabled = false
	default:
		d.Enabled = true
		d.InitialLevel = InitialLevelForPreset(preset)
	}
}
