package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fuego-arcade/internal/config"
	"github.com/vovakirdan/fuego-arcade/internal/core"
	"github.com/vovakirdan/fuego-arcade/internal/platform/tui"
	"github.com/vovakirdan/fuego-arcade/internal/platform/window"
	"github.com/vovakirdan/fuego-arcade/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWindow     bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Left/Right, A/D  - Move (dodger)
  Space/Up/W       - Jump or flap
  R                - Restart
  B/Esc            - Back
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save a screenshot (terminal only)

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play dodger
  arcade play flappy --difficulty hard
  arcade play jump --window
  arcade play flappy --config ./my-flappy.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Play in a desktop window instead of the terminal")
}

// gameOptions builds the registry options from the play flags.
func gameOptions() (registry.Options, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return registry.Options{}, err
	}
	return registry.Options{ConfigPath: flagConfig, Difficulty: preset}, nil
}

// runtimeConfig sizes the surface to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q; run 'arcade list' to see available games", gameID)
	}

	opts, err := gameOptions()
	if err != nil {
		return err
	}

	logger, closer, err := openFileLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	game, err := registry.Create(gameID, opts)
	if err != nil {
		return err
	}
	logger.Debug("starting", "game", gameID, "window", flagWindow, "difficulty", opts.Difficulty)

	if flagWindow {
		cfg := core.DefaultConfig()
		cfg.ScreenW, cfg.ScreenH = 120, 64
		cfg.TickRate = flagFPS
		cfg.Seed = flagSeed
		return window.Run(game, cfg, logger)
	}
	return tui.Run(game, runtimeConfig(), logger)
}
