package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fuego-arcade/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print a game's default configuration",
	Long: `Print the embedded default YAML for a game.

Save it under ~/.arcade/configs/<game>.yaml or pass it with --config to
override any value; keys left out keep their defaults.

Examples:
  arcade config flappy
  arcade config jump > ~/.arcade/configs/jump.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, args []string) error {
	data := config.GetDefaultYAML(args[0])
	if data == nil {
		return fmt.Errorf("no default config for %q", args[0])
	}
	_, err := os.Stdout.Write(data)
	return err
}
