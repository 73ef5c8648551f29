package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// openFileLogger returns a logger writing to the --log-file path, or to
// ~/.arcade/arcade.log. Terminal play must not log to the alternate screen.
// The returned closer releases the file.
func openFileLogger() (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	path := flagLogFile
	if path == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		path = filepath.Join(home, ".arcade", "arcade.log")
	} else if strings.HasPrefix(path, "~/") {
		if home, homeErr := os.UserHomeDir(); homeErr == nil {
			path = filepath.Join(home, path[2:])
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	return newLogger(f, level), f, nil
}

// newStderrLogger returns a logger for commands that own no terminal screen.
func newStderrLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return newLogger(os.Stderr, level), nil
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
		Level:           level,
	})
}
