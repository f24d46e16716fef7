// Package config reads zeit settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds runtime configuration for the CLI.
type Config struct {
	DBPath     string
	LogEnabled bool
	LogLevel   slog.Level
	ChartWidth int
}

// Default returns a Config with the database under home/.zeit.
func Default(home string) Config {
	return Config{
		DBPath:     filepath.Join(home, ".zeit", "zeit.db"),
		LogEnabled: false,
		LogLevel:   slog.LevelInfo,
		ChartWidth: 40,
	}
}

// Load reads configuration from environment variables, falling back to
// defaults for unset or malformed values.
func Load() (Config, error) {
	return load(os.Getenv, os.UserHomeDir)
}

func load(getenv func(string) string, homeDir func() (string, error)) (Config, error) {
	var cfg Config
	dbPath := getenv("ZEIT_DB")
	if dbPath == "" {
		home, err := homeDir()
		if err != nil {
			return Config{}, fmt.Errorf("finding home directory: %w", err)
		}
		cfg = Default(home)
	} else {
		cfg = Default("")
		cfg.DBPath = dbPath
	}

	if v := getenv("ZEIT_LOG"); v != "" {
		cfg.LogEnabled, _ = strconv.ParseBool(v)
	}
	if v := getenv("ZEIT_LOG_LEVEL"); v != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(strings.ToUpper(v))); err == nil {
			cfg.LogLevel = level
		}
	}
	if v := getenv("ZEIT_CHART_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 10 {
			cfg.ChartWidth = n
		}
	}
	return cfg, nil
}
