// Package config loads server configuration from a YAML file, with sane
// defaults when no file is given. Command-line flags override file values
// at the CLI layer.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// StorageConfig selects the puzzle store backend.
type StorageConfig struct {
	Backend string `yaml:"backend"` // fs | badger
	Dir     string `yaml:"dir"`
}

// GeneratorConfig seeds puzzle generation. Seed 0 means ambient seeding.
type GeneratorConfig struct {
	Seed int64 `yaml:"seed"`
}

type Config struct {
	ListenAddr string          `yaml:"listen_addr"`
	LogLevel   string          `yaml:"log_level"`
	Storage    StorageConfig   `yaml:"storage"`
	Generator  GeneratorConfig `yaml:"generator"`
}

func Default() Config {
	return Config{
		ListenAddr: ":8080",
		LogLevel:   "info",
		Storage:    StorageConfig{Backend: "fs", Dir: "./data"},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	switch cfg.Storage.Backend {
	case "fs", "badger":
	default:
		return cfg, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
	return cfg, nil
}

// SlogLevel maps the configured level string to a slog level.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
