package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the application configuration. Every field has a usable
// default; a missing config file is not an error.
type Config struct {
	DataDir       string   `yaml:"data_dir"`
	Storage       string   `yaml:"storage"` // "sqlite" or "file"
	DatabasePath  string   `yaml:"database_path"`
	RetentionDays int      `yaml:"retention_days"`
	LogLevel      string   `yaml:"log_level"`
	Branches      []string `yaml:"branches"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DataDir:       defaultDataDir(),
		Storage:       "sqlite",
		RetentionDays: 365,
		LogLevel:      "info",
	}
}

// Load reads a YAML config file over the defaults. A missing file just
// yields the defaults; a malformed file or unknown storage backend is an
// error.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Storage != "sqlite" && cfg.Storage != "file" {
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}
	if cfg.DataDir == "" {
		cfg.DataDir = defaultDataDir()
	}
	return cfg, nil
}

// Retention converts retention_days into a duration. Non-positive values
// fall back to the 365-day default.
func (c *Config) Retention() time.Duration {
	days := c.RetentionDays
	if days <= 0 {
		days = 365
	}
	return time.Duration(days) * 24 * time.Hour
}

// DBPath returns the SQLite file location.
func (c *Config) DBPath() string {
	if c.DatabasePath != "" {
		return c.DatabasePath
	}
	return filepath.Join(c.DataDir, "balju.db")
}

// SlogLevel maps log_level onto a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".balju"
	}
	return filepath.Join(home, ".balju")
}
