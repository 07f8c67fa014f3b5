// Package config loads .jtrack.yaml from the working directory or the
// user config dir, merging file values over defaults. Configuration is
// file-only: there are no environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Backend names accepted by Storage.Backend.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config is the application configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Logging LoggingConfig `yaml:"logging"`
}

// StorageConfig selects where the job list lives.
type StorageConfig struct {
	Backend string `yaml:"backend"` // file, sqlite, memory
	Dir     string `yaml:"dir"`     // data directory; empty means <user config dir>/jtrack
}

// LoggingConfig controls the console logger.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	NoColor bool   `yaml:"no_color"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{Backend: BackendFile},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads the config file if one exists and merges it over the
// defaults. A missing file is not an error; an unreadable or malformed
// file degrades to defaults.
func Load() *Config {
	cfg := Default()
	path := findConfigPath()
	if path == "" {
		return cfg
	}
	// #nosec G304 -- findConfigPath only returns local or user-config paths
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg
	}
	return merge(cfg, &file)
}

// findConfigPath looks for .jtrack.yaml in the current dir, then the
// user config dir.
func findConfigPath() string {
	if _, err := os.Stat(".jtrack.yaml"); err == nil {
		return ".jtrack.yaml"
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(configDir, "jtrack", ".jtrack.yaml")
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

func merge(base, file *Config) *Config {
	if file.Storage.Backend != "" {
		base.Storage.Backend = file.Storage.Backend
	}
	if file.Storage.Dir != "" {
		base.Storage.Dir = file.Storage.Dir
	}
	if file.Logging.Level != "" {
		base.Logging.Level = file.Logging.Level
	}
	if file.Logging.NoColor {
		base.Logging.NoColor = true
	}
	return base
}

// DataDir resolves the storage directory, defaulting to
// <user config dir>/jtrack.
func (c *Config) DataDir() (string, error) {
	if c.Storage.Dir != "" {
		return c.Storage.Dir, nil
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, "jtrack"), nil
}
