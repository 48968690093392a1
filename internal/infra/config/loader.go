// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ConfigFileName is the name of the configuration file inside the
// config directory.
const ConfigFileName = "config.toml"

// Storage backend names accepted in [storage].backend.
const (
	BackendJSON  = "json"
	BackendYAML  = "yaml"
	BackendDiskv = "diskv"
)

// Config is the merged application configuration.
type Config struct {
	Storage StorageConfig `toml:"storage"`
	Log     LogConfig     `toml:"log"`
}

// StorageConfig controls where and how items are persisted.
type StorageConfig struct {
	// Backend selects the persistence format: json, yaml or diskv.
	Backend string `toml:"backend"`
	// Dir is the data directory. Empty means the platform default.
	Dir string `toml:"dir"`
	// Backup enables Git commits of the data directory on save.
	Backup bool `toml:"backup"`
}

// LogConfig controls file logging.
type LogConfig struct {
	// Level is debug, info, warn or error. Empty disables logging.
	Level string `toml:"level"`
}

// NewDefaultConfig returns the built-in defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{Backend: BackendJSON},
	}
}

// Validate checks the merged configuration for values no backend can
// honor.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendJSON, BackendYAML, BackendDiskv:
		return nil
	default:
		return fmt.Errorf("unknown storage backend: %q", c.Storage.Backend)
	}
}

// DataDir resolves the effective data directory, falling back to the
// XDG data home when unset.
func (c *Config) DataDir() (string, error) {
	if c.Storage.Dir != "" {
		return c.Storage.Dir, nil
	}
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "udo"), nil
}

// Loader loads configuration from a TOML file.
type Loader struct {
	confDir string // e.g. ~/.config/udo
}

// NewLoader creates a Loader using the default config directory.
func NewLoader() *Loader {
	return &Loader{confDir: defaultConfigDir()}
}

// NewLoaderWithDir creates a Loader with a custom config directory.
// This is useful for testing.
func NewLoaderWithDir(confDir string) *Loader {
	return &Loader{confDir: confDir}
}

// defaultConfigDir returns the default config directory.
func defaultConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "udo")
}

// Load returns the configuration: defaults overridden by the config
// file where present. A missing file yields the defaults.
func (l *Loader) Load() (*Config, error) {
	base := NewDefaultConfig()

	if l.confDir == "" {
		return base, nil
	}
	file, err := l.loadFile(filepath.Join(l.confDir, ConfigFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return base, nil
		}
		return nil, err
	}

	merged := mergeConfigs(base, file)
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// mergeConfigs merges two configs, with override taking precedence.
func mergeConfigs(base, override *Config) *Config {
	result := *base
	if override.Storage.Backend != "" {
		result.Storage.Backend = override.Storage.Backend
	}
	if override.Storage.Dir != "" {
		result.Storage.Dir = override.Storage.Dir
	}
	if override.Storage.Backup {
		result.Storage.Backup = true
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}
	return &result
}
