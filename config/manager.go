package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ConfigManager handles configuration operations for a single config file
type ConfigManager struct {
	path string
}

// NewConfigManager creates a new config manager for the file at path
func NewConfigManager(path string) *ConfigManager {
	return &ConfigManager{
		path: path,
	}
}

// Path returns the config file location
func (c *ConfigManager) Path() string {
	return c.path
}

// Exists reports whether the config file is present
func (c *ConfigManager) Exists() bool {
	_, err := os.Stat(c.path)
	return err == nil
}

// Load returns the effective configuration: defaults, then the config file
// if present, then environment overrides. A missing file is not an error.
func (c *ConfigManager) Load() (Config, error) {
	cfg, err := readConfig(c.path, Default())
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", c.path, err)
	}

	return cfg, nil
}

// Save validates and writes cfg to the config file
func (c *ConfigManager) Save(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	return writeConfig(c.path, cfg)
}
