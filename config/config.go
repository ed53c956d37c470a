// Package config loads loginpage's runtime settings. Nothing here configures
// the accepted credentials; those are compiled in.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Theme values accepted in the config file
const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Config represents the application configuration
type Config struct {
	Theme     string        `yaml:"theme"`
	AltScreen bool          `yaml:"alt_screen"`
	LogFile   string        `yaml:"log_file"`
	Tracing   TracingConfig `yaml:"tracing"`
}

// TracingConfig controls the local session tracer
type TracingConfig struct {
	Enabled       bool          `yaml:"enabled"`
	Dir           string        `yaml:"dir"`
	MaxSessions   int           `yaml:"max_sessions"`
	FlushInterval time.Duration `yaml:"flush_interval"`
}

// Default returns the configuration used when no file is present
func Default() Config {
	return Config{
		Theme:     ThemeAuto,
		AltScreen: true,
		LogFile:   "~/.loginpage/loginpage.log",
		Tracing: TracingConfig{
			Enabled:       true,
			Dir:           "~/.loginpage/traces",
			MaxSessions:   10,
			FlushInterval: 10 * time.Second,
		},
	}
}

// Validate checks the values that have a closed set of options
func (c Config) Validate() error {
	switch c.Theme {
	case ThemeAuto, ThemeDark, ThemeLight:
	default:
		return fmt.Errorf("invalid theme %q: want auto, dark or light", c.Theme)
	}
	if c.Tracing.MaxSessions < 0 {
		return fmt.Errorf("tracing.max_sessions must not be negative")
	}
	return nil
}

// DefaultConfigPath returns ~/.loginpage/config.yml
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".loginpage", "config.yml")
	}
	return filepath.Join(home, ".loginpage", "config.yml")
}

// readConfig decodes the file at path over base, so keys missing from the
// file keep their base values.
// This is private - use ConfigManager methods instead
func readConfig(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, err
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// writeConfig writes the configuration to path, creating parent directories
// This is private - use ConfigManager methods instead
func writeConfig(path string, config Config) error {
	data, err := yaml.Marshal(&config)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}

// ExpandPath expands a leading ~ to the user's home directory
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("empty path")
	}

	if path[0] != '~' {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}
