package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read at startup
const (
	EnvConfigPath = "LOGINPAGE_CONFIG"
	EnvTheme      = "LOGINPAGE_THEME"
	EnvTracing    = "LOGINPAGE_TRACING"
	EnvLogFile    = "LOGINPAGE_LOG_FILE"
)

// LoadEnv loads a .env file from the working directory if there is one.
// Variables already set in the process environment win.
func LoadEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load environment: %w", err)
	}
	return nil
}

// ConfigPath returns the config file location, honouring LOGINPAGE_CONFIG
func ConfigPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return DefaultConfigPath()
}

// applyEnv overlays environment overrides onto cfg
func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvTheme); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv(EnvTracing); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTracing, err)
		}
		cfg.Tracing.Enabled = enabled
	}
	return nil
}
