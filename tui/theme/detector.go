package theme

import (
	"os"
	"strconv"
	"strings"
)

// Theme represents the detected terminal theme
type Theme int

const (
	ThemeUnknown Theme = iota
	ThemeLight
	ThemeDark
)

// Detector handles terminal theme detection
type Detector struct {
	getenv func(string) string
}

// NewDetector creates a new theme detector reading the process environment
func NewDetector() *Detector {
	return &Detector{getenv: os.Getenv}
}

// Resolve maps a config setting ("dark", "light" or "auto") to a theme,
// detecting from the terminal only for "auto" or unrecognised values.
func (d *Detector) Resolve(setting string) Theme {
	switch strings.ToLower(strings.TrimSpace(setting)) {
	case "dark":
		return ThemeDark
	case "light":
		return ThemeLight
	}
	return d.DetectTheme()
}

// DetectTheme detects the current terminal theme, defaulting to dark
func (d *Detector) DetectTheme() Theme {
	if theme := d.detectFromEnvironment(); theme != ThemeUnknown {
		return theme
	}
	return ThemeDark
}

// detectFromEnvironment checks COLORFGBG, which many terminals export as
// "<fg>;<bg>" or "<fg>;default;<bg>" using ANSI palette indexes
func (d *Detector) detectFromEnvironment() Theme {
	colorfgbg := d.getenv("COLORFGBG")
	if colorfgbg == "" {
		return ThemeUnknown
	}

	parts := strings.Split(colorfgbg, ";")
	if len(parts) < 2 {
		return ThemeUnknown
	}

	bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1]))
	if err != nil {
		return ThemeUnknown
	}

	switch {
	case bg == 7 || bg == 15:
		return ThemeLight
	case bg >= 0 && bg <= 8:
		return ThemeDark
	}
	return ThemeUnknown
}

// String returns a string representation of the theme
func (t Theme) String() string {
	switch t {
	case ThemeLight:
		return "light"
	case ThemeDark:
		return "dark"
	default:
		return "unknown"
	}
}
