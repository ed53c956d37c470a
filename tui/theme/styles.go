// Package theme holds the colour schemes and lipgloss styles shared by every
// screen.
package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// ColorScheme defines colors for a specific theme
type ColorScheme struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Error      lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
}

// DarkTheme colors (default)
var DarkTheme = ColorScheme{
	Primary:    lipgloss.Color("#00ff00"), // Bright green
	Secondary:  lipgloss.Color("#00aa00"), // Darker green
	Accent:     lipgloss.Color("#00ffaa"), // Cyan-green
	Error:      lipgloss.Color("#ff3333"), // Red
	Background: lipgloss.Color("#000000"), // Black
	Text:       lipgloss.Color("#ffffff"), // White
	Muted:      lipgloss.Color("#888888"), // Gray
	Success:    lipgloss.Color("#00994c"), // Login button green
}

// LightTheme colors
var LightTheme = ColorScheme{
	Primary:    lipgloss.Color("#006600"), // Dark green
	Secondary:  lipgloss.Color("#008800"), // Medium green
	Accent:     lipgloss.Color("#0066aa"), // Blue-green
	Error:      lipgloss.Color("#cc0000"), // Dark red
	Background: lipgloss.Color("#ffffff"), // White
	Text:       lipgloss.Color("#000000"), // Black
	Muted:      lipgloss.Color("#666666"), // Dark gray
	Success:    lipgloss.Color("#006633"), // Dark green
}

// Manager hands out theme-aware styles
type Manager struct {
	theme  Theme
	colors ColorScheme
}

// NewManager creates a style manager for the given theme
func NewManager(theme Theme) *Manager {
	colors := DarkTheme
	if theme == ThemeLight {
		colors = LightTheme
	}

	return &Manager{
		theme:  theme,
		colors: colors,
	}
}

// Default returns a dark-theme manager, used by tests and as a fallback
func Default() *Manager {
	return NewManager(ThemeDark)
}

// GetTheme returns the theme this manager was built for
func (m *Manager) GetTheme() Theme {
	return m.theme
}

// GetColors returns the current color scheme
func (m *Manager) GetColors() ColorScheme {
	return m.colors
}

// TitleStyle is used for screen titles
func (m *Manager) TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(m.colors.Accent).
		Bold(true)
}

// LabelStyle is used for form labels
func (m *Manager) LabelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(m.colors.Primary).
		Width(10)
}

// LoginBoxStyle frames the login form
func (m *Manager) LoginBoxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(m.colors.Primary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.colors.Accent).
		Padding(1, 4).
		Width(48)
}

// ButtonStyle renders an unselected button
func (m *Manager) ButtonStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(m.colors.Primary).
		Border(lipgloss.NormalBorder()).
		BorderForeground(m.colors.Muted).
		Padding(0, 2)
}

// SelectedButtonStyle renders the focused button
func (m *Manager) SelectedButtonStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(m.colors.Background).
		Background(m.colors.Primary).
		Bold(true).
		Border(lipgloss.NormalBorder()).
		BorderForeground(m.colors.Accent).
		Padding(0, 2)
}

// DialogStyle frames an acknowledgment dialog in the given border colour
func (m *Manager) DialogStyle(border lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(border).
		Padding(1, 3).
		Align(lipgloss.Center)
}

// DashboardStyle frames the dashboard welcome message
func (m *Manager) DashboardStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(m.colors.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.colors.Accent).
		Padding(2, 6).
		Align(lipgloss.Center)
}

// ErrorStyle returns the error style with theme-aware colors
func (m *Manager) ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(m.colors.Error).
		Bold(true)
}

// SuccessStyle returns the success style with theme-aware colors
func (m *Manager) SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(m.colors.Success).
		Bold(true)
}

// HelpStyle returns the help style with theme-aware colors
func (m *Manager) HelpStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(m.colors.Secondary).
		Faint(true)
}
