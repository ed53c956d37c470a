package footer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Component represents a footer with help text
type Component struct {
	style lipgloss.Style
}

// New creates a new footer component rendered with the given style
func New(style lipgloss.Style) *Component {
	return &Component{style: style}
}

// KeyBinding represents a single key binding
type KeyBinding struct {
	Key         string
	Description string
}

// View renders the footer with the provided key bindings
func (c *Component) View(bindings ...KeyBinding) string {
	var parts []string
	for _, binding := range bindings {
		if formatted := binding.Format(); formatted != "" {
			parts = append(parts, formatted)
		}
	}

	if len(parts) == 0 {
		return ""
	}

	return c.style.Render(strings.Join(parts, "  "))
}

// Format renders a key binding in the standard format
func (kb KeyBinding) Format() string {
	if kb.Key == "" || kb.Description == "" {
		return ""
	}
	return "[" + kb.Key + "] " + kb.Description
}

// Common key bindings for reuse
var (
	TabBinding     = KeyBinding{Key: "tab", Description: "switch"}
	SubmitBinding  = KeyBinding{Key: "enter", Description: "submit"}
	ResetBinding   = KeyBinding{Key: "ctrl+r", Description: "reset"}
	QuitBinding    = KeyBinding{Key: "esc", Description: "quit"}
	DismissBinding = KeyBinding{Key: "enter", Description: "ok"}
	ExitBinding    = KeyBinding{Key: "q", Description: "quit"}
)
