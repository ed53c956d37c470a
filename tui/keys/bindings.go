package keys

import (
	"loginpage/tui/components/footer"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// GlobalKeyMap defines the key bindings used across the application
type GlobalKeyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Enter     key.Binding
	Reset     key.Binding
	Dismiss   key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
	Exit      key.Binding
}

// DefaultGlobalKeys returns the default global key bindings
func DefaultGlobalKeys() GlobalKeyMap {
	return GlobalKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "switch"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "back"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reset"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("enter", "esc", " "),
			key.WithHelp("enter", "ok"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Exit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Handler provides a centralized way to handle common key patterns
type Handler struct {
	keys GlobalKeyMap
}

// NewHandler creates a new key handler with default bindings
func NewHandler() *Handler {
	return &Handler{
		keys: DefaultGlobalKeys(),
	}
}

// IsNext returns true if the key moves focus forward
func (h *Handler) IsNext(msg tea.KeyMsg) bool {
	return key.Matches(msg, h.keys.Next)
}

// IsPrev returns true if the key moves focus backward
func (h *Handler) IsPrev(msg tea.KeyMsg) bool {
	return key.Matches(msg, h.keys.Prev)
}

// IsEnter returns true if the key message is an enter command
func (h *Handler) IsEnter(msg tea.KeyMsg) bool {
	return key.Matches(msg, h.keys.Enter)
}

// IsReset returns true if the key clears the login form
func (h *Handler) IsReset(msg tea.KeyMsg) bool {
	return key.Matches(msg, h.keys.Reset)
}

// IsDismiss returns true if the key acknowledges an open dialog
func (h *Handler) IsDismiss(msg tea.KeyMsg) bool {
	return key.Matches(msg, h.keys.Dismiss)
}

// IsQuit returns true if the key closes the login screen
func (h *Handler) IsQuit(msg tea.KeyMsg) bool {
	return key.Matches(msg, h.keys.Quit)
}

// IsForceQuit returns true for the key that quits from anywhere
func (h *Handler) IsForceQuit(msg tea.KeyMsg) bool {
	return key.Matches(msg, h.keys.ForceQuit)
}

// IsExit returns true if the key closes the dashboard
func (h *Handler) IsExit(msg tea.KeyMsg) bool {
	return key.Matches(msg, h.keys.Exit)
}

// FooterBindings returns appropriate footer bindings for different contexts
type FooterBindings struct{}

// NewFooterBindings creates a new footer bindings helper
func NewFooterBindings() *FooterBindings {
	return &FooterBindings{}
}

// Login returns bindings for the login form
func (f *FooterBindings) Login() []footer.KeyBinding {
	return []footer.KeyBinding{
		footer.TabBinding,
		footer.SubmitBinding,
		footer.ResetBinding,
		footer.QuitBinding,
	}
}

// Dialog returns bindings while an acknowledgment dialog is open
func (f *FooterBindings) Dialog() []footer.KeyBinding {
	return []footer.KeyBinding{
		footer.DismissBinding,
	}
}

// Dashboard returns bindings for the dashboard
func (f *FooterBindings) Dashboard() []footer.KeyBinding {
	return []footer.KeyBinding{
		footer.ExitBinding,
	}
}
