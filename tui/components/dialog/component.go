// Package dialog implements a modal acknowledgment box. While open it
// consumes every key; only a dismiss key closes it. Dismissal is reported
// synchronously so the owner reacts before the next key is read.
package dialog

import (
	"loginpage/tui/components/footer"
	"loginpage/tui/keys"
	"loginpage/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Kind tells the owner which outcome a dialog was reporting
type Kind string

const (
	KindSuccess Kind = "success"
	KindFailure Kind = "failure"
)

// Component is a single-message acknowledgment dialog
type Component struct {
	open           bool
	kind           Kind
	message        string
	keyHandler     *keys.Handler
	footer         *footer.Component
	footerBindings *keys.FooterBindings
	theme          *theme.Manager
}

// New creates a closed dialog
func New(themeManager *theme.Manager) *Component {
	return &Component{
		keyHandler:     keys.NewHandler(),
		footer:         footer.New(themeManager.HelpStyle()),
		footerBindings: keys.NewFooterBindings(),
		theme:          themeManager,
	}
}

// Open shows the dialog with the given outcome and message
func (c *Component) Open(kind Kind, message string) {
	c.open = true
	c.kind = kind
	c.message = message
}

// IsOpen reports whether the dialog is currently blocking input
func (c *Component) IsOpen() bool {
	return c.open
}

// Kind returns the outcome of the last opened dialog
func (c *Component) Kind() Kind {
	return c.kind
}

// Message returns the text of the last opened dialog
func (c *Component) Message() string {
	return c.message
}

// HandleKey consumes a key while the dialog is open and reports whether it
// dismissed the dialog. Closed dialogs ignore input.
func (c *Component) HandleKey(msg tea.KeyMsg) bool {
	if !c.open || !c.keyHandler.IsDismiss(msg) {
		return false
	}

	c.open = false
	return true
}

// View renders the dialog, or nothing when closed
func (c *Component) View() string {
	if !c.open {
		return ""
	}

	colors := c.theme.GetColors()
	border := colors.Error
	textStyle := c.theme.ErrorStyle()
	if c.kind == KindSuccess {
		border = colors.Success
		textStyle = c.theme.SuccessStyle()
	}

	body := lipgloss.JoinVertical(
		lipgloss.Center,
		textStyle.Render(c.message),
		"",
		c.footer.View(c.footerBindings.Dialog()...),
	)

	return c.theme.DialogStyle(border).Render(body)
}
