package login

import (
	"loginpage/auth"
	"loginpage/tracing"
	"loginpage/tui/components/buttons"
	"loginpage/tui/components/dialog"
	"loginpage/tui/components/footer"
	"loginpage/tui/keys"
	"loginpage/tui/state"
	"loginpage/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Component is the login form: two inputs, a Login/Reset button row and the
// dialog that acknowledges each attempt.
type Component struct {
	inputs         []textinput.Model
	buttons        *buttons.Component
	dialog         *dialog.Component
	focusIdx       int
	phase          Phase
	authService    *auth.AuthService
	keyHandler     *keys.Handler
	footer         *footer.Component
	footerBindings *keys.FooterBindings
	theme          *theme.Manager
	tracer         *tracing.TUIIntegration
}

// New creates a new login component. tracer may be nil.
func New(authenticator auth.Authenticator, themeManager *theme.Manager, tracer *tracing.TUIIntegration) *Component {
	username := textinput.New()
	username.Placeholder = "Username"
	username.Prompt = ""
	username.Focus()
	username.CharLimit = 64
	username.Width = 24

	password := textinput.New()
	password.Placeholder = "Password"
	password.Prompt = ""
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 64
	password.Width = 24

	return &Component{
		inputs: []textinput.Model{username, password},
		buttons: buttons.New([]string{LoginButton, ResetButton}, buttons.Styles{
			Button:   themeManager.ButtonStyle(),
			Selected: themeManager.SelectedButtonStyle(),
			Gap:      2,
		}),
		dialog:         dialog.New(themeManager),
		focusIdx:       focusUsername,
		phase:          Idle,
		authService:    auth.NewAuthService(authenticator),
		keyHandler:     keys.NewHandler(),
		footer:         footer.New(themeManager.HelpStyle()),
		footerBindings: keys.NewFooterBindings(),
		theme:          themeManager,
		tracer:         tracer,
	}
}

// Init initializes the login component
func (c *Component) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the login component
func (c *Component) Update(msg tea.Msg) (*Component, tea.Cmd) {
	if c.phase == Closed {
		return c, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return c.handleKey(keyMsg)
	}

	return c, c.updateFocusedInput(msg)
}

func (c *Component) handleKey(msg tea.KeyMsg) (*Component, tea.Cmd) {
	if c.dialog.IsOpen() {
		if c.dialog.HandleKey(msg) {
			return c.handleDismissed(c.dialog.Kind())
		}
		return c, nil
	}

	switch {
	case c.keyHandler.IsQuit(msg):
		return c, state.RequestQuit(msg.String())
	case c.keyHandler.IsReset(msg):
		c.Reset()
		return c, nil
	case c.keyHandler.IsNext(msg):
		c.moveFocus(1)
		return c, nil
	case c.keyHandler.IsPrev(msg):
		c.moveFocus(-1)
		return c, nil
	case c.keyHandler.IsEnter(msg):
		switch {
		case c.focusIdx == focusUsername:
			c.setFocus(focusPassword)
		case c.buttons.Focused() && c.buttons.SelectedLabel() == ResetButton:
			c.Reset()
		default:
			c.Submit()
		}
		return c, nil
	}

	return c, c.updateFocusedInput(msg)
}

// handleDismissed runs in the same Update as the dismissing key, so a
// success closes the screen before any further key can reach the form.
func (c *Component) handleDismissed(kind dialog.Kind) (*Component, tea.Cmd) {
	if c.tracer != nil {
		_ = c.tracer.TrackDialogDismissed(string(kind))
	}

	if kind != dialog.KindSuccess {
		return c, nil
	}

	c.phase = Closed
	c.focusIdx = -1
	c.updateFocus()
	return c, LoginSuccessCommand()
}

// Submit checks the current field values and opens the dialog with the
// outcome. It does nothing unless the form is idle with no dialog open.
func (c *Component) Submit() {
	if c.phase != Idle || c.dialog.IsOpen() {
		return
	}

	result := c.authService.AttemptLogin(auth.Credentials{
		Username: c.inputs[focusUsername].Value(),
		Password: c.inputs[focusPassword].Value(),
	})

	if c.tracer != nil {
		_ = c.tracer.TrackLoginAttempt(result.Success)
	}

	kind := dialog.KindFailure
	if result.Success {
		kind = dialog.KindSuccess
	}
	c.dialog.Open(kind, result.Message)
}

// Reset clears both fields and returns focus to the username input
func (c *Component) Reset() {
	if c.phase != Idle || c.dialog.IsOpen() {
		return
	}

	for i := range c.inputs {
		c.inputs[i].SetValue("")
	}
	c.setFocus(focusUsername)

	if c.tracer != nil {
		_ = c.tracer.TrackReset()
	}
}

// GetUsername returns the current username input
func (c *Component) GetUsername() string {
	return c.inputs[focusUsername].Value()
}

// GetPassword returns the current password input
func (c *Component) GetPassword() string {
	return c.inputs[focusPassword].Value()
}

// Phase returns the current lifecycle phase
func (c *Component) Phase() Phase {
	return c.phase
}

// DialogOpen reports whether an acknowledgment dialog is showing
func (c *Component) DialogOpen() bool {
	return c.dialog.IsOpen()
}

// DialogMessage returns the text of the most recent dialog
func (c *Component) DialogMessage() string {
	return c.dialog.Message()
}

// View renders the login component
func (c *Component) View() string {
	if c.phase == Closed {
		return ""
	}

	label := c.theme.LabelStyle()
	form := lipgloss.JoinVertical(
		lipgloss.Left,
		c.theme.TitleStyle().Render("Login"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, label.Render("Username"), c.inputs[focusUsername].View()),
		lipgloss.JoinHorizontal(lipgloss.Top, label.Render("Password"), c.inputs[focusPassword].View()),
		"",
		c.buttons.View(),
	)

	sections := []string{c.theme.LoginBoxStyle().Render(form), ""}
	if c.dialog.IsOpen() {
		sections = append(sections, c.dialog.View())
	} else {
		sections = append(sections, c.footer.View(c.footerBindings.Login()...))
	}

	return lipgloss.JoinVertical(lipgloss.Center, sections...)
}

func (c *Component) moveFocus(delta int) {
	c.setFocus((c.focusIdx + delta + focusSlots) % focusSlots)
}

func (c *Component) setFocus(idx int) {
	c.focusIdx = idx
	c.updateFocus()
}

// updateFocus syncs the inputs and button row with focusIdx
func (c *Component) updateFocus() {
	for i := range c.inputs {
		if i == c.focusIdx {
			c.inputs[i].Focus()
		} else {
			c.inputs[i].Blur()
		}
	}

	switch c.focusIdx {
	case focusLogin, focusReset:
		c.buttons.Select(c.focusIdx - focusLogin)
		c.buttons.Focus()
	default:
		c.buttons.Blur()
	}
}

// updateFocusedInput passes a message to the focused input only
func (c *Component) updateFocusedInput(msg tea.Msg) tea.Cmd {
	if c.focusIdx < 0 || c.focusIdx >= len(c.inputs) {
		return nil
	}

	var cmd tea.Cmd
	c.inputs[c.focusIdx], cmd = c.inputs[c.focusIdx].Update(msg)
	return cmd
}
