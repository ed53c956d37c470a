package controller

import (
	"loginpage/auth"
	"loginpage/tracing"
	"loginpage/tui/dashboard"
	"loginpage/tui/keys"
	"loginpage/tui/login"
	"loginpage/tui/state"
	"loginpage/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
)

// Controller manages the overall TUI state and owns navigation between
// screens. Screens never replace each other; they report outcomes as
// messages and the controller swaps them.
type Controller struct {
	// State management
	stateMachine *state.Machine

	// Key handling
	keyHandler *keys.Handler

	// Tracing integration
	tracer *tracing.TUIIntegration

	// Components
	loginComponent     *login.Component
	dashboardComponent *dashboard.Component
	theme              *theme.Manager

	// Application state
	width    int
	height   int
	quitting bool
}

// New creates a new TUI controller starting on the login screen.
// tracer may be nil.
func New(authenticator auth.Authenticator, themeManager *theme.Manager, tracer *tracing.TUIIntegration) *Controller {
	initialState := state.Login

	if tracer != nil {
		_ = tracer.TrackStateChange("", initialState.String(), "initial_state")
	}

	return &Controller{
		stateMachine:   state.NewMachine(initialState),
		keyHandler:     keys.NewHandler(),
		tracer:         tracer,
		loginComponent: login.New(authenticator, themeManager, tracer),
		theme:          themeManager,
	}
}

// Init initializes the controller and returns initial commands
func (c *Controller) Init() tea.Cmd {
	return c.loginComponent.Init()
}

// Update handles incoming messages and updates the controller state
func (c *Controller) Update(msg tea.Msg) (*Controller, tea.Cmd) {
	// Handle global quit
	if keyMsg, ok := msg.(tea.KeyMsg); ok && c.keyHandler.IsForceQuit(keyMsg) {
		return c.quit(keyMsg.String())
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width = msg.Width
		c.height = msg.Height
		return c, nil
	case state.QuitRequestMsg:
		return c.quit(msg.Trigger)
	case state.ErrorMsg:
		if c.tracer != nil {
			_ = c.tracer.TrackError(msg.Error, "controller", "state_transition")
		}
		return c, nil
	case state.TransitionMsg:
		return c, nil
	case login.LoginSuccessMsg:
		return c.handleLoginSuccess()
	}

	return c.handleStateUpdate(msg)
}

// handleStateUpdate delegates message handling based on current state
func (c *Controller) handleStateUpdate(msg tea.Msg) (*Controller, tea.Cmd) {
	var cmd tea.Cmd

	switch c.stateMachine.Current() {
	case state.Login:
		if c.loginComponent != nil {
			c.loginComponent, cmd = c.loginComponent.Update(msg)
		}
	case state.Dashboard:
		if c.dashboardComponent != nil {
			c.dashboardComponent, cmd = c.dashboardComponent.Update(msg)
		}
	}

	return c, cmd
}

// handleLoginSuccess moves to the dashboard once the login screen has closed
func (c *Controller) handleLoginSuccess() (*Controller, tea.Cmd) {
	from := c.stateMachine.Current()
	cmd := c.stateMachine.Transition(state.Dashboard)
	if c.stateMachine.Current() == from {
		// rejected; cmd carries the ErrorMsg
		return c, cmd
	}

	if c.tracer != nil {
		_ = c.tracer.TrackStateChange(from.String(), state.Dashboard.String(), "login_success")
	}

	c.dashboardComponent = dashboard.New(c.theme)
	c.loginComponent = nil

	if initCmd := c.dashboardComponent.Init(); initCmd != nil {
		cmd = tea.Batch(cmd, initCmd)
	}
	return c, cmd
}

// View renders the active screen
func (c *Controller) View() string {
	if c.quitting {
		return c.renderQuitting()
	}

	switch c.stateMachine.Current() {
	case state.Login:
		return c.center(c.renderLogin())
	case state.Dashboard:
		return c.center(c.renderDashboard())
	default:
		return "Unknown state"
	}
}

// Getters for accessing controller state
func (c *Controller) IsQuitting() bool {
	return c.quitting
}

func (c *Controller) State() state.State {
	return c.stateMachine.Current()
}

func (c *Controller) LoginComponent() *login.Component {
	return c.loginComponent
}

func (c *Controller) DashboardComponent() *dashboard.Component {
	return c.dashboardComponent
}

// quit records the exit and ends the program. Every quit key, whichever
// screen received it, ends up here.
func (c *Controller) quit(trigger string) (*Controller, tea.Cmd) {
	if c.quitting {
		return c, nil
	}
	c.quitting = true
	c.cleanup(trigger)
	return c, tea.Quit
}

func (c *Controller) cleanup(trigger string) {
	if c.tracer != nil {
		_ = c.tracer.TrackStateChange(c.stateMachine.Current().String(), "application_exit", "user_quit:"+trigger)
	}
}
