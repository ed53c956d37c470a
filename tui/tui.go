// Package tui wires the login and dashboard screens into a Bubble Tea program.
package tui

import (
	"loginpage/auth"
	"loginpage/tracing"
	"loginpage/tui/controller"
	"loginpage/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
)

// Model adapts the controller to tea.Model
type Model struct {
	controller *controller.Controller
}

// InitialModel builds the program model starting on the login screen
func InitialModel(authenticator auth.Authenticator, themeManager *theme.Manager, tracer *tracing.TUIIntegration) Model {
	return Model{
		controller: controller.New(authenticator, themeManager, tracer),
	}
}

func (m Model) Init() tea.Cmd {
	return m.controller.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	c, cmd := m.controller.Update(msg)
	m.controller = c
	return m, cmd
}

func (m Model) View() string {
	return m.controller.View()
}

// Controller exposes the underlying controller
func (m Model) Controller() *controller.Controller {
	return m.controller
}
