package dashboard

import (
	"loginpage/tui/components/footer"
	"loginpage/tui/keys"
	"loginpage/tui/state"
	"loginpage/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// WelcomeMessage is the only content of the dashboard
const WelcomeMessage = "Welcome to the Dashboard!"

// Component is the static screen shown after a successful login
type Component struct {
	keyHandler     *keys.Handler
	footer         *footer.Component
	footerBindings *keys.FooterBindings
	theme          *theme.Manager
}

// New creates a new dashboard component
func New(themeManager *theme.Manager) *Component {
	return &Component{
		keyHandler:     keys.NewHandler(),
		footer:         footer.New(themeManager.HelpStyle()),
		footerBindings: keys.NewFooterBindings(),
		theme:          themeManager,
	}
}

// Init initializes the dashboard component
func (c *Component) Init() tea.Cmd {
	return nil
}

// Update asks the controller to quit on an exit key and ignores everything else
func (c *Component) Update(msg tea.Msg) (*Component, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && c.keyHandler.IsExit(keyMsg) {
		return c, state.RequestQuit(keyMsg.String())
	}
	return c, nil
}

// View renders the welcome box
func (c *Component) View() string {
	box := c.theme.DashboardStyle().Render(lipgloss.JoinVertical(
		lipgloss.Center,
		c.theme.TitleStyle().Render("Dashboard"),
		"",
		WelcomeMessage,
	))

	return lipgloss.JoinVertical(
		lipgloss.Center,
		box,
		"",
		c.footer.View(c.footerBindings.Dashboard()...),
	)
}
