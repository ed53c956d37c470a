package controller

import (
	"github.com/charmbracelet/lipgloss"
)

// View rendering functions

func (c *Controller) renderQuitting() string {
	return c.theme.ErrorStyle().Render("Goodbye!") + "\n"
}

func (c *Controller) renderLogin() string {
	if c.loginComponent == nil {
		return ""
	}
	return c.loginComponent.View()
}

func (c *Controller) renderDashboard() string {
	if c.dashboardComponent == nil {
		return ""
	}
	return c.dashboardComponent.View()
}

// center places a screen in the middle of the terminal once its size is known
func (c *Controller) center(view string) string {
	if c.width == 0 || c.height == 0 {
		return view
	}
	return lipgloss.Place(c.width, c.height, lipgloss.Center, lipgloss.Center, view)
}
