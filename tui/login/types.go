package login

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Phase is the lifecycle of the login screen
type Phase int

const (
	// Idle - accepting input
	Idle Phase = iota

	// Closed - login succeeded and was acknowledged; the screen is finished
	Closed
)

// String returns a human-readable representation of the phase
func (p Phase) String() string {
	switch p {
	case Idle:
		return "Idle"
	case Closed:
		return "Closed"
	default:
		return "Unknown"
	}
}

// Focus slots, in tab order
const (
	focusUsername = iota
	focusPassword
	focusLogin
	focusReset
	focusSlots
)

// Button labels
const (
	LoginButton = "Login"
	ResetButton = "Reset"
)

// LoginSuccessMsg is sent once a successful login has been acknowledged
type LoginSuccessMsg struct{}

// LoginSuccessCommand creates a command that signals successful login
func LoginSuccessCommand() tea.Cmd {
	return func() tea.Msg {
		return LoginSuccessMsg{}
	}
}
