package state

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// State represents the screen the application is currently showing
type State int

const (
	// Login - credential entry form
	Login State = iota

	// Dashboard - static welcome screen reached after a successful login
	Dashboard
)

// String returns a human-readable representation of the state
func (s State) String() string {
	switch s {
	case Login:
		return "Login"
	case Dashboard:
		return "Dashboard"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// IsValid checks if the state is a valid state
func (s State) IsValid() bool {
	return s >= Login && s <= Dashboard
}

// Transition represents a state transition
type Transition struct {
	From State
	To   State
}

// String returns a human-readable representation of the transition
func (t Transition) String() string {
	return fmt.Sprintf("%s -> %s", t.From, t.To)
}

// allowed lists every permitted transition. The dashboard is terminal.
var allowed = map[Transition]bool{
	{From: Login, To: Dashboard}: true,
}

// Machine manages state transitions and validation
type Machine struct {
	current State
}

// NewMachine creates a new state machine with the given initial state
func NewMachine(initial State) *Machine {
	return &Machine{
		current: initial,
	}
}

// Current returns the current state
func (m *Machine) Current() State {
	return m.current
}

// Transition transitions to a new state. Rejected transitions leave the
// machine untouched and produce an ErrorMsg.
func (m *Machine) Transition(to State) tea.Cmd {
	if !to.IsValid() {
		return func() tea.Msg {
			return ErrorMsg{
				Error: fmt.Errorf("invalid state transition to %s", to),
			}
		}
	}

	transition := Transition{From: m.current, To: to}
	if !allowed[transition] {
		return func() tea.Msg {
			return ErrorMsg{
				Error: fmt.Errorf("transition not allowed: %s", transition),
			}
		}
	}

	m.current = to

	return func() tea.Msg {
		return TransitionMsg{Transition: transition}
	}
}

// Messages for state machine events
type (
	// TransitionMsg is sent when a state transition occurs
	TransitionMsg struct {
		Transition Transition
	}

	// ErrorMsg is sent when a state machine error occurs
	ErrorMsg struct {
		Error error
	}

	// QuitRequestMsg asks the controller to end the program. Screens send it
	// instead of tea.Quit so shutdown always passes through the controller.
	QuitRequestMsg struct {
		Trigger string
	}
)

// RequestQuit creates a command that asks the controller to quit
func RequestQuit(trigger string) tea.Cmd {
	return func() tea.Msg {
		return QuitRequestMsg{Trigger: trigger}
	}
}
