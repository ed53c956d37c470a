package keys

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestHandler_Matches(t *testing.T) {
	h := NewHandler()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		match    func(tea.KeyMsg) bool
		expected bool
	}{
		{"tab is next", tea.KeyMsg{Type: tea.KeyTab}, h.IsNext, true},
		{"shift+tab is prev", tea.KeyMsg{Type: tea.KeyShiftTab}, h.IsPrev, true},
		{"enter is enter", tea.KeyMsg{Type: tea.KeyEnter}, h.IsEnter, true},
		{"ctrl+r is reset", tea.KeyMsg{Type: tea.KeyCtrlR}, h.IsReset, true},
		{"letter r is not reset", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, h.IsReset, false},
		{"space dismisses", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, h.IsDismiss, true},
		{"esc dismisses", tea.KeyMsg{Type: tea.KeyEsc}, h.IsDismiss, true},
		{"letter x does not dismiss", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, h.IsDismiss, false},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, h.IsQuit, true},
		{"q does not quit the form", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, h.IsQuit, false},
		{"ctrl+c force quits", tea.KeyMsg{Type: tea.KeyCtrlC}, h.IsForceQuit, true},
		{"esc is not force quit", tea.KeyMsg{Type: tea.KeyEsc}, h.IsForceQuit, false},
		{"q exits dashboard", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, h.IsExit, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			result := tt.match(tt.msg)

			// Assert
			if result != tt.expected {
				t.Errorf("Expected %v for %q, got %v", tt.expected, tt.msg.String(), result)
			}
		})
	}
}

func TestFooterBindings(t *testing.T) {
	f := NewFooterBindings()

	if got := len(f.Login()); got != 4 {
		t.Errorf("Expected 4 login bindings, got %d", got)
	}
	if got := f.Dialog()[0].Format(); got != "[enter] ok" {
		t.Errorf("Expected dialog binding '[enter] ok', got '%s'", got)
	}
	if got := f.Dashboard()[0].Format(); got != "[q] quit" {
		t.Errorf("Expected dashboard binding '[q] quit', got '%s'", got)
	}
}
