package tracing

import (
	"strconv"
)

// Targets and actions recorded by the TUI
const (
	TargetLoginForm = "login_form"
	TargetDialog    = "dialog"

	ActionSubmit  = "submit"
	ActionReset   = "reset"
	ActionDismiss = "dismiss"
)

// TUIIntegration adapts the tracing manager to the events the login TUI
// produces. A nil *TUIIntegration is valid and records nothing.
type TUIIntegration struct {
	manager *Manager
}

// NewTUIIntegration creates a new TUI integration helper
func NewTUIIntegration(manager *Manager) *TUIIntegration {
	return &TUIIntegration{
		manager: manager,
	}
}

// TrackLoginAttempt records a submit and its outcome. The submitted values
// are never passed in, only whether the check accepted them.
func (t *TUIIntegration) TrackLoginAttempt(success bool) error {
	if t == nil || t.manager == nil {
		return nil
	}

	return t.manager.TrackUserAction(ActionSubmit, TargetLoginForm, map[string]string{
		"success": strconv.FormatBool(success),
	})
}

// TrackReset records that the login form was cleared
func (t *TUIIntegration) TrackReset() error {
	if t == nil || t.manager == nil {
		return nil
	}

	return t.manager.TrackUserAction(ActionReset, TargetLoginForm, nil)
}

// TrackDialogDismissed records that an acknowledgment dialog was closed
func (t *TUIIntegration) TrackDialogDismissed(kind string) error {
	if t == nil || t.manager == nil {
		return nil
	}

	return t.manager.TrackUserAction(ActionDismiss, TargetDialog, map[string]string{
		"kind": kind,
	})
}

// TrackStateChange tracks a state transition in the TUI
func (t *TUIIntegration) TrackStateChange(oldState, newState, trigger string) error {
	if t == nil || t.manager == nil {
		return nil
	}

	return t.manager.TrackStateTransition(oldState, newState, trigger)
}

// TrackError tracks errors with component context
func (t *TUIIntegration) TrackError(err error, component, operation string) error {
	if t == nil || t.manager == nil {
		return nil
	}

	return t.manager.TrackError(err, component, map[string]string{
		"operation": operation,
	})
}
