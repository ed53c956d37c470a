package tracing

import (
	"errors"
	"strings"
	"time"
)

// BaseEvent provides common functionality for all event types.
type BaseEvent struct {
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"timestamp"`
	SessionID string    `json:"session_id"`
}

// EventType returns the type identifier for this event
func (b BaseEvent) EventType() string {
	return b.Type
}

// Timestamp returns when this event occurred
func (b BaseEvent) Timestamp() time.Time {
	return b.CreatedAt
}

// UserActionEvent tracks user interactions like form submits and resets
type UserActionEvent struct {
	BaseEvent
	Action     string            `json:"action"`               // e.g., "submit", "reset", "dismiss"
	Target     string            `json:"target"`               // e.g., "login_form", "dialog"
	Key        string            `json:"key,omitempty"`        // For key press events
	Value      string            `json:"value,omitempty"`      // For input events (sanitized)
	Properties map[string]string `json:"properties,omitempty"` // Additional context
}

// NewUserActionEvent creates a new user action event
func NewUserActionEvent(sessionID, action, target string) *UserActionEvent {
	return &UserActionEvent{
		BaseEvent: BaseEvent{
			Type:      "user_action",
			CreatedAt: time.Now(),
			SessionID: sessionID,
		},
		Action:     action,
		Target:     target,
		Properties: make(map[string]string),
	}
}

// Validate ensures the event data is complete and valid
func (u *UserActionEvent) Validate() error {
	if u.Action == "" {
		return errors.New("action is required")
	}
	if u.Target == "" {
		return errors.New("target is required")
	}
	return nil
}

// Sanitize removes or masks any sensitive information
func (u *UserActionEvent) Sanitize() Event {
	sanitized := *u

	if isSensitiveKey(u.Target) || isSensitiveKey(u.Action) {
		sanitized.Value = redacted
	}

	sanitized.Properties = filterSensitive(u.Properties)
	return &sanitized
}

// NavigationEvent tracks state transitions and user journey
type NavigationEvent struct {
	BaseEvent
	FromState string            `json:"from_state"`        // Previous state
	ToState   string            `json:"to_state"`          // New state
	Trigger   string            `json:"trigger"`           // What caused the transition
	Context   map[string]string `json:"context,omitempty"` // Additional navigation context
}

// NewNavigationEvent creates a new navigation event
func NewNavigationEvent(sessionID, fromState, toState, trigger string) *NavigationEvent {
	return &NavigationEvent{
		BaseEvent: BaseEvent{
			Type:      "navigation",
			CreatedAt: time.Now(),
			SessionID: sessionID,
		},
		FromState: fromState,
		ToState:   toState,
		Trigger:   trigger,
		Context:   make(map[string]string),
	}
}

// Validate ensures the event data is complete and valid
func (n *NavigationEvent) Validate() error {
	if n.ToState == "" {
		return errors.New("to_state is required")
	}
	if n.Trigger == "" {
		return errors.New("trigger is required")
	}
	return nil
}

// Sanitize removes or masks any sensitive information
func (n *NavigationEvent) Sanitize() Event {
	sanitized := *n
	sanitized.Context = filterSensitive(n.Context)
	return &sanitized
}

// ErrorEvent tracks errors and diagnostic information
type ErrorEvent struct {
	BaseEvent
	Error     string            `json:"error"`               // Error message (sanitized)
	Component string            `json:"component,omitempty"` // Which component generated the error
	Context   map[string]string `json:"context,omitempty"`   // Additional error context
}

// NewErrorEvent creates a new error event
func NewErrorEvent(sessionID, errorMsg, component string) *ErrorEvent {
	return &ErrorEvent{
		BaseEvent: BaseEvent{
			Type:      "error",
			CreatedAt: time.Now(),
			SessionID: sessionID,
		},
		Error:     errorMsg,
		Component: component,
		Context:   make(map[string]string),
	}
}

// Validate ensures the event data is complete and valid
func (e *ErrorEvent) Validate() error {
	if e.Error == "" {
		return errors.New("error message is required")
	}
	return nil
}

// Sanitize removes or masks any sensitive information
func (e *ErrorEvent) Sanitize() Event {
	sanitized := *e
	sanitized.Error = sanitizeErrorMessage(e.Error)
	sanitized.Context = filterSensitive(e.Context)
	return &sanitized
}

const redacted = "[REDACTED]"

var sensitiveKeys = []string{
	"password", "passwd", "token", "secret", "credential", "auth",
}

// isSensitiveKey checks if a key contains sensitive information
func isSensitiveKey(key string) bool {
	key = strings.ToLower(key)
	for _, sensitive := range sensitiveKeys {
		if strings.Contains(key, sensitive) {
			return true
		}
	}
	return false
}

// filterSensitive returns a copy of m without sensitive keys
func filterSensitive(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		if !isSensitiveKey(k) {
			out[k] = v
		}
	}
	return out
}

// sanitizeErrorMessage drops messages that look like they carry a secret
func sanitizeErrorMessage(msg string) string {
	lower := strings.ToLower(msg)
	for _, sensitive := range sensitiveKeys {
		if strings.Contains(lower, sensitive+"=") || strings.Contains(lower, sensitive+":") {
			return "error occurred (details redacted)"
		}
	}
	return msg
}
