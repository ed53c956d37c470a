package tracing

import (
	"fmt"
	"runtime"
	"sync"
)

// Manager provides a high-level interface for the tracing system.
type Manager struct {
	tracer    Tracer
	config    TracingConfig
	sessionID string
	mu        sync.RWMutex
	closed    bool
}

// NewManager creates a new tracing manager and records the session start
func NewManager(config TracingConfig, version string) (*Manager, error) {
	tracer, err := NewTracer(config, version)
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}
	return NewManagerWithTracer(tracer, config), nil
}

// NewManagerWithTracer wraps an existing tracer
func NewManagerWithTracer(tracer Tracer, config TracingConfig) *Manager {
	sessionID := "unknown"
	if local, ok := tracer.(*LocalTracer); ok {
		sessionID = local.SessionID()
	}

	manager := &Manager{
		tracer:    tracer,
		config:    config,
		sessionID: sessionID,
	}

	// Don't fail on tracking errors
	_ = manager.TrackSessionStart()

	return manager
}

// TrackSessionStart records the beginning of a user session
func (m *Manager) TrackSessionStart() error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil
	}

	event := NewNavigationEvent(m.sessionID, "", "session_start", "application_launch")
	event.Context["platform"] = runtime.GOOS
	event.Context["arch"] = runtime.GOARCH
	event.Context["go_version"] = runtime.Version()

	return m.tracer.TrackNavigation(*event)
}

// TrackUserAction records a user action on a target with optional properties
func (m *Manager) TrackUserAction(action, target string, properties map[string]string) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil
	}

	event := NewUserActionEvent(m.sessionID, action, target)
	for k, v := range properties {
		event.Properties[k] = v
	}
	return m.tracer.TrackUserAction(*event)
}

// TrackStateTransition records a state change in the application
func (m *Manager) TrackStateTransition(fromState, toState, trigger string) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil
	}

	event := NewNavigationEvent(m.sessionID, fromState, toState, trigger)
	return m.tracer.TrackNavigation(*event)
}

// TrackError records an error event
func (m *Manager) TrackError(err error, component string, context map[string]string) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed || err == nil {
		return nil
	}

	event := NewErrorEvent(m.sessionID, err.Error(), component)
	for k, v := range context {
		event.Context[k] = v
	}
	return m.tracer.TrackError(*event)
}

// Flush ensures all pending events are persisted
func (m *Manager) Flush() error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil
	}

	return m.tracer.Flush()
}

// Close records the session end and shuts down the tracer
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}

	// Track session end directly; TrackStateTransition would deadlock on mu
	event := NewNavigationEvent(m.sessionID, "session_active", "session_end", "application_exit")
	_ = m.tracer.TrackNavigation(*event)

	err := m.tracer.Close()
	m.closed = true

	return err
}

// IsEnabled returns whether tracing is currently enabled
func (m *Manager) IsEnabled() bool {
	return m.config.Enabled
}

// GetSessionID returns the current session ID
func (m *Manager) GetSessionID() string {
	return m.sessionID
}
