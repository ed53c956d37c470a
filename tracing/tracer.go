// Package tracing records a local, sanitized trail of what happened in a
// loginpage session: login attempts, screen transitions and errors.
package tracing

import (
	"time"
)

// Tracer defines the contract for tracking user interactions and system events.
type Tracer interface {
	// TrackEvent records a structured event with automatic timestamp and session context
	TrackEvent(event Event) error

	// TrackUserAction records user interactions like form submits and resets
	TrackUserAction(action UserActionEvent) error

	// TrackNavigation records state transitions and user journey
	TrackNavigation(nav NavigationEvent) error

	// TrackError records errors and diagnostic information
	TrackError(err ErrorEvent) error

	// Flush ensures all pending events are persisted
	Flush() error

	// Close gracefully shuts down the tracer and performs cleanup
	Close() error
}

// Event represents the base interface for all trackable events.
type Event interface {
	// EventType returns the type identifier for this event
	EventType() string

	// Timestamp returns when this event occurred
	Timestamp() time.Time

	// Validate ensures the event data is complete and valid
	Validate() error

	// Sanitize removes or masks any sensitive information
	Sanitize() Event
}

// SessionInfo contains metadata about the current user session
type SessionInfo struct {
	ID        string    `json:"session_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time,omitempty"`
	UserAgent string    `json:"user_agent"`
	Platform  string    `json:"platform"`
	Version   string    `json:"version"`
}

// EventBatch is the on-disk shape of one flushed session file
type EventBatch struct {
	Session SessionInfo `json:"session"`
	Events  []Event     `json:"events"`
}

// TracingConfig holds configuration for the tracing system
type TracingConfig struct {
	Enabled       bool          `json:"enabled"`
	LocalDir      string        `json:"local_dir"`
	MaxSessions   int           `json:"max_sessions"`
	FlushInterval time.Duration `json:"flush_interval"`
	MaxBufferSize int           `json:"max_buffer_size"`
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig() TracingConfig {
	return TracingConfig{
		Enabled:       true,
		LocalDir:      "~/.loginpage/traces",
		MaxSessions:   10,
		FlushInterval: 10 * time.Second,
		MaxBufferSize: 100,
	}
}

// NewTracer returns a LocalTracer when tracing is enabled and a NoOpTracer
// otherwise.
func NewTracer(config TracingConfig, version string) (Tracer, error) {
	if !config.Enabled {
		return NewNoOpTracer(), nil
	}
	return NewLocalTracer(config, version)
}

// NoOpTracer provides a null object implementation for when tracing is disabled.
type NoOpTracer struct{}

func (n *NoOpTracer) TrackEvent(event Event) error                 { return nil }
func (n *NoOpTracer) TrackUserAction(action UserActionEvent) error { return nil }
func (n *NoOpTracer) TrackNavigation(nav NavigationEvent) error    { return nil }
func (n *NoOpTracer) TrackError(err ErrorEvent) error              { return nil }
func (n *NoOpTracer) Flush() error                                 { return nil }
func (n *NoOpTracer) Close() error                                 { return nil }

// NewNoOpTracer creates a tracer that discards all events
func NewNoOpTracer() Tracer {
	return &NoOpTracer{}
}
