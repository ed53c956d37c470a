package tracing

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// LocalTracer implements the Tracer interface for local JSON file storage.
// Events are buffered in memory and written as one file per flush.
type LocalTracer struct {
	config      TracingConfig
	dir         string
	session     SessionInfo
	buffer      []Event
	bufferMutex sync.Mutex
	flushTicker *time.Ticker
	stopChan    chan struct{}
	wg          sync.WaitGroup
	closeOnce   sync.Once
}

// NewLocalTracer creates a new local file tracer with the given configuration
func NewLocalTracer(config TracingConfig, version string) (*LocalTracer, error) {
	dir, err := expandPath(config.LocalDir)
	if err != nil {
		return nil, fmt.Errorf("failed to expand path %s: %w", config.LocalDir, err)
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create traces directory %s: %w", dir, err)
	}

	if config.MaxBufferSize <= 0 {
		config.MaxBufferSize = DefaultConfig().MaxBufferSize
	}

	session := SessionInfo{
		ID:        generateSessionID(),
		StartTime: time.Now(),
		UserAgent: fmt.Sprintf("loginpage/%s", version),
		Platform:  getPlatform(),
		Version:   version,
	}

	tracer := &LocalTracer{
		config:   config,
		dir:      dir,
		session:  session,
		buffer:   make([]Event, 0, config.MaxBufferSize),
		stopChan: make(chan struct{}),
	}

	if config.FlushInterval > 0 {
		tracer.startBackgroundFlushing()
	}

	return tracer, nil
}

// SessionID returns the identifier written into every event of this session
func (l *LocalTracer) SessionID() string {
	return l.session.ID
}

// Dir returns the expanded directory session files are written to
func (l *LocalTracer) Dir() string {
	return l.dir
}

// TrackEvent records a structured event with automatic timestamp and session context
func (l *LocalTracer) TrackEvent(event Event) error {
	if err := event.Validate(); err != nil {
		return fmt.Errorf("invalid event: %w", err)
	}

	sanitizedEvent := event.Sanitize()

	l.bufferMutex.Lock()
	defer l.bufferMutex.Unlock()

	l.buffer = append(l.buffer, sanitizedEvent)

	if len(l.buffer) >= l.config.MaxBufferSize {
		return l.flushUnsafe()
	}

	return nil
}

// TrackUserAction records user interactions like form submits and resets
func (l *LocalTracer) TrackUserAction(action UserActionEvent) error {
	return l.TrackEvent(&action)
}

// TrackNavigation records state transitions and user journey
func (l *LocalTracer) TrackNavigation(nav NavigationEvent) error {
	return l.TrackEvent(&nav)
}

// TrackError records errors and diagnostic information
func (l *LocalTracer) TrackError(err ErrorEvent) error {
	return l.TrackEvent(&err)
}

// Flush ensures all pending events are persisted
func (l *LocalTracer) Flush() error {
	l.bufferMutex.Lock()
	defer l.bufferMutex.Unlock()
	return l.flushUnsafe()
}

// Close stops background flushing, writes what is left and prunes old
// session files. Calling Close more than once is safe.
func (l *LocalTracer) Close() error {
	var err error
	l.closeOnce.Do(func() {
		if l.flushTicker != nil {
			l.flushTicker.Stop()
			close(l.stopChan)
			l.wg.Wait()
		}

		l.bufferMutex.Lock()
		l.session.EndTime = time.Now()
		flushErr := l.flushUnsafe()
		l.bufferMutex.Unlock()
		if flushErr != nil {
			err = fmt.Errorf("failed to flush during close: %w", flushErr)
			return
		}

		err = l.cleanupOldSessions()
	})
	return err
}

// startBackgroundFlushing starts a goroutine that periodically flushes the buffer
func (l *LocalTracer) startBackgroundFlushing() {
	l.flushTicker = time.NewTicker(l.config.FlushInterval)
	l.wg.Add(1)

	go func() {
		defer l.wg.Done()
		for {
			select {
			case <-l.flushTicker.C:
				l.bufferMutex.Lock()
				_ = l.flushUnsafe()
				l.bufferMutex.Unlock()
			case <-l.stopChan:
				return
			}
		}
	}()
}

// flushUnsafe writes the buffer to disk; the caller must hold bufferMutex
func (l *LocalTracer) flushUnsafe() error {
	if len(l.buffer) == 0 {
		return nil
	}

	sessionCopy := l.session
	if sessionCopy.EndTime.IsZero() {
		sessionCopy.EndTime = time.Now()
	}

	batch := EventBatch{
		Session: sessionCopy,
		Events:  make([]Event, len(l.buffer)),
	}
	copy(batch.Events, l.buffer)

	filename := fmt.Sprintf("session_%s_%d.json", l.session.ID, time.Now().UnixNano())
	path := filepath.Join(l.dir, filename)

	data, err := json.MarshalIndent(batch, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal events: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write events to %s: %w", path, err)
	}

	l.buffer = l.buffer[:0]
	return nil
}

// cleanupOldSessions keeps the MaxSessions most recent sessions. A session
// may span several flush files; retention counts sessions, not files, and
// the running session is never pruned.
func (l *LocalTracer) cleanupOldSessions() error {
	if l.config.MaxSessions <= 0 {
		return nil
	}

	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return fmt.Errorf("failed to read traces directory: %w", err)
	}

	type session struct {
		id      string
		files   []string
		lastMod time.Time
	}

	sessions := make(map[string]*session)
	for _, entry := range entries {
		name := entry.Name()
		id, ok := sessionIDFromFilename(name)
		if entry.IsDir() || !ok {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		s, found := sessions[id]
		if !found {
			s = &session{id: id}
			sessions[id] = s
		}
		s.files = append(s.files, name)
		if info.ModTime().After(s.lastMod) {
			s.lastMod = info.ModTime()
		}
	}

	if len(sessions) <= l.config.MaxSessions {
		return nil
	}

	ordered := make([]*session, 0, len(sessions))
	for _, s := range sessions {
		if s.id != l.session.ID {
			ordered = append(ordered, s)
		}
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].lastMod.Equal(ordered[j].lastMod) {
			return ordered[i].id < ordered[j].id
		}
		return ordered[i].lastMod.Before(ordered[j].lastMod)
	})

	keepOthers := l.config.MaxSessions
	if _, running := sessions[l.session.ID]; running {
		keepOthers--
	}
	if keepOthers < 0 {
		keepOthers = 0
	}
	if len(ordered) <= keepOthers {
		return nil
	}

	for _, s := range ordered[:len(ordered)-keepOthers] {
		for _, name := range s.files {
			// best effort: a file we cannot remove is retried on the next run
			_ = os.Remove(filepath.Join(l.dir, name))
		}
	}

	return nil
}

// sessionIDFromFilename extracts <id> from session_<id>_<unixnano>.json
func sessionIDFromFilename(name string) (string, bool) {
	if !strings.HasPrefix(name, "session_") || filepath.Ext(name) != ".json" {
		return "", false
	}
	rest := strings.TrimSuffix(strings.TrimPrefix(name, "session_"), ".json")
	idx := strings.LastIndex(rest, "_")
	if idx <= 0 {
		return "", false
	}
	return rest[:idx], true
}

// generateSessionID creates a unique session identifier
func generateSessionID() string {
	return uuid.New().String()
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("empty path")
	}

	if path[0] != '~' {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}

// getPlatform returns the current platform information
func getPlatform() string {
	return fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
}
