package tracing

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

type sessionFile struct {
	Session SessionInfo      `json:"session"`
	Events  []map[string]any `json:"events"`
}

func testConfig(dir string) TracingConfig {
	return TracingConfig{
		Enabled:       true,
		LocalDir:      dir,
		MaxSessions:   5,
		FlushInterval: 0,
		MaxBufferSize: 50,
	}
}

func readSessionFiles(t *testing.T, dir string) []sessionFile {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, "session_*.json"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	var files []sessionFile
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read %s: %v", path, err)
		}
		var f sessionFile
		if err := json.Unmarshal(data, &f); err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
		files = append(files, f)
	}
	return files
}

func TestNewTracer_Disabled(t *testing.T) {
	// Arrange
	config := testConfig(t.TempDir())
	config.Enabled = false

	// Act
	tracer, err := NewTracer(config, "test")

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, ok := tracer.(*NoOpTracer); !ok {
		t.Errorf("Expected NoOpTracer when disabled, got %T", tracer)
	}
}

func TestNoOpTracer(t *testing.T) {
	tracer := NewNoOpTracer()

	if err := tracer.TrackUserAction(*NewUserActionEvent("s", ActionSubmit, TargetLoginForm)); err != nil {
		t.Errorf("TrackUserAction: %v", err)
	}
	if err := tracer.TrackNavigation(*NewNavigationEvent("s", "login", "dashboard", "login_success")); err != nil {
		t.Errorf("TrackNavigation: %v", err)
	}
	if err := tracer.TrackError(*NewErrorEvent("s", "boom", "test")); err != nil {
		t.Errorf("TrackError: %v", err)
	}
	if err := tracer.Flush(); err != nil {
		t.Errorf("Flush: %v", err)
	}
	if err := tracer.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestLocalTracer_WritesSessionOnClose(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	tracer, err := NewLocalTracer(testConfig(dir), "1.0.0")
	if err != nil {
		t.Fatalf("Failed to create tracer: %v", err)
	}

	// Act
	if err := tracer.TrackNavigation(*NewNavigationEvent(tracer.SessionID(), "login", "dashboard", "login_success")); err != nil {
		t.Fatalf("TrackNavigation: %v", err)
	}
	if err := tracer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Assert
	files := readSessionFiles(t, dir)
	if len(files) != 1 {
		t.Fatalf("Expected 1 session file, got %d", len(files))
	}
	f := files[0]
	if f.Session.ID != tracer.SessionID() {
		t.Errorf("Expected session id %s, got %s", tracer.SessionID(), f.Session.ID)
	}
	if f.Session.Version != "1.0.0" {
		t.Errorf("Expected version 1.0.0, got %s", f.Session.Version)
	}
	if len(f.Events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(f.Events))
	}
	if f.Events[0]["to_state"] != "dashboard" {
		t.Errorf("Expected to_state 'dashboard', got %v", f.Events[0]["to_state"])
	}
}

func TestLocalTracer_CloseTwice(t *testing.T) {
	tracer, err := NewLocalTracer(testConfig(t.TempDir()), "test")
	if err != nil {
		t.Fatalf("Failed to create tracer: %v", err)
	}

	if err := tracer.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := tracer.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestLocalTracer_RejectsInvalidEvent(t *testing.T) {
	// Arrange
	tracer, err := NewLocalTracer(testConfig(t.TempDir()), "test")
	if err != nil {
		t.Fatalf("Failed to create tracer: %v", err)
	}
	defer tracer.Close()

	// Act
	err = tracer.TrackUserAction(*NewUserActionEvent(tracer.SessionID(), "", TargetLoginForm))

	// Assert
	if err == nil {
		t.Error("Expected an error for an event without an action")
	}
}

func TestLocalTracer_FlushesWhenBufferFull(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	config := testConfig(dir)
	config.MaxBufferSize = 2
	tracer, err := NewLocalTracer(config, "test")
	if err != nil {
		t.Fatalf("Failed to create tracer: %v", err)
	}
	defer tracer.Close()

	// Act
	for i := 0; i < 2; i++ {
		if err := tracer.TrackUserAction(*NewUserActionEvent(tracer.SessionID(), ActionReset, TargetLoginForm)); err != nil {
			t.Fatalf("TrackUserAction: %v", err)
		}
	}

	// Assert
	files := readSessionFiles(t, dir)
	if len(files) != 1 {
		t.Fatalf("Expected buffer to be flushed to 1 file, got %d", len(files))
	}
	if len(files[0].Events) != 2 {
		t.Errorf("Expected 2 events, got %d", len(files[0].Events))
	}
}

func TestLocalTracer_BackgroundFlush(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	config := testConfig(dir)
	config.FlushInterval = 10 * time.Millisecond
	tracer, err := NewLocalTracer(config, "test")
	if err != nil {
		t.Fatalf("Failed to create tracer: %v", err)
	}
	defer tracer.Close()

	// Act
	if err := tracer.TrackUserAction(*NewUserActionEvent(tracer.SessionID(), ActionSubmit, TargetLoginForm)); err != nil {
		t.Fatalf("TrackUserAction: %v", err)
	}

	// Assert
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		matches, _ := filepath.Glob(filepath.Join(dir, "session_*.json"))
		if len(matches) > 0 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Error("Expected background flush to write a session file")
}

func TestLocalTracer_CleanupKeepsNewest(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	old := time.Now().Add(-time.Hour)
	for i := 0; i < 4; i++ {
		path := filepath.Join(dir, "session_old"+string(rune('a'+i))+"_1.json")
		if err := os.WriteFile(path, []byte(`{}`), 0o600); err != nil {
			t.Fatalf("write: %v", err)
		}
		if err := os.Chtimes(path, old, old); err != nil {
			t.Fatalf("chtimes: %v", err)
		}
	}
	unrelated := filepath.Join(dir, "notes.json")
	if err := os.WriteFile(unrelated, []byte(`{}`), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	config := testConfig(dir)
	config.MaxSessions = 2
	tracer, err := NewLocalTracer(config, "test")
	if err != nil {
		t.Fatalf("Failed to create tracer: %v", err)
	}
	_ = tracer.TrackUserAction(*NewUserActionEvent(tracer.SessionID(), ActionSubmit, TargetLoginForm))

	// Act
	if err := tracer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Assert
	matches, _ := filepath.Glob(filepath.Join(dir, "session_*.json"))
	if len(matches) != 2 {
		t.Fatalf("Expected 2 session files to remain, got %d", len(matches))
	}
	foundCurrent := false
	for _, m := range matches {
		if strings.Contains(m, tracer.SessionID()) {
			foundCurrent = true
		}
	}
	if !foundCurrent {
		t.Error("Expected the current session file to survive cleanup")
	}
	if _, err := os.Stat(unrelated); err != nil {
		t.Error("Expected non-session files to be left alone")
	}
}

func TestLocalTracer_CleanupCountsSessionsNotFiles(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	old := time.Now().Add(-time.Hour)
	for _, name := range []string{"session_prev_1.json", "session_prev_2.json", "session_older_1.json"} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(`{}`), 0o600); err != nil {
			t.Fatalf("write: %v", err)
		}
		modTime := old
		if strings.Contains(name, "older") {
			modTime = old.Add(-time.Hour)
		}
		if err := os.Chtimes(path, modTime, modTime); err != nil {
			t.Fatalf("chtimes: %v", err)
		}
	}

	config := testConfig(dir)
	config.MaxSessions = 2
	tracer, err := NewLocalTracer(config, "test")
	if err != nil {
		t.Fatalf("Failed to create tracer: %v", err)
	}
	for i := 0; i < 3; i++ {
		_ = tracer.TrackUserAction(*NewUserActionEvent(tracer.SessionID(), ActionSubmit, TargetLoginForm))
		if err := tracer.Flush(); err != nil {
			t.Fatalf("Flush: %v", err)
		}
		time.Sleep(time.Millisecond)
	}

	// Act
	if err := tracer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Assert
	current, _ := filepath.Glob(filepath.Join(dir, "session_"+tracer.SessionID()+"_*.json"))
	if len(current) < 3 {
		t.Errorf("Expected every flush of the running session to survive, got %d files", len(current))
	}
	prev, _ := filepath.Glob(filepath.Join(dir, "session_prev_*.json"))
	if len(prev) != 2 {
		t.Errorf("Expected both files of the newest previous session to survive, got %d", len(prev))
	}
	if _, err := os.Stat(filepath.Join(dir, "session_older_1.json")); !os.IsNotExist(err) {
		t.Error("Expected the oldest session to be pruned")
	}
}

func TestSessionIDFromFilename(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		wantOK bool
	}{
		{name: "session_3f2a-b1_1700000000.json", id: "3f2a-b1", wantOK: true},
		{name: "session_abc_1.json", id: "abc", wantOK: true},
		{name: "session_abc.json", wantOK: false},
		{name: "session__1.json", wantOK: false},
		{name: "notes.json", wantOK: false},
		{name: "session_abc_1.txt", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := sessionIDFromFilename(tt.name)
			if ok != tt.wantOK || id != tt.id {
				t.Errorf("sessionIDFromFilename(%q) = %q, %v; want %q, %v", tt.name, id, ok, tt.id, tt.wantOK)
			}
		})
	}
}

func TestUserActionEvent_Sanitize(t *testing.T) {
	// Arrange
	event := NewUserActionEvent("s", ActionSubmit, "password_field")
	event.Value = "1234"
	event.Properties["password"] = "1234"
	event.Properties["success"] = "false"

	// Act
	sanitized := event.Sanitize().(*UserActionEvent)

	// Assert
	if sanitized.Value != redacted {
		t.Errorf("Expected value to be redacted, got %q", sanitized.Value)
	}
	if _, ok := sanitized.Properties["password"]; ok {
		t.Error("Expected password property to be removed")
	}
	if sanitized.Properties["success"] != "false" {
		t.Error("Expected non-sensitive property to be kept")
	}
	if event.Properties["password"] != "1234" {
		t.Error("Expected original event to be left untouched")
	}
}

func TestErrorEvent_Sanitize(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		redacted bool
	}{
		{name: "plain", message: "open config: permission denied", redacted: false},
		{name: "password assignment", message: "bad request password=1234", redacted: true},
		{name: "token field", message: "token: abc", redacted: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			sanitized := NewErrorEvent("s", tt.message, "test").Sanitize().(*ErrorEvent)

			// Assert
			if tt.redacted && sanitized.Error == tt.message {
				t.Errorf("Expected %q to be redacted", tt.message)
			}
			if !tt.redacted && sanitized.Error != tt.message {
				t.Errorf("Expected %q to be kept, got %q", tt.message, sanitized.Error)
			}
		})
	}
}

func TestManager_RecordsSession(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	manager, err := NewManager(testConfig(dir), "test")
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}
	integration := NewTUIIntegration(manager)

	// Act
	_ = integration.TrackLoginAttempt(false)
	_ = integration.TrackReset()
	_ = integration.TrackLoginAttempt(true)
	_ = integration.TrackDialogDismissed("success")
	_ = integration.TrackStateChange("Login", "Dashboard", "login_success")
	_ = integration.TrackError(errors.New("boom"), "controller", "render")
	if err := manager.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Assert
	files := readSessionFiles(t, dir)
	if len(files) != 1 {
		t.Fatalf("Expected 1 session file, got %d", len(files))
	}
	events := files[0].Events
	// session start + 6 tracked + session end
	if len(events) != 8 {
		t.Fatalf("Expected 8 events, got %d", len(events))
	}
	if events[0]["to_state"] != "session_start" {
		t.Errorf("Expected first event to be session_start, got %v", events[0]["to_state"])
	}
	if events[len(events)-1]["to_state"] != "session_end" {
		t.Errorf("Expected last event to be session_end, got %v", events[len(events)-1]["to_state"])
	}
	if manager.GetSessionID() == "unknown" {
		t.Error("Expected session id from the local tracer")
	}
}

func TestManager_ClosedIgnoresEvents(t *testing.T) {
	// Arrange
	manager := NewManagerWithTracer(NewNoOpTracer(), TracingConfig{})
	if err := manager.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Act & Assert
	if err := manager.TrackUserAction(ActionSubmit, TargetLoginForm, nil); err != nil {
		t.Errorf("Expected nil after close, got %v", err)
	}
	if err := manager.Close(); err != nil {
		t.Errorf("Expected second Close to be a no-op, got %v", err)
	}
	if manager.IsEnabled() {
		t.Error("Expected IsEnabled to mirror config")
	}
}

func TestTUIIntegration_NilSafe(t *testing.T) {
	var integration *TUIIntegration

	if err := integration.TrackLoginAttempt(true); err != nil {
		t.Errorf("TrackLoginAttempt: %v", err)
	}
	if err := integration.TrackReset(); err != nil {
		t.Errorf("TrackReset: %v", err)
	}
	if err := integration.TrackStateChange("a", "b", "c"); err != nil {
		t.Errorf("TrackStateChange: %v", err)
	}
	if err := NewTUIIntegration(nil).TrackError(errors.New("x"), "c", "o"); err != nil {
		t.Errorf("TrackError: %v", err)
	}
}
