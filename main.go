package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"loginpage/auth"
	"loginpage/config"
	"loginpage/tracing"
	"loginpage/tui"
	"loginpage/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "loginpage:", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadEnv(); err != nil {
		return err
	}

	configManager := config.NewConfigManager(config.ConfigPath())
	cfg, err := configManager.Load()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog.Close()
	slog.SetDefault(logger)

	if !configManager.Exists() {
		if err := configManager.Save(config.Default()); err != nil {
			logger.Warn("could not write default config", "path", configManager.Path(), "error", err)
		}
	}

	manager := newTracingManager(cfg, logger)
	defer func() {
		if err := manager.Close(); err != nil {
			logger.Warn("closing tracer", "error", err)
		}
	}()

	themeManager := theme.NewManager(theme.NewDetector().Resolve(cfg.Theme))

	logger.Info("starting",
		"version", version,
		"theme", themeManager.GetTheme().String(),
		"tracing", manager.IsEnabled(),
		"session", manager.GetSessionID(),
	)

	var opts []tea.ProgramOption
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	model := tui.InitialModel(auth.NewStaticAuthenticator(), themeManager, tracing.NewTUIIntegration(manager))
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		logger.Error("program failed", "error", err)
		return fmt.Errorf("run program: %w", err)
	}

	logger.Info("exited")
	return nil
}

// newLogger opens the log file for appending. The terminal belongs to the
// TUI, so nothing is logged to stdout or stderr.
func newLogger(path string) (*slog.Logger, io.Closer, error) {
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return nil, nil, fmt.Errorf("log file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(expanded), 0o700); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	f, err := os.OpenFile(expanded, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(handler), f, nil
}

// newTracingManager builds the session tracer, falling back to a no-op
// tracer when the trace directory is unusable.
func newTracingManager(cfg config.Config, logger *slog.Logger) *tracing.Manager {
	tracingConfig := tracing.DefaultConfig()
	tracingConfig.Enabled = cfg.Tracing.Enabled
	tracingConfig.LocalDir = cfg.Tracing.Dir
	tracingConfig.MaxSessions = cfg.Tracing.MaxSessions
	tracingConfig.FlushInterval = cfg.Tracing.FlushInterval

	manager, err := tracing.NewManager(tracingConfig, version)
	if err != nil {
		logger.Warn("tracing disabled", "error", err)
		tracingConfig.Enabled = false
		return tracing.NewManagerWithTracer(tracing.NewNoOpTracer(), tracingConfig)
	}
	return manager
}
