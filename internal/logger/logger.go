package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/akinizer/adventure-of-textland/internal/config"
)

// Setup configures the global slog logger. The TUI owns the terminal, so
// log output goes to the configured file (or is discarded when none is
// configured).
func Setup(cfg *config.Config) (*slog.Logger, func(), error) {
	var w io.Writer = io.Discard
	cleanup := func() {}

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		cleanup = func() { _ = f.Close() }
	}

	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	var handler slog.Handler
	if cfg.Environment == "production" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger, cleanup, nil
}

// WithError adds error to logger context
func WithError(logger *slog.Logger, err error) *slog.Logger {
	return logger.With("error", err.Error())
}
