// Package logger provides structured logging infrastructure for the application.
// This is part of the platform layer and contains no business logic.
//
// The terminal renderer owns stdout, so the logger writes to a file (or
// discards output when no file is configured).
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog.Logger for structured logging.
type Logger struct {
	*slog.Logger

	closer io.Closer
}

// New creates a new logger based on environment. The log file is opened in
// append mode; an empty path disables output entirely.
func New(env, path string) (*Logger, error) {
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}
	if strings.EqualFold(env, "development") {
		opts.Level = slog.LevelDebug
	}

	if path == "" {
		return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, opts))}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	var handler slog.Handler
	if strings.EqualFold(env, "development") {
		handler = slog.NewTextHandler(f, opts)
	} else {
		handler = slog.NewJSONHandler(f, opts)
	}

	return &Logger{Logger: slog.New(handler), closer: f}, nil
}

// Discard returns a logger that drops everything. Useful in tests.
func Discard() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// Close releases the underlying log file, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// Transition logs a state machine transition.
func (l *Logger) Transition(event string, attrs ...any) {
	args := append([]any{slog.String("event", event)}, attrs...)
	l.Debug("transition", args...)
}

// Selection logs a country selection.
func (l *Logger) Selection(countryName string, index int) {
	l.Info("country_selected",
		slog.String("country", countryName),
		slog.Int("registry_index", index),
	)
}

// FormatResult logs the outcome of a phone format attempt.
func (l *Logger) FormatResult(countryName string, ok bool) {
	if ok {
		l.Debug("phone_formatted", slog.String("country", countryName))
		return
	}
	l.Debug("phone_rejected", slog.String("country", countryName))
}
