// Package obslog wraps log/slog with the small set of helpers the rest of
// this module needs (a no-op logger for callers who don't want output, and
// a convenience constructor around a text handler).
package obslog

import (
	"io"
	"log/slog"
	"os"
)

// Logger is a thin wrapper around *slog.Logger so callers can pass nil and
// get a safe no-op instead of a handler full of nil checks.
type Logger struct {
	*slog.Logger
}

// New wraps an existing *slog.Logger. Passing nil yields Noop().
func New(l *slog.Logger) *Logger {
	if l == nil {
		return Noop()
	}
	return &Logger{Logger: l}
}

// Default returns a text logger writing to stderr at Info level.
func Default() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))}
}

// Noop discards everything written to it.
func Noop() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// Warn is safe to call on a nil *Logger.
func (l *Logger) Warn(msg string, args ...any) {
	if l == nil || l.Logger == nil {
		return
	}
	l.Logger.Warn(msg, args...)
}

// Debug is safe to call on a nil *Logger.
func (l *Logger) Debug(msg string, args ...any) {
	if l == nil || l.Logger == nil {
		return
	}
	l.Logger.Debug(msg, args...)
}

// Info is safe to call on a nil *Logger.
func (l *Logger) Info(msg string, args ...any) {
	if l == nil || l.Logger == nil {
		return
	}
	l.Logger.Info(msg, args...)
}
