// Package telemetry provides an optional structured-logging hook for
// the parts of keyshard that aren't pure functions (word list loading,
// the call sites wrapping Splitter/Recoverer). It wraps log/slog in the
// style of mrz1836-sigil's internal/config/logging.go. The field-math,
// polynomial, and interpolation code never touches this package — it
// stays pure and side-effect free.
package telemetry

import (
	"context"
	"log/slog"
)

// Logger is a thin, nil-safe wrapper around *slog.Logger. A nil
// *Logger is always safe to call methods on: the default is silence.
type Logger struct {
	slog *slog.Logger
}

// New wraps an existing *slog.Logger. Passing nil is equivalent to a
// discard logger.
func New(l *slog.Logger) *Logger {
	return &Logger{slog: l}
}

// Discard returns a Logger that drops everything.
func Discard() *Logger {
	return &Logger{}
}

// Debug logs at debug level with structured key-value pairs. No-op if
// the logger is nil or was constructed without a backing *slog.Logger.
func (l *Logger) Debug(ctx context.Context, msg string, args ...any) {
	if l == nil || l.slog == nil {
		return
	}
	l.slog.DebugContext(ctx, msg, args...)
}

// Error logs at error level with structured key-value pairs. No-op if
// the logger is nil or was constructed without a backing *slog.Logger.
// Callers must never pass seed bytes, key integers, or polynomial
// coefficients as args — only sizes, counts, and identifiers belong here.
func (l *Logger) Error(ctx context.Context, msg string, args ...any) {
	if l == nil || l.slog == nil {
		return
	}
	l.slog.ErrorContext(ctx, msg, args...)
}
