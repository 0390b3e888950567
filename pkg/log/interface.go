// Package log provides a structured logging interface for SciGP operations.
//
// This package defines a minimal, slog-compatible logging interface backed by
// zerolog. The interface is implementation-agnostic so that tests can swap in
// a capturing logger, and it supports ML-specific structured attributes
// (operation types, data shapes, optimizer status).
//
// Example usage:
//
//	logger := log.GetLoggerWithName("gp").With(
//	    log.ModelNameKey, "GaussianProcess",
//	    log.ComponentKey, "gp",
//	)
//	logger.Info("Hyperparameter learning started",
//	    log.OperationKey, log.OperationLearn,
//	    log.PointsKey, 50,
//	)
package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's log/slog.
//
// All logging methods accept a message followed by alternating key-value
// pairs. Keys should be strings, preferably the standard attribute keys
// defined in this package. Error values are handled specially: their message
// is logged under the "error" key and, when the error carries a
// cockroachdb/errors stack trace, it is attached under "stacktrace".
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional structured fields.
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional structured fields.
	Warn(msg string, fields ...any)

	// Error logs an error-level message with optional structured fields.
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	// This enables contextual loggers that automatically include common
	// fields in all subsequent log messages.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits log records at the given
	// level. Use it to avoid expensive attribute construction for records
	// that would be discarded.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, compatible with slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4 // Detailed diagnostic information
	LevelInfo  Level = 0  // General operational information
	LevelWarn  Level = 4  // Warning conditions
	LevelError Level = 8  // Error conditions
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
