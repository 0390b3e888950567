// Package log provides testing utilities for structured logging.
//
// This file contains helpers for capturing and verifying log output during
// tests without interfering with the normal execution flow.

package log

import (
	"bytes"

	"github.com/rs/zerolog"
)

// NewTestLogger returns a logger that writes JSON records to an in-memory
// buffer, along with the buffer itself for inspection.
//
// Example:
//
//	logger, buf := log.NewTestLogger(log.LevelDebug)
//	logger.Info("covariance recomputed", log.PointsKey, 12)
//	// assert on buf.String()
func NewTestLogger(level Level) (Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	zl := zerolog.New(buf).Level(toZerologLevel(level))
	return newZerologLogger(zl), buf
}

// NewNopLogger returns a logger that discards all records.
func NewNopLogger() Logger {
	return newZerologLogger(zerolog.Nop())
}
