package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// Attribute keys used for error reporting.
const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

var (
	globalMu     sync.RWMutex
	globalLevel  = zerolog.InfoLevel
	globalLogger Logger = newZerologLogger(newZerolog(os.Stderr, zerolog.InfoLevel))
)

func newZerolog(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// GetLogger returns the process-wide default logger.
func GetLogger() Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

// GetLoggerWithName returns the default logger with a component name
// attached under the standard ComponentKey.
func GetLoggerWithName(name string) Logger {
	return GetLogger().With(ComponentKey, name)
}

// SetLogger replaces the process-wide default logger. Pass the result of
// NewTestLogger to capture output in tests.
func SetLogger(l Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLogger = l
}

// SetLevel sets the minimum level of the default logger.
func SetLevel(level Level) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLevel = toZerologLevel(level)
	globalLogger = newZerologLogger(newZerolog(os.Stderr, globalLevel))
}

func toZerologLevel(level Level) zerolog.Level {
	switch {
	case level <= LevelDebug:
		return zerolog.DebugLevel
	case level <= LevelInfo:
		return zerolog.InfoLevel
	case level <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

// zerologLogger adapts a zerolog.Logger to the Logger interface.
type zerologLogger struct {
	zl zerolog.Logger
}

// NewZerologLogger wraps an existing zerolog.Logger in the Logger interface.
func NewZerologLogger(zl zerolog.Logger) Logger {
	return newZerologLogger(zl)
}

func newZerologLogger(zl zerolog.Logger) *zerologLogger {
	return &zerologLogger{zl: zl}
}

func (l *zerologLogger) Debug(msg string, fields ...any) { l.emit(l.zl.Debug(), msg, fields) }
func (l *zerologLogger) Info(msg string, fields ...any)  { l.emit(l.zl.Info(), msg, fields) }
func (l *zerologLogger) Warn(msg string, fields ...any)  { l.emit(l.zl.Warn(), msg, fields) }
func (l *zerologLogger) Error(msg string, fields ...any) { l.emit(l.zl.Error(), msg, fields) }

func (l *zerologLogger) With(fields ...any) Logger {
	ctx := l.zl.With()
	for key, value := range pairs(fields) {
		ctx = ctx.Interface(key, value)
	}
	return &zerologLogger{zl: ctx.Logger()}
}

func (l *zerologLogger) Enabled(_ context.Context, level Level) bool {
	return toZerologLevel(level) >= l.zl.GetLevel()
}

func (l *zerologLogger) emit(e *zerolog.Event, msg string, fields []any) {
	for key, value := range pairs(fields) {
		switch v := value.(type) {
		case zerolog.LogObjectMarshaler:
			e = e.Object(key, v)
			if err, ok := value.(error); ok {
				if st := extractStacktrace(err); st != "" {
					e = e.Str(StacktraceAttrKey, st)
				}
			}
		case error:
			e = e.AnErr(key, v)
			if st := extractStacktrace(v); st != "" {
				e = e.Str(StacktraceAttrKey, st)
			}
		default:
			e = e.Interface(key, v)
		}
	}
	e.Msg(msg)
}

// pairs iterates fields as alternating key-value pairs. Non-string keys are
// stringified rather than dropped so that mistakes remain visible in output.
func pairs(fields []any) func(yield func(string, any) bool) {
	return func(yield func(string, any) bool) {
		for i := 0; i+1 < len(fields); i += 2 {
			key, ok := fields[i].(string)
			if !ok {
				key = fmt.Sprint(fields[i])
			}
			if !yield(key, fields[i+1]) {
				return
			}
		}
	}
}

// extractStacktrace pulls the formatted stack trace out of a
// cockroachdb/errors error, if one is attached.
func extractStacktrace(err error) string {
	safeDetails := errors.GetSafeDetails(err).SafeDetails
	if len(safeDetails) > 0 {
		return safeDetails[0]
	}
	return ""
}
