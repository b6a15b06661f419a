// Package log provides the structured logging interface gbtree's training
// and prediction paths log through. It wraps log/slog rather than
// committing to it directly, so the boosting code can swap backends (or
// install a TestLoggerProvider in tests) without touching call sites.
//
// Example:
//
//	logger := log.GetLoggerWithName("ensemble")
//	logger.Info("boosting round complete",
//	    log.IterationKey, round,
//	    log.SamplesKey, n,
//	    log.LossKey, rmse,
//	)
package log

import (
	"context"
)

// Logger is the structured logging interface every gbtree package logs
// through. Fields are passed as alternating key/value pairs, same as
// slog's unstructured logging methods.
type Logger interface {
	// Debug logs detailed diagnostic information, e.g. a split candidate
	// rejected by min_child_weight.
	Debug(msg string, fields ...any)

	// Info logs operational events, e.g. one boosting round completing.
	Info(msg string, fields ...any)

	// Warn logs conditions that don't abort the fit, e.g. a round's
	// realized gain falling back to an unsplit leaf.
	Warn(msg string, fields ...any)

	// Error logs conditions that do abort the fit or a prediction. If an
	// error is passed as ErrAttr(err) (key "error"), ErrFmtHandler
	// extracts its stack trace and structured fields automatically.
	Error(msg string, fields ...any)

	// With returns a Logger that prepends fields to every subsequent call.
	With(fields ...any) Logger

	// Enabled reports whether a record at level would be emitted, so
	// callers can skip building expensive fields when it wouldn't.
	Enabled(ctx context.Context, level Level) bool
}

// Level is a logging level compatible with slog.Level's numbering.
type Level int

const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

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

// LoggerProvider creates the Loggers GetLogger/GetLoggerWithName hand out.
// cmd/gbtree uses the default slog-backed provider; a test can install a
// TestLoggerProvider via SetProvider to capture and assert on log output.
type LoggerProvider interface {
	GetLogger() Logger
	GetLoggerWithName(name string) Logger
	SetLevel(level Level)
}
