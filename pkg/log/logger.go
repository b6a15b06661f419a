package log

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// SetupLogger installs the package default logger used by
// GetLogger/GetLoggerWithName. format selects "json" (one structured
// record per line) or "text" (readable on a terminal); anything else
// falls back to text. Every record passes
// through ErrFmtHandler so a logged pkg/errors error carries its stack
// trace and structured fields.
func SetupLogger(loglevel, format string) {
	ops := &slog.HandlerOptions{Level: ToLogLevel(loglevel)}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, ops)
	} else {
		handler = slog.NewTextHandler(os.Stdout, ops)
	}
	slog.SetDefault(slog.New(WrapByErrFmtHandler(handler)))
}

func ToLogLevel(level string) slog.Level {
	switch level {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		panic(fmt.Sprintf("invalid log level :%s", level))
	}
}

const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// ErrAttr is a wrapper to pass err to slog.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}

// slogLogger adapts *slog.Logger to the Logger interface.
type slogLogger struct {
	base *slog.Logger
}

// NewSlogLogger wraps a *slog.Logger as a Logger.
func NewSlogLogger(base *slog.Logger) Logger {
	return &slogLogger{base: base}
}

func (l *slogLogger) Debug(msg string, fields ...any) { l.base.Debug(msg, fields...) }
func (l *slogLogger) Info(msg string, fields ...any)  { l.base.Info(msg, fields...) }
func (l *slogLogger) Warn(msg string, fields ...any)  { l.base.Warn(msg, fields...) }
func (l *slogLogger) Error(msg string, fields ...any) { l.base.Error(msg, fields...) }

func (l *slogLogger) With(fields ...any) Logger {
	return &slogLogger{base: l.base.With(fields...)}
}

func (l *slogLogger) Enabled(ctx context.Context, level Level) bool {
	return l.base.Enabled(ctx, slog.Level(level))
}

// defaultProvider implements LoggerProvider on top of the standard slog default logger.
type defaultProvider struct {
	mu    sync.Mutex
	level Level
}

func (p *defaultProvider) GetLogger() Logger {
	return NewSlogLogger(slog.Default())
}

func (p *defaultProvider) GetLoggerWithName(name string) Logger {
	return NewSlogLogger(slog.Default().With(ComponentKey, name))
}

func (p *defaultProvider) SetLevel(level Level) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.level = level
}

var (
	providerMu     sync.RWMutex
	activeProvider LoggerProvider = &defaultProvider{}
)

// SetProvider replaces the package-level LoggerProvider used by GetLogger
// and GetLoggerWithName. Tests can install a TestLoggerProvider here.
func SetProvider(provider LoggerProvider) {
	providerMu.Lock()
	defer providerMu.Unlock()
	activeProvider = provider
}

// GetLogger returns the default logger from the active provider.
func GetLogger() Logger {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return activeProvider.GetLogger()
}

// GetLoggerWithName returns a named component logger from the active provider.
func GetLoggerWithName(name string) Logger {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return activeProvider.GetLoggerWithName(name)
}