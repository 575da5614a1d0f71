// Package obs is FastStack's ambient observability stack: a level-filtered
// logger, prometheus metrics, a localhost-only debug HTTP server, and a
// websocket spectator feed of engine snapshots. None of it is reachable
// from internal/engine; every collaborator here only ever reads state the
// host has already produced from a Tick call.
package obs

import (
	"io"
	"log/slog"
	"os"

	"faststack/internal/config"
)

// Logger wraps slog with the runtime-adjustable threshold fsLog.c's
// fsCurrentLogLevel provides: SetLevel changes what gets emitted without
// rebuilding the handler.
type Logger struct {
	level *slog.LevelVar
	inner *slog.Logger
}

// NewLogger builds a text-handler logger writing to w at the given
// starting threshold.
func NewLogger(w io.Writer, level config.Level) *Logger {
	lv := &slog.LevelVar{}
	lv.Set(toSlogLevel(level))
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lv})
	return &Logger{level: lv, inner: slog.New(handler)}
}

// NewStderrLogger is the common case: log to stderr, matching fsLog.c's
// fprintf(stderr, ...) destination.
func NewStderrLogger(level config.Level) *Logger {
	return NewLogger(os.Stderr, level)
}

// SetLevel changes the active threshold at runtime.
func (l *Logger) SetLevel(level config.Level) {
	l.level.Set(toSlogLevel(level))
}

func (l *Logger) Debug(msg string, args ...any)   { l.inner.Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)    { l.inner.Info(msg, args...) }
func (l *Logger) Warning(msg string, args ...any) { l.inner.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any)   { l.inner.Error(msg, args...) }

// Fatal logs at the highest level and exits the process, mirroring the
// original's FS_LOG_LEVEL_FATAL convention (the C engine never exits on
// its own behalf, but a headless driver needs a terminal log call).
func (l *Logger) Fatal(msg string, args ...any) {
	l.inner.Log(nil, slogLevelFatal, msg, args...)
	os.Exit(1)
}

// slogLevelFatal sits above slog.LevelError, matching fsLog.c's 5-level
// scale (debug, info, warning, error, fatal) where slog only ships 4.
const slogLevelFatal = slog.Level(12)

func toSlogLevel(level config.Level) slog.Level {
	switch level {
	case config.LevelDebug:
		return slog.LevelDebug
	case config.LevelInfo:
		return slog.LevelInfo
	case config.LevelWarning:
		return slog.LevelWarn
	case config.LevelError:
		return slog.LevelError
	case config.LevelFatal:
		return slogLevelFatal
	default:
		return slog.LevelInfo
	}
}
