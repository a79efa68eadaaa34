package common

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that discards every record. Enabled reports false
// so callers skip formatting entirely while logging is disabled.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// loggerPtr holds the active logger shared by every helion package.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger used by helion and all of its sub-packages.
// By default nothing is logged. Passing nil restores the silent default.
//
// Levels used:
//   - slog.LevelDebug: buffer sizes, pipeline creation details
//   - slog.LevelInfo: lifecycle events (adapter selected, window created)
//   - slog.LevelWarn: recoverable issues (fallback attempts, surface lost, truncated input)
//   - slog.LevelError: frame render failures that do not stop the loop
//
// Parameters:
//   - l: the logger to install, or nil to disable logging
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the logger currently installed via SetLogger.
// Safe for concurrent use.
//
// Returns:
//   - *slog.Logger: the active logger (never nil)
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
