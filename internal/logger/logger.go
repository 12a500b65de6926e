// Package logger holds the slog.Logger shared by every corekit package.
// It discards all output until corekit.SetLogger installs a real logger.
package logger

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled returns false so callers skip
// attribute formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(slog.New(nopHandler{}))
}

// Set installs l. A nil logger restores the silent default.
func Set(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	current.Store(l)
}

// L returns the active logger.
func L() *slog.Logger { return current.Load() }

// DebugEnabled reports whether debug records would be emitted. Hot paths
// check it before building attributes.
func DebugEnabled() bool {
	return current.Load().Enabled(context.Background(), slog.LevelDebug)
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { current.Load().Debug(msg, args...) }

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) { current.Load().Info(msg, args...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) { current.Load().Warn(msg, args...) }
