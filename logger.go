package adaptive

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from the render loop.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger configures the logger for adaptive and all its sub-packages.
// By default, adaptive produces no log output. Call SetLogger to enable
// logging.
//
// SetLogger is safe for concurrent use: it stores the new logger
// atomically. Pass nil to disable logging (restore default silent
// behavior).
//
// Log levels used by adaptive:
//   - [slog.LevelDebug]: per-change quality loop diagnostics
//   - [slog.LevelInfo]: probe results (adapter classification, fallback)
//   - [slog.LevelWarn]: non-fatal issues (adapter release errors)
//
// Example:
//
//	adaptive.SetLogger(slog.Default())
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by adaptive.
// Sub-packages (probe/, frameloop/) call this to share the same logger
// configuration without introducing import cycles.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
