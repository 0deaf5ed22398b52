package board

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record; Enabled returns false so formatting is skipped.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger used by board and its callers.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Levels:
//   - [slog.LevelDebug]: per-operation diagnostics (erase hits, export boxes)
//   - [slog.LevelInfo]: lifecycle events (clear, save, enable toggles)
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
