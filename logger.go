package easel

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gg"
)

// nopHandler is a slog.Handler that discards every record.
// Enabled reports false so callers skip attribute formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the active logger. Editors are single-threaded, but the
// logger may be swapped from another goroutine (a CLI flag handler, a test).
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by easel and its sub-packages and
// hands it on to gg, so rasterizer warnings reach the same handler.
// By default easel is silent. Pass nil to restore the silent default.
//
// Log levels used by easel:
//   - [slog.LevelDebug]: gesture transitions, rebuilds, history pushes
//   - [slog.LevelWarn]: swallowed failures (image load, rasterizer errors)
//
// Example:
//
//	easel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	gg.SetLogger(l)
}

// Logger returns the current logger. Safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
