package splash

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler backs the logger splash uses until a caller installs one.
// A library run stays quiet on stderr unless the command asks for -v.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr is read by every Generate call and written by SetLogger.
// Paste jobs never log, so only the calling goroutine reads it during a run.
var loggerPtr atomic.Pointer[slog.Logger]

func init() { loggerPtr.Store(newNopLogger()) }

// SetLogger configures the logger used by splash.
// By default splash produces no log output. Pass nil to restore that.
//
// Log levels used by splash:
//   - [slog.LevelDebug]: source dimensions, grid size, worker count
//   - [slog.LevelInfo]: the written output file
//
// Example:
//
//	splash.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. It is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
