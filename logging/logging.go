// Package logging provides the package-level *slog.Logger used by folio for
// debug output.
package logging

import (
	"io"
	"log/slog"
	"sync/atomic"
)

// logger holds the process-wide logger. Nil means logging is disabled and
// Logger() hands out a discard logger.
var logger atomic.Pointer[slog.Logger]

// SetLogger configures the logger used for debug output. Pass nil to
// disable logging.
//
// SetLogger is safe for concurrent use.
//
// Example enabling debug output to stderr:
//
//	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//		Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger.Store(l)
}

// Logger returns the configured logger, or a discard logger when none has
// been set.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	l := logger.Load()
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
		logger.Store(l)
	}
	return l
}
