package corekit

import (
	"log/slog"

	"github.com/joshuapare/corekit/internal/logger"
)

// SetLogger configures the logger for corekit and all its sub-packages.
// By default corekit produces no log output.
//
// SetLogger is safe for concurrent use. Pass nil to restore the default
// silent behavior.
//
// Log levels used by corekit:
//   - [slog.LevelDebug]: structural events (rehash, inline spill, slab
//     acquisition, storage registration, prune results)
//   - [slog.LevelInfo]: lifecycle events (intern table closed)
//
// Example:
//
//	corekit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logger.Set(l)
}

// Logger returns the logger currently used by corekit.
func Logger() *slog.Logger {
	return logger.L()
}
