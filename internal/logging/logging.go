// Package logging builds the slog logger used for diagnostics. User-facing
// output never goes through it.
package logging

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

// Level maps a -v count to a slog level: 0 warn, 1 info, 2+ debug.
func Level(verbosity int) slog.Level {
	switch verbosity {
	case 0:
		return slog.LevelWarn
	case 1:
		return slog.LevelInfo
	default: // 2+
		return slog.LevelDebug
	}
}

// New returns a tint-backed logger writing to w.
func New(w io.Writer, verbosity int, noColor bool) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      Level(verbosity),
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	}))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
