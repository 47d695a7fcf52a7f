package offscreen

import (
	"log/slog"

	"github.com/gogpu/offscreen/internal/logger"
)

// SetLogger configures the logger for offscreen and all its sub-packages.
// By default, offscreen produces no log output. Pass nil to restore the
// silent default.
//
// Log levels used:
//   - [slog.LevelDebug]: canvas creation, image decode, font load, skipped glyphs
//   - [slog.LevelWarn]: fallbacks (a font go-text cannot parse is shaped by the builtin shaper)
//
// Example:
//
//	offscreen.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}

// Logger returns the current logger. It is never nil.
func Logger() *slog.Logger {
	return logger.Load()
}
