// Package logger holds the process-wide structured logger shared by every
// offscreen package. The root package exposes it through SetLogger/Logger.
package logger

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// NewNop creates a logger that silently discards all output.
func NewNop() *slog.Logger { return slog.New(nopHandler{}) }

var ptr atomic.Pointer[slog.Logger]

func init() {
	ptr.Store(NewNop())
}

// Load returns the current logger. Safe for concurrent use.
func Load() *slog.Logger { return ptr.Load() }

// Store replaces the current logger. nil restores the silent default.
func Store(l *slog.Logger) {
	if l == nil {
		l = NewNop()
	}
	ptr.Store(l)
}
