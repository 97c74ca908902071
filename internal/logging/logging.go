package logging

import (
	"io"
	"log/slog"
	"os"
)

// NewLogger builds the application logger. Debug mode traces every API
// request on stderr; otherwise only warnings and errors surface there.
func NewLogger(debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler)
}

// Discard returns a logger that drops everything. Used in tests and as a
// fallback when no logger is supplied.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
