package logging

import (
	"io"
	"log/slog"
	"os"
)

// New builds the gl logger. format is "text" or "json"; debug lowers the level to Debug.
func New(w io.Writer, format string, debug bool) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Setup installs the gl logger as the slog default.
func Setup(format string, debug bool) {
	slog.SetDefault(New(os.Stderr, format, debug))
}
