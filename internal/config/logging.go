package config

import (
	"log/slog"
	"os"
	"strings"
)

// NewLogger builds a structured logger with configurable level and format.
// level: "debug", "info", "warn", "error" (defaults to warn if invalid).
// format: "json" for JSON output, anything else for human-readable text.
// Output goes to stderr so the TUI keeps stdout to itself.
func NewLogger(level, format string) *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: logLevel}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}
