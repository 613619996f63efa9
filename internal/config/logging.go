package config

import (
	"log/slog"
	"os"
	"strings"
)

// NormalizeLogLevel maps a raw level string to a slog level, defaulting to
// info for anything unrecognized.
func NormalizeLogLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetupLogging installs the default slog logger per the logging config.
// verbose forces debug level regardless of the configured level.
func SetupLogging(cfg LoggingConfig, verbose bool) {
	level := NormalizeLogLevel(cfg.Level)
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.EqualFold(strings.TrimSpace(cfg.Format), "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
