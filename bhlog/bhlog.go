// Package bhlog is a thin log/slog wrapper shared by the simulation
// core and the cmd/barneshut host. It is grounded on
// subculture-collective-reddit-cluster-map's internal/logger: a
// package-level default logger, selected JSON-vs-text handler based
// on the environment, and With*-style helpers for attaching fields.
package bhlog

import (
	"log/slog"
	"os"
	"strings"
)

var defaultLogger *slog.Logger

// Init installs the package default logger at the given level
// ("debug", "info", "warn", "error"; unrecognized values fall back to
// "info"). Output is JSON when BH_ENV=production, text otherwise.
func Init(levelStr string) {
	level := parseLevel(levelStr)

	var handler slog.Handler
	opts := &slog.HandlerOptions{Level: level}
	if os.Getenv("BH_ENV") == "production" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	defaultLogger = slog.New(handler)
	slog.SetDefault(defaultLogger)
}

func parseLevel(levelStr string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Get returns the package default logger, lazily initializing it at
// "info" level if nothing has called Init yet.
func Get() *slog.Logger {
	if defaultLogger == nil {
		Init("info")
	}
	return defaultLogger
}

// WithComponent returns a logger that tags every record with a
// "component" field, e.g. bhlog.WithComponent("simulation").
func WithComponent(component string) *slog.Logger {
	return Get().With("component", component)
}

// Debug logs at debug level on the default logger.
func Debug(msg string, args ...any) { Get().Debug(msg, args...) }

// Info logs at info level on the default logger.
func Info(msg string, args ...any) { Get().Info(msg, args...) }

// Warn logs at warn level on the default logger.
func Warn(msg string, args ...any) { Get().Warn(msg, args...) }

// Error logs at error level on the default logger.
func Error(msg string, args ...any) { Get().Error(msg, args...) }
