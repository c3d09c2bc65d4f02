// Package logging provides structured logging for the storefront.
//
// Text logs are formatted as: [LEVEL] [SYSTEM] [HH:MM:SS] message key=value
// with colors when attached to a terminal. JSON format is available for
// log shippers via the "json" format setting.
package logging

import (
	"log/slog"
	"os"

	"github.com/framecraft/storefront/internal/infrastructure/config"
)

// NewLogger creates a structured logger based on config.
func NewLogger(cfg config.LoggingConfig) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = NewConsoleHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

// NewLoggerWithSystem creates a logger scoped to a subsystem (e.g. "api",
// "checkout", "catalog"). The system name appears in its own bracket.
func NewLoggerWithSystem(cfg config.LoggingConfig, system string) *slog.Logger {
	return NewLogger(cfg).With("system", system)
}
