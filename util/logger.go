package util

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
)

// LoggerConfig selects the handler NewLogger builds.
type LoggerConfig struct {
	Writer   io.Writer
	Level    string
	JSON     bool
	UseColor bool
}

// NewLogger builds a JSON, colored (tint) or plain text slog logger.
func NewLogger(cfg LoggerConfig) *slog.Logger {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	level := ParseLogLevel(cfg.Level)

	var handler slog.Handler
	switch {
	case cfg.JSON:
		handler = slog.NewJSONHandler(cfg.Writer, &slog.HandlerOptions{Level: level})
	case cfg.UseColor:
		handler = tint.NewHandler(cfg.Writer, &tint.Options{
			Level:      level,
			TimeFormat: "2006-01-02 15:04:05",
		})
	default:
		handler = slog.NewTextHandler(cfg.Writer, &slog.HandlerOptions{Level: level})
	}
	return slog.New(handler)
}

// ParseLogLevel maps debug/info/warn/error to a slog level; anything else is info.
func ParseLogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
