package app

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/bodyfuel/bodyfuel-backend/internal/config"
)

const serviceName = "bodyfuel"

// NewLogger builds the process logger on stderr, tags every record with the
// service name and version, and installs it as the slog default.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := slog.New(newHandler(cfg, os.Stderr)).With(
		slog.String("service", serviceName),
		slog.String("version", Version),
	)
	slog.SetDefault(logger)
	return logger
}

// newHandler returns a JSON handler for format "json" and a text handler
// with source locations otherwise.
func newHandler(cfg config.LogConfig, w io.Writer) slog.Handler {
	text := !strings.EqualFold(cfg.Format, "json")
	opts := &slog.HandlerOptions{
		Level:       parseLevel(cfg.Level),
		AddSource:   text,
		ReplaceAttr: replaceAttr,
	}
	if text {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}

// replaceAttr renders durations as milliseconds.
func replaceAttr(_ []string, a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindDuration {
		ms := float64(a.Value.Duration()) / float64(time.Millisecond)
		return slog.Float64(a.Key+"_ms", ms)
	}
	return a
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}
