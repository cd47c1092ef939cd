package app

import (
	"io"
	"log/slog"
)

// NewLogger returns a configured slog.Logger writing to w. Report output goes
// to stdout, so callers pass stderr here.
func NewLogger(cfg *Config, w io.Writer) *slog.Logger {
	if cfg != nil && cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{AddSource: true}))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{AddSource: true}))
}
