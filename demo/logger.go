package main

import (
	"io"
	"log/slog"
	"strings"
)

// newLogger returns a slog.Logger writing to w in the configured format.
// The config is expected to be validated already.
func newLogger(cfg *Config, w io.Writer) *slog.Logger {
	lvl, err := cfg.level()
	if err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	if strings.ToLower(cfg.LogFormat) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}
