package cmd

import (
	"io"
	"log/slog"
	"strings"

	"github.com/gaurav-prasanna/glosswalk/config"
)

// newLogger builds the process logger. Logs go to w, never to the console
// stream the operator reads definitions from.
func newLogger(w io.Writer, cfg *config.Config) (*slog.Logger, error) {
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.ToLower(cfg.LogFormat) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler), nil
}
