package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	Encoding string
	Level    string
}

// New builds the process logger. Output goes to stderr because stdout carries
// the converted documents.
func New(app string, cfg *Config) (*slog.Logger, error) {
	return NewWithWriter(os.Stderr, app, cfg)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, app string, cfg *Config) (*slog.Logger, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	enc := cfg.Encoding
	if enc == "" {
		enc = "console"
	}
	lvl := cfg.Level
	if lvl == "" {
		lvl = "info"
	}

	level, err := ParseLevel(lvl)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch enc {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	case "console":
		handler = NewConsoleHandler(w, opts)
	default:
		return nil, fmt.Errorf("invalid logger config: encoding %s is not supported", enc)
	}

	return slog.New(handler).With("app", app), nil
}

// ParseLevel maps a level name onto slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid logger config: level %s is not supported", level)
	}
}

// ConsoleHandler is a text handler without the time attribute, for terminals.
type ConsoleHandler struct {
	handler slog.Handler
}

func NewConsoleHandler(w io.Writer, opts *slog.HandlerOptions) *ConsoleHandler {
	o := *opts
	o.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
		if len(groups) == 0 && a.Key == slog.TimeKey {
			return slog.Attr{}
		}
		return a
	}
	return &ConsoleHandler{handler: slog.NewTextHandler(w, &o)}
}

func (h *ConsoleHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *ConsoleHandler) Handle(ctx context.Context, record slog.Record) error {
	return h.handler.Handle(ctx, record)
}

func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ConsoleHandler{handler: h.handler.WithAttrs(attrs)}
}

func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	return &ConsoleHandler{handler: h.handler.WithGroup(name)}
}
