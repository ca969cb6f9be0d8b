package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Format represents logger output format.
type Format string

const (
	// FormatText outputs human-readable logs for terminals.
	FormatText Format = "text"
	// FormatJSON outputs structured logs for log aggregation systems.
	FormatJSON Format = "json"
)

type config struct {
	level  slog.Level
	format Format
	output io.Writer
}

// Option configures logger creation.
type Option func(*config)

// WithLevel sets the minimum level handled by the logger.
func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithFormat sets the output format. Panics for unknown formats to enforce
// fail-fast initialization: a misconfigured logger should prevent startup
// rather than cause silent runtime surprises.
func WithFormat(f Format) Option {
	return func(c *config) {
		switch f {
		case FormatText, FormatJSON:
			c.format = f
		default:
			panic(fmt.Errorf("logger: invalid format %q: must be %q or %q", f, FormatText, FormatJSON))
		}
	}
}

// WithOutput sets a custom output destination, ignoring nil writers.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// New returns a slog.Logger configured by the given options. Defaults are
// text format, info level, stdout.
func New(opts ...Option) *slog.Logger {
	c := &config{
		level:  slog.LevelInfo,
		format: FormatText,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}

	ho := &slog.HandlerOptions{Level: c.level}
	var handler slog.Handler = slog.NewTextHandler(c.output, ho)
	if c.format == FormatJSON {
		handler = slog.NewJSONHandler(c.output, ho)
	}
	return slog.New(handler)
}
