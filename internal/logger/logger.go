// Package logger builds the zerolog instances the CLI runs with. Commands
// get a console-friendly logger by default; callers can reconfigure it
// through options.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

const DefaultLogLevel = zerolog.InfoLevel

type config struct {
	out     io.Writer
	level   zerolog.Level
	console bool
}

// Option configures the logger.
type Option func(*config)

// WithLevel sets the minimum level; unknown names fall back to the default.
func WithLevel(level string) Option {
	return func(cfg *config) {
		parsed, err := zerolog.ParseLevel(level)
		if err != nil {
			parsed = DefaultLogLevel
		}
		cfg.level = parsed
	}
}

// WithOutput sets the destination writer.
func WithOutput(out io.Writer) Option {
	return func(cfg *config) {
		cfg.out = out
	}
}

// WithConsoleWriter toggles human-readable console formatting. When off,
// the logger emits raw JSON lines.
func WithConsoleWriter(console bool) Option {
	return func(cfg *config) {
		cfg.console = console
	}
}

// New creates a logger from the given options.
func New(opts ...Option) *zerolog.Logger {
	cfg := config{
		out:     os.Stderr,
		level:   DefaultLogLevel,
		console: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	out := cfg.out
	if cfg.console {
		out = zerolog.ConsoleWriter{
			Out: cfg.out,
			// Commands print their own status lines; timestamps and level
			// tags would just be noise on a terminal.
			PartsExclude: []string{zerolog.TimestampFieldName, zerolog.LevelFieldName},
		}
	}

	logger := zerolog.New(out).Level(cfg.level)
	return &logger
}

// NewConsoleLogger is the logger every command starts with.
func NewConsoleLogger() *zerolog.Logger {
	return New()
}
