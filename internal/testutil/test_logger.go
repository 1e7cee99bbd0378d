package testutil

import (
	"os"

	"github.com/rs/zerolog"
)

// NewTestLogger writes human-readable debug output to stderr so log lines
// show up interleaved with failing test output.
func NewTestLogger() *zerolog.Logger {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.DebugLevel).
		With().Timestamp().Logger()
	return &logger
}
