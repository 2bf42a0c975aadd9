package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// DefaultLogLevel is used until a config file says otherwise
const DefaultLogLevel = "info"

// newLogger creates the application logger. Filtering happens through the
// global level so that a reloaded config applies to every derived logger.
func newLogger(w io.Writer) zerolog.Logger {
	if w == nil {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	}
	return zerolog.New(w).
		Level(zerolog.TraceLevel).
		With().
		Timestamp().
		Str("component", "app").
		Logger()
}

// applyLogLevel parses a level name and makes it the global level
func applyLogLevel(level string) error {
	if level == "" {
		level = DefaultLogLevel
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}
