// Package logger configures the structured logger shared by all commands.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultLevel keeps stderr quiet unless something needs attention.
const DefaultLevel = "warn"

// New returns a console logger writing to w at the given level.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// ParseLevel accepts zerolog level names (trace, debug, info, warn, error, fatal, panic, disabled).
func ParseLevel(s string) (zerolog.Level, error) {
	if strings.TrimSpace(s) == "" {
		s = DefaultLevel
	}
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

// Setup installs a stderr console logger as the global zerolog logger.
func Setup(level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	log.Logger = New(os.Stderr, lvl)
	return nil
}

func init() {
	log.Logger = New(os.Stderr, zerolog.WarnLevel)
}
