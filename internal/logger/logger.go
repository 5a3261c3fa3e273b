// Package logger configures the process-wide zerolog logger.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New builds the application logger. Level comes from LOG_LEVEL (default
// info); LOG_PRETTY switches from JSON to console output for local runs.
func New() zerolog.Logger {
	level, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if os.Getenv("LOG_PRETTY") != "" {
		out = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
