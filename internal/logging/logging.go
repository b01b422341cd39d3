package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Level is applied by Setup. The CLI sets it from --log-level before any
// command runs.
var Level = zerolog.InfoLevel

// Setup initializes a stderr zerolog.Logger based on the requested format.
// format can be "text" (human-friendly console) or "json" (structured).
func Setup(format string) zerolog.Logger {
	return New(os.Stderr, format, Level)
}

// New builds a logger writing to w.
func New(w io.Writer, format string, level zerolog.Level) zerolog.Logger {
	if format == "text" {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
			NoColor:    w != os.Stderr,
		}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// ParseLevel accepts zerolog level names; an empty string means info.
func ParseLevel(s string) (zerolog.Level, error) {
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(s)
}
