// Package logging configures the process-wide zerolog logger.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Setup builds a console logger at the given level. Unknown levels fall
// back to info. Operational logs go to stderr so the analysis summary on
// stdout stays clean.
func Setup(level string) zerolog.Logger {
	return New(level, os.Stderr)
}

// New builds a console logger writing to w.
func New(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}
