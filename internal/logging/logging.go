// Package logging builds the application's zerolog logger.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Builder configures a logger
type Builder struct {
	writer io.Writer
	level  zerolog.Level
	format string
}

// New returns a builder writing text at info level to stderr
func New() *Builder {
	return &Builder{
		writer: os.Stderr,
		level:  zerolog.InfoLevel,
		format: FormatText,
	}
}

// WithWriter sets the destination
func (b *Builder) WithWriter(w io.Writer) *Builder {
	b.writer = w
	return b
}

// WithLevel sets the minimum level from its name. Unknown names mean info.
func (b *Builder) WithLevel(level string) *Builder {
	b.level = ParseLevel(level)
	return b
}

// WithFormat selects "text" (console) or "json" output
func (b *Builder) WithFormat(format string) *Builder {
	b.format = format
	return b
}

// Make builds the logger
func (b *Builder) Make() zerolog.Logger {
	w := b.writer
	if strings.EqualFold(b.format, FormatText) {
		w = zerolog.ConsoleWriter{Out: b.writer, TimeFormat: time.Kitchen, NoColor: true}
	}
	return zerolog.New(w).Level(b.level).With().Timestamp().Logger()
}

// ParseLevel maps a level name to a zerolog level
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
