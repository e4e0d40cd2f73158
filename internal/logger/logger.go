// Package logger provides a thin wrapper around zerolog.Logger with the
// constructors used throughout the application. Application code passes
// *Logger by pointer; request-scoped child loggers are attached by the
// HTTP middleware.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger embeds zerolog.Logger so the full zerolog API is available
// directly on *Logger.
type Logger struct {
	zerolog.Logger
}

// New constructs a JSON logger writing to stdout, tagged with the given
// role label (e.g. "server").
func New(role string) *Logger {
	l := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{l}
}

// Child returns a child logger carrying the given string field.
func (l *Logger) Child(key, value string) *Logger {
	child := l.Logger.With().Str(key, value).Logger()
	return &Logger{child}
}
