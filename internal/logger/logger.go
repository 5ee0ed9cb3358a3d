package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

type contextKey string

// LoggerKey is the context key the pipeline logger travels under.
const LoggerKey contextKey = "logger"

// New returns the default console logger used by the binaries.
func New() zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).With().Timestamp().Logger()
}

// NewWithWriter returns a structured logger writing to w, handy for
// capturing output in tests.
func NewWithWriter(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}

// WithContext attaches the logger to ctx.
func WithContext(ctx context.Context, log zerolog.Logger) context.Context {
	return context.WithValue(ctx, LoggerKey, log)
}

// FromContext retrieves the logger from ctx, falling back to the
// default logger when none was attached.
func FromContext(ctx context.Context) zerolog.Logger {
	if log, ok := ctx.Value(LoggerKey).(zerolog.Logger); ok {
		return log
	}
	return New()
}
