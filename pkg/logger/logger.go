package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NewWithWriter creates a logger writing to out. Commands pass stderr so
// stdout is left to the diagnostic stream.
func NewWithWriter(out io.Writer, env, level string) zerolog.Logger {
	// Configure zerolog
	zerolog.TimeFieldFormat = time.RFC3339Nano

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	if env == "production" {
		// Use JSON format in production
		return zerolog.New(out).
			Level(lvl).
			With().
			Timestamp().
			Caller().
			Logger()
	}

	// Use console format in development
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).
		Level(lvl).
		With().
		Timestamp().
		Caller().
		Logger()
}

// WithRequestID returns a logger with request ID
func WithRequestID(logger zerolog.Logger, requestID string) zerolog.Logger {
	return logger.With().Str("request_id", requestID).Logger()
}

// WithRunID returns a logger with run ID
func WithRunID(logger zerolog.Logger, runID string) zerolog.Logger {
	return logger.With().Str("run_id", runID).Logger()
}

// WithFile returns a logger with the input file path
func WithFile(logger zerolog.Logger, path string) zerolog.Logger {
	return logger.With().Str("file", path).Logger()
}
