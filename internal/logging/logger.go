// Package logging provides structured logging for the game-manager using zerolog.
//
// The interactive UI owns the terminal, so logs normally go to a file:
//
//	logger, closeLog, err := logging.New(&logging.Config{
//	    Level:  "debug",
//	    Format: "json",
//	    Output: "/home/user/.local/share/gamecat/gamecat.log",
//	})
//	defer closeLog()
//	logger.Info().Str("catalog", path).Msg("starting")
//
// Output may also be "stderr", "stdout" or "discard".
package logging

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logger configuration options
type Config struct {
	// Level is the minimum log level to output
	Level string `mapstructure:"level" yaml:"level"`

	// Format is the output format (json, console)
	Format string `mapstructure:"format" yaml:"format"`

	// Output is where to write logs (stderr, stdout, discard or file path)
	Output string `mapstructure:"output" yaml:"output"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Level:  "info",
		Format: "json",
		Output: "discard",
	}
}

// New creates a logger from configuration.
//
// The returned close function releases the log file, if one was opened;
// it is always safe to call.
func New(cfg *Config) (zerolog.Logger, func() error, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	noop := func() error { return nil }

	var (
		output  io.Writer
		closeFn = noop
	)
	switch strings.ToLower(cfg.Output) {
	case "", "discard", "none":
		return zerolog.Nop(), noop, nil
	case "stdout":
		output = os.Stdout
	case "stderr":
		output = os.Stderr
	default:
		if err := os.MkdirAll(filepath.Dir(cfg.Output), 0755); err != nil {
			return zerolog.Nop(), noop, err
		}
		file, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return zerolog.Nop(), noop, err
		}
		output = file
		closeFn = file.Close
	}

	if strings.EqualFold(cfg.Format, "console") {
		output = zerolog.ConsoleWriter{Out: output, TimeFormat: time.Kitchen, NoColor: os.Getenv("NO_COLOR") != ""}
	}

	level := ParseLevel(cfg.Level)
	logger := zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()

	if level <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}

	return logger, closeFn, nil
}

// ParseLevel parses a log level string, falling back to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "warning":
		return zerolog.WarnLevel
	case "disabled", "none", "off":
		return zerolog.Disabled
	}
	if l, err := zerolog.ParseLevel(strings.ToLower(level)); err == nil && level != "" {
		return l
	}
	return zerolog.InfoLevel
}

// contextKey is a custom type for context keys to avoid collisions.
type contextKey struct{}

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext extracts the logger from context, or returns a disabled logger.
func FromContext(ctx context.Context) zerolog.Logger {
	if ctx == nil {
		return zerolog.Nop()
	}
	if logger, ok := ctx.Value(contextKey{}).(zerolog.Logger); ok {
		return logger
	}
	return zerolog.Nop()
}
