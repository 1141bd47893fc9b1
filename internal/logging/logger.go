// Package logging builds the application's zerolog loggers and carries them
// through context.Context.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Environment overrides, read by NewFromEnv and bound by the config layer.
const (
	EnvLogLevel  = "TWICH_LOG_LEVEL"
	EnvLogFormat = "TWICH_LOG_FORMAT"
)

// Config holds logging configuration.
type Config struct {
	Level      zerolog.Level
	Format     string
	TimeFormat string

	// FileDir enables a rotated log file in addition to stderr when set.
	FileDir    string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     FormatConsole,
		TimeFormat: time.RFC3339,
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 7,
	}
}

// ParseLevel maps a config string onto a zerolog level.
func ParseLevel(s string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "", "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", s)
	}
}

// New creates a logger writing to stderr and, when cfg.FileDir is set, to a
// rotated file. The returned closer releases the file and is never nil.
func New(cfg Config) (zerolog.Logger, io.Closer, error) {
	var stderr io.Writer = os.Stderr
	if cfg.Format != FormatJSON {
		stderr = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: cfg.TimeFormat,
		}
	}

	var closer io.Closer = nopCloser{}
	output := stderr
	if cfg.FileDir != "" {
		if err := os.MkdirAll(cfg.FileDir, 0o755); err != nil {
			return zerolog.Nop(), closer, fmt.Errorf("create log dir: %w", err)
		}
		rotator, err := NewLogRotator(cfg.FileDir, cfg.MaxSizeMB, cfg.MaxBackups, cfg.MaxAgeDays, cfg.Compress)
		if err != nil {
			return zerolog.Nop(), closer, err
		}
		// files always get JSON so they stay machine readable
		output = zerolog.MultiLevelWriter(stderr, rotator)
		closer = rotator
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger(), closer, nil
}

// NewFromEnv creates a stderr logger based on environment variables.
// TWICH_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// TWICH_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	cfg := DefaultConfig()

	if level, err := ParseLevel(os.Getenv(EnvLogLevel)); err == nil {
		cfg.Level = level
	}

	switch format := os.Getenv(EnvLogFormat); format {
	case FormatJSON, FormatConsole:
		cfg.Format = format
	}

	logger, _, _ := New(cfg)
	return logger
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
