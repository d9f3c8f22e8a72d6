// Package logging builds zerolog loggers and carries them through contexts.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
	// File, when set, receives a JSON copy of every record.
	File string
	// FileOnly drops the stderr output when File is set. Used while a
	// full-screen TUI owns the terminal.
	FileOnly bool
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	return newLogger(cfg, consoleOrJSON(cfg, os.Stderr))
}

// NewWithFile creates a logger that also appends to cfg.File.
// The returned cleanup closes the file.
func NewWithFile(cfg Config) (zerolog.Logger, func(), error) {
	if cfg.File == "" {
		return New(cfg), func() {}, nil
	}

	const logDirPerm = 0o755
	const logFilePerm = 0o644
	if err := os.MkdirAll(filepath.Dir(cfg.File), logDirPerm); err != nil {
		return New(cfg), func() {}, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, logFilePerm)
	if err != nil {
		return New(cfg), func() {}, fmt.Errorf("failed to open log file: %w", err)
	}

	if cfg.FileOnly {
		return newLogger(cfg, f), func() { _ = f.Close() }, nil
	}
	out := zerolog.MultiLevelWriter(consoleOrJSON(cfg, os.Stderr), f)
	return newLogger(cfg, out), func() { _ = f.Close() }, nil
}

// Nop returns a disabled logger.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

func newLogger(cfg Config, out io.Writer) zerolog.Logger {
	return zerolog.New(out).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

func consoleOrJSON(cfg Config, w io.Writer) io.Writer {
	if cfg.Format == "json" {
		return w
	}
	return zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: cfg.TimeFormat,
	}
}

// ParseLevel converts a level name into a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// NewFromEnv creates a logger based on environment variables
// SIDEDOCK_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// SIDEDOCK_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return New(ConfigFromEnv(DefaultConfig()))
}

// ConfigFromEnv overrides cfg with SIDEDOCK_LOG_LEVEL and SIDEDOCK_LOG_FORMAT.
func ConfigFromEnv(cfg Config) Config {
	if level := os.Getenv("SIDEDOCK_LOG_LEVEL"); level != "" {
		cfg.Level = ParseLevel(level)
	}

	if format := os.Getenv("SIDEDOCK_LOG_FORMAT"); format != "" {
		switch format {
		case "json", "console":
			cfg.Format = format
		}
	}
	return cfg
}
