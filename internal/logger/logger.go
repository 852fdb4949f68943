// Package logger holds the process-wide structured logger.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Format selects the slog handler.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Options configures the default logger.
type Options struct {
	Level  slog.Level
	Format Format
	Output io.Writer // defaults to os.Stderr
}

var (
	mu            sync.RWMutex
	defaultLogger *slog.Logger
	once          sync.Once
)

// Initialize sets up the default logger: text to stderr at warn level.
func Initialize() {
	once.Do(func() {
		mu.Lock()
		defer mu.Unlock()
		if defaultLogger == nil {
			defaultLogger = New(Options{Level: slog.LevelWarn})
		}
	})
}

// New builds a logger from opts without touching the default.
func New(opts Options) *slog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	hopts := &slog.HandlerOptions{Level: opts.Level}

	var handler slog.Handler
	switch opts.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(out, hopts)
	default:
		handler = slog.NewTextHandler(out, hopts)
	}
	return slog.New(handler)
}

// Configure replaces the default logger.
func Configure(opts Options) {
	l := New(opts)
	once.Do(func() {})
	mu.Lock()
	defaultLogger = l
	mu.Unlock()
}

// ParseLevel parses debug, info, warn or error.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

// ParseFormat parses text or json.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("invalid log format %q", s)
}

// Get returns the default structured logger
func Get() *slog.Logger {
	Initialize()
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}

// Debug logs a debug level message
func Debug(msg string, args ...any) {
	Get().Debug(msg, args...)
}

// Info logs an info level message
func Info(msg string, args ...any) {
	Get().Info(msg, args...)
}

// Warn logs a warning level message
func Warn(msg string, args ...any) {
	Get().Warn(msg, args...)
}

// With returns a logger with the given attributes
func With(args ...any) *slog.Logger {
	return Get().With(args...)
}
