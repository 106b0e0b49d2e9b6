// Package logging wraps log/slog with file output, rotation and a few
// timing helpers used around tree builds and cluster calls.
package logging

import (
	"io"
	"log/slog"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps slog.Logger with convenience methods for kflux
type Logger struct {
	logger  *slog.Logger
	enabled bool
}

// LogFormat represents the output format for logs
type LogFormat string

const (
	FormatText LogFormat = "text"
	FormatJSON LogFormat = "json"
)

// Config holds configuration for logger initialization
type Config struct {
	// FilePath is the path to the log file (empty = no logging)
	FilePath string
	// Level is the minimum log level
	Level slog.Level
	// Format is the output format (text or json)
	Format LogFormat
	// MaxSizeMB is the maximum size in MB before rotation
	MaxSizeMB int
	// MaxBackups is the maximum number of old log files to keep
	MaxBackups int
}

var (
	mu           sync.RWMutex
	globalLogger *Logger
	rotator      io.Closer
	noopLogger   = &Logger{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
)

// Init initializes the global logger. An empty FilePath disables logging.
func Init(config Config) error {
	mu.Lock()
	defer mu.Unlock()

	closeRotator()

	if config.FilePath == "" {
		globalLogger = noopLogger
		return nil
	}

	writer := &lumberjack.Logger{
		Filename:   config.FilePath,
		MaxSize:    config.MaxSizeMB,
		MaxBackups: config.MaxBackups,
		Compress:   true,
	}
	rotator = writer

	globalLogger = New(writer, config.Level, config.Format)
	return nil
}

// New builds a logger writing to w. Used by Init and by tests that want to
// inspect output.
func New(w io.Writer, level slog.Level, format LogFormat) *Logger {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch format {
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return &Logger{logger: slog.New(handler), enabled: true}
}

// SetDefault replaces the global logger, returning a func restoring the
// previous one.
func SetDefault(l *Logger) func() {
	mu.Lock()
	defer mu.Unlock()

	prev := globalLogger
	globalLogger = l
	return func() {
		mu.Lock()
		defer mu.Unlock()
		globalLogger = prev
	}
}

// Get returns the global logger, or a noop logger if Init was not called.
func Get() *Logger {
	mu.RLock()
	defer mu.RUnlock()

	if globalLogger == nil {
		return noopLogger
	}
	return globalLogger
}

func (l *Logger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

// With returns a new Logger with the given key-value pairs attached
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		logger:  l.logger.With(args...),
		enabled: l.enabled,
	}
}

// IsEnabled returns true if logging is enabled (not noop)
func (l *Logger) IsEnabled() bool {
	return l.enabled
}

// Package-level convenience functions

func Debug(msg string, args ...any) {
	Get().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	Get().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	Get().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	Get().Error(msg, args...)
}

// IsEnabled returns true if logging is enabled globally
func IsEnabled() bool {
	return Get().IsEnabled()
}

// ParseLevel converts a string to slog.Level, defaulting to info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseFormat converts a string to LogFormat, defaulting to text
func ParseFormat(format string) LogFormat {
	if strings.ToLower(format) == "json" {
		return FormatJSON
	}
	return FormatText
}

// Shutdown closes the rotating file writer, if any.
func Shutdown() error {
	mu.Lock()
	defer mu.Unlock()

	err := closeRotator()
	globalLogger = noopLogger
	return err
}

func closeRotator() error {
	if rotator == nil {
		return nil
	}
	err := rotator.Close()
	rotator = nil
	return err
}
