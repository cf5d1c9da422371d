// Package logger provides a simple logging interface for medstock components.
// It allows packages to log debug, info, warn, and error messages without
// being coupled to a specific logging implementation.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

// DebugEnv enables debug output when set to any non-empty value.
const DebugEnv = "MEDSTOCK_DEBUG"

// Logger defines the interface for logging operations.
// All methods accept a format string and arguments, similar to fmt.Printf.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// forceDebug is flipped by --verbose.
var forceDebug atomic.Bool

// SetVerbose enables debug output regardless of MEDSTOCK_DEBUG.
func SetVerbose(v bool) {
	forceDebug.Store(v)
}

func debugEnabled() bool {
	return forceDebug.Load() || os.Getenv(DebugEnv) != ""
}

// envLogger implements Logger on top of charmbracelet/log.
// Debug messages are only printed when MEDSTOCK_DEBUG is set or verbose mode is on.
type envLogger struct {
	log *log.Logger
}

// NewEnvLogger creates a stderr logger that respects MEDSTOCK_DEBUG.
// The prefix is prepended to all log messages (e.g., "dashboard" or "stats").
func NewEnvLogger(prefix string) Logger {
	return NewWriterLogger(os.Stderr, prefix)
}

// NewWriterLogger is NewEnvLogger writing to w.
func NewWriterLogger(w io.Writer, prefix string) Logger {
	l := log.NewWithOptions(w, log.Options{
		Prefix: prefix,
		Level:  log.DebugLevel,
	})
	return &envLogger{log: l}
}

func (l *envLogger) Debug(format string, args ...interface{}) {
	if debugEnabled() {
		l.log.Debugf(format, args...)
	}
}

func (l *envLogger) Info(format string, args ...interface{}) {
	l.log.Infof(format, args...)
}

func (l *envLogger) Warn(format string, args ...interface{}) {
	l.log.Warnf(format, args...)
}

func (l *envLogger) Error(format string, args ...interface{}) {
	l.log.Errorf(format, args...)
}

// noopLogger implements Logger but discards all messages.
// Interactive views use it so log lines never tear the alt screen.
type noopLogger struct{}

// Noop returns a logger that discards all messages.
func Noop() Logger {
	return &noopLogger{}
}

func (l *noopLogger) Debug(format string, args ...interface{}) {}
func (l *noopLogger) Info(format string, args ...interface{})  {}
func (l *noopLogger) Warn(format string, args ...interface{})  {}
func (l *noopLogger) Error(format string, args ...interface{}) {}

// LogMessage represents a captured log message.
type LogMessage struct {
	Level   string
	Message string
}

// BufferLogger captures log messages for testing.
type BufferLogger struct {
	Messages []LogMessage
}

// NewBufferLogger creates a logger that captures messages for inspection.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{
		Messages: make([]LogMessage, 0),
	}
}

func (l *BufferLogger) Debug(format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: "debug", Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Info(format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: "info", Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Warn(format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: "warn", Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Error(format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: "error", Message: fmt.Sprintf(format, args...)})
}

// HasLevel returns true if any message was logged at the given level.
func (l *BufferLogger) HasLevel(level string) bool {
	for _, m := range l.Messages {
		if m.Level == level {
			return true
		}
	}
	return false
}

// Clear removes all captured messages.
func (l *BufferLogger) Clear() {
	l.Messages = l.Messages[:0]
}

var defaultLogger = NewEnvLogger("medstock")

// Default returns the package-level default logger.
func Default() Logger {
	return defaultLogger
}

// SetDefault sets the default logger for the package.
func SetDefault(l Logger) {
	defaultLogger = l
}
