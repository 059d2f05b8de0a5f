package logger

import (
	"sync"

	"github.com/amirhossein-jamali/library-lending/internal/domain/port/core"
)

// NoopLogger implements the Logger interface but doesn't do anything
type NoopLogger struct {
	level core.LogLevel
}

// NewNoopLogger creates a new no-op logger
func NewNoopLogger() core.Logger {
	return &NoopLogger{
		level: core.LogLevelInfo,
	}
}

// SetLevel sets the minimum log level to output
func (l *NoopLogger) SetLevel(level core.LogLevel) {
	l.level = level
}

// GetLevel gets the current log level
func (l *NoopLogger) GetLevel() core.LogLevel {
	return l.level
}

func (l *NoopLogger) Debug(message string, fields map[string]any) {}

func (l *NoopLogger) Info(message string, fields map[string]any) {}

func (l *NoopLogger) Warn(message string, fields map[string]any) {}

func (l *NoopLogger) Error(message string, fields map[string]any) {}

// Flush is a no-op
func (l *NoopLogger) Flush() error {
	return nil
}

// Entry is a log line captured by RecordingLogger
type Entry struct {
	Level   core.LogLevel
	Message string
	Fields  map[string]any
}

// RecordingLogger keeps every entry in memory; tests use it to assert on emitted logs
type RecordingLogger struct {
	mu      sync.Mutex
	level   core.LogLevel
	entries []Entry
}

// NewRecordingLogger creates a logger that records entries at debug level and above
func NewRecordingLogger() *RecordingLogger {
	return &RecordingLogger{level: core.LogLevelDebug}
}

func (l *RecordingLogger) SetLevel(level core.LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *RecordingLogger) GetLevel() core.LogLevel {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

func (l *RecordingLogger) Debug(message string, fields map[string]any) {
	l.record(core.LogLevelDebug, message, fields)
}

func (l *RecordingLogger) Info(message string, fields map[string]any) {
	l.record(core.LogLevelInfo, message, fields)
}

func (l *RecordingLogger) Warn(message string, fields map[string]any) {
	l.record(core.LogLevelWarn, message, fields)
}

func (l *RecordingLogger) Error(message string, fields map[string]any) {
	l.record(core.LogLevelError, message, fields)
}

func (l *RecordingLogger) Flush() error {
	return nil
}

// Entries returns a copy of the recorded entries
func (l *RecordingLogger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Find returns the first entry with the given message
func (l *RecordingLogger) Find(message string) (Entry, bool) {
	for _, e := range l.Entries() {
		if e.Message == message {
			return e, true
		}
	}
	return Entry{}, false
}

func (l *RecordingLogger) record(level core.LogLevel, message string, fields map[string]any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.level {
		return
	}
	l.entries = append(l.entries, Entry{Level: level, Message: message, Fields: fields})
}
