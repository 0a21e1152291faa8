// Package logger provides a small named, leveled logger. The terminal is owned
// by the UI, so output goes to a debug file or is discarded.
package logger

import (
	"fmt"
	"io"
	"log"
	"sync"
)

// Level is a log severity
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger writes "[name] LEVEL: message" lines
type Logger struct {
	name   string
	min    Level
	logger *log.Logger
	mu     *sync.Mutex
}

// New creates a logger writing to w
func New(w io.Writer, name string) *Logger {
	if w == nil {
		w = io.Discard
	}
	return &Logger{
		name:   name,
		min:    LevelDebug,
		logger: log.New(w, "", log.LstdFlags|log.Lmicroseconds),
		mu:     &sync.Mutex{},
	}
}

// Discard returns a logger that drops everything
func Discard() *Logger {
	return New(io.Discard, "")
}

// Named returns a logger sharing the same output under another name
func (l *Logger) Named(name string) *Logger {
	if l == nil {
		return nil
	}
	child := *l
	child.name = name
	return &child
}

// SetLevel drops messages below min
func (l *Logger) SetLevel(min Level) {
	if l != nil {
		l.min = min
	}
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...interface{}) {
	l.output(LevelDebug, format, args...)
}

// Info logs an informational message
func (l *Logger) Info(format string, args ...interface{}) {
	l.output(LevelInfo, format, args...)
}

// Warning logs a warning
func (l *Logger) Warning(format string, args ...interface{}) {
	l.output(LevelWarning, format, args...)
}

// Error logs an error
func (l *Logger) Error(format string, args ...interface{}) {
	l.output(LevelError, format, args...)
}

func (l *Logger) output(level Level, format string, args ...interface{}) {
	if l == nil || level < l.min {
		return
	}
	msg := fmt.Sprintf(format, args...)
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.name == "" {
		l.logger.Printf("%s: %s", level, msg)
		return
	}
	l.logger.Printf("[%s] %s: %s", l.name, level, msg)
}
