// Package logging provides the small structured-logging interface that the
// node cache layer takes, so it can be tested and embedded without
// depending on a concrete logging backend.
package logging

import (
	"io"
	"log"
	"os"
)

// Logger is the dependency-injected logging interface. internal/nodecache
// takes one of these instead of calling the log package directly; the
// store and catalog packages take no logger and do not log.
type Logger interface {
	Debug(msg string, fields ...interface{})
	Info(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
	Error(msg string, fields ...interface{})
}

// DefaultLogger wraps the standard library's log.Logger.
type DefaultLogger struct {
	logger *log.Logger
}

// NewDefaultLogger returns a DefaultLogger writing to w with msg lines
// prefixed by prefix, ahead of the level tag. A nil w writes to stderr;
// an empty prefix omits the extra tag.
func NewDefaultLogger(w io.Writer, prefix string) *DefaultLogger {
	if w == nil {
		w = os.Stderr
	}
	if prefix != "" {
		prefix += " "
	}
	return &DefaultLogger{logger: log.New(w, prefix, log.LstdFlags)}
}

func (l *DefaultLogger) Debug(msg string, fields ...interface{}) {
	l.logger.Printf("[DEBUG] "+msg, fields...)
}

func (l *DefaultLogger) Info(msg string, fields ...interface{}) {
	l.logger.Printf("[INFO] "+msg, fields...)
}

func (l *DefaultLogger) Warn(msg string, fields ...interface{}) {
	l.logger.Printf("[WARN] "+msg, fields...)
}

func (l *DefaultLogger) Error(msg string, fields ...interface{}) {
	l.logger.Printf("[ERROR] "+msg, fields...)
}

// NoOpLogger discards everything. Useful in tests that don't want log
// noise but still need to satisfy the Logger interface.
type NoOpLogger struct{}

func (NoOpLogger) Debug(string, ...interface{}) {}
func (NoOpLogger) Info(string, ...interface{})  {}
func (NoOpLogger) Warn(string, ...interface{})  {}
func (NoOpLogger) Error(string, ...interface{}) {}
