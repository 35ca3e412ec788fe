// Package logger provides the leveled printf-style logger every component
// consumes through a local Logger interface.
package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// Level is a log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Logger writes leveled messages to a file or stdout.
type Logger struct {
	level Level
	std   *log.Logger
	file  *os.File
}

// New creates a logger writing to the given file path. An empty path means
// stdout. Level is one of debug|info|warn|error (case-insensitive).
func New(filePath, level string) (*Logger, error) {
	l := &Logger{level: parseLevel(level)}

	out := os.Stdout
	if filePath != "" {
		f, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: open log file: %w", err)
		}
		l.file = f
		out = f
	}

	l.std = log.New(out, "", log.LstdFlags|log.Lmicroseconds)
	return l, nil
}

func parseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

func (l *Logger) output(lvl Level, tag, format string, v ...interface{}) {
	if lvl < l.level {
		return
	}
	l.std.Printf(tag+" "+format, v...)
}

// Debug logs at debug level.
func (l *Logger) Debug(format string, v ...interface{}) {
	l.output(LevelDebug, "[DEBUG]", format, v...)
}

// Info logs at info level.
func (l *Logger) Info(format string, v ...interface{}) {
	l.output(LevelInfo, "[INFO]", format, v...)
}

// Warn logs at warn level.
func (l *Logger) Warn(format string, v ...interface{}) {
	l.output(LevelWarn, "[WARN]", format, v...)
}

// Error logs at error level.
func (l *Logger) Error(format string, v ...interface{}) {
	l.output(LevelError, "[ERROR]", format, v...)
}

// Fatal logs at error level and exits.
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.output(LevelError, "[FATAL]", format, v...)
	os.Exit(1)
}
