// Package logger wraps charmbracelet/log behind a package-level default so the
// rest of the application logs through one configurable sink.
package logger

import (
	charm "github.com/charmbracelet/log"
)

// SetLevelString parses a level name (debug, info, warn, error) and applies it
// to the default logger. Unknown names leave the level unchanged.
func SetLevelString(level string) error {
	if level == "" {
		return nil
	}
	parsed, err := charm.ParseLevel(level)
	if err != nil {
		return err
	}
	Default().SetLevel(parsed)
	return nil
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg interface{}, keyvals ...interface{}) {
	Default().Debug(msg, keyvals...)
}

// Info logs an info message with optional key-value pairs.
func Info(msg interface{}, keyvals ...interface{}) {
	Default().Info(msg, keyvals...)
}

// Warn logs a warning message with optional key-value pairs.
func Warn(msg interface{}, keyvals ...interface{}) {
	Default().Warn(msg, keyvals...)
}

// Error logs an error message with optional key-value pairs.
func Error(msg interface{}, keyvals ...interface{}) {
	Default().Error(msg, keyvals...)
}
