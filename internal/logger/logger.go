package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Log output defaults to discard so packages can log before InitLogger runs
// (and so tests stay quiet). InitLogger wires up the real destinations.
var defaultLogger = slog.New(slog.NewJSONHandler(io.Discard, nil))

// LogFilePath determines the application log file location per the XDG spec.
func LogFilePath() (string, error) {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not get user home directory: %w", err)
		}
		stateDir = filepath.Join(homeDir, ".local", "state")
	}
	return filepath.Join(stateDir, "1password-utils", "app.log"), nil
}

// InitLogger configures logging for a CLI run. Logs always go to the app log
// file when it can be opened; verbose additionally mirrors them to stderr.
// It should be called once, before any command does real work.
func InitLogger(verbose bool) {
	var writers []io.Writer

	logFilePath, err := LogFilePath()
	if err == nil {
		logDir := filepath.Dir(logFilePath)
		if mkErr := os.MkdirAll(logDir, 0750); mkErr == nil {
			file, openErr := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
			if openErr == nil {
				writers = append(writers, file)
			} else if verbose {
				fmt.Fprintf(os.Stderr, "Warning: could not open log file %s: %v\n", logFilePath, openErr)
			}
		}
	}

	if verbose {
		writers = append(writers, os.Stderr)
	}

	if len(writers) == 0 {
		// Nothing usable; leave the discard logger in place.
		return
	}

	var w io.Writer
	if len(writers) == 1 {
		w = writers[0]
	} else {
		w = io.MultiWriter(writers...)
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	defaultLogger = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetLogger replaces the default logger instance, mainly for tests.
func SetLogger(l *slog.Logger) {
	if l != nil {
		defaultLogger = l
	}
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

// Error logs an error message.
func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}
