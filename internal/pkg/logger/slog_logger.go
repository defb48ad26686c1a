package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/MGTheTrain/hbnb-storage/internal/pkg/config"
)

// SlogLogger is the Logger implementation backed by log/slog.
type SlogLogger struct {
	logger *slog.Logger
}

// NewConsoleLogger creates a text logger on stdout with the specified log level.
func NewConsoleLogger(level string) Logger {
	return NewWriterLogger(os.Stdout, level, false)
}

// NewFileLogger creates a JSON logger writing to a rotated file.
func NewFileLogger(level string, filePath string, maxSize int, maxBackups int, maxAge int) Logger {
	return NewWriterLogger(rotatingWriter(&config.LoggerSettings{
		FilePath:   filePath,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
	}), level, true)
}

// NewWriterLogger creates a logger on an arbitrary writer, as text or JSON.
func NewWriterLogger(w io.Writer, level string, json bool) Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	var handler slog.Handler
	if json {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return &SlogLogger{logger: slog.New(handler)}
}

// Debug logs a debug message.
func (l *SlogLogger) Debug(args ...interface{}) {
	l.logger.Debug(formatArgs(args...))
}

// Info logs an informational message.
func (l *SlogLogger) Info(args ...interface{}) {
	l.logger.Info(formatArgs(args...))
}

// Warn logs a warning message.
func (l *SlogLogger) Warn(args ...interface{}) {
	l.logger.Warn(formatArgs(args...))
}

// Error logs an error message.
func (l *SlogLogger) Error(args ...interface{}) {
	l.logger.Error(formatArgs(args...))
}

// Fatal logs a fatal message and exits.
func (l *SlogLogger) Fatal(args ...interface{}) {
	l.logger.Error(formatArgs(args...))
	os.Exit(1)
}

// Panic logs a panic message and panics.
func (l *SlogLogger) Panic(args ...interface{}) {
	msg := formatArgs(args...)
	l.logger.Error(msg)
	panic(msg)
}

// With returns a child logger carrying keyvals.
func (l *SlogLogger) With(keyvals ...interface{}) Logger {
	return &SlogLogger{logger: l.logger.With(keyvals...)}
}
