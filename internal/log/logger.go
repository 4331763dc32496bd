// Package log is a thin package-level wrapper over log/slog.
package log

import (
	"io"
	"log/slog"
	"os"
)

var (
	logger *slog.Logger
	out    io.Writer = os.Stdout
	level            = new(slog.LevelVar)
)

func init() {
	level.Set(slog.LevelInfo)
	logger = newLogger()
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
}

func Info(msg string, args ...any) {
	logger.Info(msg, args...)
}

func Debug(msg string, args ...any) {
	logger.Debug(msg, args...)
}

func Warn(msg string, args ...any) {
	logger.Warn(msg, args...)
}

func Error(msg string, args ...any) {
	logger.Error(msg, args...)
}

// SetLevel changes the minimum level of the package logger.
func SetLevel(l slog.Level) {
	level.Set(l)
}

// SetOutput redirects the package logger.
func SetOutput(w io.Writer) {
	out = w
	logger = newLogger()
}

// Logger returns the package logger for components that take a *slog.Logger.
func Logger() *slog.Logger {
	return logger
}
