package logger

import (
	"io"
	"log/slog"
	"os"
)

// ConsoleLogger is an implementation of Logger that logs to the console.
type ConsoleLogger struct {
	slogLogger
}

// NewConsoleLogger creates a new console logger with the specified log level.
func NewConsoleLogger(level string) Logger {
	return newConsoleLogger(level, os.Stdout)
}

func newConsoleLogger(level string, w io.Writer) *ConsoleLogger {
	handler := slog.NewTextHandler(w, handlerOptions(level))
	return &ConsoleLogger{slogLogger{logger: slog.New(handler).With("service", serviceName)}}
}
