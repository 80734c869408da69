package logger

import (
	"io"
	"log/slog"
	"os"
)

// NewConsoleLogger creates a new console logger with the specified log level.
func NewConsoleLogger(level string) Logger {
	return newConsoleLogger(os.Stdout, level)
}

func newConsoleLogger(w io.Writer, level string) Logger {
	return &slogLogger{logger: slog.New(slog.NewTextHandler(w, handlerOptions(level)))}
}
