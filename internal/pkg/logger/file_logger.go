package logger

import (
	"log/slog"

	"github.com/natefinch/lumberjack"

	"github.com/Ohad-Ma/RSA-Visualizer/internal/pkg/config"
)

// NewFileLogger creates a JSON logger writing to a lumberjack-rotated file
func NewFileLogger(settings *config.LoggerSettings) Logger {
	return &slogLogger{logger: slog.New(slog.NewJSONHandler(newRotatingWriter(settings), handlerOptions(settings.LogLevel)))}
}

func newRotatingWriter(settings *config.LoggerSettings) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   settings.FilePath,
		MaxSize:    settings.MaxSize,
		MaxBackups: settings.MaxBackups,
		MaxAge:     settings.MaxAge,
		Compress:   settings.Compress,
	}
}
