//go:build unit
// +build unit

package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/Ohad-Ma/RSA-Visualizer/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLoggerSingleton() {
	loggerInstance = nil
	loggerErr = nil
	loggerOnce = sync.Once{}
}

func TestNewLogger_SelectsSink(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "rest.log")

	file, err := newLogger(&config.LoggerSettings{
		LogLevel:   config.LogLevelWarning,
		LogType:    config.LogTypeFile,
		FilePath:   logPath,
		MaxSize:    1,
		MaxBackups: 1,
		MaxAge:     1,
		Compress:   true,
	})
	require.NoError(t, err)

	file.Info("suppressed below warning")
	file.Warn("dropped 3 bytes")

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "suppressed below warning")
	assert.Contains(t, string(content), "dropped 3 bytes")

	console, err := newLogger(&config.LoggerSettings{
		LogLevel: config.LogLevelDebug,
		LogType:  config.LogTypeConsole,
	})
	require.NoError(t, err)
	assert.IsType(t, &slogLogger{}, console)
}

func TestNewLogger_RejectsInvalidSettings(t *testing.T) {
	tests := []struct {
		name     string
		settings *config.LoggerSettings
	}{
		{"nil settings", nil},
		{"unknown level", &config.LoggerSettings{LogLevel: "verbose", LogType: config.LogTypeConsole}},
		{"unknown sink", &config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: "syslog"}},
		{"file sink without rotation", &config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeFile, FilePath: "/tmp/rsa.log"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := newLogger(tt.settings)
			assert.Error(t, err)
			assert.Nil(t, logger)
		})
	}
}

func TestInitLogger_FirstCallWins(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	_, err := GetLogger()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not initialized")

	require.NoError(t, InitLogger(&config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeConsole}))
	first, err := GetLogger()
	require.NoError(t, err)

	// a second, different configuration is ignored
	require.NoError(t, InitLogger(&config.LoggerSettings{LogLevel: "verbose", LogType: config.LogTypeConsole}))
	second, err := GetLogger()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestInitLogger_FailureIsSticky(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	assert.Error(t, InitLogger(nil))
	assert.Error(t, InitLogger(&config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeConsole}))

	logger, err := GetLogger()
	assert.Error(t, err)
	assert.Nil(t, logger)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
	}{
		{config.LogLevelDebug, slog.LevelDebug},
		{config.LogLevelInfo, slog.LevelInfo},
		{config.LogLevelWarning, slog.LevelWarn},
		{config.LogLevelError, slog.LevelError},
		{config.LogLevelCritical, levelCritical},
		{"unknown", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.level))
		})
	}
}

func TestHandlerOptions_NamesCriticalLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newConsoleLogger(&buf, config.LogLevelCritical)

	logger.Error("hidden")
	assert.Panics(t, func() { logger.Panic("exponent search failed") })

	output := buf.String()
	assert.NotContains(t, output, "hidden")
	assert.Contains(t, output, "level=CRITICAL")
	assert.NotContains(t, output, "ERROR+4")
}

func TestFormatArgs(t *testing.T) {
	assert.Equal(t, "", formatArgs())
	assert.Equal(t, "Generated RSA keypair with 16-bit primes", formatArgs("Generated RSA keypair with ", 16, "-bit primes"))
}
