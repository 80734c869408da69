//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLoggerSettings(t *testing.T) {
	settings := DefaultLoggerSettings()
	assert.NoError(t, settings.Validate())
	assert.Equal(t, LogTypeConsole, settings.LogType)
}

func TestInitializeRestConfig_LoggerSection(t *testing.T) {
	tests := []struct {
		name          string
		content       string
		expectedError string
		check         func(t *testing.T, s LoggerSettings)
	}{
		{
			name:    "critical console logger",
			content: "logger:\n  log_level: critical\n",
			check: func(t *testing.T, s LoggerSettings) {
				assert.Equal(t, LogLevelCritical, s.LogLevel)
				assert.Equal(t, LogTypeConsole, s.LogType)
			},
		},
		{
			name: "compressed file logger",
			content: `
logger:
  log_level: warning
  log_type: file
  file_path: /var/log/rsa-visualizer/rest.log
  max_size: 20
  max_backups: 5
  max_age: 14
  compress: true
`,
			check: func(t *testing.T, s LoggerSettings) {
				assert.Equal(t, LogTypeFile, s.LogType)
				assert.Equal(t, "/var/log/rsa-visualizer/rest.log", s.FilePath)
				assert.Equal(t, 20, s.MaxSize)
				assert.Equal(t, 5, s.MaxBackups)
				assert.Equal(t, 14, s.MaxAge)
				assert.True(t, s.Compress)
			},
		},
		{
			name:    "rotation fields ignored for console",
			content: "logger:\n  log_type: console\n  max_size: 1000\n",
			check: func(t *testing.T, s LoggerSettings) {
				assert.Equal(t, 1000, s.MaxSize)
				assert.False(t, s.Compress)
			},
		},
		{
			name:          "unknown level",
			content:       "logger:\n  log_level: verbose\n",
			expectedError: "LogLevel",
		},
		{
			name:          "file sink without path",
			content:       "logger:\n  log_type: file\n  max_size: 10\n  max_backups: 3\n  max_age: 28\n",
			expectedError: "FilePath",
		},
		{
			name:          "file sink with oversized rotation",
			content:       "logger:\n  log_type: file\n  file_path: /tmp/rsa.log\n  max_size: 101\n  max_backups: 3\n  max_age: 28\n",
			expectedError: "max_size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := InitializeRestConfig(writeConfigFile(t, tt.content))
			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				return
			}

			require.NoError(t, err)
			tt.check(t, cfg.Logger)
		})
	}
}

func TestRestConfigValidate_ReportsEveryRotationProblem(t *testing.T) {
	cfg := &RestConfig{
		Port: "5000",
		Logger: LoggerSettings{
			LogLevel: LogLevelInfo,
			LogType:  LogTypeFile,
			FilePath: "/tmp/rsa.log",
			MaxAge:   400,
		},
		Engine: DefaultEngineSettings(),
		Cors:   CorsSettings{AllowOrigins: []string{"*"}},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_size")
	assert.Contains(t, err.Error(), "max_backups")
	assert.Contains(t, err.Error(), "max_age")

	cfg.Logger.MaxSize, cfg.Logger.MaxBackups, cfg.Logger.MaxAge = 10, 3, 28
	assert.NoError(t, cfg.Validate())
}
