package testutil

import (
	"testing"

	"github.com/Ohad-Ma/RSA-Visualizer/internal/pkg/config"
	"github.com/Ohad-Ma/RSA-Visualizer/internal/pkg/logger"
	"github.com/stretchr/testify/require"
)

// SetupTestLogger initializes the process-wide console logger and returns it.
// Later calls return the same instance.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelError,
		LogType:  config.LogTypeConsole,
	}

	err := logger.InitLogger(settings)
	require.NoError(t, err)

	log, err := logger.GetLogger()
	require.NoError(t, err)

	return log
}
