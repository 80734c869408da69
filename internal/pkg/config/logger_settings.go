package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Log levels, lowest first
const (
	LogLevelDebug    = "debug"
	LogLevelInfo     = "info"
	LogLevelWarning  = "warning"
	LogLevelError    = "error"
	LogLevelCritical = "critical"
)

// Log sinks
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// Rotation limits accepted for the file sink
const (
	maxLogFileSizeMB  = 100
	maxLogFileBackups = 10
	maxLogFileAgeDays = 365
)

// LoggerSettings selects the log sink and level. The rotation fields only
// apply to the file sink, where they are handed to lumberjack.
type LoggerSettings struct {
	LogLevel   string `mapstructure:"log_level" validate:"required,oneof=debug info warning error critical"`
	LogType    string `mapstructure:"log_type" validate:"required,oneof=console file"`
	FilePath   string `mapstructure:"file_path" validate:"required_if=LogType file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

// DefaultLoggerSettings logs info and above to the console
func DefaultLoggerSettings() LoggerSettings {
	return LoggerSettings{
		LogLevel: LogLevelInfo,
		LogType:  LogTypeConsole,
	}
}

// Validate checks the settings. Every rotation problem of a file sink is reported, not just the first.
func (s *LoggerSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for LoggerSettings: %w", err)
	}

	if s.LogType != LogTypeFile {
		return nil
	}

	var errs []error
	if s.MaxSize < 1 || s.MaxSize > maxLogFileSizeMB {
		errs = append(errs, fmt.Errorf("max_size must be between 1 and %d MB, got %d", maxLogFileSizeMB, s.MaxSize))
	}
	if s.MaxBackups < 1 || s.MaxBackups > maxLogFileBackups {
		errs = append(errs, fmt.Errorf("max_backups must be between 1 and %d, got %d", maxLogFileBackups, s.MaxBackups))
	}
	if s.MaxAge < 1 || s.MaxAge > maxLogFileAgeDays {
		errs = append(errs, fmt.Errorf("max_age must be between 1 and %d days, got %d", maxLogFileAgeDays, s.MaxAge))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid file logger rotation: %w", errors.Join(errs...))
	}

	return nil
}
