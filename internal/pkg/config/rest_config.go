package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable override, e.g. RSA_VISUALIZER_PORT
const EnvPrefix = "RSA_VISUALIZER"

// RestConfig holds the settings of the REST API process
type RestConfig struct {
	Port   string         `mapstructure:"port"`
	Logger LoggerSettings `mapstructure:"logger"`
	Engine EngineSettings `mapstructure:"engine"`
	Cors   CorsSettings   `mapstructure:"cors"`
}

// Validate checks the config and every nested settings block
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.Var(c.Port, "required,numeric"); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Engine.Validate(); err != nil {
		return err
	}
	if err := c.Cors.Validate(); err != nil {
		return err
	}

	return nil
}

// InitializeRestConfig reads the YAML file at path, applies RSA_VISUALIZER_* environment
// overrides and defaults, and validates the result. A missing file is not an error
// so the process can run on defaults and environment alone.
func InitializeRestConfig(path string) (*RestConfig, error) {
	v := viper.New()
	setRestDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setRestDefaults(v *viper.Viper) {
	engine := DefaultEngineSettings()
	logger := DefaultLoggerSettings()

	v.SetDefault("port", "5000")
	v.SetDefault("logger.log_level", logger.LogLevel)
	v.SetDefault("logger.log_type", logger.LogType)
	v.SetDefault("logger.file_path", logger.FilePath)
	v.SetDefault("logger.max_size", logger.MaxSize)
	v.SetDefault("logger.max_backups", logger.MaxBackups)
	v.SetDefault("logger.max_age", logger.MaxAge)
	v.SetDefault("logger.compress", logger.Compress)
	v.SetDefault("engine.miller_rabin_rounds", engine.MillerRabinRounds)
	v.SetDefault("engine.max_prime_attempts", engine.MaxPrimeAttempts)
	v.SetDefault("engine.keygen_timeout", engine.KeygenTimeout)
	v.SetDefault("engine.max_bits_per_prime", engine.MaxBitsPerPrime)
	v.SetDefault("engine.byte_policy", engine.BytePolicy)
	v.SetDefault("cors.allow_origins", []string{"*"})
	v.SetDefault("cors.max_age", "12h")
}
