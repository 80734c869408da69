package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Ohad-Ma/RSA-Visualizer/internal/domain/rsa"
)

// Byte policies of the text codec
const (
	BytePolicyStrict = rsa.BytePolicyStrict
	BytePolicyDrop   = rsa.BytePolicyDrop
)

// EngineSettings tunes the textbook RSA engine
type EngineSettings struct {
	MillerRabinRounds int           `mapstructure:"miller_rabin_rounds" validate:"min=1,max=128"`
	MaxPrimeAttempts  int           `mapstructure:"max_prime_attempts" validate:"min=1"`
	KeygenTimeout     time.Duration `mapstructure:"keygen_timeout"`
	MaxBitsPerPrime   int           `mapstructure:"max_bits_per_prime" validate:"min=2,max=8192"`
	BytePolicy        string        `mapstructure:"byte_policy" validate:"required,oneof=strict drop"`
}

// DefaultEngineSettings returns the settings used when the config file omits the engine section
func DefaultEngineSettings() EngineSettings {
	return EngineSettings{
		MillerRabinRounds: rsa.DefaultMillerRabinRounds,
		MaxPrimeAttempts:  rsa.DefaultMaxPrimeAttempts,
		KeygenTimeout:     30 * time.Second,
		MaxBitsPerPrime:   2048,
		BytePolicy:        BytePolicyStrict,
	}
}

// Validate checks that all fields in EngineSettings are valid
func (s *EngineSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for EngineSettings: %w", err)
	}

	// zero disables the keygen deadline
	if s.KeygenTimeout < 0 {
		return fmt.Errorf("keygen timeout cannot be negative")
	}

	return nil
}
