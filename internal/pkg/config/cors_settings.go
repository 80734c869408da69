package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// CorsSettings controls which browser origins may call the REST API
type CorsSettings struct {
	AllowOrigins []string      `mapstructure:"allow_origins" validate:"required,min=1,dive,required"`
	MaxAge       time.Duration `mapstructure:"max_age"`
}

// Validate checks that all fields in CorsSettings are valid
func (s *CorsSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for CorsSettings: %w", err)
	}

	return nil
}
