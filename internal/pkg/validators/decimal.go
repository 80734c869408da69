package validators

import (
	"github.com/go-playground/validator/v10"

	"github.com/Ohad-Ma/RSA-Visualizer/internal/domain/rsa"
)

// Struct tags under which the decimal validations are registered
const (
	DecimalTag            = "decimal"
	NonNegativeDecimalTag = "udecimal"
)

// DecimalValidation accepts strings holding a base-10 integer with an optional sign
// and surrounding whitespace. Slices of strings are checked element-wise via dive.
func DecimalValidation(fl validator.FieldLevel) bool {
	_, err := rsa.ParseDecimal(fl.FieldName(), fl.Field().String())
	return err == nil
}

// NonNegativeDecimalValidation is DecimalValidation restricted to values >= 0
func NonNegativeDecimalValidation(fl validator.FieldLevel) bool {
	v, err := rsa.ParseDecimal(fl.FieldName(), fl.Field().String())
	return err == nil && v.Sign() >= 0
}

// Register installs the decimal tags on v
func Register(v *validator.Validate) error {
	if err := v.RegisterValidation(DecimalTag, DecimalValidation); err != nil {
		return err
	}
	return v.RegisterValidation(NonNegativeDecimalTag, NonNegativeDecimalValidation)
}
