package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Ohad-Ma/RSA-Visualizer/internal/pkg/validators"
)

// maxNumberExponent bounds the exponent of a JSON number that is normalised
// to an integer; larger exponents are kept verbatim and fail validation.
const maxNumberExponent = 4096

// Decimal is a big integer carried as its base-10 text. It unmarshals from a
// JSON string or a JSON number so browsers can send either.
type Decimal string

// UnmarshalJSON accepts "123" and 123 alike. Integral numbers written with a
// fraction or exponent, such as 65.0 or 1e3, are rewritten as plain integers.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*d = Decimal(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return fmt.Errorf("expected a decimal string or number: %w", err)
	}
	*d = Decimal(integralNumber(n.String()))
	return nil
}

// integralNumber returns the plain integer form of a JSON number when it has
// no fractional part, and the number unchanged otherwise
func integralNumber(number string) string {
	if !strings.ContainsAny(number, ".eE") {
		return number
	}

	if i := strings.IndexAny(number, "eE"); i >= 0 {
		exponent, err := strconv.Atoi(number[i+1:])
		if err != nil || exponent > maxNumberExponent || exponent < -maxNumberExponent {
			return number
		}
	}

	value, ok := new(big.Rat).SetString(number)
	if !ok || !value.IsInt() {
		return number
	}
	return value.Num().String()
}

func decimalsToStrings(values []Decimal) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func nilIfBlank(d *Decimal) *Decimal {
	if d == nil || strings.TrimSpace(string(*d)) == "" {
		return nil
	}
	return d
}

func newValidator() (*validator.Validate, error) {
	validate := validator.New()
	if err := validators.Register(validate); err != nil {
		return nil, err
	}
	return validate, nil
}

// GenerateKeysRequest represents the body of a keypair generation request
type GenerateKeysRequest struct {
	BitsPerPrime *int     `json:"bits_per_prime" validate:"omitempty,min=2"`
	P            *Decimal `json:"p" validate:"omitempty,udecimal"`
	Q            *Decimal `json:"q" validate:"omitempty,udecimal"`
}

// Validate checks the request fields. Blank primes count as absent.
func (r *GenerateKeysRequest) Validate() error {
	r.P = nilIfBlank(r.P)
	r.Q = nilIfBlank(r.Q)

	validate, err := newValidator()
	if err != nil {
		return err
	}
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// EncryptRequest represents the body of an encryption request
type EncryptRequest struct {
	Message string  `json:"message"`
	E       Decimal `json:"e" validate:"required,decimal"`
	N       Decimal `json:"n" validate:"required,decimal"`
}

// Validate checks the request fields
func (r *EncryptRequest) Validate() error {
	validate, err := newValidator()
	if err != nil {
		return err
	}
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// DecryptRequest represents the body of a decryption request
type DecryptRequest struct {
	Cipher []Decimal `json:"cipher" validate:"required,dive,decimal"`
	D      Decimal   `json:"d" validate:"required,decimal"`
	N      Decimal   `json:"n" validate:"required,decimal"`
}

// Validate checks the request fields
func (r *DecryptRequest) Validate() error {
	validate, err := newValidator()
	if err != nil {
		return err
	}
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// PrimalityRequest represents the body of a primality test request
type PrimalityRequest struct {
	N      Decimal `json:"n" validate:"required,decimal"`
	Rounds *int    `json:"rounds" validate:"omitempty,min=0,max=128"`
}

// Validate checks the request fields
func (r *PrimalityRequest) Validate() error {
	validate, err := newValidator()
	if err != nil {
		return err
	}
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// KeypairResponse represents a generated keypair. Big integers are decimal strings.
type KeypairResponse struct {
	P            string `json:"p"`
	Q            string `json:"q"`
	N            string `json:"n"`
	Phi          string `json:"phi"`
	E            string `json:"e"`
	D            string `json:"d"`
	BitsPerPrime int    `json:"bits_per_prime"`
}

// EncryptResponse holds one cipher block per message byte
type EncryptResponse struct {
	Cipher []string `json:"cipher"`
}

// DecryptResponse holds the decoded plaintext
type DecryptResponse struct {
	Message string `json:"message"`
}

// PrimalityResponse holds a Miller-Rabin verdict
type PrimalityResponse struct {
	N             string `json:"n"`
	Rounds        int    `json:"rounds"`
	ProbablePrime bool   `json:"probable_prime"`
}

// HealthResponse reports liveness
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse represents an error message
type ErrorResponse struct {
	Message string `json:"message"`
}
