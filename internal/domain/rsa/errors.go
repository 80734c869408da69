package rsa

import "errors"

// Error kinds reported by the engine. Callers classify failures with errors.Is;
// every returned error wraps exactly one of these.
var (
	// ErrInvalidModulus is returned for a non-positive modulus
	ErrInvalidModulus = errors.New("invalid modulus")

	// ErrInvalidExponent is returned for a negative exponent
	ErrInvalidExponent = errors.New("invalid exponent")

	// ErrNotCoprime is returned when no modular inverse exists
	ErrNotCoprime = errors.New("not coprime")

	// ErrInvalidBitLength is returned when the requested prime bit length is below MinBitsPerPrime
	ErrInvalidBitLength = errors.New("invalid bit length")

	// ErrInvalidSuppliedPrime is returned when a caller-supplied p or q is not a probable prime
	ErrInvalidSuppliedPrime = errors.New("invalid supplied prime")

	// ErrPrimesNotDistinct is returned when the caller supplied p == q
	ErrPrimesNotDistinct = errors.New("primes not distinct")

	// ErrExponentSearchExhausted is returned when no public exponent below ExponentSearchCap is coprime to phi
	ErrExponentSearchExhausted = errors.New("public exponent search exhausted")

	// ErrOutOfRange is returned for a block value outside [0, n)
	ErrOutOfRange = errors.New("value out of range")

	// ErrPrimeGenerationTimeout is returned when prime generation exceeds its attempt or time budget
	ErrPrimeGenerationTimeout = errors.New("prime generation timeout")

	// ErrMalformedInput is returned for boundary values that cannot be parsed
	ErrMalformedInput = errors.New("malformed input")
)

// IsClientError reports whether err was caused by caller input rather than by the engine
func IsClientError(err error) bool {
	for _, kind := range []error{
		ErrMalformedInput,
		ErrOutOfRange,
		ErrInvalidBitLength,
		ErrInvalidSuppliedPrime,
		ErrPrimesNotDistinct,
		ErrNotCoprime,
		ErrInvalidModulus,
		ErrInvalidExponent,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
