package rsa

import (
	"fmt"
	"math/big"
	"strings"
)

var bigOne = big.NewInt(1)

// Keypair holds the textbook RSA parameters derived from two distinct primes.
// A Keypair is immutable once constructed; callers must not mutate the big.Int fields.
type Keypair struct {
	P            *big.Int
	Q            *big.Int
	N            *big.Int
	Phi          *big.Int
	E            *big.Int
	D            *big.Int
	BitsPerPrime int
}

// Validate checks the keypair invariants: distinct probable primes, n = p*q,
// phi = (p-1)(q-1), gcd(e, phi) = 1 and d*e = 1 mod phi.
func (k *Keypair) Validate() error {
	for name, v := range map[string]*big.Int{"p": k.P, "q": k.Q, "n": k.N, "phi": k.Phi, "e": k.E, "d": k.D} {
		if v == nil {
			return fmt.Errorf("keypair field %s is nil", name)
		}
	}

	if k.P.Cmp(k.Q) == 0 {
		return fmt.Errorf("%w: p equals q", ErrPrimesNotDistinct)
	}
	if !k.P.ProbablyPrime(20) || !k.Q.ProbablyPrime(20) {
		return fmt.Errorf("%w: p or q is composite", ErrInvalidSuppliedPrime)
	}

	if new(big.Int).Mul(k.P, k.Q).Cmp(k.N) != 0 {
		return fmt.Errorf("n is not p*q")
	}

	pMinusOne := new(big.Int).Sub(k.P, bigOne)
	qMinusOne := new(big.Int).Sub(k.Q, bigOne)
	if pMinusOne.Mul(pMinusOne, qMinusOne).Cmp(k.Phi) != 0 {
		return fmt.Errorf("phi is not (p-1)(q-1)")
	}

	if new(big.Int).GCD(nil, nil, k.E, k.Phi).Cmp(bigOne) != 0 {
		return fmt.Errorf("%w: gcd(e, phi) != 1", ErrNotCoprime)
	}

	de := new(big.Int).Mul(k.D, k.E)
	if de.Mod(de, k.Phi).Cmp(bigOne) != 0 {
		return fmt.Errorf("d is not the inverse of e modulo phi")
	}

	return nil
}

// KeypairView is the boundary representation of a keypair. Big integers are
// decimal strings so callers without native big integers lose no precision.
type KeypairView struct {
	P            string `json:"p"`
	Q            string `json:"q"`
	N            string `json:"n"`
	Phi          string `json:"phi"`
	E            string `json:"e"`
	D            string `json:"d"`
	BitsPerPrime int    `json:"bits_per_prime"`
}

// View converts the keypair into its decimal-string representation
func (k *Keypair) View() *KeypairView {
	return &KeypairView{
		P:            k.P.String(),
		Q:            k.Q.String(),
		N:            k.N.String(),
		Phi:          k.Phi.String(),
		E:            k.E.String(),
		D:            k.D.String(),
		BitsPerPrime: k.BitsPerPrime,
	}
}

// PrimalityView is the boundary representation of a Miller-Rabin verdict
type PrimalityView struct {
	N             string `json:"n"`
	Rounds        int    `json:"rounds"`
	ProbablePrime bool   `json:"probable_prime"`
}

// ParseDecimal parses a base-10 integer of arbitrary size. The field name is
// only used to build the error message.
func ParseDecimal(field, value string) (*big.Int, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: %s is empty", ErrMalformedInput, field)
	}

	v, ok := new(big.Int).SetString(trimmed, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a decimal integer: %q", ErrMalformedInput, field, value)
	}
	return v, nil
}

// ParseDecimals parses every element of values, reporting the index of the first failure
func ParseDecimals(field string, values []string) ([]*big.Int, error) {
	out := make([]*big.Int, 0, len(values))
	for i, value := range values {
		v, err := ParseDecimal(fmt.Sprintf("%s[%d]", field, i), value)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// FormatDecimals renders values as base-10 strings preserving order
func FormatDecimals(values []*big.Int) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, v.String())
	}
	return out
}
