package arithmetic

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/Ohad-Ma/RSA-Visualizer/internal/domain/rsa"
)

// PrimeGenerator draws random probable primes of an exact bit length
type PrimeGenerator struct {
	random      io.Reader
	tester      *Tester
	maxAttempts int
}

// NewPrimeGenerator creates a PrimeGenerator. A nil random source selects
// crypto/rand.Reader, a nil tester uses the default round count on the same
// source and a non-positive attempt cap selects rsa.DefaultMaxPrimeAttempts.
func NewPrimeGenerator(random io.Reader, tester *Tester, maxAttempts int) *PrimeGenerator {
	if random == nil {
		random = rand.Reader
	}
	if tester == nil {
		tester = NewTester(random, rsa.DefaultMillerRabinRounds)
	}
	if maxAttempts <= 0 {
		maxAttempts = rsa.DefaultMaxPrimeAttempts
	}
	return &PrimeGenerator{random: random, tester: tester, maxAttempts: maxAttempts}
}

// Tester returns the primality tester used to accept candidates
func (g *PrimeGenerator) Tester() *Tester {
	return g.tester
}

// RandomPrime returns a probable prime with exactly bits bits. Candidates have
// their top and bottom bits forced; the loop stops with
// rsa.ErrPrimeGenerationTimeout when the attempt cap is hit or ctx is done.
func (g *PrimeGenerator) RandomPrime(ctx context.Context, bits int) (*big.Int, error) {
	if bits < rsa.MinBitsPerPrime {
		return nil, fmt.Errorf("%w: bits must be >= %d, got %d", rsa.ErrInvalidBitLength, rsa.MinBitsPerPrime, bits)
	}

	buf := make([]byte, (bits+7)/8)
	excess := uint(len(buf)*8 - bits)

	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w after %d candidates: %w", rsa.ErrPrimeGenerationTimeout, attempt, err)
		}

		if _, err := io.ReadFull(g.random, buf); err != nil {
			return nil, fmt.Errorf("failed to read random candidate: %w", err)
		}
		buf[0] &= byte(0xff >> excess)

		candidate := new(big.Int).SetBytes(buf)
		candidate.SetBit(candidate, bits-1, 1)
		candidate.SetBit(candidate, 0, 1)

		ok, err := g.tester.IsProbablePrime(candidate)
		if err != nil {
			return nil, err
		}
		if ok {
			return candidate, nil
		}
	}

	return nil, fmt.Errorf("%w: no %d-bit prime within %d candidates", rsa.ErrPrimeGenerationTimeout, bits, g.maxAttempts)
}
