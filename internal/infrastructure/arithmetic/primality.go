package arithmetic

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/Ohad-Ma/RSA-Visualizer/internal/domain/rsa"
)

var smallPrimes = []*big.Int{
	big.NewInt(2), big.NewInt(3), big.NewInt(5), big.NewInt(7), big.NewInt(11),
	big.NewInt(13), big.NewInt(17), big.NewInt(19), big.NewInt(23), big.NewInt(29),
}

// Tester runs the Miller-Rabin probable-prime test with witnesses drawn from a
// cryptographically secure source. A composite passes a single round with
// probability at most 1/4, so the false-positive bound is 4^-rounds.
type Tester struct {
	random io.Reader
	rounds int
}

// NewTester creates a Tester. A nil random source selects crypto/rand.Reader and
// a non-positive round count selects rsa.DefaultMillerRabinRounds.
func NewTester(random io.Reader, rounds int) *Tester {
	if random == nil {
		random = rand.Reader
	}
	if rounds <= 0 {
		rounds = rsa.DefaultMillerRabinRounds
	}
	return &Tester{random: random, rounds: rounds}
}

// Rounds returns the number of witnesses drawn per test
func (t *Tester) Rounds() int {
	return t.rounds
}

// IsProbablePrime tests n with the configured number of rounds
func (t *Tester) IsProbablePrime(n *big.Int) (bool, error) {
	return t.IsProbablePrimeRounds(n, t.rounds)
}

// IsProbablePrimeRounds tests n with an explicit number of rounds. An error is
// only returned when the random source fails.
func (t *Tester) IsProbablePrimeRounds(n *big.Int, rounds int) (bool, error) {
	if rounds <= 0 {
		rounds = rsa.DefaultMillerRabinRounds
	}

	if n.Cmp(bigTwo) < 0 {
		return false, nil
	}

	rem := new(big.Int)
	for _, p := range smallPrimes {
		if n.Cmp(p) == 0 {
			return true, nil
		}
		if rem.Mod(n, p).Sign() == 0 {
			return false, nil
		}
	}

	// n - 1 = d * 2^r with d odd
	nMinusOne := new(big.Int).Sub(n, bigOne)
	r := nMinusOne.TrailingZeroBits()
	d := new(big.Int).Rsh(nMinusOne, r)

	// witnesses are drawn from [2, n-2]
	witnessSpan := new(big.Int).Sub(n, big.NewInt(3))

	for i := 0; i < rounds; i++ {
		a, err := rand.Int(t.random, witnessSpan)
		if err != nil {
			return false, fmt.Errorf("failed to draw Miller-Rabin witness: %w", err)
		}
		a.Add(a, bigTwo)

		composite, err := witnessesCompositeness(a, d, n, nMinusOne, r)
		if err != nil {
			return false, err
		}
		if composite {
			return false, nil
		}
	}

	return true, nil
}

func witnessesCompositeness(a, d, n, nMinusOne *big.Int, r uint) (bool, error) {
	x, err := ModExp(a, d, n)
	if err != nil {
		return false, err
	}
	if x.Cmp(bigOne) == 0 || x.Cmp(nMinusOne) == 0 {
		return false, nil
	}

	for j := uint(1); j < r; j++ {
		x.Mul(x, x)
		x.Mod(x, n)
		if x.Cmp(nMinusOne) == 0 {
			return false, nil
		}
	}

	return true, nil
}
