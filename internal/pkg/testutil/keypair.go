package testutil

import (
	"math/big"

	"github.com/Ohad-Ma/RSA-Visualizer/internal/domain/rsa"
)

// Textbook keypair built from p=61 and q=53 with e=17.
// The generator would pick e=65537 for these primes, so this is a fixture only.
const (
	TextbookP   = "61"
	TextbookQ   = "53"
	TextbookN   = "3233"
	TextbookPhi = "3120"
	TextbookE   = "17"
	TextbookD   = "2753"
)

// TextbookKeypair returns a fresh copy of the p=61, q=53, e=17 keypair
func TextbookKeypair() *rsa.Keypair {
	return &rsa.Keypair{
		P:            big.NewInt(61),
		Q:            big.NewInt(53),
		N:            big.NewInt(3233),
		Phi:          big.NewInt(3120),
		E:            big.NewInt(17),
		D:            big.NewInt(2753),
		BitsPerPrime: 6,
	}
}

// Ints converts int64 values to big integers
func Ints(values ...int64) []*big.Int {
	out := make([]*big.Int, len(values))
	for i, v := range values {
		out[i] = big.NewInt(v)
	}
	return out
}
