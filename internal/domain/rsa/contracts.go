package rsa

import "context"

// RSAService exposes the engine to the request layer using the boundary
// representation: big integers travel as decimal strings.
type RSAService interface {
	// GenerateKeypair derives a fresh keypair. p and q are optional caller-supplied primes.
	GenerateKeypair(ctx context.Context, bitsPerPrime int, p, q *string) (*KeypairView, error)

	// Encrypt encodes message as byte blocks and encrypts each one with (e, n)
	Encrypt(ctx context.Context, message, e, n string) ([]string, error)

	// Decrypt decrypts each cipher block with (d, n) and decodes the bytes as UTF-8
	Decrypt(ctx context.Context, cipher []string, d, n string) (string, error)

	// IsProbablePrime runs Miller-Rabin on n. A non-positive rounds selects the configured count.
	IsProbablePrime(ctx context.Context, n string, rounds int) (*PrimalityView, error)
}
