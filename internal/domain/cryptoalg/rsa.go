package cryptoalg

import (
	"context"
	"math/big"

	"github.com/Ohad-Ma/RSA-Visualizer/internal/domain/rsa"
)

// RSAProcessor handles unpadded textbook RSA operations on integer blocks.
// NOTE: there is no padding and no chaining; equal plaintext blocks always map to
// equal ciphertext blocks under the same key.
type RSAProcessor interface {
	// GenerateKeypair derives a keypair from two distinct primes of bitsPerPrime bits.
	// p and q are optional caller-supplied primes; nil means generate.
	GenerateKeypair(ctx context.Context, bitsPerPrime int, p, q *big.Int) (*rsa.Keypair, error)

	// EncryptBlock returns m^e mod n for 0 <= m < n.
	EncryptBlock(m, e, n *big.Int) (*big.Int, error)

	// DecryptBlock returns c^d mod n for 0 <= c < n.
	DecryptBlock(c, d, n *big.Int) (*big.Int, error)

	// EncryptBlocks applies EncryptBlock to every block, preserving order.
	EncryptBlocks(blocks []*big.Int, e, n *big.Int) ([]*big.Int, error)

	// DecryptBlocks applies DecryptBlock to every block, preserving order.
	DecryptBlocks(blocks []*big.Int, d, n *big.Int) ([]*big.Int, error)

	// IsProbablePrime runs the Miller-Rabin test used to accept primes.
	// A non-positive rounds selects the generator's configured count.
	IsProbablePrime(n *big.Int, rounds int) (bool, error)
}
