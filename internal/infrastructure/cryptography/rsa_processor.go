package cryptography

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/Ohad-Ma/RSA-Visualizer/internal/domain/cryptoalg"
	"github.com/Ohad-Ma/RSA-Visualizer/internal/domain/rsa"
	"github.com/Ohad-Ma/RSA-Visualizer/internal/infrastructure/arithmetic"
	"github.com/Ohad-Ma/RSA-Visualizer/internal/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// maxDistinctAttempts bounds how often a generated prime is redrawn to differ from its partner
const maxDistinctAttempts = 64

var bigOne = big.NewInt(1)

// rsaProcessor struct that implements the RSAProcessor interface
type rsaProcessor struct {
	primes *arithmetic.PrimeGenerator
	logger logger.Logger
}

// NewRSAProcessor creates and returns a new instance of rsaProcessor.
// A nil prime generator selects one backed by crypto/rand with default limits.
func NewRSAProcessor(primes *arithmetic.PrimeGenerator, logger logger.Logger) (cryptoalg.RSAProcessor, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if primes == nil {
		primes = arithmetic.NewPrimeGenerator(nil, nil, 0)
	}
	return &rsaProcessor{
		primes: primes,
		logger: logger,
	}, nil
}

// GenerateKeypair derives a keypair from two distinct primes of bitsPerPrime bits.
// Supplied primes are validated instead of generated; when both are missing they
// are generated concurrently.
func (r *rsaProcessor) GenerateKeypair(ctx context.Context, bitsPerPrime int, p, q *big.Int) (*rsa.Keypair, error) {
	if bitsPerPrime < rsa.MinBitsPerPrime {
		return nil, fmt.Errorf("%w: bits per prime must be >= %d, got %d", rsa.ErrInvalidBitLength, rsa.MinBitsPerPrime, bitsPerPrime)
	}

	p, q, err := r.obtainPrimes(ctx, bitsPerPrime, p, q)
	if err != nil {
		return nil, err
	}

	n := new(big.Int).Mul(p, q)
	phi := new(big.Int).Mul(new(big.Int).Sub(p, bigOne), new(big.Int).Sub(q, bigOne))

	e, err := selectPublicExponent(phi)
	if err != nil {
		return nil, err
	}

	d, err := arithmetic.ModInverse(e, phi)
	if err != nil {
		return nil, fmt.Errorf("failed to derive private exponent: %w", err)
	}

	keypair := &rsa.Keypair{
		P:            p,
		Q:            q,
		N:            n,
		Phi:          phi,
		E:            e,
		D:            d,
		BitsPerPrime: bitsPerPrime,
	}
	if err := keypair.Validate(); err != nil {
		r.logger.Error("Derived keypair is inconsistent: ", err)
		return nil, fmt.Errorf("derived keypair failed validation: %w", err)
	}

	r.logger.Info("Generated RSA keypair with ", bitsPerPrime, "-bit primes and e=", e.String())
	return keypair, nil
}

func (r *rsaProcessor) obtainPrimes(ctx context.Context, bits int, suppliedP, suppliedQ *big.Int) (*big.Int, *big.Int, error) {
	if err := r.validateSuppliedPrime("p", suppliedP); err != nil {
		return nil, nil, err
	}
	if err := r.validateSuppliedPrime("q", suppliedQ); err != nil {
		return nil, nil, err
	}

	var p, q *big.Int
	switch {
	case suppliedP != nil && suppliedQ != nil:
		if suppliedP.Cmp(suppliedQ) == 0 {
			return nil, nil, fmt.Errorf("%w: p and q are both %s", rsa.ErrPrimesNotDistinct, suppliedP)
		}
		return new(big.Int).Set(suppliedP), new(big.Int).Set(suppliedQ), nil

	case suppliedP == nil && suppliedQ == nil:
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			p, err = r.primes.RandomPrime(gctx, bits)
			return err
		})
		g.Go(func() error {
			var err error
			q, err = r.primes.RandomPrime(gctx, bits)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, nil, err
		}

	case suppliedP != nil:
		p = new(big.Int).Set(suppliedP)
		generated, err := r.primes.RandomPrime(ctx, bits)
		if err != nil {
			return nil, nil, err
		}
		q = generated

	default:
		q = new(big.Int).Set(suppliedQ)
		generated, err := r.primes.RandomPrime(ctx, bits)
		if err != nil {
			return nil, nil, err
		}
		p = generated
	}

	// only a generated prime is ever redrawn
	for attempt := 0; p.Cmp(q) == 0; attempt++ {
		if attempt >= maxDistinctAttempts {
			return nil, nil, fmt.Errorf("%w: no second %d-bit prime distinct from %s", rsa.ErrPrimeGenerationTimeout, bits, p)
		}

		redrawn, err := r.primes.RandomPrime(ctx, bits)
		if err != nil {
			return nil, nil, err
		}
		if suppliedQ == nil {
			q = redrawn
		} else {
			p = redrawn
		}
	}

	return p, q, nil
}

func (r *rsaProcessor) validateSuppliedPrime(name string, v *big.Int) error {
	if v == nil {
		return nil
	}

	ok, err := r.primes.Tester().IsProbablePrime(v)
	if err != nil {
		return fmt.Errorf("failed to test supplied %s: %w", name, err)
	}
	if !ok {
		r.logger.Warn("Rejected supplied ", name, " that is not a probable prime")
		return fmt.Errorf("%w: %s=%s is not a probable prime", rsa.ErrInvalidSuppliedPrime, name, v)
	}
	return nil
}

// selectPublicExponent tries the fixed candidates first, then every odd value
// below rsa.ExponentSearchCap, returning the first coprime to phi.
func selectPublicExponent(phi *big.Int) (*big.Int, error) {
	for _, candidate := range rsa.PublicExponentCandidates {
		e := big.NewInt(candidate)
		if arithmetic.GCD(e, phi).Cmp(bigOne) == 0 {
			return e, nil
		}
	}

	for candidate := int64(3); candidate < rsa.ExponentSearchCap; candidate += 2 {
		e := big.NewInt(candidate)
		if arithmetic.GCD(e, phi).Cmp(bigOne) == 0 {
			return e, nil
		}
	}

	return nil, fmt.Errorf("%w: no odd e below %d is coprime to phi=%s", rsa.ErrExponentSearchExhausted, rsa.ExponentSearchCap, phi)
}

// EncryptBlock returns m^e mod n for 0 <= m < n.
func (r *rsaProcessor) EncryptBlock(m, e, n *big.Int) (*big.Int, error) {
	if err := checkBlock("message block", m, e, n); err != nil {
		return nil, err
	}
	return arithmetic.ModExp(m, e, n)
}

// DecryptBlock returns c^d mod n for 0 <= c < n.
func (r *rsaProcessor) DecryptBlock(c, d, n *big.Int) (*big.Int, error) {
	if err := checkBlock("cipher block", c, d, n); err != nil {
		return nil, err
	}
	return arithmetic.ModExp(c, d, n)
}

// EncryptBlocks applies EncryptBlock to every block, preserving order.
func (r *rsaProcessor) EncryptBlocks(blocks []*big.Int, e, n *big.Int) ([]*big.Int, error) {
	out, err := applyBlockwise(blocks, e, n, r.EncryptBlock)
	if err != nil {
		return nil, err
	}
	r.logger.Info("RSA encryption succeeded for ", len(blocks), " blocks")
	return out, nil
}

// DecryptBlocks applies DecryptBlock to every block, preserving order.
func (r *rsaProcessor) DecryptBlocks(blocks []*big.Int, d, n *big.Int) ([]*big.Int, error) {
	out, err := applyBlockwise(blocks, d, n, r.DecryptBlock)
	if err != nil {
		return nil, err
	}
	r.logger.Info("RSA decryption succeeded for ", len(blocks), " blocks")
	return out, nil
}

// IsProbablePrime runs the Miller-Rabin test. A non-positive rounds selects the configured count.
func (r *rsaProcessor) IsProbablePrime(n *big.Int, rounds int) (bool, error) {
	if n == nil {
		return false, fmt.Errorf("%w: value cannot be nil", rsa.ErrMalformedInput)
	}

	tester := r.primes.Tester()
	if rounds <= 0 {
		return tester.IsProbablePrime(n)
	}
	return tester.IsProbablePrimeRounds(n, rounds)
}

func applyBlockwise(blocks []*big.Int, exponent, n *big.Int, op func(block, exponent, n *big.Int) (*big.Int, error)) ([]*big.Int, error) {
	out := make([]*big.Int, 0, len(blocks))
	for i, block := range blocks {
		v, err := op(block, exponent, n)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func checkBlock(name string, v, exponent, n *big.Int) error {
	if n == nil || n.Sign() <= 0 {
		return fmt.Errorf("%w: modulus must be positive", rsa.ErrInvalidModulus)
	}
	if exponent == nil {
		return fmt.Errorf("%w: exponent cannot be nil", rsa.ErrInvalidExponent)
	}
	if v == nil || v.Sign() < 0 || v.Cmp(n) >= 0 {
		return fmt.Errorf("%w: %s must satisfy 0 <= value < n=%s, got %s", rsa.ErrOutOfRange, name, n, v)
	}
	return nil
}
