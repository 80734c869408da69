package app

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/Ohad-Ma/RSA-Visualizer/internal/domain/cryptoalg"
	"github.com/Ohad-Ma/RSA-Visualizer/internal/domain/rsa"
	"github.com/Ohad-Ma/RSA-Visualizer/internal/infrastructure/arithmetic"
	"github.com/Ohad-Ma/RSA-Visualizer/internal/infrastructure/cryptography"
	"github.com/Ohad-Ma/RSA-Visualizer/internal/infrastructure/encoding"
	"github.com/Ohad-Ma/RSA-Visualizer/internal/pkg/config"
	"github.com/Ohad-Ma/RSA-Visualizer/internal/pkg/logger"
)

// rsaService implements the RSAService interface on top of the block processor and text codec
type rsaService struct {
	processor cryptoalg.RSAProcessor
	codec     cryptoalg.TextCodec
	settings  config.EngineSettings
	logger    logger.Logger
}

// NewRSAService creates a new rsaService instance
func NewRSAService(
	processor cryptoalg.RSAProcessor,
	codec cryptoalg.TextCodec,
	settings *config.EngineSettings,
	logger logger.Logger,
) (rsa.RSAService, error) {
	if processor == nil || codec == nil {
		return nil, errors.New("processor and codec cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if settings == nil {
		return nil, errors.New("engine settings cannot be nil")
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &rsaService{
		processor: processor,
		codec:     codec,
		settings:  *settings,
		logger:    logger,
	}, nil
}

// NewRSAServiceFromSettings wires a prime generator, processor, codec and service
// from the engine settings
func NewRSAServiceFromSettings(settings *config.EngineSettings, logger logger.Logger) (rsa.RSAService, error) {
	if settings == nil {
		return nil, errors.New("engine settings cannot be nil")
	}

	tester := arithmetic.NewTester(nil, settings.MillerRabinRounds)
	primes := arithmetic.NewPrimeGenerator(nil, tester, settings.MaxPrimeAttempts)

	processor, err := cryptography.NewRSAProcessor(primes, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}

	codec, err := encoding.NewTextCodec(settings.BytePolicy, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create text codec: %w", err)
	}

	return NewRSAService(processor, codec, settings, logger)
}

// GenerateKeypair derives a keypair, bounded by the configured keygen timeout
func (s *rsaService) GenerateKeypair(ctx context.Context, bitsPerPrime int, p, q *string) (*rsa.KeypairView, error) {
	if bitsPerPrime > s.settings.MaxBitsPerPrime {
		return nil, fmt.Errorf("%w: bits per prime must be <= %d, got %d", rsa.ErrInvalidBitLength, s.settings.MaxBitsPerPrime, bitsPerPrime)
	}

	suppliedP, err := parseOptionalDecimal("p", p)
	if err != nil {
		return nil, err
	}
	suppliedQ, err := parseOptionalDecimal("q", q)
	if err != nil {
		return nil, err
	}

	if s.settings.KeygenTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.settings.KeygenTimeout)
		defer cancel()
	}

	keypair, err := s.processor.GenerateKeypair(ctx, bitsPerPrime, suppliedP, suppliedQ)
	if err != nil {
		s.logger.Error("Keypair generation failed: ", err)
		return nil, err
	}

	return keypair.View(), nil
}

// Encrypt converts message to byte blocks and encrypts each one with (e, n)
func (s *rsaService) Encrypt(ctx context.Context, message, e, n string) ([]string, error) {
	exponent, err := rsa.ParseDecimal("e", e)
	if err != nil {
		return nil, err
	}
	modulus, err := rsa.ParseDecimal("n", n)
	if err != nil {
		return nil, err
	}

	blocks, err := s.codec.TextToBlocks(message, modulus)
	if err != nil {
		return nil, err
	}

	cipher, err := s.processor.EncryptBlocks(blocks, exponent, modulus)
	if err != nil {
		return nil, err
	}

	return rsa.FormatDecimals(cipher), nil
}

// Decrypt decrypts each cipher block with (d, n) and decodes the result as UTF-8
func (s *rsaService) Decrypt(ctx context.Context, cipher []string, d, n string) (string, error) {
	blocks, err := rsa.ParseDecimals("cipher", cipher)
	if err != nil {
		return "", err
	}
	exponent, err := rsa.ParseDecimal("d", d)
	if err != nil {
		return "", err
	}
	modulus, err := rsa.ParseDecimal("n", n)
	if err != nil {
		return "", err
	}

	plain, err := s.processor.DecryptBlocks(blocks, exponent, modulus)
	if err != nil {
		return "", err
	}

	return s.codec.BlocksToText(plain), nil
}

// IsProbablePrime runs Miller-Rabin on n. A non-positive rounds selects the configured count.
func (s *rsaService) IsProbablePrime(ctx context.Context, n string, rounds int) (*rsa.PrimalityView, error) {
	if rounds > rsa.MaxMillerRabinRounds {
		return nil, fmt.Errorf("%w: rounds must be <= %d, got %d", rsa.ErrMalformedInput, rsa.MaxMillerRabinRounds, rounds)
	}
	if rounds <= 0 {
		rounds = s.settings.MillerRabinRounds
	}

	value, err := rsa.ParseDecimal("n", n)
	if err != nil {
		return nil, err
	}

	ok, err := s.processor.IsProbablePrime(value, rounds)
	if err != nil {
		s.logger.Error("Primality test failed: ", err)
		return nil, err
	}

	return &rsa.PrimalityView{N: value.String(), Rounds: rounds, ProbablePrime: ok}, nil
}

// parseOptionalDecimal treats a missing or blank value as "not supplied"
func parseOptionalDecimal(field string, value *string) (*big.Int, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	return rsa.ParseDecimal(field, *value)
}
