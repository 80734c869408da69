//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Ohad-Ma/RSA-Visualizer/internal/domain/rsa"
)

// MockRSAService is a mock implementation of RSAService
type MockRSAService struct {
	mock.Mock
}

func (m *MockRSAService) GenerateKeypair(ctx context.Context, bitsPerPrime int, p, q *string) (*rsa.KeypairView, error) {
	args := m.Called(ctx, bitsPerPrime, p, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rsa.KeypairView), args.Error(1)
}

func (m *MockRSAService) Encrypt(ctx context.Context, message, e, n string) ([]string, error) {
	args := m.Called(ctx, message, e, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRSAService) Decrypt(ctx context.Context, cipher []string, d, n string) (string, error) {
	args := m.Called(ctx, cipher, d, n)
	return args.String(0), args.Error(1)
}

func (m *MockRSAService) IsProbablePrime(ctx context.Context, n string, rounds int) (*rsa.PrimalityView, error) {
	args := m.Called(ctx, n, rounds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rsa.PrimalityView), args.Error(1)
}
