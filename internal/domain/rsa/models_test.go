//go:build unit
// +build unit

package rsa

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textbookKeypair() *Keypair {
	return &Keypair{
		P:            big.NewInt(61),
		Q:            big.NewInt(53),
		N:            big.NewInt(3233),
		Phi:          big.NewInt(3120),
		E:            big.NewInt(17),
		D:            big.NewInt(2753),
		BitsPerPrime: 6,
	}
}

func TestKeypair_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(k *Keypair)
		wantErr error
		anyErr  bool
	}{
		{"valid textbook keypair", func(k *Keypair) {}, nil, false},
		{"equal primes", func(k *Keypair) { k.Q = big.NewInt(61) }, ErrPrimesNotDistinct, true},
		{"composite p", func(k *Keypair) { k.P = big.NewInt(63) }, ErrInvalidSuppliedPrime, true},
		{"wrong modulus", func(k *Keypair) { k.N = big.NewInt(3234) }, nil, true},
		{"wrong totient", func(k *Keypair) { k.Phi = big.NewInt(3121) }, nil, true},
		{"exponent shares factor with phi", func(k *Keypair) { k.E = big.NewInt(15) }, ErrNotCoprime, true},
		{"wrong private exponent", func(k *Keypair) { k.D = big.NewInt(2754) }, nil, true},
		{"nil field", func(k *Keypair) { k.D = nil }, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := textbookKeypair()
			tt.mutate(k)

			err := k.Validate()
			if !tt.anyErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			}
		})
	}
}

func TestKeypair_View(t *testing.T) {
	k := textbookKeypair()

	view := k.View()
	assert.Equal(t, &KeypairView{
		P: "61", Q: "53", N: "3233", Phi: "3120", E: "17", D: "2753", BitsPerPrime: 6,
	}, view)
}

func TestParseDecimal(t *testing.T) {
	huge := "179769313486231590772930519078902473361797697894230657273430081157732675805500963132708477322407536021120113879871393357658789768814416622492847430639474124377767893424865485276302219601246094119453082952085005768838150682342462881473913110540827237163350510684586298239947245938479716304835356329624224137216"

	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{"small", "3233", "3233", false},
		{"surrounding spaces", "  65537 ", "65537", false},
		{"negative", "-5", "-5", false},
		{"beyond float precision", huge, huge, false},
		{"empty", "", "", true},
		{"blank", "   ", "", true},
		{"hex", "0x10", "", true},
		{"float", "1.5", "", true},
		{"letters", "abc", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseDecimal("n", tt.value)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrMalformedInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.String())
		})
	}
}

func TestParseDecimals_ReportsIndex(t *testing.T) {
	_, err := ParseDecimals("cipher", []string{"1", "2", "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedInput)
	assert.Contains(t, err.Error(), "cipher[2]")

	values, err := ParseDecimals("cipher", []string{"10", "20"})
	require.NoError(t, err)
	assert.Equal(t, []string{"10", "20"}, FormatDecimals(values))
}

func TestIsClientError(t *testing.T) {
	assert.True(t, IsClientError(ErrOutOfRange))
	assert.True(t, IsClientError(errors.Join(errors.New("ctx"), ErrMalformedInput)))
	assert.False(t, IsClientError(ErrPrimeGenerationTimeout))
	assert.False(t, IsClientError(ErrExponentSearchExhausted))
	assert.False(t, IsClientError(errors.New("boom")))
}
