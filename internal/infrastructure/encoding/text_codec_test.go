//go:build unit
// +build unit

package encoding

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ohad-Ma/RSA-Visualizer/internal/domain/cryptoalg"
	"github.com/Ohad-Ma/RSA-Visualizer/internal/domain/rsa"
	"github.com/Ohad-Ma/RSA-Visualizer/internal/pkg/testutil"
)

func setupTextCodec(t *testing.T, policy string) cryptoalg.TextCodec {
	t.Helper()

	codec, err := NewTextCodec(policy, testutil.SetupTestLogger(t))
	require.NoError(t, err, "Error creating text codec")
	return codec
}

func TestNewTextCodec(t *testing.T) {
	log := testutil.SetupTestLogger(t)

	_, err := NewTextCodec(rsa.BytePolicyStrict, nil)
	assert.Error(t, err)

	_, err = NewTextCodec("truncate", log)
	assert.Error(t, err)

	codec, err := NewTextCodec("", log)
	require.NoError(t, err)
	_, err = codec.TextToBlocks("A", big.NewInt(10))
	assert.ErrorIs(t, err, rsa.ErrOutOfRange, "empty policy should default to strict")
}

func TestTextToBlocks(t *testing.T) {
	codec := setupTextCodec(t, rsa.BytePolicyStrict)

	blocks, err := codec.TextToBlocks("Hi", big.NewInt(3233))
	require.NoError(t, err)
	assert.Equal(t, testutil.Ints(72, 105), blocks)

	blocks, err = codec.TextToBlocks("é", big.NewInt(3233))
	require.NoError(t, err)
	assert.Equal(t, testutil.Ints(0xc3, 0xa9), blocks, "one block per UTF-8 byte")

	blocks, err = codec.TextToBlocks("", big.NewInt(3233))
	require.NoError(t, err)
	assert.Empty(t, blocks)
}

func TestTextToBlocks_InvalidModulus(t *testing.T) {
	codec := setupTextCodec(t, rsa.BytePolicyStrict)

	for _, n := range []*big.Int{nil, big.NewInt(0), big.NewInt(-5)} {
		_, err := codec.TextToBlocks("abc", n)
		assert.ErrorIs(t, err, rsa.ErrInvalidModulus)
	}
}

func TestTextToBlocks_BytePolicies(t *testing.T) {
	// 'A' = 65, 'a' = 97
	n := big.NewInt(90)

	strict := setupTextCodec(t, rsa.BytePolicyStrict)
	_, err := strict.TextToBlocks("AaA", n)
	assert.ErrorIs(t, err, rsa.ErrOutOfRange)

	drop := setupTextCodec(t, rsa.BytePolicyDrop)
	blocks, err := drop.TextToBlocks("AaA", n)
	require.NoError(t, err)
	assert.Equal(t, testutil.Ints(65, 65), blocks)
}

func TestBlocksToText(t *testing.T) {
	codec := setupTextCodec(t, rsa.BytePolicyStrict)

	tests := []struct {
		name     string
		blocks   []*big.Int
		expected string
	}{
		{"ascii", testutil.Ints(72, 105), "Hi"},
		{"multibyte", testutil.Ints(0xc3, 0xa9), "é"},
		{"empty", nil, ""},
		{"truncated sequence", testutil.Ints(0x41, 0xc3), "A�"},
		{"bytes that cannot start a sequence", testutil.Ints(0xff, 0xfe), "��"},
		{"clipped three-byte sequence", testutil.Ints(0xe2, 0x82, 0x41), "�A"},
		{"clipped emoji", testutil.Ints(0xf0, 0x9f, 0x98), "�"},
		{"clipped emoji between text", testutil.Ints(0x41, 0xf0, 0x9f, 0x98, 0x42), "A�B"},
		{"two clipped sequences", testutil.Ints(0xc3, 0xe2, 0x82), "��"},
		{"stray continuation bytes", testutil.Ints(0x80, 0xbf), "��"},
		{"surrogate half", testutil.Ints(0xed, 0xa0, 0x80), "���"},
		{"overlong encoding", testutil.Ints(0xe0, 0x80, 0xaf), "���"},
		{"code point above U+10FFFF", testutil.Ints(0xf4, 0x90, 0x80, 0x80), "����"},
		{"lead byte cut by a non-byte block", testutil.Ints(0xe2, 0x82, 1000), "��"},
		{"block above a byte", testutil.Ints(72, 300, 105), "H�i"},
		{"negative block", testutil.Ints(-1), "�"},
		{"encoded replacement character survives", testutil.Ints(0xef, 0xbf, 0xbd), "�"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, codec.BlocksToText(tt.blocks))
		})
	}
}

func TestTextRoundTrip(t *testing.T) {
	codec := setupTextCodec(t, rsa.BytePolicyStrict)
	n := big.NewInt(3233)

	for _, text := range []string{"", "Hello, RSA!", "Grüße aus Köln", "日本語", "emoji 🙂"} {
		blocks, err := codec.TextToBlocks(text, n)
		require.NoError(t, err)
		assert.Len(t, blocks, len(text))
		assert.Equal(t, text, codec.BlocksToText(blocks))
	}
}
