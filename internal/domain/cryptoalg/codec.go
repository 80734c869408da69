package cryptoalg

import "math/big"

// TextCodec maps UTF-8 text to one integer block per byte and back.
type TextCodec interface {
	// TextToBlocks encodes text as its UTF-8 bytes, one block per byte, for modulus n.
	TextToBlocks(text string, n *big.Int) ([]*big.Int, error)

	// BlocksToText interprets blocks as raw bytes and decodes them as UTF-8.
	// Invalid sequences are replaced with U+FFFD; it never fails.
	BlocksToText(blocks []*big.Int) string
}
