package encoding

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"unicode/utf8"

	"github.com/Ohad-Ma/RSA-Visualizer/internal/domain/cryptoalg"
	"github.com/Ohad-Ma/RSA-Visualizer/internal/domain/rsa"
	"github.com/Ohad-Ma/RSA-Visualizer/internal/pkg/logger"
)

// invalidByte stands in for a block that is not a byte. It never occurs in valid UTF-8.
const invalidByte = 0xff

var byteLimit = big.NewInt(256)

// textCodec struct that implements the TextCodec interface
type textCodec struct {
	policy string
	logger logger.Logger
}

// NewTextCodec creates a codec that converts text to one block per UTF-8 byte.
// An empty policy selects rsa.BytePolicyStrict.
func NewTextCodec(policy string, logger logger.Logger) (cryptoalg.TextCodec, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	switch policy {
	case "":
		policy = rsa.BytePolicyStrict
	case rsa.BytePolicyStrict, rsa.BytePolicyDrop:
	default:
		return nil, fmt.Errorf("unsupported byte policy: %s", policy)
	}

	return &textCodec{
		policy: policy,
		logger: logger,
	}, nil
}

// TextToBlocks maps each UTF-8 byte of text to a block. Bytes >= n fail under the
// strict policy and are omitted under the drop policy.
func (c *textCodec) TextToBlocks(text string, n *big.Int) ([]*big.Int, error) {
	if n == nil || n.Sign() <= 0 {
		return nil, fmt.Errorf("%w: modulus must be positive", rsa.ErrInvalidModulus)
	}

	blocks := make([]*big.Int, 0, len(text))
	dropped := 0
	for i := 0; i < len(text); i++ {
		b := big.NewInt(int64(text[i]))
		if b.Cmp(n) >= 0 {
			if c.policy == rsa.BytePolicyDrop {
				dropped++
				continue
			}
			return nil, fmt.Errorf("%w: byte %d at offset %d does not fit modulus n=%s", rsa.ErrOutOfRange, text[i], i, n)
		}
		blocks = append(blocks, b)
	}

	if dropped > 0 {
		c.logger.Warn("Dropped ", dropped, " bytes not below modulus ", n.String())
	}
	return blocks, nil
}

// BlocksToText decodes blocks as UTF-8 bytes. Each maximal invalid subsequence
// and each block outside [0, 256) becomes one U+FFFD.
func (c *textCodec) BlocksToText(blocks []*big.Int) string {
	raw := make([]byte, 0, len(blocks))
	for _, block := range blocks {
		if block == nil || block.Sign() < 0 || block.Cmp(byteLimit) >= 0 {
			raw = append(raw, invalidByte)
			continue
		}
		raw = append(raw, byte(block.Uint64()))
	}

	var sb strings.Builder
	sb.Grow(len(raw))
	for len(raw) > 0 {
		r, size := utf8.DecodeRune(raw)
		if r == utf8.RuneError && size == 1 {
			size = invalidPrefixLen(raw)
		}
		sb.WriteRune(r)
		raw = raw[size:]
	}
	return sb.String()
}

// invalidPrefixLen returns the length of the maximal prefix of b that starts a
// well-formed UTF-8 sequence without completing it. Such a prefix is replaced by
// a single U+FFFD; a byte that cannot start a sequence has length 1.
func invalidPrefixLen(b []byte) int {
	lo, hi := byte(0x80), byte(0xbf)
	var need int
	switch lead := b[0]; {
	case lead >= 0xc2 && lead <= 0xdf:
		need = 1
	case lead == 0xe0:
		need, lo = 2, 0xa0
	case lead == 0xed:
		need, hi = 2, 0x9f
	case lead >= 0xe1 && lead <= 0xef:
		need = 2
	case lead == 0xf0:
		need, lo = 3, 0x90
	case lead == 0xf4:
		need, hi = 3, 0x8f
	case lead >= 0xf1 && lead <= 0xf3:
		need = 3
	default:
		return 1
	}

	n := 1
	for n <= need && n < len(b) && b[n] >= lo && b[n] <= hi {
		// only the first continuation byte has a narrowed range
		lo, hi = 0x80, 0xbf
		n++
	}
	return n
}
