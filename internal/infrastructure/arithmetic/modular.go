package arithmetic

import (
	"fmt"
	"math/big"

	"github.com/Ohad-Ma/RSA-Visualizer/internal/domain/rsa"
)

var (
	bigOne = big.NewInt(1)
	bigTwo = big.NewInt(2)
)

// ModExp computes base^exponent mod modulus by square-and-multiply, consuming the
// exponent low bit first. The result is always in [0, modulus).
func ModExp(base, exponent, modulus *big.Int) (*big.Int, error) {
	if modulus.Sign() <= 0 {
		return nil, fmt.Errorf("%w: modulus must be positive, got %s", rsa.ErrInvalidModulus, modulus)
	}
	if exponent.Sign() < 0 {
		return nil, fmt.Errorf("%w: exponent must be non-negative, got %s", rsa.ErrInvalidExponent, exponent)
	}

	result := new(big.Int).Mod(bigOne, modulus)
	b := new(big.Int).Mod(base, modulus)

	for i := 0; i < exponent.BitLen(); i++ {
		if exponent.Bit(i) == 1 {
			result.Mul(result, b)
			result.Mod(result, modulus)
		}
		b.Mul(b, b)
		b.Mod(b, modulus)
	}

	return result, nil
}

// ExtendedEuclid returns g = gcd(a, b) together with Bezout coefficients x, y
// such that a*x + b*y = g. The computation is iterative. For negative inputs g
// may come back negative; GCD normalises it.
func ExtendedEuclid(a, b *big.Int) (g, x, y *big.Int) {
	oldR, r := new(big.Int).Set(a), new(big.Int).Set(b)
	oldX, curX := big.NewInt(1), big.NewInt(0)
	oldY, curY := big.NewInt(0), big.NewInt(1)

	for r.Sign() != 0 {
		q, rem := new(big.Int).QuoRem(oldR, r, new(big.Int))

		oldR, r = r, rem
		oldX, curX = curX, new(big.Int).Sub(oldX, new(big.Int).Mul(q, curX))
		oldY, curY = curY, new(big.Int).Sub(oldY, new(big.Int).Mul(q, curY))
	}

	return oldR, oldX, oldY
}

// GCD returns the non-negative greatest common divisor of a and b
func GCD(a, b *big.Int) *big.Int {
	g, _, _ := ExtendedEuclid(a, b)
	return g.Abs(g)
}

// ModInverse returns the unique x in [0, m) with a*x = 1 mod m
func ModInverse(a, m *big.Int) (*big.Int, error) {
	if m.Sign() <= 0 {
		return nil, fmt.Errorf("%w: modulus must be positive, got %s", rsa.ErrInvalidModulus, m)
	}

	g, x, _ := ExtendedEuclid(a, m)
	if g.CmpAbs(bigOne) != 0 {
		return nil, fmt.Errorf("%w: gcd(%s, %s) = %s", rsa.ErrNotCoprime, a, m, g.Abs(g))
	}
	if g.Sign() < 0 {
		x.Neg(x)
	}

	return x.Mod(x, m), nil
}
