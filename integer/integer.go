// Package integer provides the arbitrary precision integer helpers the
// decimal package is built on.
package integer

import "math/big"

var ten = big.NewInt(10)

// pow10 caches the small powers of ten.
var pow10 = func() (ps [32]*big.Int) {
	p := big.NewInt(1)
	for i := range ps {
		ps[i] = new(big.Int).Set(p)
		p.Mul(p, ten)
	}

	return ps
}()

// Pow10 returns 10^n. Pow10 panics if n is negative.
func Pow10(n int) *big.Int {
	if n < 0 {
		panic("integer: negative power of ten")
	}

	if n < len(pow10) {
		return new(big.Int).Set(pow10[n])
	}

	return new(big.Int).Exp(ten, big.NewInt(int64(n)), nil)
}

// Digits returns the number of decimal digits in the magnitude of x.
// Zero has zero digits.
func Digits(x *big.Int) int {
	if x.Sign() == 0 {
		return 0
	}

	s := x.Text(10)
	if s[0] == '-' {
		return len(s) - 1
	}

	return len(s)
}

// TrimZeros strips the trailing zero decimal digits from the magnitude
// of x and returns the stripped value together with its digit count.
// Zero maps to (0, 0). The returned value is always newly allocated.
func TrimZeros(x *big.Int) (trimmed *big.Int, digits int) {
	trimmed = new(big.Int).Abs(x)
	if trimmed.Sign() == 0 {
		return trimmed, 0
	}

	q := new(big.Int)
	r := new(big.Int)

	for {
		q.QuoRem(trimmed, ten, r)
		if r.Sign() != 0 {
			break
		}

		trimmed.Set(q)
	}

	return trimmed, Digits(trimmed)
}
