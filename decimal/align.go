package decimal

import (
	"math/big"

	"github.com/calebcase/unum/integer"
)

// scale returns the total number of fractional digit positions n
// occupies, leading zeros included.
func (n Number) scale() int {
	return n.digits + n.zeros
}

// alignFracs brings the two fractional significands to a common digit
// width and a common leading zero scale so that they compare and
// combine as plain integers. The shorter significand is padded with
// trailing zeros; then the operand with fewer leading zeros, which
// holds the coarser fraction, is scaled up to the finer scale.
//
// Both results share the denominator 10^(width + min(a.zeros, b.zeros)).
func alignFracs(a, b Number) (x, y *big.Int, width int) {
	width = a.digits
	if b.digits > width {
		width = b.digits
	}

	x = new(big.Int).Mul(a.fracRef(), integer.Pow10(width-a.digits))
	y = new(big.Int).Mul(b.fracRef(), integer.Pow10(width-b.digits))

	switch d := a.zeros - b.zeros; {
	case d > 0:
		y.Mul(y, integer.Pow10(d))
		width += d
	case d < 0:
		x.Mul(x, integer.Pow10(-d))
		width -= d
	}

	return x, y, width
}

// fold concatenates the integer part of n with the aligned fractional
// magnitude f into one signed integer at the given scale.
func fold(n Number, f *big.Int, scale int) *big.Int {
	c := new(big.Int).Abs(n.wholeRef())
	c.Mul(c, integer.Pow10(scale))
	c.Add(c, f)

	if n.IsNegative() {
		c.Neg(c)
	}

	return c
}

// complete returns the integer and fractional digits of n folded into
// one signed integer at the number's own scale.
func (n Number) complete() *big.Int {
	return fold(n, n.fracRef(), n.scale())
}

// completes aligns the two numbers and folds their integer parts in,
// producing both as signed integers at one shared scale.
func completes(a, b Number) (x, y *big.Int, scale int) {
	fx, fy, width := alignFracs(a, b)

	scale = width + a.zeros
	if b.zeros < a.zeros {
		scale = width + b.zeros
	}

	return fold(a, fx, scale), fold(b, fy, scale), scale
}

// decompose splits a signed complete integer at the given fractional
// scale back into a Number.
func decompose(c *big.Int, scale int) Number {
	q, r := new(big.Int).QuoRem(c, integer.Pow10(scale), new(big.Int))
	r.Abs(r)

	zeros := 0
	if r.Sign() != 0 {
		zeros = scale - integer.Digits(r)
	}

	return compose(q, r, zeros, c.Sign() < 0)
}
