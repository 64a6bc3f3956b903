package decimal

import "math/big"

// Neg returns n with its sign flipped. Negating zero returns zero.
func (n Number) Neg() Number {
	if n.IsZero() {
		return n
	}

	out := n
	if n.wholeRef().Sign() != 0 {
		out.whole = new(big.Int).Neg(n.whole)
	} else {
		out.neg = !n.neg
	}

	return out
}

// Abs returns the absolute value of n.
func (n Number) Abs() Number {
	if n.IsNegative() {
		return n.Neg()
	}

	return n
}

// Add returns n + m. An infinite operand dominates: the result is n
// when n is infinite, otherwise m when m is infinite.
func (n Number) Add(m Number) Number {
	if n.inf {
		return n
	}

	if m.inf {
		return m
	}

	x, y, scale := completes(n, m)

	return decompose(x.Add(x, y), scale)
}

// Sub returns n - m.
func (n Number) Sub(m Number) Number {
	return n.Add(m.Neg())
}

// Mul returns n * m.
//
// An infinite operand times a nonzero operand is infinite with the
// combined sign; times zero it is exact zero.
func (n Number) Mul(m Number) Number {
	if n.inf || m.inf {
		if n.IsZero() || m.IsZero() {
			return Number{}
		}

		return Inf(n.IsNegative() != m.IsNegative())
	}

	c := new(big.Int).Mul(n.complete(), m.complete())

	return decompose(c, n.scale()+m.scale())
}

// Trunc returns the integer part of n, discarding the fractional
// fields entirely. Truncation is toward zero, not floor.
func (n Number) Trunc() Number {
	if n.inf {
		return n
	}

	return compose(n.wholeRef(), bigZero, 0, false)
}
