package decimal

import (
	"math/big"

	"github.com/calebcase/oops"

	"github.com/calebcase/unum/integer"
)

// divisionPrecision caps the number of significant fractional digits a
// division produces. It is process wide and unsynchronized: changing
// it while divisions are in flight gives them no isolation. Thread a
// precision through DivPrec to avoid the shared setting entirely.
var divisionPrecision = 30

// DivisionPrecision returns the process wide division precision.
func DivisionPrecision() int {
	return divisionPrecision
}

// SetDivisionPrecision changes the process wide division precision. It
// fails when digits is less than 1.
func SetDivisionPrecision(digits int) (err error) {
	defer Error.WrapP(&err)

	if digits < 1 {
		return oops.Trace(ErrPrecision)
	}

	divisionPrecision = digits

	return nil
}

// Div returns n / m at the process wide division precision.
//
// Division never fails: a zero divisor yields infinity, while a zero
// dividend or an infinite divisor yields exact zero.
func (n Number) Div(m Number) Number {
	return n.DivPrec(m, divisionPrecision)
}

// DivPrec returns n / m producing at most digits significant
// fractional digits. Precisions below 1 are treated as 1, which
// produces the integer part alone.
func (n Number) DivPrec(m Number, digits int) Number {
	if digits < 1 {
		digits = 1
	}

	switch {
	case m.IsZero():
		return Inf(false)
	case m.inf:
		return Number{}
	case n.IsZero():
		return Number{}
	case n.inf:
		return Inf(n.IsNegative() != m.IsNegative())
	}

	negative := n.IsNegative() != m.IsNegative()

	x, y, _ := completes(n, m)
	x.Abs(x)
	y.Abs(y)

	q, r := new(big.Int).QuoRem(x, y, new(big.Int))

	// The remainder is scaled up and divided once more to extract up
	// to digits-1 further significant fractional digits.
	extra := r.Mul(r, integer.Pow10(digits-1))
	extra.Quo(extra, y)

	zeros := digits - 1 - integer.Digits(extra)
	if zeros < 0 {
		zeros = 0
	}

	if negative {
		q.Neg(q)
	}

	return compose(q, extra, zeros, negative)
}

// Mod returns n - m*Trunc(n/m), the remainder of truncating division.
// A zero divisor returns n unchanged; this deliberately diverges from
// Div's infinity result.
func (n Number) Mod(m Number) Number {
	if m.IsZero() || n.inf || m.inf {
		return n
	}

	return n.Sub(m.Mul(n.Div(m).Trunc()))
}
