package decimal

import (
	"math"
	"strconv"
	"strings"
)

// String renders n in its canonical decimal form: an optional sign,
// the integer digits, and, when the significand is nonzero, a point
// followed by the leading zeros and the significand.
func (n Number) String() string {
	if n.inf {
		if n.IsNegative() {
			return "-inf"
		}

		return "inf"
	}

	var b strings.Builder

	// The integer part prints its own sign when it has one; the
	// explicit prefix only covers negative pure fractions.
	if n.IsNegative() && n.wholeRef().Sign() >= 0 {
		b.WriteByte('-')
	}

	b.WriteString(n.wholeRef().String())

	if n.fracRef().Sign() != 0 {
		b.WriteByte('.')
		for i := 0; i < n.zeros; i++ {
			b.WriteByte('0')
		}
		b.WriteString(n.frac.String())
	}

	return b.String()
}

// Float64 converts n to the nearest float64. The conversion goes
// through the canonical string and is lossy; magnitudes beyond the
// float64 range come back as ±Inf.
func (n Number) Float64() float64 {
	if n.inf {
		if n.IsNegative() {
			return math.Inf(-1)
		}

		return math.Inf(1)
	}

	f, _ := strconv.ParseFloat(n.String(), 64)

	return f
}

// MarshalText implements encoding.TextMarshaler using the canonical
// string form.
func (n Number) MarshalText() (data []byte, err error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting the
// forms Parse accepts.
func (n *Number) UnmarshalText(data []byte) (err error) {
	defer Error.WrapP(&err)

	m, err := Parse(string(data))
	if err != nil {
		return err
	}

	*n = m

	return nil
}
