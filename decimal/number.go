package decimal

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/calebcase/oops"

	"github.com/calebcase/unum/integer"
)

// floatDigits is the fixed number of fractional digits kept when
// converting from a float64.
const floatDigits = 15

var bigZero = new(big.Int)

// Number is an unbounded base 10 decimal number.
//
// The zero value is the number 0 and is ready to use.
type Number struct {
	// whole holds the integer digits and, when nonzero, the sign.
	whole *big.Int

	// frac holds the fractional digits with all trailing zeros
	// stripped. It is never negative.
	frac *big.Int

	// digits is the number of decimal digits in frac (0 for 0).
	digits int

	// zeros counts the zero digits between the decimal point and the
	// first significant fractional digit.
	zeros int

	// inf marks the value as infinite. The sign is taken from the
	// other fields.
	inf bool

	// neg forces a negative sign when whole is zero (e.g. -0.5).
	neg bool
}

// wholeRef returns the integer part, treating the zero value as 0.
func (n Number) wholeRef() *big.Int {
	if n.whole == nil {
		return bigZero
	}

	return n.whole
}

// fracRef returns the fractional significand, treating the zero value
// as 0.
func (n Number) fracRef() *big.Int {
	if n.frac == nil {
		return bigZero
	}

	return n.frac
}

// compose builds a Number from raw parts, restoring the invariants:
// the significand is stored trailing-zero stripped, exact zero carries
// no scale, and the forced sign survives only on a negative pure
// fraction.
func compose(whole, frac *big.Int, zeros int, negative bool) Number {
	sig, digits := integer.TrimZeros(frac)
	if sig.Sign() == 0 {
		zeros = 0
	}

	w := new(big.Int).Set(whole)
	if negative && w.Sign() > 0 {
		w.Neg(w)
	}

	force := negative && w.Sign() == 0 && sig.Sign() != 0

	return Number{
		whole:  w,
		frac:   sig,
		digits: digits,
		zeros:  zeros,
		neg:    force,
	}
}

// FromParts returns the number whose integer digits are whole and
// whose fractional digits are zeros zero digits followed by the
// magnitude of frac. Trailing zero digits of frac are stripped. The
// negative flag forces the sign of the result; a whole that already
// carries a negative sign keeps it.
func FromParts(whole, frac *big.Int, zeros int, negative bool) (_ Number, err error) {
	defer Error.WrapP(&err)

	if zeros < 0 {
		return Number{}, oops.Trace(ErrLeadingZeros)
	}

	return compose(whole, frac, zeros, negative), nil
}

// New is FromParts for parts that fit the native integer types.
func New(whole int64, frac uint64, zeros int, negative bool) (Number, error) {
	return FromParts(big.NewInt(whole), new(big.Int).SetUint64(frac), zeros, negative)
}

// FromInt64 returns the number equal to i.
func FromInt64(i int64) Number {
	return compose(big.NewInt(i), bigZero, 0, false)
}

// FromBigInt returns the number equal to x. The value is copied.
func FromBigInt(x *big.Int) Number {
	return compose(x, bigZero, 0, false)
}

// FromFloat64 converts f, keeping a fixed 15 fractional digits. An
// infinite f converts to the infinite number; a NaN fails with ErrNaN.
func FromFloat64(f float64) (_ Number, err error) {
	defer Error.WrapP(&err)

	if math.IsNaN(f) {
		return Number{}, oops.Trace(ErrNaN)
	}

	if math.IsInf(f, 0) {
		return Inf(f < 0), nil
	}

	negative := math.Signbit(f)

	s := strconv.FormatFloat(math.Abs(f), 'f', floatDigits, 64)
	dot := strings.IndexByte(s, '.')

	whole, _ := new(big.Int).SetString(s[:dot], 10)
	fs := s[dot+1:]

	// The leading zeros are counted on the raw digit string, before
	// the trailing zeros are stripped away by compose.
	zeros := 0
	for zeros < len(fs) && fs[zeros] == '0' {
		zeros++
	}

	if zeros == len(fs) {
		return compose(whole, bigZero, 0, negative), nil
	}

	frac, _ := new(big.Int).SetString(fs, 10)

	return compose(whole, frac, zeros, negative), nil
}

// Inf returns the infinite value with the given sign.
func Inf(negative bool) Number {
	return Number{inf: true, neg: negative}
}

// IsInf reports whether n is infinite.
func (n Number) IsInf() bool {
	return n.inf
}

// IsZero reports whether n is exactly zero.
func (n Number) IsZero() bool {
	return !n.inf && n.wholeRef().Sign() == 0 && n.fracRef().Sign() == 0
}

// IsNegative reports whether n is less than zero.
func (n Number) IsNegative() bool {
	if n.IsZero() {
		return false
	}

	return n.wholeRef().Sign() < 0 || n.neg
}

// Sign returns -1 when n is negative, 0 when n is zero, and +1 when n
// is positive.
func (n Number) Sign() int {
	switch {
	case n.IsZero():
		return 0
	case n.IsNegative():
		return -1
	}

	return 1
}

// IntPart returns a copy of the integer part of n. It is zero when n
// is infinite.
func (n Number) IntPart() *big.Int {
	return new(big.Int).Set(n.wholeRef())
}
