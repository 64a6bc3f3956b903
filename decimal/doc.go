// Package decimal provides an unbounded precision base 10 number.
//
// A Number has no fixed bit width for either its integer or its
// fractional part. It is stored as an integer part plus a fractional
// significand whose trailing zero digits have been stripped:
//
//	| Value    | Whole | Leading Zeros | Significand |
//	|----------|-------|---------------|-------------|
//	| 12.34    | 12    | 0             | 34          |
//	| 12.034   | 12    | 1             | 34          |
//	| 12.340   | 12    | 0             | 34          |
//	| 0.0012   | 0     | 2             | 12          |
//	| -0.5     | 0     | 0             | 5           |
//
// The leading zero count is kept separately because stripping the
// trailing zeros of the significand would otherwise lose the scale of
// the fraction (.012 and .12 both strip to 12).
//
// Values are immutable. Every operation returns a new Number and never
// modifies its operands, so values may be shared freely between
// goroutines.
//
// Arithmetic
//
// Addition, subtraction, multiplication, modulo, and comparison are
// exact. Division is capped at a configurable number of significant
// fractional digits (30 unless changed) so that non-terminating
// expansions stay bounded. The cap is process wide; use DivPrec to
// thread a precision through an individual call instead.
//
// Division by zero yields infinity rather than an error. Infinity is a
// first class value: it participates in ordering, negation, and the
// multiplication and division special cases described on each method.
//
// Conversions
//
// String renders the canonical decimal form and Parse reads it back.
// Float64 and FromFloat64 convert to and from the native float, both
// lossy by nature: FromFloat64 keeps 15 fractional digits and Float64
// inherits float64 rounding.
package decimal
