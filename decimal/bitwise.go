package decimal

import "math/big"

// Bitwise operators act on the integer parts alone; fractional digits,
// scale, and the forced sign are dropped from the result.

// Xor returns the bitwise exclusive or of the integer parts of n and m.
func (n Number) Xor(m Number) Number {
	return FromBigInt(new(big.Int).Xor(n.wholeRef(), m.wholeRef()))
}

// Or returns the bitwise or of the integer parts of n and m.
func (n Number) Or(m Number) Number {
	return FromBigInt(new(big.Int).Or(n.wholeRef(), m.wholeRef()))
}

// And returns the bitwise and of the integer parts of n and m.
func (n Number) And(m Number) Number {
	return FromBigInt(new(big.Int).And(n.wholeRef(), m.wholeRef()))
}
