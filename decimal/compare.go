package decimal

import "math/big"

// Cmp compares n and m and returns -1, 0, or +1. Infinities order by
// their effective signed value; two infinities of the same sign are
// equal.
func (n Number) Cmp(m Number) int {
	if n.inf || m.inf {
		return cmpInf(n, m)
	}

	ns, ms := n.Sign(), m.Sign()
	switch {
	case ns < ms:
		return -1
	case ns > ms:
		return 1
	}

	if c := n.wholeRef().Cmp(m.wholeRef()); c != 0 {
		return c
	}

	x, y, _ := alignFracs(n, m)

	c := x.Cmp(y)
	if ns < 0 {
		c = -c
	}

	return c
}

func cmpInf(n, m Number) int {
	switch {
	case n.inf && m.inf:
		nn, mn := n.IsNegative(), m.IsNegative()
		switch {
		case nn == mn:
			return 0
		case nn:
			return -1
		}

		return 1
	case n.inf:
		if n.IsNegative() {
			return -1
		}

		return 1
	}

	if m.IsNegative() {
		return 1
	}

	return -1
}

// Equal reports whether n and m represent the same value. Equal is
// consistent with Cmp: the leading zero scale participates, so 0.12
// and 0.0012 are not equal.
func (n Number) Equal(m Number) bool {
	return n.Cmp(m) == 0
}

// CmpAny compares n against v when v is a Number or a native numeric
// value. The second return is false when v is not comparable with a
// Number.
func (n Number) CmpAny(v interface{}) (int, bool) {
	switch o := v.(type) {
	case Number:
		return n.Cmp(o), true
	case *Number:
		if o == nil {
			return 0, false
		}

		return n.Cmp(*o), true
	case *big.Int:
		return n.Cmp(FromBigInt(o)), true
	case int:
		return n.Cmp(FromInt64(int64(o))), true
	case int32:
		return n.Cmp(FromInt64(int64(o))), true
	case int64:
		return n.Cmp(FromInt64(o)), true
	case float32:
		m, err := FromFloat64(float64(o))
		if err != nil {
			return 0, false
		}

		return n.Cmp(m), true
	case float64:
		m, err := FromFloat64(o)
		if err != nil {
			return 0, false
		}

		return n.Cmp(m), true
	}

	return 0, false
}
