package decimal_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/unum/decimal"
)

func TestBitwise(t *testing.T) {
	type TC struct {
		name string
		a    string
		b    string
		xor  string
		or   string
		and  string
	}

	tcs := []TC{
		{name: "integers", a: "12", b: "10", xor: "6", or: "14", and: "8"},
		{name: "zero", a: "12", b: "0", xor: "12", or: "12", and: "0"},
		{name: "fractions dropped", a: "12.75", b: "10.0001", xor: "6", or: "14", and: "8"},
		{name: "pure fraction is zero", a: "0.75", b: "6", xor: "6", or: "6", and: "0"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			a := decimal.MustParse(tc.a)
			b := decimal.MustParse(tc.b)

			require.Equal(t, tc.xor, a.Xor(b).String())
			require.Equal(t, tc.or, a.Or(b).String())
			require.Equal(t, tc.and, a.And(b).String())
		})
	}
}

func TestBitwiseSign(t *testing.T) {
	// The integer parts keep their two's complement semantics; the
	// forced fraction sign never participates.
	a := decimal.MustParse("-12.5")
	b := decimal.MustParse("10.25")

	require.Equal(t, "-2", a.Xor(b).String())
	require.Equal(t, "0", decimal.MustParse("-0.5").Or(decimal.FromInt64(0)).String())
}
