package decimal_test

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/unum/decimal"
)

func TestCmp(t *testing.T) {
	type TC struct {
		name string
		a    string
		b    string
		want int
	}

	tcs := []TC{
		{name: "equal integers", a: "42", b: "42", want: 0},
		{name: "integers", a: "1", b: "2", want: -1},
		{name: "sign first", a: "-1", b: "0.0001", want: -1},
		{name: "zero against negative", a: "0", b: "-0.5", want: 1},
		{name: "whole decides", a: "1.9", b: "2.1", want: -1},
		{name: "fraction decides", a: "1.5", b: "1.25", want: 1},
		{name: "leading zeros decide", a: "0.0012", b: "0.12", want: -1},
		{name: "negatives flip", a: "-0.0012", b: "-0.12", want: 1},
		{name: "negative fractions", a: "-1.5", b: "-1.2", want: -1},
		{name: "equal fractions", a: "0.0012", b: "0.0012", want: 0},
		{name: "equal across forms", a: "1.100", b: "1.1", want: 0},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			got := decimal.MustParse(tc.a).Cmp(decimal.MustParse(tc.b))
			require.Equal(t, tc.want, got)
		})
	}
}

func TestCmpInf(t *testing.T) {
	inf := decimal.Inf(false)
	ninf := decimal.Inf(true)
	n := decimal.MustParse("123456789012345678.232")

	require.Equal(t, 1, inf.Cmp(n))
	require.Equal(t, -1, n.Cmp(inf))
	require.Equal(t, -1, ninf.Cmp(n))
	require.Equal(t, 1, n.Cmp(ninf))
	require.Equal(t, 0, inf.Cmp(decimal.Inf(false)))
	require.Equal(t, 0, ninf.Cmp(decimal.Inf(true)))
	require.Equal(t, -1, ninf.Cmp(inf))
	require.Equal(t, 1, inf.Cmp(ninf))
}

func TestCmpAntisymmetric(t *testing.T) {
	for _, a := range samples {
		for _, b := range samples {
			x := decimal.MustParse(a)
			y := decimal.MustParse(b)

			require.Equal(t, x.Cmp(y), -y.Cmp(x), spew.Sdump(a, b))
			require.Equal(t, x.Cmp(y) == 0, x.Equal(y), spew.Sdump(a, b))
		}
	}
}

func TestEqual(t *testing.T) {
	require.True(t, decimal.MustParse("12.34").Equal(decimal.MustParse("12.34")))
	require.True(t, decimal.MustParse("0").Equal(decimal.Number{}))

	// The leading zero scale participates: same significand at a
	// different scale is a different value.
	a, err := decimal.New(0, 12, 0, false)
	require.NoError(t, err)
	b, err := decimal.New(0, 12, 2, false)
	require.NoError(t, err)
	require.False(t, a.Equal(b))
}

func TestCmpAny(t *testing.T) {
	n := decimal.MustParse("2.5")

	c, ok := n.CmpAny(decimal.MustParse("2.5"))
	require.True(t, ok)
	require.Equal(t, 0, c)

	c, ok = n.CmpAny(2)
	require.True(t, ok)
	require.Equal(t, 1, c)

	c, ok = n.CmpAny(int64(3))
	require.True(t, ok)
	require.Equal(t, -1, c)

	c, ok = n.CmpAny(2.5)
	require.True(t, ok)
	require.Equal(t, 0, c)

	c, ok = n.CmpAny(big.NewInt(2))
	require.True(t, ok)
	require.Equal(t, 1, c)

	_, ok = n.CmpAny("2.5")
	require.False(t, ok)

	_, ok = n.CmpAny(nil)
	require.False(t, ok)

	_, ok = n.CmpAny((*decimal.Number)(nil))
	require.False(t, ok)
}
