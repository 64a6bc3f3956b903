package decimal

import (
	"fmt"
	"math/big"
	"strings"
)

// Parse converts the canonical decimal rendering back into a Number.
// Accepted forms are an optional sign followed by integer digits, an
// optional point with fraction digits, or "inf".
func Parse(s string) (_ Number, err error) {
	defer Error.WrapP(&err)

	in := s
	negative := false

	switch {
	case strings.HasPrefix(in, "-"):
		negative = true
		in = in[1:]
	case strings.HasPrefix(in, "+"):
		in = in[1:]
	}

	if in == "inf" {
		return Inf(negative), nil
	}

	ip := in
	fp := ""
	if dot := strings.IndexByte(in, '.'); dot >= 0 {
		ip, fp = in[:dot], in[dot+1:]
		if fp == "" {
			return Number{}, Error.New("invalid number %q", s)
		}
	}

	if ip == "" {
		if fp == "" {
			return Number{}, Error.New("invalid number %q", s)
		}

		ip = "0"
	}

	if !digitsOnly(ip) || (fp != "" && !digitsOnly(fp)) {
		return Number{}, Error.New("invalid number %q", s)
	}

	whole, _ := new(big.Int).SetString(ip, 10)

	if fp == "" {
		return compose(whole, bigZero, 0, negative), nil
	}

	zeros := 0
	for zeros < len(fp) && fp[zeros] == '0' {
		zeros++
	}

	frac, _ := new(big.Int).SetString(fp, 10)

	return compose(whole, frac, zeros, negative), nil
}

// MustParse is like Parse but panics on malformed input. It keeps
// literals in tables terse.
func MustParse(s string) Number {
	n, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", s, err))
	}

	return n
}

func digitsOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return len(s) > 0
}
