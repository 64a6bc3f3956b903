package decimal

import "github.com/zeebo/errs"

// Error is the class of errors returned by this package.
var Error = errs.Class("decimal")

var (
	// ErrLeadingZeros is returned when a number is constructed with a
	// negative leading zero count.
	ErrLeadingZeros = Error.New("negative leading zero count")

	// ErrPrecision is returned when the division precision is set
	// below one significant digit.
	ErrPrecision = Error.New("division precision must be at least 1")

	// ErrNaN is returned when converting a float that is not a
	// number.
	ErrNaN = Error.New("not a number")
)
