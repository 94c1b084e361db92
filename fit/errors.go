// Package fit: sentinel error set. Callers match via errors.Is.
package fit

import "errors"

var (
	// ErrBadFit indicates an unknown fit selector or a polynomial degree
	// that is missing, non-numeric, or not positive.
	ErrBadFit = errors.New("fit: invalid fit parameter")

	// ErrBadMode indicates an unknown forecast mode selector.
	ErrBadMode = errors.New("fit: invalid mode parameter")

	// ErrNoData indicates an empty sample set.
	ErrNoData = errors.New("fit: no input data provided")

	// ErrLengthMismatch indicates t and x are not parallel arrays.
	ErrLengthMismatch = errors.New("fit: sample slices differ in length")

	// ErrNonPositive indicates a log-space family (exponential, power)
	// received a zero or negative x value.
	ErrNonPositive = errors.New("fit: data contains negative or zero values")
)
