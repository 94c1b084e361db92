// Package fit: response column and design matrix construction per family.
package fit

import (
	"fmt"
	"math"

	"github.com/katalvlaran/predict/matrix"
)

// response builds the n×1 response column b for the family.
// Log-space families (exponential, power) store ln(xᵢ) and require every
// xᵢ > 0; the rest store xᵢ unchanged.
func response(x []float64, f Fit) (*matrix.Dense, error) {
	b, err := matrix.NewDense(len(x), 1)
	if err != nil {
		return nil, fmt.Errorf("response: %w", err)
	}

	switch f.Family {
	case Linear, Logarithmic, Polynomial:
		for i, v := range x {
			_ = b.Set(i, 0, v)
		}
	case Exponential, Power:
		for i, v := range x {
			if v <= 0.0 {
				return nil, fmt.Errorf("response: x[%d]=%g: %w", i, v, ErrNonPositive)
			}
			_ = b.Set(i, 0, math.Log(v))
		}
	default:
		return nil, fmt.Errorf("response: %w", ErrBadFit)
	}

	return b, nil
}

// design builds the n×p design matrix A for the family.
//
//	linear, exponential:  rows [1, tᵢ]
//	logarithmic, power:   rows [1, ln tᵢ] — tᵢ > 0 is a caller contract;
//	                      a non-positive time yields a non-finite entry
//	                      that propagates into the solve
//	polynomial:           Vandermonde rows [1, tᵢ, …, tᵢᵏ], with the
//	                      degree clamped to n−1 when k ≥ n
func design(t []float64, f Fit) (*matrix.Dense, error) {
	n := len(t)

	switch f.Family {
	case Linear, Exponential:
		a, err := matrix.NewDense(n, 2)
		if err != nil {
			return nil, fmt.Errorf("design: %w", err)
		}
		for i, v := range t {
			_ = a.Set(i, 0, 1.0)
			_ = a.Set(i, 1, v)
		}

		return a, nil

	case Logarithmic, Power:
		a, err := matrix.NewDense(n, 2)
		if err != nil {
			return nil, fmt.Errorf("design: %w", err)
		}
		for i, v := range t {
			_ = a.Set(i, 0, 1.0)
			_ = a.Set(i, 1, math.Log(v))
		}

		return a, nil

	case Polynomial:
		k := f.Degree
		if k <= 0 {
			return nil, fmt.Errorf("design: degree %d: %w", k, ErrBadFit)
		}
		if k > n-1 {
			k = n - 1 // cannot determine more coefficients than samples
		}

		a, err := matrix.NewDense(n, k+1)
		if err != nil {
			return nil, fmt.Errorf("design: %w", err)
		}
		var element float64
		for i, v := range t {
			element = 1.0
			for j := 0; j <= k; j++ {
				_ = a.Set(i, j, element)
				element *= v
			}
		}

		return a, nil
	}

	return nil, fmt.Errorf("design: %w", ErrBadFit)
}
