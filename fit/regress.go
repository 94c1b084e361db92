// Package fit: least-squares solve of the normal equations.
package fit

import (
	"fmt"

	"github.com/katalvlaran/predict/matrix"
)

// Regress fits the family to the samples (tᵢ, xᵢ) and returns the
// coefficient column β.
//
//	β = (AᵀA)⁻¹ · (Aᵀb)
//
// The multiplication is right-associated on purpose: inverting the p×p
// Gram matrix and multiplying the two p-sized factors is far cheaper
// than materializing the p×n pseudo-inverse.
//
// Failures propagate with their stage attached: invalid input from the
// builders (ErrNoData, ErrLengthMismatch, ErrNonPositive, ErrBadFit),
// matrix.ErrSingular from the kernel when the normal equations are
// degenerate (e.g. duplicate sample times with too high a polynomial
// degree).
//
// Complexity: O(n·p²) for the products plus O(p³) for the inversion.
func Regress(t, x []float64, f Fit) (*matrix.Dense, error) {
	// 1) Samples must be parallel and non-empty.
	if len(t) == 0 {
		return nil, fmt.Errorf("Regress: %w", ErrNoData)
	}
	if len(t) != len(x) {
		return nil, fmt.Errorf("Regress: %d times vs %d values: %w", len(t), len(x), ErrLengthMismatch)
	}

	// 2) Build the design matrix A and response column b for the family.
	a, err := design(t, f)
	if err != nil {
		return nil, fmt.Errorf("Regress: %w", err)
	}
	b, err := response(x, f)
	if err != nil {
		return nil, fmt.Errorf("Regress: %w", err)
	}

	// 3) Normal equations, right-associated.
	at := a.Transpose()

	gram, err := at.Mul(a) // AᵀA, p×p
	if err != nil {
		return nil, fmt.Errorf("Regress: %w", err)
	}
	inv, err := gram.Inverse() // (AᵀA)⁻¹
	if err != nil {
		return nil, fmt.Errorf("Regress: %w", err)
	}
	atb, err := at.Mul(b) // Aᵀb, p×1
	if err != nil {
		return nil, fmt.Errorf("Regress: %w", err)
	}

	beta, err := inv.Mul(atb)
	if err != nil {
		return nil, fmt.Errorf("Regress: %w", err)
	}

	return beta, nil
}

// Coefficients is a convenience over Regress that returns β as a plain
// slice, the shape the poly package and the closed-form family formulas
// consume.
func Coefficients(t, x []float64, f Fit) ([]float64, error) {
	beta, err := Regress(t, x, f)
	if err != nil {
		return nil, err
	}

	col, err := beta.Col(0)
	if err != nil {
		return nil, fmt.Errorf("Coefficients: %w", err)
	}

	return col, nil
}
