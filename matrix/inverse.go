// Package matrix: inversion via Gauss–Jordan elimination.
// Small orders get adjugate/determinant closed forms; everything else
// runs augmented elimination [m | I] with partial row pivoting.
package matrix

import (
	"fmt"
	"math"
)

// Inverse returns the inverse of the square matrix m.
//
// Blueprint:
//
//	Stage 1 (Validate): ensure m is square; dispatch 1×1 and 2×2 to
//	closed forms.
//	Stage 2 (Prepare): copy m into a working matrix l, start r as identity.
//	Stage 3 (Eliminate): for each column pick the largest-magnitude pivot
//	in rows [i,n), swap it up, zero everything below — mirroring every
//	row operation onto r.
//	Stage 4 (Back-substitute): zero everything above each pivot.
//	Stage 5 (Normalize): divide each row of r by its pivot.
//
// The singularity test is an exact zero: pivot selection has already
// maximized the magnitude, so a zero maximum means a truly degenerate
// column. Returns ErrNonSquare or ErrSingular on failure.
//
// Complexity: O(n³) time, O(n²) memory.
func (m *Dense) Inverse() (*Dense, error) {
	// Stage 1: shape check and small-order closed forms.
	if m.r != m.c {
		return nil, fmt.Errorf("Dense.Inverse: %dx%d: %w", m.r, m.c, ErrNonSquare)
	}
	n := m.r

	if n == 1 {
		if m.data[0] == 0.0 {
			return nil, fmt.Errorf("Dense.Inverse: %w", ErrSingular)
		}

		return &Dense{r: 1, c: 1, data: []float64{1.0 / m.data[0]}}, nil
	}

	if n == 2 {
		det := m.data[0]*m.data[3] - m.data[1]*m.data[2]
		if det == 0.0 {
			return nil, fmt.Errorf("Dense.Inverse: %w", ErrSingular)
		}

		return &Dense{r: 2, c: 2, data: []float64{
			m.data[3] / det, -m.data[1] / det,
			-m.data[2] / det, m.data[0] / det,
		}}, nil
	}

	// Stage 2: working copy and identity accumulator.
	l := m.Clone()
	r, err := NewIdentity(n)
	if err != nil {
		return nil, fmt.Errorf("Dense.Inverse: %w", err)
	}

	// Stage 3: forward elimination with partial (row) pivoting.
	var pivot, factor float64
	var i, j, k int
	for i = 0; i < n; i++ {
		// 3.1) Select the row with the largest |l[j,i]| among rows [i,n).
		k = i
		pivot = l.data[i*n+i]
		for j = i; j < n; j++ {
			if math.Abs(l.data[j*n+i]) > math.Abs(pivot) {
				k = j
				pivot = l.data[j*n+i]
			}
		}

		// 3.2) A zero maximum means the column is degenerate.
		if pivot == 0.0 {
			return nil, fmt.Errorf("Dense.Inverse: %w", ErrSingular)
		}

		// 3.3) Swap the pivot row up, in both l and r.
		if k != i {
			l.swapRows(i, k)
			r.swapRows(i, k)
		}

		// 3.4) Zero the column below the pivot.
		for j = i + 1; j < n; j++ {
			if factor = -l.data[j*n+i] / l.data[i*n+i]; factor != 0.0 {
				l.addScaledRow(j, i, factor)
				r.addScaledRow(j, i, factor)
			}
		}
	}

	// Stage 4: back-substitution — zero the column above each pivot.
	for i = n - 1; i > 0; i-- {
		for j = 0; j < i; j++ {
			if factor = -l.data[j*n+i] / l.data[i*n+i]; factor != 0.0 {
				l.addScaledRow(j, i, factor)
				r.addScaledRow(j, i, factor)
			}
		}
	}

	// Stage 5: normalize r rows by the surviving diagonal of l.
	for i = 0; i < n; i++ {
		r.divideRow(i, l.data[i*n+i])
	}

	return r, nil
}
