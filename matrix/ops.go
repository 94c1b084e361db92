// Package matrix: structural operations — transpose, multiplication and
// the elementary row operations Gauss–Jordan elimination is built from.
package matrix

import "fmt"

// Transpose returns a new cols×rows matrix r with r[i,j] = m[j,i].
// Complexity: O(r*c) time and memory.
func (m *Dense) Transpose() *Dense {
	t := &Dense{r: m.c, c: m.r, data: make([]float64, len(m.data))}
	for i := 0; i < t.r; i++ {
		for j := 0; j < t.c; j++ {
			t.data[i*t.c+j] = m.data[j*m.c+i]
		}
	}

	return t
}

// Mul returns the matrix product m*o.
// Returns ErrDimensionMismatch when m.Cols() != o.Rows().
// Naive triple loop; target systems are small enough that blocking or
// BLAS would be overhead, not a win.
// Complexity: O(m.r * o.c * m.c).
func (m *Dense) Mul(o *Dense) (*Dense, error) {
	// 1) Shapes must chain: (r×k)·(k×c).
	if m.c != o.r {
		return nil, fmt.Errorf("Dense.Mul: %dx%d by %dx%d: %w", m.r, m.c, o.r, o.c, ErrDimensionMismatch)
	}

	// 2) Accumulate each product cell.
	p := &Dense{r: m.r, c: o.c, data: make([]float64, m.r*o.c)}
	var sum float64
	for i := 0; i < p.r; i++ {
		for j := 0; j < p.c; j++ {
			sum = 0
			for k := 0; k < m.c; k++ {
				sum += m.data[i*m.c+k] * o.data[k*o.c+j]
			}
			p.data[i*p.c+j] = sum
		}
	}

	return p, nil
}

// swapRows exchanges rows r1 and r2 in place.
func (m *Dense) swapRows(r1, r2 int) {
	for i := 0; i < m.c; i++ {
		m.data[r1*m.c+i], m.data[r2*m.c+i] = m.data[r2*m.c+i], m.data[r1*m.c+i]
	}
}

// divideRow divides every element of row by denominator in place.
func (m *Dense) divideRow(row int, denominator float64) {
	for i := 0; i < m.c; i++ {
		m.data[row*m.c+i] /= denominator
	}
}

// addScaledRow adds factor × row src to row dest in place.
func (m *Dense) addScaledRow(dest, src int, factor float64) {
	for i := 0; i < m.c; i++ {
		m.data[dest*m.c+i] += m.data[src*m.c+i] * factor
	}
}
