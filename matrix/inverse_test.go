package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/predict/matrix"
)

// TestInverse_NonSquare verifies that rectangular inputs error out.
func TestInverse_NonSquare(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	_, err = m.Inverse()
	assert.ErrorIs(t, err, matrix.ErrNonSquare, "2x3 has no inverse")
}

// TestInverse_Singular covers exact-zero pivots at every dispatch order:
// 1×1, 2×2 and the general elimination path.
func TestInverse_Singular(t *testing.T) {
	one := mustDense(t, 1, 1, []float64{0})
	_, err := one.Inverse()
	assert.ErrorIs(t, err, matrix.ErrSingular, "1x1 zero is singular")

	two := mustDense(t, 2, 2, []float64{1, 2, 2, 4})
	_, err = two.Inverse()
	assert.ErrorIs(t, err, matrix.ErrSingular, "proportional rows are singular")

	// Rows 0 and 2 identical: elimination must hit a zero pivot column.
	three := mustDense(t, 3, 3, []float64{1, 2, 3, 4, 5, 6, 1, 2, 3})
	_, err = three.Inverse()
	assert.ErrorIs(t, err, matrix.ErrSingular, "duplicate rows are singular")
}

// TestInverse_ClosedForms checks the 1×1 and 2×2 adjugate shortcuts.
func TestInverse_ClosedForms(t *testing.T) {
	one := mustDense(t, 1, 1, []float64{4})
	inv, err := one.Inverse()
	require.NoError(t, err)
	v, _ := inv.At(0, 0)
	assert.Equal(t, 0.25, v, "1x1 inverse is the reciprocal")

	two := mustDense(t, 2, 2, []float64{4, 7, 2, 6})
	inv, err = two.Inverse()
	require.NoError(t, err)
	want := []float64{0.6, -0.7, -0.2, 0.4}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			got, _ := inv.At(i, j)
			assert.InDelta(t, want[i*2+j], got, 1e-12, "2x2 inverse cell (%d,%d)", i, j)
		}
	}
}

// TestInverse_IdentityProperty verifies M·M⁻¹ ≈ I element-wise to
// 1e-9·n for random diagonally dominant matrices of orders 3..6.
func TestInverse_IdentityProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for n := 3; n <= 6; n++ {
		m, err := matrix.NewDense(n, n)
		require.NoError(t, err)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				v := rng.Float64()*2 - 1
				if i == j {
					v += float64(n) // diagonal dominance keeps it non-singular
				}
				require.NoError(t, m.Set(i, j, v))
			}
		}

		inv, err := m.Inverse()
		require.NoError(t, err, "dominant matrix of order %d must invert", n)

		prod, err := m.Mul(inv)
		require.NoError(t, err)

		tol := 1e-9 * float64(n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				got, _ := prod.At(i, j)
				want := 0.0
				if i == j {
					want = 1.0
				}
				assert.InDelta(t, want, got, tol, "order %d product cell (%d,%d)", n, i, j)
			}
		}
	}
}

// TestInverse_MatchesGonum cross-checks the Gauss–Jordan kernel against
// gonum's LU-based inversion on a fixed 4×4 system.
func TestInverse_MatchesGonum(t *testing.T) {
	vals := []float64{
		4, 1, -2, 2,
		1, 2, 0, 1,
		-2, 0, 3, -2,
		2, 1, -2, -1,
	}
	m := mustDense(t, 4, 4, vals)

	inv, err := m.Inverse()
	require.NoError(t, err)

	var ref mat.Dense
	require.NoError(t, ref.Inverse(mat.NewDense(4, 4, vals)), "gonum must invert the reference")

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			got, _ := inv.At(i, j)
			assert.InDelta(t, ref.At(i, j), got, 1e-10, "inverse cell (%d,%d)", i, j)
		}
	}
}

// TestInverse_PivotingStability inverts a system whose natural pivot
// order is catastrophically small, which only succeeds with row pivoting.
func TestInverse_PivotingStability(t *testing.T) {
	m := mustDense(t, 3, 3, []float64{
		1e-14, 1, 0,
		1, 0, 1,
		0, 1, 1,
	})

	inv, err := m.Inverse()
	require.NoError(t, err, "pivoting must rescue the tiny leading pivot")

	prod, err := m.Mul(inv)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			got, _ := prod.At(i, j)
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.True(t, math.Abs(got-want) < 1e-9, "product cell (%d,%d)=%g", i, j, got)
		}
	}
}
