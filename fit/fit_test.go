package fit_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/predict/fit"
	"github.com/katalvlaran/predict/matrix"
)

// TestParseFit_Selectors walks the full selector surface.
func TestParseFit_Selectors(t *testing.T) {
	f, err := fit.ParseFit("")
	require.NoError(t, err)
	assert.Equal(t, fit.Linear, f.Family, "empty selector aliases to linear")

	f, err = fit.ParseFit("linear")
	require.NoError(t, err)
	assert.Equal(t, fit.Linear, f.Family)

	f, err = fit.ParseFit("exponential")
	require.NoError(t, err)
	assert.Equal(t, fit.Exponential, f.Family)

	f, err = fit.ParseFit("logarithmic")
	require.NoError(t, err)
	assert.Equal(t, fit.Logarithmic, f.Family)

	f, err = fit.ParseFit("power")
	require.NoError(t, err)
	assert.Equal(t, fit.Power, f.Family)

	f, err = fit.ParseFit("polynomial4")
	require.NoError(t, err)
	assert.Equal(t, fit.Polynomial, f.Family)
	assert.Equal(t, 4, f.Degree, "degree parsed from the suffix")
}

// TestParseFit_Invalid covers unknown selectors and bad degrees.
func TestParseFit_Invalid(t *testing.T) {
	for _, s := range []string{"quadratic", "polynomial", "polynomialx", "polynomial0", "polynomial-2", "LINEAR"} {
		_, err := fit.ParseFit(s)
		assert.ErrorIs(t, err, fit.ErrBadFit, "selector %q must be rejected", s)
	}
}

// TestParseMode_Selectors walks the mode surface including the alias.
func TestParseMode_Selectors(t *testing.T) {
	m, err := fit.ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, fit.Value, m, "empty selector aliases to value")

	for s, want := range map[string]fit.Mode{
		"value": fit.Value, "max": fit.Max, "min": fit.Min, "delta": fit.Delta, "avg": fit.Avg,
	} {
		m, err = fit.ParseMode(s)
		require.NoError(t, err, "selector %q", s)
		assert.Equal(t, want, m, "selector %q", s)
	}

	_, err = fit.ParseMode("median")
	assert.ErrorIs(t, err, fit.ErrBadMode, "unknown mode must be rejected")
}

// TestRegress_InputValidation covers empty and mismatched samples.
func TestRegress_InputValidation(t *testing.T) {
	_, err := fit.Regress(nil, nil, fit.Fit{Family: fit.Linear})
	assert.ErrorIs(t, err, fit.ErrNoData, "empty samples must error")

	_, err = fit.Regress([]float64{1, 2}, []float64{1}, fit.Fit{Family: fit.Linear})
	assert.ErrorIs(t, err, fit.ErrLengthMismatch, "non-parallel slices must error")
}

// TestRegress_LinearExact recovers β = [1, 2] from x = 1 + 2t.
func TestRegress_LinearExact(t *testing.T) {
	ts := []float64{0, 1, 2, 3}
	xs := []float64{1, 3, 5, 7}

	beta, err := fit.Coefficients(ts, xs, fit.Fit{Family: fit.Linear})
	require.NoError(t, err)
	require.Len(t, beta, 2)
	assert.InDelta(t, 1.0, beta[0], 1e-6, "intercept")
	assert.InDelta(t, 2.0, beta[1], 1e-6, "slope")
}

// TestRegress_MatchesGonumLinear cross-checks the normal-equation solve
// against gonum's simple linear regression on noisy data.
func TestRegress_MatchesGonumLinear(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	n := 50
	ts := make([]float64, n)
	xs := make([]float64, n)
	for i := 0; i < n; i++ {
		ts[i] = float64(i)
		xs[i] = 4.2 - 0.3*ts[i] + rng.NormFloat64()*0.05
	}

	beta, err := fit.Coefficients(ts, xs, fit.Fit{Family: fit.Linear})
	require.NoError(t, err)

	alpha, slope := stat.LinearRegression(ts, xs, nil, false)
	assert.InDelta(t, alpha, beta[0], 1e-8, "intercept must match gonum")
	assert.InDelta(t, slope, beta[1], 1e-8, "slope must match gonum")
}

// TestRegress_ExponentialIdempotence fits samples synthesized exactly
// from the exponential family and recovers the generating coefficients.
func TestRegress_ExponentialIdempotence(t *testing.T) {
	b0, b1 := 0.5, 0.25
	ts := []float64{0, 1, 2, 3, 4}
	xs := make([]float64, len(ts))
	for i, v := range ts {
		xs[i] = math.Exp(b0 + b1*v)
	}

	beta, err := fit.Coefficients(ts, xs, fit.Fit{Family: fit.Exponential})
	require.NoError(t, err)
	assert.InDelta(t, b0, beta[0], 1e-6, "log-space intercept")
	assert.InDelta(t, b1, beta[1], 1e-6, "log-space slope")
}

// TestRegress_PowerIdempotence does the same for the power family.
func TestRegress_PowerIdempotence(t *testing.T) {
	b0, b1 := -0.2, 1.5
	ts := []float64{1, 2, 3, 4, 5}
	xs := make([]float64, len(ts))
	for i, v := range ts {
		xs[i] = math.Exp(b0 + b1*math.Log(v))
	}

	beta, err := fit.Coefficients(ts, xs, fit.Fit{Family: fit.Power})
	require.NoError(t, err)
	assert.InDelta(t, b0, beta[0], 1e-6, "log-space intercept")
	assert.InDelta(t, b1, beta[1], 1e-6, "exponent")
}

// TestRegress_NonPositiveLogSpace rejects zero/negative x for the
// log-space families.
func TestRegress_NonPositiveLogSpace(t *testing.T) {
	ts := []float64{1, 2, 3}
	xs := []float64{1, 0, 3}

	_, err := fit.Regress(ts, xs, fit.Fit{Family: fit.Power})
	assert.ErrorIs(t, err, fit.ErrNonPositive, "zero under log transform must error")

	_, err = fit.Regress(ts, []float64{1, -2, 3}, fit.Fit{Family: fit.Exponential})
	assert.ErrorIs(t, err, fit.ErrNonPositive, "negative under log transform must error")
}

// TestRegress_PolynomialClamp verifies k ≥ n is clamped to n−1.
func TestRegress_PolynomialClamp(t *testing.T) {
	ts := []float64{0, 1, 2}
	xs := []float64{1, 2, 5}

	beta, err := fit.Regress(ts, xs, fit.Fit{Family: fit.Polynomial, Degree: 5})
	require.NoError(t, err)
	assert.Equal(t, 3, beta.Rows(), "degree clamps to n-1=2, three coefficients")
}

// TestRegress_SingularSystem hits the kernel's singularity check with
// duplicate sample times and a quadratic fit.
func TestRegress_SingularSystem(t *testing.T) {
	ts := []float64{1, 1, 1}
	xs := []float64{1, 2, 3}

	_, err := fit.Regress(ts, xs, fit.Fit{Family: fit.Polynomial, Degree: 2})
	assert.ErrorIs(t, err, matrix.ErrSingular, "duplicate design rows degenerate the normal equations")
}

// TestDesign_Shapes white-box checks the per-family design layout.
func TestDesign_Shapes(t *testing.T) {
	ts := []float64{1, 2, 4}

	a, err := fit.Design(ts, fit.Fit{Family: fit.Linear})
	require.NoError(t, err)
	assert.Equal(t, 2, a.Cols(), "linear design is [1, t]")
	v, _ := a.At(2, 1)
	assert.Equal(t, 4.0, v, "second column carries raw time")

	a, err = fit.Design(ts, fit.Fit{Family: fit.Logarithmic})
	require.NoError(t, err)
	v, _ = a.At(1, 1)
	assert.InDelta(t, math.Log(2), v, 1e-15, "second column carries ln t")

	a, err = fit.Design(ts, fit.Fit{Family: fit.Polynomial, Degree: 2})
	require.NoError(t, err)
	require.Equal(t, 3, a.Cols(), "quadratic Vandermonde has three columns")
	v, _ = a.At(2, 2)
	assert.Equal(t, 16.0, v, "Vandermonde cell t²")
}

// TestResponse_LogTransform white-box checks the response transform.
func TestResponse_LogTransform(t *testing.T) {
	xs := []float64{1, math.E}

	b, err := fit.Response(xs, fit.Fit{Family: fit.Exponential})
	require.NoError(t, err)
	v0, _ := b.At(0, 0)
	v1, _ := b.At(1, 0)
	assert.Equal(t, 0.0, v0, "ln 1 = 0")
	assert.InDelta(t, 1.0, v1, 1e-15, "ln e = 1")

	b, err = fit.Response(xs, fit.Fit{Family: fit.Linear})
	require.NoError(t, err)
	v1, _ = b.At(1, 0)
	assert.Equal(t, math.E, v1, "linear response is untransformed")
}
