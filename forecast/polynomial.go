// Package forecast: polynomial trajectory summaries that need the root
// finder — interior extrema and threshold crossings.
package forecast

import (
	"fmt"
	"math"

	"github.com/katalvlaran/predict/fit"
	"github.com/katalvlaran/predict/poly"
)

// polynomialExtremum returns the max, min or spread of the polynomial
// over [now, now+horizon].
//
// Candidate extrema are the two endpoints plus every derivative root
// whose real part falls inside the interval. Imaginary parts are
// ignored on purpose: a spurious candidate from a complex root is still
// a legal evaluation point, so it can only widen the candidate set, and
// no minimal-imaginary-part cutoff needs tuning.
func polynomialExtremum(now, horizon float64, mode fit.Mode, coeffs []float64) (float64, error) {
	derivative := poly.Derive(coeffs)

	roots, err := poly.Roots(derivative)
	if err != nil {
		return 0, fmt.Errorf("polynomialExtremum: %w", err)
	}

	// Seed min/max with the endpoint values.
	minV := poly.Value(coeffs, now)
	maxV := poly.Value(coeffs, now+horizon)
	if maxV < minV {
		minV, maxV = maxV, minV
	}

	// Widen with every in-interval stationary candidate.
	var v float64
	for _, r := range roots {
		v = real(r)
		if v < now || v > now+horizon {
			continue
		}
		v = poly.Value(coeffs, v)
		if v < minV {
			minV = v
		} else if v > maxV {
			maxV = v
		}
	}

	switch mode {
	case fit.Max:
		return maxV, nil
	case fit.Min:
		return minV, nil
	case fit.Delta:
		return maxV - minV, nil
	}

	return 0, fmt.Errorf("polynomialExtremum: %w", fit.ErrBadMode)
}

// polynomialTimeLeft finds the nearest root of p(t) − threshold that
// lies strictly after now. The shifted polynomial's roots come back
// complex; a candidate counts as a real crossing only when evaluating
// the shifted polynomial at its real part leaves a residual below
// poly.Epsilon. Returns −1 when no future crossing exists.
func polynomialTimeLeft(now, threshold float64, coeffs []float64) (float64, error) {
	shifted := make([]float64, len(coeffs))
	copy(shifted, coeffs)
	shifted[0] -= threshold

	roots, err := poly.Roots(shifted)
	if err != nil {
		return 0, fmt.Errorf("polynomialTimeLeft: %w", err)
	}

	// Scan for the smallest real crossing strictly after now.
	var result float64
	found := false
	var re float64
	for _, r := range roots {
		re = real(r)
		if !found {
			if re > now && math.Abs(poly.Value(shifted, re)) < poly.Epsilon {
				found = true
				result = re
			}
		} else if now < re && re < result && math.Abs(poly.Value(shifted, re)) < poly.Epsilon {
			result = re
		}
	}

	if !found {
		return -1.0, nil
	}

	return result - now, nil
}
