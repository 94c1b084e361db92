// Package forecast: the TimeLeft entry point.
package forecast

import (
	"fmt"
	"math"

	"github.com/katalvlaran/predict/fit"
)

// TimeLeft fits the family to the samples (tᵢ, xᵢ) and returns the
// forward time until the fitted trajectory first equals threshold.
//
// The sentinel −1 means "not reached": the crossing lies in the past,
// the model is flat (zero slope), or the closed-form inverse produced a
// NaN. −1 is a legitimate result, not an error.
//
// When the fitted value at now already equals the threshold the answer
// is 0. For polynomials the nearest future crossing is returned with no
// regard to crossing direction — a trajectory touching the threshold
// from either side counts.
func TimeLeft(t, x []float64, now, threshold float64, f fit.Fit) (float64, error) {
	// 1) Fit: raw samples → coefficient vector.
	coeffs, err := fit.Coefficients(t, x, f)
	if err != nil {
		return 0, fmt.Errorf("TimeLeft: %w", err)
	}

	// 2) Already there?
	current, err := valueAt(now, coeffs, f)
	if err != nil {
		return 0, fmt.Errorf("TimeLeft: %w", err)
	}
	if current == threshold {
		return 0.0, nil
	}

	// 3) Invert the model per family.
	var result float64
	switch f.Family {
	case fit.Linear:
		if coeffs[1] != 0.0 {
			result = (threshold-coeffs[0])/coeffs[1] - now
		} else {
			result = -1.0 // flat line never reaches a different threshold
		}
	case fit.Polynomial:
		result, err = polynomialTimeLeft(now, threshold, coeffs)
		if err != nil {
			return 0, fmt.Errorf("TimeLeft: %w", err)
		}
	case fit.Exponential:
		if coeffs[1] != 0.0 {
			result = (math.Log(threshold)-coeffs[0])/coeffs[1] - now
		} else {
			result = -1.0
		}
	case fit.Logarithmic:
		if coeffs[1] != 0.0 {
			result = math.Exp((threshold-coeffs[0])/coeffs[1]) - now
		} else {
			result = -1.0
		}
	case fit.Power:
		if coeffs[1] != 0.0 {
			result = math.Exp((math.Log(threshold)-coeffs[0])/coeffs[1]) - now
		} else {
			result = -1.0
		}
	default:
		return 0, fmt.Errorf("TimeLeft: %w", fit.ErrBadFit)
	}

	// 4) Normalize: a past crossing or a NaN inverse means "not reached".
	if result < 0 || math.IsNaN(result) {
		result = -1.0
	}

	return result, nil
}
