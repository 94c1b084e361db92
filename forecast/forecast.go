// Package forecast: the Forecast entry point and per-family trajectory
// evaluation.
package forecast

import (
	"fmt"
	"math"

	"github.com/katalvlaran/predict/fit"
	"github.com/katalvlaran/predict/poly"
)

// Forecast fits the family to the samples (tᵢ, xᵢ) and summarizes the
// predicted trajectory over [now, now+horizon] according to mode.
//
// Mode value ignores the interval shape entirely and returns the point
// prediction at now+horizon. A zero horizon collapses max/min/avg to
// the value at now and delta to 0.
//
// Fitting failures (bad input, singular normal equations) and root
// finder failures on polynomial extremum search propagate as errors.
func Forecast(t, x []float64, now, horizon float64, f fit.Fit, mode fit.Mode) (float64, error) {
	// 1) Fit: raw samples → coefficient vector.
	coeffs, err := fit.Coefficients(t, x, f)
	if err != nil {
		return 0, fmt.Errorf("Forecast: %w", err)
	}

	// 2) Point prediction short-circuits before any interval logic.
	if mode == fit.Value {
		v, err := valueAt(now+horizon, coeffs, f)
		if err != nil {
			return 0, fmt.Errorf("Forecast: %w", err)
		}

		return v, nil
	}

	// 3) Degenerate interval: summaries collapse to the left endpoint.
	if horizon == 0.0 {
		switch mode {
		case fit.Max, fit.Min, fit.Avg:
			v, err := valueAt(now, coeffs, f)
			if err != nil {
				return 0, fmt.Errorf("Forecast: %w", err)
			}

			return v, nil
		case fit.Delta:
			return 0.0, nil
		default:
			return 0, fmt.Errorf("Forecast: %w", fit.ErrBadMode)
		}
	}

	// 4) Polynomials need the derivative's roots for interior extrema.
	if f.Family == fit.Polynomial {
		switch mode {
		case fit.Max, fit.Min, fit.Delta:
			v, err := polynomialExtremum(now, horizon, mode, coeffs)
			if err != nil {
				return 0, fmt.Errorf("Forecast: %w", err)
			}

			return v, nil
		case fit.Avg:
			return (poly.Antiderivative(coeffs, now+horizon) - poly.Antiderivative(coeffs, now)) / horizon, nil
		default:
			return 0, fmt.Errorf("Forecast: %w", fit.ErrBadMode)
		}
	}

	// 5) Monotone families: extrema sit at the interval endpoints.
	left, err := valueAt(now, coeffs, f)
	if err != nil {
		return 0, fmt.Errorf("Forecast: %w", err)
	}
	right, err := valueAt(now+horizon, coeffs, f)
	if err != nil {
		return 0, fmt.Errorf("Forecast: %w", err)
	}

	switch mode {
	case fit.Max:
		return math.Max(left, right), nil
	case fit.Min:
		return math.Min(left, right), nil
	case fit.Delta:
		return math.Abs(right - left), nil
	case fit.Avg:
		return monotoneAvg(now, horizon, left, right, coeffs, f.Family), nil
	}

	return 0, fmt.Errorf("Forecast: %w", fit.ErrBadMode)
}

// valueAt evaluates the fitted model at time t, applying the inverse
// transform for the log-space families.
func valueAt(t float64, coeffs []float64, f fit.Fit) (float64, error) {
	switch f.Family {
	case fit.Linear:
		return coeffs[0] + coeffs[1]*t, nil
	case fit.Polynomial:
		return poly.Value(coeffs, t), nil
	case fit.Exponential:
		return math.Exp(coeffs[0] + coeffs[1]*t), nil
	case fit.Logarithmic:
		return coeffs[0] + coeffs[1]*math.Log(t), nil
	case fit.Power:
		return math.Exp(coeffs[0] + coeffs[1]*math.Log(t)), nil
	}

	return 0, fmt.Errorf("valueAt: %w", fit.ErrBadFit)
}

// monotoneAvg returns the closed-form mean of the fitted trajectory over
// [now, now+horizon] for the monotone families, given the endpoint
// values left = f(now) and right = f(now+horizon).
//
// Each formula is the antiderivative difference divided by the horizon,
// reduced so that only the endpoint values and the slope coefficient
// appear:
//
//	linear:      (left + right) / 2
//	exponential: (right − left) / (horizon·β₁)
//	logarithmic: right + β₁·(ln(1 + horizon/now)·now/horizon − 1)
//	power:       (right·(now+horizon) − left·now) / (horizon·(β₁+1)),
//	             with the β₁ = −1 hyperbola integrating to a logarithm
func monotoneAvg(now, horizon, left, right float64, coeffs []float64, family fit.Family) float64 {
	switch family {
	case fit.Exponential:
		return (right - left) / horizon / coeffs[1]
	case fit.Logarithmic:
		return right + coeffs[1]*(math.Log(1.0+horizon/now)*now/horizon-1.0)
	case fit.Power:
		if coeffs[1] != -1.0 {
			return (right*(now+horizon) - left*now) / horizon / (coeffs[1] + 1.0)
		}

		return math.Exp(coeffs[0]) * math.Log(1.0+horizon/now) / horizon
	}

	// Linear is the remaining monotone family.
	return 0.5 * (left + right)
}
