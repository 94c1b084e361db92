// Package poly: complex root finding via the Weierstrass (Durand–Kerner)
// simultaneous iteration.
package poly

import (
	"math"
	"math/cmplx"
)

const (
	// Epsilon is the residual tolerance: a root estimate z is accepted
	// once |Re p(z)| + |Im p(z)| < Epsilon. Callers filtering spurious
	// complex roots use the same tolerance.
	Epsilon = 1.0e-6

	// MaxIterations caps the number of batched Weierstrass sweeps.
	MaxIterations = 200
)

// Roots returns all complex roots of the real polynomial p.
//
// Blueprint:
//
//	Stage 1 (Degree): strip trailing zero coefficients down to the
//	effective degree. The zero polynomial fails with ErrAllRoots; a
//	nonzero constant succeeds with an empty root set.
//	Stage 2 (Closed forms): degree 1 directly, degree 2 via the
//	discriminant with Vieta's pairing (conjugate pair is emitted
//	negative-imaginary-part first).
//	Stage 3 (Iterate): degree ≥ 3 runs the batched Durand–Kerner update
//	zᵢ ← zᵢ − p(zᵢ) / (a_d·Π_{j≠i}(zᵢ−zⱼ)) from estimates placed on a
//	circle inside the Cauchy annulus containing every root.
//
// Returns ErrNoCoefficients, ErrAllRoots, or ErrNoConvergence when the
// residuals are not all below Epsilon after MaxIterations sweeps.
func Roots(p []float64) ([]complex128, error) {
	// Stage 1: effective degree.
	if len(p) == 0 {
		return nil, ErrNoCoefficients
	}
	degree := len(p) - 1
	highest := p[degree]
	for highest == 0.0 && degree > 0 {
		degree--
		highest = p[degree]
	}

	if degree == 0 {
		if highest == 0.0 {
			// Zero polynomial: cannot return anything meaningful.
			return nil, ErrAllRoots
		}

		// Nonzero constant: no roots at all.
		return nil, nil
	}

	// Stage 2: closed forms.
	if degree == 1 {
		return []complex128{complex(-p[0]/p[1], 0)}, nil
	}

	if degree == 2 {
		return quadraticRoots(p), nil
	}

	// Stage 3: Durand–Kerner.
	return weierstrass(p, degree, highest)
}

// quadraticRoots solves degree-2 polynomials via the discriminant.
// For a positive discriminant, Vieta's pairing q = −b − sign(b)·√D
// avoids catastrophic cancellation between −b and √D. Otherwise the
// conjugate pair shares real part −b/(2a); the root with negative
// imaginary part comes first.
func quadraticRoots(p []float64) []complex128 {
	d := p[1]*p[1] - 4*p[2]*p[0]
	if d > 0.0 {
		var q float64
		if p[1] > 0 {
			q = -p[1] - math.Sqrt(d)
		} else {
			q = -p[1] + math.Sqrt(d)
		}

		return []complex128{
			complex(0.5*q/p[2], 0),
			complex(2.0*p[0]/q, 0),
		}
	}

	re := -0.5 * p[1] / p[2]
	im := math.Sqrt(-d) / (2.0 * p[2])
	if im < 0 {
		im = -im // keep the negative-imaginary root in slot 0
	}

	return []complex128{complex(re, -im), complex(re, im)}
}

// weierstrass runs the batched Durand–Kerner iteration for degree ≥ 3.
func weierstrass(p []float64, degree int, highest float64) ([]complex128, error) {
	roots := make([]complex128, degree)
	updates := make([]complex128, degree)

	// Cauchy-style bounds: all roots lie in the annulus [1/lower, upper].
	upper, lower := 1.0, 1.0
	for i := 0; i < degree; i++ {
		if v := math.Abs(p[i] / highest); v > upper {
			upper = v
		}
		if v := math.Abs(p[i+1] / p[0]); v > lower {
			lower = v
		}
	}
	radius := 1.0 / lower

	rootsOK := false
	rootInit := false
	for iteration := 1; iteration <= MaxIterations && !rootsOK; iteration++ {
		// Initialization phase: grow the circle until it leaves the
		// annulus or the first batched update is accepted below.
		if !rootInit {
			if radius <= upper {
				for i := 0; i < degree; i++ {
					// The 0.25 angular offset breaks the symmetry that
					// would otherwise stall conjugate pairs.
					roots[i] = cmplx.Rect(radius, (2.0*math.Pi*(float64(i)+0.25))/float64(degree))
				}
				radius *= 2.0
			} else {
				rootInit = true
			}
		}

		rootsOK = true
		maxUpdate := 0.0

		for i := 0; i < degree; i++ {
			z := roots[i]

			// Denominator: a_d · Π_{j≠i} (zᵢ − zⱼ).
			denominator := complex(highest, 0)
			for j := 0; j < degree; j++ {
				if j == i {
					continue
				}
				denominator *= z - roots[j]
			}

			// Polynomial value at z over the effective degree.
			value := complex(p[0], 0)
			zpower := complex(1, 0)
			for j := 1; j <= degree; j++ {
				zpower *= z
				value += zpower * complex(p[j], 0)
			}

			// Residual decides sweep acceptance.
			residual := math.Abs(real(value)) + math.Abs(imag(value))
			rootsOK = rootsOK && residual < Epsilon

			// A zero denominator means two approximations coincide —
			// they converged to a multiple root, so no update is needed.
			if denominator != 0 {
				updates[i] = value / denominator
			} else {
				updates[i] = 0
			}

			if sq := real(updates[i])*real(updates[i]) + imag(updates[i])*imag(updates[i]); sq > maxUpdate {
				maxUpdate = sq
			}
		}

		// While still initializing, an update jumping past the current
		// circle means the placement was bad: discard and regrow.
		if maxUpdate > radius*radius && !rootInit {
			continue
		}
		rootInit = true

		for i := 0; i < degree; i++ {
			roots[i] -= updates[i]
		}
	}

	if !rootsOK {
		return nil, ErrNoConvergence
	}

	return roots, nil
}
