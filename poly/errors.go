// Package poly: sentinel error set. Callers match via errors.Is.
package poly

import "errors"

var (
	// ErrNoCoefficients indicates an empty coefficient slice where at
	// least one coefficient is required.
	ErrNoCoefficients = errors.New("poly: no coefficients")

	// ErrAllRoots is returned for the zero polynomial: every number is a
	// root, so no meaningful root set exists.
	ErrAllRoots = errors.New("poly: every number is a root")

	// ErrNoConvergence is returned when the Weierstrass iteration fails
	// to bring all residuals below Epsilon within MaxIterations sweeps.
	ErrNoConvergence = errors.New("poly: root finder did not converge")
)
