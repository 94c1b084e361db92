// Package predict is a forecasting and time-to-threshold engine for
// monitored metrics in Go.
//
// 🚀 What is predict?
//
//	Given a finite sample of past observations (tᵢ, xᵢ), predict fits a
//	parametric trend and answers two questions:
//
//	  • Forecast — what will the metric look like over the next horizon?
//	    (point value, maximum, minimum, average, or spread)
//	  • TimeLeft — how long until the metric first reaches a threshold?
//
// ✨ Why choose predict?
//
//   - Self-contained      — one small dense-matrix kernel, no cgo
//   - Five trend families — linear, exponential, logarithmic, power,
//     polynomial of any admissible degree
//   - Analytic where possible — closed-form averages and inverses per
//     family, complex root finding only where the math demands it
//   - Stateless           — every call builds, uses and drops its own
//     transient matrices; calls never share state
//
// Under the hood, everything is organized under four subpackages:
//
//	matrix/   — dense row-major matrices: multiply, transpose,
//	            Gauss–Jordan inversion with partial pivoting
//	poly/     — polynomial evaluation, calculus and a Weierstrass
//	            (Durand–Kerner) complex root finder
//	fit/      — trend families, design matrices and the least-squares
//	            regressor over the normal equations
//	forecast/ — the public Forecast and TimeLeft entry points
//
// Dive into the example_test.go files in matrix, poly and forecast for
// runnable walkthroughs.
//
//	go get github.com/katalvlaran/predict
package predict
