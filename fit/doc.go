// Package fit turns raw samples into model coefficients for the predict
// engine: it knows the five trend families, builds their design and
// response matrices, and solves the least-squares normal equations.
//
// 🚀 What is fit?
//
//	A Fit selects a parametric family to regress x against t:
//
//	  • Linear       x ≈ β₀ + β₁·t
//	  • Exponential  x ≈ exp(β₀ + β₁·t)         (fitted in log space)
//	  • Logarithmic  x ≈ β₀ + β₁·ln t
//	  • Power        x ≈ exp(β₀ + β₁·ln t)      (fitted in log space)
//	  • Polynomial   x ≈ Σ βⱼ·tʲ, degree k ≥ 1 (clamped to n−1)
//
//	Regress assembles the n×p design matrix A and response column b per
//	family and solves (AᵀA)β = Aᵀb through the matrix kernel, returning
//	the coefficient column β.
//
// ✨ Boundary contract:
//
//   - ParseFit / ParseMode turn the host's string selectors into enums
//     exactly once; the algorithms never branch on strings
//   - Log-space families require strictly positive x values and fail
//     with ErrNonPositive otherwise
//   - Degenerate sample sets (duplicate times with too high a
//     polynomial degree) surface matrix.ErrSingular from the kernel
//
// Complexity: building (A, b) is O(n·p); the solve adds O(n·p²) for the
// normal equations plus O(p³) for the inversion.
package fit
