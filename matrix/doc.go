// Package matrix provides the dense linear algebra kernel behind the
// predict engine: small row-major float64 matrices with the handful of
// operations regression needs.
//
// 🚀 What is matrix?
//
//	A deliberately small kernel for systems of modest size (design
//	matrices of a few thousand rows, coefficient systems of degree ≤ ~6):
//
//	  • NewDense / NewIdentity / Clone — allocation and deep copy
//	  • Transpose, Mul                 — naive triple-loop products
//	  • Inverse                        — Gauss–Jordan elimination with
//	    partial (row) pivoting, closed forms for 1×1 and 2×2
//
// ✨ Design notes:
//
//   - Row-major flat storage — cache friendly, trivially copyable
//   - No blocking, no BLAS — target systems are tiny; clarity wins
//   - Singularity is an exact-zero pivot after pivot selection; partial
//     pivoting already maximizes the pivot magnitude, so no extra
//     tolerance is layered on top
//   - All misuse (bad shape, index out of range, incompatible dims,
//     singular input) returns a sentinel error from errors.go; nothing
//     panics on user input
//
// Complexity: Mul is O(r·c·k); Inverse is O(n³); everything else is at
// most O(r·c).
package matrix
