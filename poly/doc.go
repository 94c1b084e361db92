// Package poly provides the polynomial toolkit behind the predict
// engine: evaluation, formal calculus and complex root finding over a
// real coefficient vector.
//
// 🚀 What is poly?
//
//	A polynomial p is its coefficient slice: p[i] is the coefficient of
//	tⁱ. On top of that representation poly offers:
//
//	  • Value          — p(t) by successive power accumulation
//	  • Antiderivative — P(t) with P(0) = 0
//	  • Derive         — the formal derivative p'
//	  • Roots          — ALL complex roots via the Weierstrass
//	    (Durand–Kerner) simultaneous iteration
//
// ✨ Root finder in short:
//
//   - Degrees 1 and 2 are solved in closed form (Vieta's pairing avoids
//     cancellation on the quadratic)
//   - Degree ≥ 3 places initial estimates on a circle inside the Cauchy
//     annulus that provably contains every root, doubling the radius
//     until the first batched update is small enough to accept
//   - A sweep converges when every residual |Re p(zᵢ)| + |Im p(zᵢ)|
//     drops below Epsilon; after MaxIterations sweeps it gives up with
//     ErrNoConvergence
//
// Complexity: Value/Antiderivative/Derive are O(d); each root-finder
// sweep is O(d²) in complex arithmetic, capped at MaxIterations sweeps.
package poly
