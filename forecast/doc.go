// Package forecast is the public surface of the predict engine: it fits
// a trend to past observations and summarizes the predicted trajectory.
//
// 🚀 Two questions, two calls:
//
//	Forecast(t, x, now, horizon, f, mode)
//	  → a scalar summary of the fitted trajectory over
//	    [now, now+horizon]: the point value, max, min, delta
//	    (max − min) or average.
//
//	TimeLeft(t, x, now, threshold, f)
//	  → the forward time until the fitted trajectory first reaches the
//	    threshold, or −1 when it never does. −1 is a result, not an
//	    error.
//
// ✨ How summaries are computed:
//
//   - The four monotone families (linear, exponential, logarithmic,
//     power) take their extrema at the interval endpoints, and each has
//     a closed-form average over the horizon
//   - Polynomials search candidate extrema among the real parts of the
//     derivative's roots inside the interval, and average via the
//     antiderivative
//   - Time-left inverts the monotone families in closed form; for
//     polynomials it picks the nearest future real root of the
//     threshold-shifted polynomial
//
// Every call is self-contained: matrices are built, used and dropped
// within the invocation, so concurrent calls with disjoint arguments
// need no synchronization.
package forecast
