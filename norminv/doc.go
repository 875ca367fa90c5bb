// Package norminv - Inverse of the normal cumulative distribution funcion.
//
// Normsinv(p) returns the quantile x with P(X ≤ x) = p for the standard
// normal distribution; Norminv(p, mu, sigma) rescales it to N(mu, sigma²).
//
// # How it works
//
// The quantile is first approximated with Acklam's piecewise rational
// method (three regions, relative error below 1.15e-9), then polished
// with one Halley iteration against erfc, which brings the result to
// full float64 precision.
//
// # Edge cases
//
//   - p outside [0, 1] yields ErrProbability.
//   - p = 0 returns −Inf, p = 1 returns +Inf.
//
// # 🚀 Quick usage
//
//	x, err := norminv.Normsinv(0.05)      // ≈ -1.6449
//	y, err := norminv.Norminv(0.37, 2, 4) // quantile of N(2, 16)
package norminv
