// Package lvlopt is an in-memory toolbox for numerical optimization and
// calibration primitives — from linear programming to isotonic regression.
//
// 🚀 What is lvlopt?
//
//	A small, deterministic library that brings together:
//		• Interior-point LP solvers: short-step, predictor-corrector, long-step
//		• Central-path diagnostics: feasibility & neighborhood predicates
//		• Isotonic regression: Pool-Adjacent-Violators (PAV) with block output
//		• Histogram distances: intersection, chi-square, Kullback–Leibler
//		• Inverse normal CDF: Acklam approximation with Halley refinement
//
// ✨ Why choose lvlopt?
//
//   - Predictable – no global state, no hidden randomness, sentinel errors
//   - Library-grade – every failure surfaces as an error to the caller
//   - Lean – gonum for dense linear algebra, nothing else at runtime
//   - Checked and unchecked entry points – validation where you want it,
//     raw speed where you have already validated
//
// Everything is organized into one package per algorithm family:
//
//	lp/       — primal-dual interior-point Linear Program solvers
//	pavx/     — Pool-Adjacent-Violators isotonic regression
//	histdist/ — histogram distance kernels (dense & sparse)
//	norminv/  — inverse normal cumulative distribution function
//
// Quick taste:
//
//	s, _ := lp.NewShortstep(1, 2, 0.4, 1e-7)
//	x, err := s.Solve(A, b, c, x0)   // min cᵀx  s.t.  Ax = b, x ≥ 0
//
// See each package's doc.go and example_test.go for walkthroughs.
package lvlopt
