// Package lp solves Linear Programs with primal-dual interior-point methods,
// following the path-following framework of Wright, "Primal-Dual
// Interior-Point Methods" (SIAM, 1997), chapter 5.
//
// 🚀 The problem
//
//	Primal:  min cᵀx   s.t.  A·x = b,  x ≥ 0
//	Dual:    max bᵀλ   s.t.  Aᵀ·λ + μ = c,  μ ≥ 0
//
//	A is M×N, b has length M, c and the primal iterate x length N. By
//	convention the primal vector is the positive/negative split of an
//	unconstrained-sign variable of width N/2, so N is even and Solve
//	returns only the first half of the refined point.
//
// ✨ Three step strategies, one shared core:
//
//   - ShortstepSolver — fixed centering σ = 1−θ/√N, unit steps inside the
//     V2 neighborhood. Simplest, slowest; linear convergence.
//   - PredictorCorrectorSolver — alternates an affine-scaling predictor
//     (σ = 0, longest step inside V2(θ_pred)) with a pure centering
//     corrector (σ = 1) back into V2(θ_corr). Superlinear locally.
//   - LongstepSolver — constant centering σ with the longest step inside
//     the wide V∞(γ) neighborhood (elementwise floor on x∘μ).
//
// All three stop when the normalized complementarity gap τ = xᵀμ/N and the
// equality residual ‖Ax−b‖₂ both fall below the solver's epsilon.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlopt/lp"
//
//	s, err := lp.NewPredictorCorrector(m, n, 0.5, 0.25, 1e-7)
//	x, err := s.Solve(A, b, c, x0)                  // duals derived internally
//	x, err = s.Solve(A, b, c, x0,
//	    lp.WithDualLambda(lam), lp.WithDualMu(mu))  // or warm-started
//
// Diagnostics (IsFeasible, IsInV, IsInVS, and the long-step IsInVInf) are
// pure predicates, independently callable on any candidate point.
//
// Concurrency: a solver instance owns scratch buffers sized by Reset and is
// NOT internally synchronized. Distinct instances are independent; sharing
// one instance across goroutines requires external synchronization.
//
// Errors: all failures are the package sentinels in types.go, surfaced
// synchronously to the caller; nothing is retried or swallowed. Every entry
// point has an Unchecked twin that skips shape/finiteness validation.
package lp
