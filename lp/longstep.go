package lp

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// LongstepSolver works in the wide V∞ neighborhood — an elementwise floor
// min(x∘μ) ≥ γ·τ instead of the 2-norm ball — taking the longest step that
// stays inside it, with a constant centering parameter sigma. Larger steps
// per iteration at the price of weaker theoretical guarantees.
//
// The V∞ membership test is deliberately a different predicate from the
// base IsInV, exposed under its own name (IsInVInf) so the two neighborhood
// definitions never shadow each other.
type LongstepSolver struct {
	interiorPoint
	gamma float64
	sigma float64
}

// NewLongstep constructs a long-step solver for an MxN problem.
// gamma and sigma must both lie in (0, 1).
func NewLongstep(m, n int, gamma, sigma, epsilon float64) (*LongstepSolver, error) {
	core, err := newInteriorPoint(m, n, epsilon)
	if err != nil {
		return nil, err
	}
	if gamma <= 0 || gamma >= 1 || sigma <= 0 || sigma >= 1 {
		return nil, ErrBadParameter
	}

	return &LongstepSolver{interiorPoint: core, gamma: gamma, sigma: sigma}, nil
}

// Gamma returns the V∞ neighborhood parameter.
func (ls *LongstepSolver) Gamma() float64 { return ls.gamma }

// SetGamma replaces the neighborhood parameter; must lie in (0, 1).
func (ls *LongstepSolver) SetGamma(gamma float64) error {
	if gamma <= 0 || gamma >= 1 {
		return ErrBadParameter
	}
	ls.gamma = gamma

	return nil
}

// Sigma returns the centering parameter.
func (ls *LongstepSolver) Sigma() float64 { return ls.sigma }

// SetSigma replaces the centering parameter; must lie in (0, 1).
func (ls *LongstepSolver) SetSigma(sigma float64) error {
	if sigma <= 0 || sigma >= 1 {
		return ErrBadParameter
	}
	ls.sigma = sigma

	return nil
}

// Clone returns a deep copy, duals included (never a shared reference).
func (ls *LongstepSolver) Clone() *LongstepSolver {
	return &LongstepSolver{interiorPoint: ls.cloneCore(), gamma: ls.gamma, sigma: ls.sigma}
}

// Equal reports value equality of (M, N, epsilon, gamma, sigma).
func (ls *LongstepSolver) Equal(other *LongstepSolver) bool {
	return other != nil &&
		ls.m == other.m && ls.n == other.n && ls.epsilon == other.epsilon &&
		ls.gamma == other.gamma && ls.sigma == other.sigma
}

// IsInVInf reports whether (x, mu) lies in the V∞ neighborhood of the
// central path with parameter gamma: min(x∘μ) ≥ γ·τ, τ = xᵀμ/len(x).
func (ls *LongstepSolver) IsInVInf(x, mu []float64, gamma float64) (bool, error) {
	if len(x) == 0 || len(x) != len(mu) {
		return false, ErrDimensionMismatch
	}
	if !finiteSlice(x) || !finiteSlice(mu) {
		return false, ErrNaNInf
	}

	return isInVInfUnchecked(x, mu, gamma), nil
}

// IsInVInfUnchecked is the raw V∞ membership test; callers guarantee equal,
// non-zero lengths and finite values.
func (ls *LongstepSolver) IsInVInfUnchecked(x, mu []float64, gamma float64) bool {
	return isInVInfUnchecked(x, mu, gamma)
}

// Solve validates the inputs and runs the long-step iteration from x0,
// returning the first half of the refined primal vector.
func (ls *LongstepSolver) Solve(A mat.Matrix, b, c, x0 []float64, opts ...SolveOption) ([]float64, error) {
	o := gatherSolveOptions(opts)
	if err := ls.checkSolveInputs(A, b, c, x0, o); err != nil {
		return nil, err
	}

	return ls.solveLongstep(A, b, c, x0, o)
}

// SolveUnchecked is Solve without validation; undefined on malformed input.
func (ls *LongstepSolver) SolveUnchecked(A mat.Matrix, b, c, x0 []float64, opts ...SolveOption) ([]float64, error) {
	return ls.solveLongstep(A, b, c, x0, gatherSolveOptions(opts))
}

func (ls *LongstepSolver) solveLongstep(A mat.Matrix, b, c, x0 []float64, o solveOptions) ([]float64, error) {
	return ls.solveCommon(A, b, c, x0, o, func(p *iteration) error {
		if err := p.newtonStep(ls.sigma); err != nil {
			return err
		}
		alpha := p.maxStep(func(x, mu []float64) bool {
			return isInVInfUnchecked(x, mu, ls.gamma)
		})
		if alpha == 0 {
			// Iterate starts outside V∞; a damped centering step re-enters.
			alpha = math.Min(1, stepShrink*p.maxPositive())
		}
		p.applyStep(alpha)

		return nil
	})
}
