package lp

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// ShortstepSolver follows the central path with a constant centering
// parameter σ = 1 − θ/√N and unit Newton steps, keeping the iterate inside
// the V2 neighborhood of radius theta. The simplest and slowest strategy
// (linear convergence); kept for correctness comparisons and small to
// medium problems.
type ShortstepSolver struct {
	interiorPoint
	theta float64
}

// NewShortstep constructs a short-step solver for an MxN problem.
// theta must lie in (0, 1) and epsilon must be positive.
func NewShortstep(m, n int, theta, epsilon float64) (*ShortstepSolver, error) {
	core, err := newInteriorPoint(m, n, epsilon)
	if err != nil {
		return nil, err
	}
	if theta <= 0 || theta >= 1 {
		return nil, ErrBadParameter
	}

	return &ShortstepSolver{interiorPoint: core, theta: theta}, nil
}

// Theta returns the V2 neighborhood radius.
func (ss *ShortstepSolver) Theta() float64 { return ss.theta }

// SetTheta replaces the neighborhood radius; must lie in (0, 1).
func (ss *ShortstepSolver) SetTheta(theta float64) error {
	if theta <= 0 || theta >= 1 {
		return ErrBadParameter
	}
	ss.theta = theta

	return nil
}

// Clone returns a deep copy, duals included (never a shared reference).
func (ss *ShortstepSolver) Clone() *ShortstepSolver {
	return &ShortstepSolver{interiorPoint: ss.cloneCore(), theta: ss.theta}
}

// Equal reports value equality of (M, N, epsilon, theta); identity and
// solve history are irrelevant.
func (ss *ShortstepSolver) Equal(other *ShortstepSolver) bool {
	return other != nil &&
		ss.m == other.m && ss.n == other.n &&
		ss.epsilon == other.epsilon && ss.theta == other.theta
}

// Solve validates the inputs and runs the short-step iteration from x0,
// returning the first half of the refined primal vector.
func (ss *ShortstepSolver) Solve(A mat.Matrix, b, c, x0 []float64, opts ...SolveOption) ([]float64, error) {
	o := gatherSolveOptions(opts)
	if err := ss.checkSolveInputs(A, b, c, x0, o); err != nil {
		return nil, err
	}

	return ss.solveShortstep(A, b, c, x0, o)
}

// SolveUnchecked is Solve without validation; undefined on malformed input.
func (ss *ShortstepSolver) SolveUnchecked(A mat.Matrix, b, c, x0 []float64, opts ...SolveOption) ([]float64, error) {
	return ss.solveShortstep(A, b, c, x0, gatherSolveOptions(opts))
}

func (ss *ShortstepSolver) solveShortstep(A mat.Matrix, b, c, x0 []float64, o solveOptions) ([]float64, error) {
	sigma := 1 - ss.theta/math.Sqrt(float64(ss.n))

	return ss.solveCommon(A, b, c, x0, o, func(p *iteration) error {
		if err := p.newtonStep(sigma); err != nil {
			return err
		}
		// Unit step, shrunk only as far as the positive orthant demands.
		p.applyStep(math.Min(1, stepShrink*p.maxPositive()))

		return nil
	})
}
