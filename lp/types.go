// Package lp: sentinel error set, tunables and the Solver contract.
//
// Every message is prefixed with "lp: ..." for consistency and easy grepping.
// Algorithms MUST return these sentinels and tests MUST check them via
// errors.Is. No algorithm panics on user-triggered error conditions.
package lp

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrBadDimension is returned when a problem dimension (M or N) is
	// non-positive, at construction or on Reset.
	ErrBadDimension = errors.New("lp: problem dimensions must be positive")

	// ErrBadParameter signals an out-of-range scalar: epsilon <= 0, a
	// neighborhood radius or centering factor outside (0,1), or a
	// non-positive iteration budget.
	ErrBadParameter = errors.New("lp: parameter out of range")

	// ErrDimensionMismatch indicates an input whose shape disagrees with the
	// solver's declared (M, N): A is not MxN, or a vector has the wrong length.
	ErrDimensionMismatch = errors.New("lp: input shape inconsistent with solver dimensions")

	// ErrOddWidth is returned by Solve when N is odd: the primal vector is
	// split into positive/negative halves, so its width must be even.
	ErrOddWidth = errors.New("lp: primal width N must be even")

	// ErrDualPairing is returned when exactly one of the dual warm-start
	// vectors (lambda, mu) is supplied. They travel together or not at all.
	ErrDualPairing = errors.New("lp: lambda and mu must be supplied together or omitted together")

	// ErrNotInterior rejects starting points that are not strictly positive;
	// the path-following iteration is only defined on the open orthant.
	ErrNotInterior = errors.New("lp: starting point must be strictly positive")

	// ErrNaNInf signals a NaN or +-Inf value where finite input is required.
	ErrNaNInf = errors.New("lp: NaN or Inf encountered")

	// ErrNumeric wraps a failure inside the dense linear algebra: a singular
	// or hopelessly ill-conditioned Newton or normal-equation system. The
	// underlying message is attached via %w wrapping.
	ErrNumeric = errors.New("lp: numeric failure")

	// ErrStalled is returned when the iteration budget is exhausted before
	// the duality gap and equality residual fall below epsilon.
	ErrStalled = errors.New("lp: iteration budget exhausted before convergence")
)

// DefaultMaxIterations bounds the Newton iteration when the caller does not
// supply WithMaxIterations. Generous on purpose: the stopping rule is the
// epsilon gap, the budget only guards against a stalled schedule.
const DefaultMaxIterations = 10000

const (
	// stepShrink keeps damped steps a hair inside the positive orthant.
	stepShrink = 0.9995

	// stepSearchIters is the bisection depth of the neighborhood line search;
	// 50 halvings locate the boundary to ~1e-15 relative accuracy.
	stepSearchIters = 50

	// phaseOneMargin is the slack margin targeted when pushing the initial
	// dual point strictly inside mu > 0.
	phaseOneMargin = 1e-2

	// phaseOneMaxIter bounds the Gauss-Newton interior push.
	phaseOneMaxIter = 200

	// centerMaxIter bounds the log-barrier centering polish. The dual region
	// may be unbounded, in which case the barrier has no minimizer and the
	// loop must be cut short.
	centerMaxIter = 20

	// centerTol stops the centering polish once the Newton decrement is noise.
	centerTol = 1e-10
)

// SolveOption configures a single Solve/SolveUnchecked call.
type SolveOption func(*solveOptions)

// solveOptions is the gathered per-call state; fields are unexported so the
// public API stays ...SolveOption only.
type solveOptions struct {
	lambda  []float64
	mu      []float64
	maxIter int
}

// WithDualLambda supplies a warm-start value for the dual vector lambda
// (length M). Must be paired with WithDualMu or Solve fails with
// ErrDualPairing.
func WithDualLambda(lambda []float64) SolveOption {
	return func(o *solveOptions) { o.lambda = lambda }
}

// WithDualMu supplies a warm-start value for the dual vector mu (length N,
// strictly positive). Must be paired with WithDualLambda or Solve fails with
// ErrDualPairing.
func WithDualMu(mu []float64) SolveOption {
	return func(o *solveOptions) { o.mu = mu }
}

// WithMaxIterations replaces DefaultMaxIterations for one call.
// k <= 0 makes Solve fail with ErrBadParameter.
func WithMaxIterations(k int) SolveOption {
	return func(o *solveOptions) { o.maxIter = k }
}

// gatherSolveOptions applies opts over the documented defaults.
func gatherSolveOptions(opts []SolveOption) solveOptions {
	o := solveOptions{maxIter: DefaultMaxIterations}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Solver is the surface shared by the three concrete step strategies
// (ShortstepSolver, PredictorCorrectorSolver, LongstepSolver). There is no
// way to obtain a Solver that is not one of those: the shared core is
// deliberately unexported.
type Solver interface {
	// M returns the row count of the constraint matrix A.
	M() int
	// N returns the column count of A and the width of the primal vector.
	N() int
	// Epsilon returns the equality-constraint / gap tolerance.
	Epsilon() float64
	// SetEpsilon replaces the tolerance; eps <= 0 yields ErrBadParameter.
	SetEpsilon(eps float64) error
	// Lambda returns a copy of the dual vector lambda (length M); zero-filled
	// until a Solve or InitializeDualLambdaMu call populates it.
	Lambda() []float64
	// Mu returns a copy of the dual vector mu (length N); zero-filled until a
	// Solve or InitializeDualLambdaMu call populates it.
	Mu() []float64
	// Reset resizes the problem to (m, n), reallocating all working buffers
	// and zeroing the duals. Previous solve history is discarded.
	Reset(m, n int) error
	// InitializeDualLambdaMu computes an initial dual pair by minimizing the
	// logarithmic barrier of the dual feasibility constraint A'lambda+mu = c.
	InitializeDualLambdaMu(A mat.Matrix, c []float64) error
	// Solve runs the interior-point iteration from x0 (length N) and returns
	// the first half of the refined primal vector (length N/2).
	Solve(A mat.Matrix, b, c, x0 []float64, opts ...SolveOption) ([]float64, error)
	// SolveUnchecked is Solve minus all shape/finiteness validation.
	// Behavior on malformed input is undefined; callers take on the
	// responsibility of validating first.
	SolveUnchecked(A mat.Matrix, b, c, x0 []float64, opts ...SolveOption) ([]float64, error)
	// IsFeasible reports whether (x, lambda, mu) satisfies the primal and
	// dual constraints within Epsilon.
	IsFeasible(A mat.Matrix, b, c, x, lambda, mu []float64) (bool, error)
	// IsInV reports membership of (x, mu) in the 2-norm (V2) neighborhood of
	// the central path with radius theta.
	IsInV(x, mu []float64, theta float64) (bool, error)
	// IsInVS reports the conjunction of IsFeasible and IsInV.
	IsInVS(A mat.Matrix, b, c, x, lambda, mu []float64, theta float64) (bool, error)
}

// Compile-time interface conformance for all three strategies.
var (
	_ Solver = (*ShortstepSolver)(nil)
	_ Solver = (*PredictorCorrectorSolver)(nil)
	_ Solver = (*LongstepSolver)(nil)
)
