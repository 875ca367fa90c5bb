package lp

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// PredictorCorrectorSolver alternates two Newton steps per iteration:
// a predictor with centering parameter 0 (the pure affine-scaling direction
// toward the boundary), stepped as far as the V2 neighborhood of radius
// thetaPred allows, and a corrector with centering parameter 1 that pulls
// the iterate back inside the tighter radius thetaCorr. The two-phase
// scheme converges superlinearly near the solution.
type PredictorCorrectorSolver struct {
	interiorPoint
	thetaPred float64
	thetaCorr float64
}

// NewPredictorCorrector constructs a predictor-corrector solver for an MxN
// problem. Both radii must lie in (0, 1); thetaCorr is the tighter one.
func NewPredictorCorrector(m, n int, thetaPred, thetaCorr, epsilon float64) (*PredictorCorrectorSolver, error) {
	core, err := newInteriorPoint(m, n, epsilon)
	if err != nil {
		return nil, err
	}
	if thetaPred <= 0 || thetaPred >= 1 || thetaCorr <= 0 || thetaCorr >= 1 {
		return nil, ErrBadParameter
	}

	return &PredictorCorrectorSolver{interiorPoint: core, thetaPred: thetaPred, thetaCorr: thetaCorr}, nil
}

// ThetaPred returns the prediction-phase neighborhood radius.
func (pc *PredictorCorrectorSolver) ThetaPred() float64 { return pc.thetaPred }

// SetThetaPred replaces the prediction radius; must lie in (0, 1).
func (pc *PredictorCorrectorSolver) SetThetaPred(theta float64) error {
	if theta <= 0 || theta >= 1 {
		return ErrBadParameter
	}
	pc.thetaPred = theta

	return nil
}

// ThetaCorr returns the correction-phase neighborhood radius.
func (pc *PredictorCorrectorSolver) ThetaCorr() float64 { return pc.thetaCorr }

// SetThetaCorr replaces the correction radius; must lie in (0, 1).
func (pc *PredictorCorrectorSolver) SetThetaCorr(theta float64) error {
	if theta <= 0 || theta >= 1 {
		return ErrBadParameter
	}
	pc.thetaCorr = theta

	return nil
}

// Clone returns a deep copy, duals included (never a shared reference).
func (pc *PredictorCorrectorSolver) Clone() *PredictorCorrectorSolver {
	return &PredictorCorrectorSolver{
		interiorPoint: pc.cloneCore(),
		thetaPred:     pc.thetaPred,
		thetaCorr:     pc.thetaCorr,
	}
}

// Equal reports value equality of (M, N, epsilon, thetaPred, thetaCorr).
func (pc *PredictorCorrectorSolver) Equal(other *PredictorCorrectorSolver) bool {
	return other != nil &&
		pc.m == other.m && pc.n == other.n && pc.epsilon == other.epsilon &&
		pc.thetaPred == other.thetaPred && pc.thetaCorr == other.thetaCorr
}

// Solve validates the inputs and runs the predictor-corrector iteration
// from x0, returning the first half of the refined primal vector.
func (pc *PredictorCorrectorSolver) Solve(A mat.Matrix, b, c, x0 []float64, opts ...SolveOption) ([]float64, error) {
	o := gatherSolveOptions(opts)
	if err := pc.checkSolveInputs(A, b, c, x0, o); err != nil {
		return nil, err
	}

	return pc.solvePredictorCorrector(A, b, c, x0, o)
}

// SolveUnchecked is Solve without validation; undefined on malformed input.
func (pc *PredictorCorrectorSolver) SolveUnchecked(A mat.Matrix, b, c, x0 []float64, opts ...SolveOption) ([]float64, error) {
	return pc.solvePredictorCorrector(A, b, c, x0, gatherSolveOptions(opts))
}

func (pc *PredictorCorrectorSolver) solvePredictorCorrector(A mat.Matrix, b, c, x0 []float64, o solveOptions) ([]float64, error) {
	return pc.solveCommon(A, b, c, x0, o, func(p *iteration) error {
		// Predictor: affine-scaling direction, longest step inside V2(thetaPred).
		if err := p.newtonStep(0); err != nil {
			return err
		}
		alpha := p.maxStep(func(x, mu []float64) bool {
			return IsInVUnchecked(x, mu, pc.thetaPred)
		})
		p.applyStep(alpha)

		// Corrector: pure centering step back inside V2(thetaCorr).
		p.refresh()
		if err := p.newtonStep(1); err != nil {
			return err
		}
		p.applyStep(math.Min(1, stepShrink*p.maxPositive()))

		return nil
	})
}
