// Package lp: boundary validation for the checked entry points.
//
// One validating layer, one unchecked core: every public operation funnels
// malformed input through these helpers before any arithmetic, and the
// Unchecked twins skip them entirely.
package lp

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// checkProblem validates A (and optionally b, c — pass nil to skip) against
// the solver's declared (M, N) and rejects non-finite values.
func (s *interiorPoint) checkProblem(A mat.Matrix, b, c []float64) error {
	if A == nil {
		return ErrDimensionMismatch
	}
	r, cc := A.Dims()
	if r != s.m || cc != s.n {
		return ErrDimensionMismatch
	}
	if b != nil && len(b) != s.m {
		return ErrDimensionMismatch
	}
	if c != nil && len(c) != s.n {
		return ErrDimensionMismatch
	}
	if !finiteMatrix(A) || !finiteSlice(b) || !finiteSlice(c) {
		return ErrNaNInf
	}

	return nil
}

// checkPoint validates a candidate primal-dual point against (M, N).
func (s *interiorPoint) checkPoint(x, lambda, mu []float64) error {
	if len(x) != s.n || len(lambda) != s.m || len(mu) != s.n {
		return ErrDimensionMismatch
	}
	if !finiteSlice(x) || !finiteSlice(lambda) || !finiteSlice(mu) {
		return ErrNaNInf
	}

	return nil
}

// checkSolveInputs validates the full Solve argument set: the problem data,
// the starting point (strictly interior, even width) and any warm-start
// duals gathered from the options.
func (s *interiorPoint) checkSolveInputs(A mat.Matrix, b, c, x0 []float64, o solveOptions) error {
	if err := s.checkProblem(A, b, c); err != nil {
		return err
	}
	if s.n%2 != 0 {
		return ErrOddWidth
	}
	if len(x0) != s.n {
		return ErrDimensionMismatch
	}
	if !finiteSlice(x0) {
		return ErrNaNInf
	}
	if !positiveAll(x0) {
		return ErrNotInterior
	}
	if (o.lambda == nil) != (o.mu == nil) {
		return ErrDualPairing
	}
	if o.lambda != nil {
		if len(o.lambda) != s.m || len(o.mu) != s.n {
			return ErrDimensionMismatch
		}
		if !finiteSlice(o.lambda) || !finiteSlice(o.mu) {
			return ErrNaNInf
		}
		if !positiveAll(o.mu) {
			return ErrNotInterior
		}
	}

	return nil
}

// finiteSlice reports whether every element is finite; nil passes.
func finiteSlice(v []float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}

// finiteMatrix reports whether every element of A is finite.
func finiteMatrix(A mat.Matrix) bool {
	r, c := A.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := A.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}

	return true
}
