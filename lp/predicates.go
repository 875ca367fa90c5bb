// Package lp: feasibility and central-path neighborhood predicates.
//
// All predicates are pure: they never mutate the solver's duals or iterate.
// Checked wrappers validate shapes against the solver's (M, N) and reject
// non-finite input; Unchecked twins skip straight to the arithmetic.
package lp

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// IsFeasible reports whether the primal-dual point (x, lambda, mu) fulfills
// all constraints within Epsilon:
//
//	‖A·x − b‖₂ < ε,   x ≥ 0,   ‖A'·λ + μ − c‖₂ < ε,   μ ≥ 0.
func (s *interiorPoint) IsFeasible(A mat.Matrix, b, c, x, lambda, mu []float64) (bool, error) {
	if err := s.checkProblem(A, b, c); err != nil {
		return false, err
	}
	if err := s.checkPoint(x, lambda, mu); err != nil {
		return false, err
	}

	return s.IsFeasibleUnchecked(A, b, c, x, lambda, mu), nil
}

// IsFeasibleUnchecked is IsFeasible without any shape or finiteness
// validation. Behavior on malformed input is undefined.
func (s *interiorPoint) IsFeasibleUnchecked(A mat.Matrix, b, c, x, lambda, mu []float64) bool {
	for _, v := range x {
		if v < 0 {
			return false
		}
	}
	for _, v := range mu {
		if v < 0 {
			return false
		}
	}

	// ‖A·x − b‖₂
	r := mat.NewVecDense(len(b), nil)
	r.MulVec(A, mat.NewVecDense(len(x), x))
	for i := range b {
		r.SetVec(i, r.AtVec(i)-b[i])
	}
	if mat.Norm(r, 2) >= s.epsilon {
		return false
	}

	// ‖A'·λ + μ − c‖₂
	d := mat.NewVecDense(len(c), nil)
	d.MulVec(A.T(), mat.NewVecDense(len(lambda), lambda))
	for j := range c {
		d.SetVec(j, d.AtVec(j)+mu[j]-c[j])
	}

	return mat.Norm(d, 2) < s.epsilon
}

// IsInV reports whether (x, mu) lies in the V2 neighborhood of the central
// path with radius theta:
//
//	‖x∘μ − τ·1‖₂ ≤ θ·τ,   τ = xᵀμ / len(x).
func (s *interiorPoint) IsInV(x, mu []float64, theta float64) (bool, error) {
	if len(x) == 0 || len(x) != len(mu) {
		return false, ErrDimensionMismatch
	}
	if !finiteSlice(x) || !finiteSlice(mu) {
		return false, ErrNaNInf
	}

	return IsInVUnchecked(x, mu, theta), nil
}

// IsInVUnchecked is the raw V2 membership test; callers guarantee equal,
// non-zero lengths and finite values.
func IsInVUnchecked(x, mu []float64, theta float64) bool {
	tau := floats.Dot(x, mu) / float64(len(x))
	var sum float64
	for i := range x {
		d := x[i]*mu[i] - tau
		sum += d * d
	}

	return math.Sqrt(sum) <= theta*tau
}

// IsInVS reports the conjunction of IsFeasible and IsInV for the same point.
func (s *interiorPoint) IsInVS(A mat.Matrix, b, c, x, lambda, mu []float64, theta float64) (bool, error) {
	feasible, err := s.IsFeasible(A, b, c, x, lambda, mu)
	if err != nil {
		return false, err
	}

	return feasible && IsInVUnchecked(x, mu, theta), nil
}

// isInVInfUnchecked is the wide V∞ membership test used by the long-step
// family: every complementarity product stays above the gamma fraction of
// the average gap,
//
//	min(x∘μ) ≥ γ·τ,   τ = xᵀμ / len(x).
func isInVInfUnchecked(x, mu []float64, gamma float64) bool {
	tau := floats.Dot(x, mu) / float64(len(x))
	for i := range x {
		if x[i]*mu[i] < gamma*tau {
			return false
		}
	}

	return true
}
