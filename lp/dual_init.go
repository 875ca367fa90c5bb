// Package lp: initialization of the dual pair (lambda, mu).
//
// The initializer produces a dual-feasible, interior pair: mu = c - A'lambda
// with mu >= 0 (strictly positive whenever the dual region has an interior).
// Three stages: a least-squares fit, an exact-penalty push into the
// interior, and a proximally damped Newton minimization of the logarithmic
// barrier -Σ log μⱼ. The proximal term keeps the minimization well posed
// even when the dual region is unbounded and the plain barrier has no
// minimizer.
package lp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// proxWeight scales the proximal damping of the barrier centering step;
// larger values track the true analytic center more closely at the price of
// larger lambda excursions on unbounded regions.
const proxWeight = 1e4

// InitializeDualLambdaMu computes an initial guess for the dual variables by
// minimizing the logarithmic barrier of the dual feasibility constraint
// A'·λ + μ = c, and stores the result on the solver. Shapes are validated
// against (M, N); use InitializeDualLambdaMuUnchecked to skip that.
func (s *interiorPoint) InitializeDualLambdaMu(A mat.Matrix, c []float64) error {
	if err := s.checkProblem(A, nil, c); err != nil {
		return err
	}

	return s.initializeDualLambdaMu(A, c)
}

// InitializeDualLambdaMuUnchecked is InitializeDualLambdaMu without shape or
// finiteness validation. Behavior on malformed input is undefined.
func (s *interiorPoint) InitializeDualLambdaMuUnchecked(A mat.Matrix, c []float64) error {
	return s.initializeDualLambdaMu(A, c)
}

func (s *interiorPoint) initializeDualLambdaMu(A mat.Matrix, c []float64) error {
	lambda := make([]float64, s.m)
	mu := make([]float64, s.n)

	// Stage 1: least-squares dual fit, (A·A')·λ = A·c.
	var aat mat.Dense
	aat.Mul(A, A.T())
	rhs := mat.NewVecDense(s.m, nil)
	rhs.MulVec(A, mat.NewVecDense(s.n, c))
	sol := mat.NewVecDense(s.m, lambda)
	var lu mat.LU
	lu.Factorize(&aat)
	if err := lu.SolveVecTo(sol, false, rhs); err != nil && !conditionOnly(err) {
		return fmt.Errorf("%w: dual normal equations: %v", ErrNumeric, err)
	}
	dualSlack(A, c, lambda, mu)

	// Stage 2: push strictly inside mu > 0 when the fit lands outside.
	if floats.Min(mu) <= 0 {
		if err := s.pushInterior(A, c, lambda, mu); err != nil {
			return err
		}
	}

	// Stage 3: barrier centering polish; best-effort by construction.
	s.centerBarrier(A, c, lambda, mu)

	copy(s.lambda, lambda)
	copy(s.mu, mu)

	return nil
}

// dualSlack computes mu = c - A'·lambda into mu.
func dualSlack(A mat.Matrix, c, lambda, mu []float64) {
	v := mat.NewVecDense(len(mu), mu)
	v.MulVec(A.T(), mat.NewVecDense(len(lambda), lambda))
	for j := range mu {
		mu[j] = c[j] - mu[j]
	}
}

// pushInterior runs a damped Gauss-Newton minimization of the exact penalty
//
//	P(λ) = Σⱼ max(0, margin − μⱼ(λ))²,   μ(λ) = c − A'·λ,
//
// stopping as soon as mu is strictly positive. Fails with ErrNumeric when no
// interior point is reachable (empty dual interior).
func (s *interiorPoint) pushInterior(A mat.Matrix, c, lambda, mu []float64) error {
	m, n := s.m, s.n
	r := make([]float64, n)
	grad := mat.NewVecDense(m, nil)
	step := mat.NewVecDense(m, nil)
	trialLambda := make([]float64, m)
	trialMu := make([]float64, n)
	sel := mat.NewDense(m, n, nil)

	penalty := func(mu []float64) float64 {
		var p float64
		for _, v := range mu {
			if v < phaseOneMargin {
				d := phaseOneMargin - v
				p += d * d
			}
		}

		return p
	}

	for iter := 0; iter < phaseOneMaxIter; iter++ {
		if floats.Min(mu) > 0 {
			return nil
		}

		// Active residuals and the matching column selection of A.
		sel.Zero()
		for j := 0; j < n; j++ {
			if mu[j] < phaseOneMargin {
				r[j] = phaseOneMargin - mu[j]
				for i := 0; i < m; i++ {
					sel.Set(i, j, A.At(i, j))
				}
			} else {
				r[j] = 0
			}
		}

		// ∇P/2 = A·r, Gauss-Newton curvature A_J·A_J' (+ ridge).
		grad.MulVec(A, mat.NewVecDense(n, r))
		var h mat.Dense
		h.Mul(sel, sel.T())
		for i := 0; i < m; i++ {
			h.Set(i, i, h.At(i, i)+1e-12)
		}
		var lu mat.LU
		lu.Factorize(&h)
		if err := lu.SolveVecTo(step, false, grad); err != nil && !conditionOnly(err) {
			return fmt.Errorf("%w: phase-one system: %v", ErrNumeric, err)
		}

		p0 := penalty(mu)
		t := 1.0
		for ; t > 1e-12; t /= 2 {
			copy(trialLambda, lambda)
			floats.AddScaled(trialLambda, -t, step.RawVector().Data)
			dualSlack(A, c, trialLambda, trialMu)
			if penalty(trialMu) < p0 {
				break
			}
		}
		if t <= 1e-12 {
			break // no descent left; give up on this stage
		}
		copy(lambda, trialLambda)
		copy(mu, trialMu)
	}

	if floats.Min(mu) > 0 {
		return nil
	}

	return fmt.Errorf("%w: no strictly feasible dual point found", ErrNumeric)
}

// centerBarrier improves centrality with a proximally damped Newton descent
// of f(λ) = −Σ log μⱼ(λ) + ‖λ−λ₀‖²/(2·proxWeight). Strict positivity of mu
// is an invariant of the line search, so the stage can only improve the
// point; any numeric trouble simply leaves the phase-one point standing.
func (s *interiorPoint) centerBarrier(A mat.Matrix, c, lambda, mu []float64) {
	m, n := s.m, s.n
	d := make([]float64, n)
	lambda0 := make([]float64, m)
	copy(lambda0, lambda)
	grad := mat.NewVecDense(m, nil)
	step := mat.NewVecDense(m, nil)
	trialLambda := make([]float64, m)
	trialMu := make([]float64, n)
	w := mat.NewDense(m, n, nil)

	objective := func(lambda, mu []float64) float64 {
		var f float64
		for _, v := range mu {
			f -= math.Log(v)
		}
		for i := range lambda {
			dl := lambda[i] - lambda0[i]
			f += dl * dl / (2 * proxWeight)
		}

		return f
	}

	for iter := 0; iter < centerMaxIter; iter++ {
		// ∇f = A·(1/μ) + (λ−λ₀)/ρ,  ∇²f = A·diag(1/μ²)·A' + I/ρ.
		for j := 0; j < n; j++ {
			d[j] = 1 / mu[j]
			for i := 0; i < m; i++ {
				w.Set(i, j, A.At(i, j)*d[j])
			}
		}
		grad.MulVec(A, mat.NewVecDense(n, d))
		for i := 0; i < m; i++ {
			grad.SetVec(i, grad.AtVec(i)+(lambda[i]-lambda0[i])/proxWeight)
		}
		var h mat.Dense
		h.Mul(w, w.T())
		for i := 0; i < m; i++ {
			h.Set(i, i, h.At(i, i)+1/proxWeight)
		}
		var lu mat.LU
		lu.Factorize(&h)
		if err := lu.SolveVecTo(step, false, grad); err != nil && !conditionOnly(err) {
			return
		}
		if floats.Dot(step.RawVector().Data, grad.RawVector().Data) < centerTol {
			return
		}

		f0 := objective(lambda, mu)
		improved := false
		for alpha := 1.0; alpha > 1e-10; alpha /= 2 {
			copy(trialLambda, lambda)
			floats.AddScaled(trialLambda, -alpha, step.RawVector().Data)
			dualSlack(A, c, trialLambda, trialMu)
			if floats.Min(trialMu) > 0 && objective(trialLambda, trialMu) < f0 {
				improved = true
				break
			}
		}
		if !improved {
			return
		}
		copy(lambda, trialLambda)
		copy(mu, trialMu)
	}
}
