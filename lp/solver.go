// Package lp: shared interior-point core.
//
// The three public solvers embed the unexported interiorPoint, which owns
// the problem dimensions, the tolerance, the current dual pair and all
// scratch buffers. Buffers are sized once per Reset so the Newton loop runs
// allocation-free; the numeric kernels operate on borrowed slices.
package lp

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// interiorPoint is the state shared by every step strategy: dimensions,
// tolerance, the most recent dual pair, and per-instance scratch.
type interiorPoint struct {
	m, n    int
	epsilon float64

	lambda []float64 // dual vector, length m; zero until populated
	mu     []float64 // dual vector, length n; zero until populated

	// Scratch sized by alloc; never shared across instances.
	kkt *mat.Dense    // (m+2n) x (m+2n) Newton system
	rhs *mat.VecDense // length m+2n
	dir *mat.VecDense // Newton direction [dx | dlambda | dmu]
	x   []float64     // current primal iterate, length n
	rb  []float64     // primal residual b - Ax, length m
	rc  []float64     // dual residual c - A'lambda - mu, length n
	xt  []float64     // trial primal point for line searches
	mt  []float64     // trial dual slack for line searches
}

// newInteriorPoint validates (m, n, epsilon) and allocates working storage.
func newInteriorPoint(m, n int, epsilon float64) (interiorPoint, error) {
	var s interiorPoint
	if m <= 0 || n <= 0 {
		return s, ErrBadDimension
	}
	if epsilon <= 0 {
		return s, ErrBadParameter
	}
	s.epsilon = epsilon
	s.alloc(m, n)

	return s, nil
}

// alloc (re)sizes every working buffer for the (m, n) problem shape.
func (s *interiorPoint) alloc(m, n int) {
	s.m, s.n = m, n
	s.lambda = make([]float64, m)
	s.mu = make([]float64, n)
	k := m + 2*n
	s.kkt = mat.NewDense(k, k, nil)
	s.rhs = mat.NewVecDense(k, nil)
	s.dir = mat.NewVecDense(k, nil)
	s.x = make([]float64, n)
	s.rb = make([]float64, m)
	s.rc = make([]float64, n)
	s.xt = make([]float64, n)
	s.mt = make([]float64, n)
}

// cloneCore deep-copies dimensions, tolerance and duals; scratch contents are
// not carried (they are meaningless between calls).
func (s *interiorPoint) cloneCore() interiorPoint {
	var c interiorPoint
	c.alloc(s.m, s.n)
	c.epsilon = s.epsilon
	copy(c.lambda, s.lambda)
	copy(c.mu, s.mu)

	return c
}

// M returns the row count of the constraint matrix A.
func (s *interiorPoint) M() int { return s.m }

// N returns the column count of A (the primal width).
func (s *interiorPoint) N() int { return s.n }

// Epsilon returns the convergence tolerance.
func (s *interiorPoint) Epsilon() float64 { return s.epsilon }

// SetEpsilon replaces the tolerance.
func (s *interiorPoint) SetEpsilon(eps float64) error {
	if eps <= 0 {
		return ErrBadParameter
	}
	s.epsilon = eps

	return nil
}

// Lambda returns a copy of the current dual vector lambda (length M).
func (s *interiorPoint) Lambda() []float64 {
	out := make([]float64, s.m)
	copy(out, s.lambda)

	return out
}

// Mu returns a copy of the current dual vector mu (length N).
func (s *interiorPoint) Mu() []float64 {
	out := make([]float64, s.n)
	copy(out, s.mu)

	return out
}

// Reset resizes the problem, reallocating buffers and zeroing the duals.
// Any previous lambda/mu values are invalidated.
func (s *interiorPoint) Reset(m, n int) error {
	if m <= 0 || n <= 0 {
		return ErrBadDimension
	}
	s.alloc(m, n)

	return nil
}

// iteration carries the per-call problem references alongside the shared
// core; its lifetime is one Solve call.
type iteration struct {
	s      *interiorPoint
	A      mat.Matrix
	b, c   []float64
	nu     float64 // normalized complementarity gap x'mu / n
	rbNorm float64 // 2-norm of the primal residual
}

// refresh recomputes the gap and both residuals for the current iterate.
func (p *iteration) refresh() {
	s := p.s
	p.nu = floats.Dot(s.x, s.mu) / float64(s.n)

	// rb = b - A·x
	rbv := mat.NewVecDense(s.m, s.rb)
	rbv.MulVec(p.A, mat.NewVecDense(s.n, s.x))
	for i := range s.rb {
		s.rb[i] = p.b[i] - s.rb[i]
	}
	p.rbNorm = floats.Norm(s.rb, 2)

	// rc = c - A'·lambda - mu
	rcv := mat.NewVecDense(s.n, s.rc)
	rcv.MulVec(p.A.T(), mat.NewVecDense(s.m, s.lambda))
	for j := range s.rc {
		s.rc[j] = p.c[j] - s.rc[j] - s.mu[j]
	}
}

// newtonStep assembles and solves the primal-dual KKT system
//
//	[ A   0    0 ] [dx ]   [ rb             ]
//	[ 0   A'   I ] [dl ] = [ rc             ]
//	[ M   0    X ] [dm ]   [ σ·ν·1 - x∘μ    ]
//
// for the given centering parameter sigma, with M = diag(mu), X = diag(x).
// The residual right-hand sides make the iteration an infeasible-start
// method: it tolerates warm starts slightly off the constraint manifold and
// reduces to the classical feasible iteration when rb = rc = 0.
func (p *iteration) newtonStep(sigma float64) error {
	s := p.s
	m, n := s.m, s.n

	s.kkt.Zero()
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			a := p.A.At(i, j)
			s.kkt.Set(i, j, a)     // primal block: A·dx
			s.kkt.Set(m+j, n+i, a) // dual block:   A'·dl
		}
	}
	for j := 0; j < n; j++ {
		s.kkt.Set(m+j, n+m+j, 1)        // dual block: + dm
		s.kkt.Set(m+n+j, j, s.mu[j])    // complementarity: mu∘dx
		s.kkt.Set(m+n+j, n+m+j, s.x[j]) // complementarity: + x∘dm
	}
	for i := 0; i < m; i++ {
		s.rhs.SetVec(i, s.rb[i])
	}
	for j := 0; j < n; j++ {
		s.rhs.SetVec(m+j, s.rc[j])
		s.rhs.SetVec(m+n+j, sigma*p.nu-s.x[j]*s.mu[j])
	}

	var lu mat.LU
	lu.Factorize(s.kkt)
	if err := lu.SolveVecTo(s.dir, false, s.rhs); err != nil && !conditionOnly(err) {
		return fmt.Errorf("%w: newton system: %v", ErrNumeric, err)
	}

	return nil
}

// conditionOnly reports whether err is gonum's ill-conditioning warning
// (mat.Condition), which still carries a usable solution. Interior-point
// systems turn near-singular as complementarity products collapse, so the
// warning must stay advisory; only hard factorization failures abort.
func conditionOnly(err error) bool {
	_, ok := err.(mat.Condition)

	return ok
}

// applyStep advances the iterate by alpha along the current Newton direction.
func (p *iteration) applyStep(alpha float64) {
	s := p.s
	d := s.dir.RawVector().Data
	floats.AddScaled(s.x, alpha, d[:s.n])
	floats.AddScaled(s.lambda, alpha, d[s.n:s.n+s.m])
	floats.AddScaled(s.mu, alpha, d[s.n+s.m:])
}

// trial materializes (x + alpha·dx, mu + alpha·dm) into the scratch pair.
func (p *iteration) trial(alpha float64) (x, mu []float64) {
	s := p.s
	d := s.dir.RawVector().Data
	copy(s.xt, s.x)
	floats.AddScaled(s.xt, alpha, d[:s.n])
	copy(s.mt, s.mu)
	floats.AddScaled(s.mt, alpha, d[s.n+s.m:])

	return s.xt, s.mt
}

// maxPositive returns the largest alpha in (0, 1] keeping x and mu strictly
// positive along the current direction (closed-form ratio test).
func (p *iteration) maxPositive() float64 {
	s := p.s
	d := s.dir.RawVector().Data
	alpha := 1.0
	for i, di := range d[:s.n] {
		if di < 0 {
			if a := -s.x[i] / di; a < alpha {
				alpha = a
			}
		}
	}
	for i, di := range d[s.n+s.m:] {
		if di < 0 {
			if a := -s.mu[i] / di; a < alpha {
				alpha = a
			}
		}
	}

	return alpha
}

// maxStep bisects for the largest alpha in [0, 1] whose trial iterate stays
// strictly positive and inside the supplied neighborhood predicate. At
// alpha = 0 the current iterate is (by construction) acceptable, so the
// lower bisection bound is always valid.
func (p *iteration) maxStep(in func(x, mu []float64) bool) float64 {
	if xt, mt := p.trial(1); positiveAll(xt) && positiveAll(mt) && in(xt, mt) {
		return 1
	}
	lo, hi := 0.0, 1.0
	for i := 0; i < stepSearchIters; i++ {
		mid := 0.5 * (lo + hi)
		if xt, mt := p.trial(mid); positiveAll(xt) && positiveAll(mt) && in(xt, mt) {
			lo = mid
		} else {
			hi = mid
		}
	}

	return lo
}

// solveCommon drives the shared Newton loop with a strategy-supplied step.
// On success the refined duals are stored on the solver and the first half
// of the primal vector is returned (the positive/negative split convention).
func (s *interiorPoint) solveCommon(A mat.Matrix, b, c, x0 []float64, o solveOptions, step func(p *iteration) error) ([]float64, error) {
	if (o.lambda == nil) != (o.mu == nil) {
		return nil, ErrDualPairing
	}
	if o.maxIter <= 0 {
		return nil, ErrBadParameter
	}

	copy(s.x, x0)
	if o.lambda != nil {
		copy(s.lambda, o.lambda)
		copy(s.mu, o.mu)
	} else if err := s.initializeDualLambdaMu(A, c); err != nil {
		return nil, err
	}

	p := &iteration{s: s, A: A, b: b, c: c}
	for k := 0; k < o.maxIter; k++ {
		p.refresh()
		if p.nu < s.epsilon && p.rbNorm < s.epsilon {
			out := make([]float64, s.n/2)
			copy(out, s.x[:s.n/2])

			return out, nil
		}
		if err := step(p); err != nil {
			return nil, err
		}
	}

	return nil, ErrStalled
}

// positiveAll reports whether every component is strictly positive.
func positiveAll(v []float64) bool {
	for _, x := range v {
		if x <= 0 {
			return false
		}
	}

	return true
}
