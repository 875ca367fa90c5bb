package lp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlopt/lp"
)

// dualFixture is a 2x4 problem with a known strictly feasible dual point:
// lambda = (-1, -2) gives mu = c - A'lambda = (7, 1, 1, 2) > 0.
var (
	dualFixtureA = mat.NewDense(2, 4, []float64{
		1, 0, 1, 0,
		4, 1, 0, 1,
	})
	dualFixtureB = []float64{5, 25}
	dualFixtureC = []float64{-2, -1, 0, 0}
)

func TestNewShortstep_Validation(t *testing.T) {
	_, err := lp.NewShortstep(0, 4, 0.4, 1e-6)
	assert.ErrorIs(t, err, lp.ErrBadDimension)

	_, err = lp.NewShortstep(2, -4, 0.4, 1e-6)
	assert.ErrorIs(t, err, lp.ErrBadDimension)

	_, err = lp.NewShortstep(2, 4, 0, 1e-6)
	assert.ErrorIs(t, err, lp.ErrBadParameter)

	_, err = lp.NewShortstep(2, 4, 1, 1e-6)
	assert.ErrorIs(t, err, lp.ErrBadParameter)

	_, err = lp.NewShortstep(2, 4, 0.4, 0)
	assert.ErrorIs(t, err, lp.ErrBadParameter)
}

func TestNewPredictorCorrector_Validation(t *testing.T) {
	_, err := lp.NewPredictorCorrector(2, 4, 1.5, 0.25, 1e-6)
	assert.ErrorIs(t, err, lp.ErrBadParameter)

	_, err = lp.NewPredictorCorrector(2, 4, 0.5, -0.25, 1e-6)
	assert.ErrorIs(t, err, lp.ErrBadParameter)
}

func TestNewLongstep_Validation(t *testing.T) {
	_, err := lp.NewLongstep(2, 4, 0, 0.1, 1e-6)
	assert.ErrorIs(t, err, lp.ErrBadParameter)

	_, err = lp.NewLongstep(2, 4, 1e-3, 1, 1e-6)
	assert.ErrorIs(t, err, lp.ErrBadParameter)
}

func TestShortstep_Parameters(t *testing.T) {
	op, err := lp.NewShortstep(2, 4, 0.4, 1e-6)
	require.NoError(t, err)
	assert.Equal(t, 2, op.M())
	assert.Equal(t, 4, op.N())
	assert.Equal(t, 0.4, op.Theta())
	assert.Equal(t, 1e-6, op.Epsilon())

	cp := op.Clone()
	assert.True(t, op.Equal(cp))
	assert.True(t, cp.Equal(op))

	require.NoError(t, cp.SetTheta(0.5))
	assert.False(t, op.Equal(cp))

	require.NoError(t, cp.Reset(3, 6))
	require.NoError(t, cp.SetEpsilon(1e-5))
	assert.Equal(t, 3, cp.M())
	assert.Equal(t, 6, cp.N())
	assert.Equal(t, 0.5, cp.Theta())
	assert.Equal(t, 1e-5, cp.Epsilon())

	assert.ErrorIs(t, cp.SetTheta(1.2), lp.ErrBadParameter)
	assert.ErrorIs(t, cp.SetEpsilon(-1), lp.ErrBadParameter)
	assert.ErrorIs(t, cp.Reset(0, 6), lp.ErrBadDimension)
}

func TestPredictorCorrector_Parameters(t *testing.T) {
	op, err := lp.NewPredictorCorrector(2, 4, 0.5, 0.25, 1e-6)
	require.NoError(t, err)
	assert.Equal(t, 0.5, op.ThetaPred())
	assert.Equal(t, 0.25, op.ThetaCorr())

	cp := op.Clone()
	assert.True(t, op.Equal(cp))

	require.NoError(t, cp.SetThetaPred(0.4))
	assert.False(t, op.Equal(cp))

	require.NoError(t, cp.Reset(3, 6))
	require.NoError(t, cp.SetThetaCorr(0.2))
	require.NoError(t, cp.SetEpsilon(1e-5))
	assert.Equal(t, 3, cp.M())
	assert.Equal(t, 6, cp.N())
	assert.Equal(t, 0.4, cp.ThetaPred())
	assert.Equal(t, 0.2, cp.ThetaCorr())
	assert.Equal(t, 1e-5, cp.Epsilon())
}

func TestLongstep_Parameters(t *testing.T) {
	op, err := lp.NewLongstep(2, 4, 0.4, 0.6, 1e-6)
	require.NoError(t, err)
	assert.Equal(t, 0.4, op.Gamma())
	assert.Equal(t, 0.6, op.Sigma())

	cp := op.Clone()
	assert.True(t, op.Equal(cp))

	require.NoError(t, cp.SetGamma(0.5))
	assert.False(t, op.Equal(cp))

	require.NoError(t, cp.Reset(3, 6))
	require.NoError(t, cp.SetSigma(0.7))
	require.NoError(t, cp.SetEpsilon(1e-5))
	assert.Equal(t, 3, cp.M())
	assert.Equal(t, 6, cp.N())
	assert.Equal(t, 0.5, cp.Gamma())
	assert.Equal(t, 0.7, cp.Sigma())
	assert.Equal(t, 1e-5, cp.Epsilon())
}

func TestClone_IsDeep(t *testing.T) {
	op, err := lp.NewShortstep(2, 4, 0.4, 1e-6)
	require.NoError(t, err)
	require.NoError(t, op.InitializeDualLambdaMu(dualFixtureA, dualFixtureC))

	cp := op.Clone()
	assert.Equal(t, op.Lambda(), cp.Lambda())
	assert.Equal(t, op.Mu(), cp.Mu())

	// Resetting the clone must not disturb the original's duals.
	require.NoError(t, cp.Reset(2, 4))
	assert.Equal(t, []float64{0, 0, 0, 0}, cp.Mu())
	assert.NotEqual(t, []float64{0, 0, 0, 0}, op.Mu())
}

func TestAccessors_ReturnCopies(t *testing.T) {
	op, err := lp.NewShortstep(2, 4, 0.4, 1e-6)
	require.NoError(t, err)
	require.NoError(t, op.InitializeDualLambdaMu(dualFixtureA, dualFixtureC))

	mu := op.Mu()
	mu[0] = -999
	assert.NotEqual(t, -999.0, op.Mu()[0])

	lambda := op.Lambda()
	lambda[0] = -999
	assert.NotEqual(t, -999.0, op.Lambda()[0])
}

func TestInitializeDualLambdaMu(t *testing.T) {
	op, err := lp.NewShortstep(2, 4, 0.4, 1e-6)
	require.NoError(t, err)
	require.NoError(t, op.InitializeDualLambdaMu(dualFixtureA, dualFixtureC))

	lambda, mu := op.Lambda(), op.Mu()
	for j, v := range mu {
		assert.GreaterOrEqual(t, v, 0.0, "mu[%d]", j)
	}

	// A'lambda + mu must reproduce c.
	for j := 0; j < 4; j++ {
		got := mu[j]
		for i := 0; i < 2; i++ {
			got += dualFixtureA.At(i, j) * lambda[i]
		}
		assert.InDelta(t, dualFixtureC[j], got, 1e-4, "column %d", j)
	}
}

func TestInitializeDualLambdaMu_IllConditioned(t *testing.T) {
	// The exponentially twisted family turns the phase-one Gauss-Newton
	// Hessian near-singular from n = 6 on (condition ~1e16). gonum flags
	// that with a mat.Condition warning whose solution is still valid;
	// the initializer must carry on instead of failing.
	for _, n := range []int{6, 9} {
		A, _, c, _, _ := chainProblem(n)
		op, err := lp.NewShortstep(n, 2*n, 0.4, 1e-7)
		require.NoError(t, err)
		require.NoError(t, op.InitializeDualLambdaMu(A, c), "n=%d", n)

		lambda, mu := op.Lambda(), op.Mu()
		for j, v := range mu {
			assert.Greater(t, v, 0.0, "n=%d mu[%d]", n, j)
		}
		for j := 0; j < 2*n; j++ {
			got := mu[j]
			for i := 0; i < n; i++ {
				got += A.At(i, j) * lambda[i]
			}
			assert.InDelta(t, c[j], got, 1e-4, "n=%d column %d", n, j)
		}
	}
}

func TestInitializeDualLambdaMu_Validation(t *testing.T) {
	op, err := lp.NewShortstep(2, 4, 0.4, 1e-6)
	require.NoError(t, err)

	err = op.InitializeDualLambdaMu(mat.NewDense(3, 4, nil), dualFixtureC)
	assert.ErrorIs(t, err, lp.ErrDimensionMismatch)

	err = op.InitializeDualLambdaMu(dualFixtureA, []float64{1, 2})
	assert.ErrorIs(t, err, lp.ErrDimensionMismatch)

	err = op.InitializeDualLambdaMu(dualFixtureA, []float64{1, 2, math.NaN(), 4})
	assert.ErrorIs(t, err, lp.ErrNaNInf)
}

func TestSolve_Validation(t *testing.T) {
	op, err := lp.NewShortstep(2, 4, 0.4, 1e-6)
	require.NoError(t, err)
	x0 := []float64{1, 1, 4, 20}

	_, err = op.Solve(mat.NewDense(2, 3, nil), dualFixtureB, dualFixtureC, x0)
	assert.ErrorIs(t, err, lp.ErrDimensionMismatch)

	_, err = op.Solve(dualFixtureA, []float64{5}, dualFixtureC, x0)
	assert.ErrorIs(t, err, lp.ErrDimensionMismatch)

	_, err = op.Solve(dualFixtureA, dualFixtureB, dualFixtureC, []float64{1, 1})
	assert.ErrorIs(t, err, lp.ErrDimensionMismatch)

	_, err = op.Solve(dualFixtureA, dualFixtureB, dualFixtureC, []float64{1, -1, 4, 20})
	assert.ErrorIs(t, err, lp.ErrNotInterior)

	_, err = op.Solve(dualFixtureA, dualFixtureB, []float64{-2, math.Inf(1), 0, 0}, x0)
	assert.ErrorIs(t, err, lp.ErrNaNInf)

	_, err = op.Solve(dualFixtureA, dualFixtureB, dualFixtureC, x0,
		lp.WithDualLambda([]float64{-1, -2}))
	assert.ErrorIs(t, err, lp.ErrDualPairing)

	_, err = op.Solve(dualFixtureA, dualFixtureB, dualFixtureC, x0,
		lp.WithMaxIterations(0))
	assert.ErrorIs(t, err, lp.ErrBadParameter)
}

func TestSolve_DualPairing_AllStrategies(t *testing.T) {
	ss, err := lp.NewShortstep(2, 4, 0.4, 1e-6)
	require.NoError(t, err)
	pc, err := lp.NewPredictorCorrector(2, 4, 0.5, 0.25, 1e-6)
	require.NoError(t, err)
	long, err := lp.NewLongstep(2, 4, 1e-3, 0.1, 1e-6)
	require.NoError(t, err)

	x0 := []float64{1, 1, 4, 20}
	for _, s := range []lp.Solver{ss, pc, long} {
		// Lambda without mu, then mu without lambda: both halves of the
		// pairing rule, on every strategy.
		_, err := s.Solve(dualFixtureA, dualFixtureB, dualFixtureC, x0,
			lp.WithDualLambda([]float64{-1, -2}))
		assert.ErrorIs(t, err, lp.ErrDualPairing)

		_, err = s.Solve(dualFixtureA, dualFixtureB, dualFixtureC, x0,
			lp.WithDualMu([]float64{7, 1, 1, 2}))
		assert.ErrorIs(t, err, lp.ErrDualPairing)
	}
}

func TestSolve_OddWidth(t *testing.T) {
	op, err := lp.NewShortstep(1, 3, 0.4, 1e-6)
	require.NoError(t, err)

	A := mat.NewDense(1, 3, []float64{1, 1, 1})
	_, err = op.Solve(A, []float64{3}, []float64{-1, 0, 0}, []float64{1, 1, 1})
	assert.ErrorIs(t, err, lp.ErrOddWidth)
}

func TestSolve_Stalled(t *testing.T) {
	op, err := lp.NewShortstep(2, 4, 0.4, 1e-12)
	require.NoError(t, err)

	_, err = op.Solve(dualFixtureA, dualFixtureB, dualFixtureC, []float64{1, 1, 4, 20},
		lp.WithMaxIterations(1))
	assert.ErrorIs(t, err, lp.ErrStalled)
}

func TestIsFeasible(t *testing.T) {
	op, err := lp.NewShortstep(2, 4, 0.4, 1e-6)
	require.NoError(t, err)

	x := []float64{1, 1, 4, 20} // Ax = b exactly
	lambda := []float64{-1, -2}
	mu := []float64{7, 1, 1, 2} // c - A'lambda

	ok, err := op.IsFeasible(dualFixtureA, dualFixtureB, dualFixtureC, x, lambda, mu)
	require.NoError(t, err)
	assert.True(t, ok)

	// Breaking the primal constraint flips the verdict.
	bad := []float64{2, 1, 4, 20}
	ok, err = op.IsFeasible(dualFixtureA, dualFixtureB, dualFixtureC, bad, lambda, mu)
	require.NoError(t, err)
	assert.False(t, ok)

	// So does a negative dual slack.
	ok, err = op.IsFeasible(dualFixtureA, dualFixtureB, dualFixtureC, x,
		[]float64{-1, -2}, []float64{7, 1, 1, -2})
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = op.IsFeasible(dualFixtureA, []float64{5}, dualFixtureC, x, lambda, mu)
	assert.ErrorIs(t, err, lp.ErrDimensionMismatch)
}

func TestIsInV(t *testing.T) {
	op, err := lp.NewShortstep(2, 4, 0.4, 1e-6)
	require.NoError(t, err)

	// Perfectly centered: x∘mu is a constant vector, distance zero.
	ones := []float64{1, 1, 1, 1}
	ok, err := op.IsInV(ones, ones, 0.1)
	require.NoError(t, err)
	assert.True(t, ok)

	// Wildly uncentered products fall outside any moderate radius.
	x := []float64{1, 1, 4, 20}
	mu := []float64{7, 1, 1, 2}
	ok, err = op.IsInV(x, mu, 0.5)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = op.IsInV(ones[:3], ones, 0.5)
	assert.ErrorIs(t, err, lp.ErrDimensionMismatch)
}

func TestIsInVInf(t *testing.T) {
	op, err := lp.NewLongstep(2, 4, 1e-3, 0.1, 1e-6)
	require.NoError(t, err)

	ones := []float64{1, 1, 1, 1}
	ok, err := op.IsInVInf(ones, ones, 0.5)
	require.NoError(t, err)
	assert.True(t, ok)

	// One product collapsed far below gamma times the average.
	x := []float64{1, 1, 1, 1e-9}
	ok, err = op.IsInVInf(x, ones, 0.5)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsInVS(t *testing.T) {
	op, err := lp.NewShortstep(2, 4, 0.4, 1e-6)
	require.NoError(t, err)

	// Feasible but far from the central path: conjunction fails.
	x := []float64{1, 1, 4, 20}
	lambda := []float64{-1, -2}
	mu := []float64{7, 1, 1, 2}
	ok, err := op.IsInVS(dualFixtureA, dualFixtureB, dualFixtureC, x, lambda, mu, 0.5)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSolverInterface(t *testing.T) {
	ss, err := lp.NewShortstep(2, 4, 0.4, 1e-6)
	require.NoError(t, err)
	pc, err := lp.NewPredictorCorrector(2, 4, 0.5, 0.25, 1e-6)
	require.NoError(t, err)
	long, err := lp.NewLongstep(2, 4, 1e-3, 0.1, 1e-6)
	require.NoError(t, err)

	for _, s := range []lp.Solver{ss, pc, long} {
		assert.Equal(t, 2, s.M())
		assert.Equal(t, 4, s.N())
		assert.Equal(t, 1e-6, s.Epsilon())
	}
}
