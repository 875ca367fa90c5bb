package norminv

import (
	"errors"
	"math"
)

// ErrProbability - the probability argument lies outside [0, 1].
var ErrProbability = errors.New("norminv: probability must lie in [0, 1]")

// Acklam's rational approximation coefficients.
const (
	a1 = -3.969683028665376e+01
	a2 = 2.209460984245205e+02
	a3 = -2.759285104469687e+02
	a4 = 1.383577518672690e+02
	a5 = -3.066479806614716e+01
	a6 = 2.506628277459239e+00

	b1 = -5.447609879822406e+01
	b2 = 1.615858368580409e+02
	b3 = -1.556989798598866e+02
	b4 = 6.680131188771972e+01
	b5 = -1.328068155288572e+01

	c1 = -7.784894002430293e-03
	c2 = -3.223964580411365e-01
	c3 = -2.400758277161838e+00
	c4 = -2.549732539343734e+00
	c5 = 4.374664141464968e+00
	c6 = 2.938163982698783e+00

	d1 = 7.784695709041462e-03
	d2 = 3.224671290700398e-01
	d3 = 2.445134137142996e+00
	d4 = 3.754408661907416e+00

	// Break-points between the tail and central approximations.
	pLow  = 0.02425
	pHigh = 1 - pLow
)

// Normsinv returns the standard normal quantile at probability p.
func Normsinv(p float64) (float64, error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return 0, ErrProbability
	}

	return NormsinvUnchecked(p), nil
}

// NormsinvUnchecked is Normsinv without validation: callers guarantee
// p ∈ [0, 1].
func NormsinvUnchecked(p float64) float64 {
	switch {
	case p == 0:
		return math.Inf(-1)
	case p == 1:
		return math.Inf(1)
	}

	var x float64
	switch {
	case p < pLow:
		// Lower tail.
		q := math.Sqrt(-2 * math.Log(p))
		x = (((((c1*q+c2)*q+c3)*q+c4)*q+c5)*q + c6) / ((((d1*q+d2)*q+d3)*q+d4)*q + 1)
	case p <= pHigh:
		// Central region.
		q := p - 0.5
		r := q * q
		x = (((((a1*r+a2)*r+a3)*r+a4)*r+a5)*r + a6) * q / (((((b1*r+b2)*r+b3)*r+b4)*r+b5)*r + 1)
	default:
		// Upper tail, mirrored.
		q := math.Sqrt(-2 * math.Log(1-p))
		x = -(((((c1*q+c2)*q+c3)*q+c4)*q+c5)*q + c6) / ((((d1*q+d2)*q+d3)*q+d4)*q + 1)
	}

	// One Halley iteration against erfc brings the approximation to full
	// machine precision.
	e := 0.5*math.Erfc(-x/math.Sqrt2) - p
	u := e * math.Sqrt(2*math.Pi) * math.Exp(x*x/2)
	x -= u / (1 + x*u/2)

	return x
}

// Norminv returns the quantile of the N(mu, sigma²) distribution at
// probability p.
func Norminv(p, mu, sigma float64) (float64, error) {
	x, err := Normsinv(p)
	if err != nil {
		return 0, err
	}

	return sigma*x + mu, nil
}

// NorminvUnchecked is Norminv without validation.
func NorminvUnchecked(p, mu, sigma float64) float64 {
	return sigma*NormsinvUnchecked(p) + mu
}
