package histdist

import "math"

// Intersection returns the histogram intersection Σ min(h1ᵢ, h2ᵢ).
func Intersection(h1, h2 []float64) (float64, error) {
	if err := checkDense(h1, h2); err != nil {
		return 0, err
	}

	return IntersectionUnchecked(h1, h2), nil
}

// IntersectionUnchecked is Intersection without validation: callers
// guarantee equal lengths and finite values.
func IntersectionUnchecked(h1, h2 []float64) float64 {
	sim := 0.0
	for i := range h1 {
		sim += math.Min(h1[i], h2[i])
	}

	return sim
}

// ChiSquare returns the chi-square distance Σ (h1ᵢ−h2ᵢ)²∕(h1ᵢ+h2ᵢ).
// Bins with identical values are skipped, so empty bin pairs cost nothing.
func ChiSquare(h1, h2 []float64) (float64, error) {
	if err := checkDense(h1, h2); err != nil {
		return 0, err
	}

	return ChiSquareUnchecked(h1, h2), nil
}

// ChiSquareUnchecked is ChiSquare without validation.
func ChiSquareUnchecked(h1, h2 []float64) float64 {
	dist := 0.0
	for i := range h1 {
		if h1[i] != h2[i] {
			d := h1[i] - h2[i]
			dist += d * d / (h1[i] + h2[i])
		}
	}

	return dist
}

// KullbackLeibler returns the symmetrized Kullback-Leibler divergence
// Σ (h1ᵢ−h2ᵢ)·ln(h1ᵢ∕h2ᵢ). Values below probFloor are clamped so the
// log ratio stays finite on empty bins.
func KullbackLeibler(h1, h2 []float64) (float64, error) {
	if err := checkDense(h1, h2); err != nil {
		return 0, err
	}

	return KullbackLeiblerUnchecked(h1, h2), nil
}

// KullbackLeiblerUnchecked is KullbackLeibler without validation.
func KullbackLeiblerUnchecked(h1, h2 []float64) float64 {
	div := 0.0
	for i := range h1 {
		div += klTerm(h1[i], h2[i])
	}

	return div
}

// klTerm is the per-bin symmetrized divergence contribution.
func klTerm(a, b float64) float64 {
	a = math.Max(a, probFloor)
	b = math.Max(b, probFloor)

	return (a - b) * math.Log(a/b)
}

// checkDense validates a dense histogram pair.
func checkDense(h1, h2 []float64) error {
	if len(h1) != len(h2) {
		return ErrLengthMismatch
	}
	if !finite(h1) || !finite(h2) {
		return ErrNaNInf
	}

	return nil
}

// finite reports whether every value is a regular float.
func finite(h []float64) bool {
	for _, v := range h {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
