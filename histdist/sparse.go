package histdist

import "math"

// Sparse-form measures. A sparse histogram is a strictly increasing index
// slice paired with a value slice of the same length; every index not
// listed holds a zero. The merge below walks both index lists once.

// IntersectionSparse returns the histogram intersection of two sparse
// histograms. Bins present in only one histogram cannot contribute, so
// only matched indices are summed.
func IntersectionSparse(index1 []int, values1 []float64, index2 []int, values2 []float64) (float64, error) {
	if err := checkSparse(index1, values1, index2, values2); err != nil {
		return 0, err
	}

	return IntersectionSparseUnchecked(index1, values1, index2, values2), nil
}

// IntersectionSparseUnchecked is IntersectionSparse without validation.
func IntersectionSparseUnchecked(index1 []int, values1 []float64, index2 []int, values2 []float64) float64 {
	sim := 0.0
	mergeSparse(index1, index2, func(i, j int) {
		if i >= 0 && j >= 0 {
			sim += math.Min(values1[i], values2[j])
		}
	})

	return sim
}

// ChiSquareSparse returns the chi-square distance of two sparse
// histograms. Unmatched bins compare against zero.
func ChiSquareSparse(index1 []int, values1 []float64, index2 []int, values2 []float64) (float64, error) {
	if err := checkSparse(index1, values1, index2, values2); err != nil {
		return 0, err
	}

	return ChiSquareSparseUnchecked(index1, values1, index2, values2), nil
}

// ChiSquareSparseUnchecked is ChiSquareSparse without validation.
func ChiSquareSparseUnchecked(index1 []int, values1 []float64, index2 []int, values2 []float64) float64 {
	dist := 0.0
	term := func(a, b float64) {
		if a != b {
			d := a - b
			dist += d * d / (a + b)
		}
	}
	mergeSparse(index1, index2, func(i, j int) {
		switch {
		case i >= 0 && j >= 0:
			term(values1[i], values2[j])
		case i >= 0:
			term(values1[i], 0)
		default:
			term(0, values2[j])
		}
	})

	return dist
}

// KullbackLeiblerSparse returns the symmetrized Kullback-Leibler
// divergence of two sparse histograms. Unmatched bins compare against
// zero, which the probFloor clamp keeps finite.
func KullbackLeiblerSparse(index1 []int, values1 []float64, index2 []int, values2 []float64) (float64, error) {
	if err := checkSparse(index1, values1, index2, values2); err != nil {
		return 0, err
	}

	return KullbackLeiblerSparseUnchecked(index1, values1, index2, values2), nil
}

// KullbackLeiblerSparseUnchecked is KullbackLeiblerSparse without validation.
func KullbackLeiblerSparseUnchecked(index1 []int, values1 []float64, index2 []int, values2 []float64) float64 {
	div := 0.0
	mergeSparse(index1, index2, func(i, j int) {
		switch {
		case i >= 0 && j >= 0:
			div += klTerm(values1[i], values2[j])
		case i >= 0:
			div += klTerm(values1[i], 0)
		default:
			div += klTerm(0, values2[j])
		}
	})

	return div
}

// mergeSparse walks two strictly increasing index lists in lockstep and
// calls visit once per distinct bin. A position of -1 marks an absent bin.
func mergeSparse(index1, index2 []int, visit func(i, j int)) {
	i, j := 0, 0
	for i < len(index1) && j < len(index2) {
		switch {
		case index1[i] == index2[j]:
			visit(i, j)
			i++
			j++
		case index1[i] < index2[j]:
			visit(i, -1)
			i++
		default:
			visit(-1, j)
			j++
		}
	}
	for ; i < len(index1); i++ {
		visit(i, -1)
	}
	for ; j < len(index2); j++ {
		visit(-1, j)
	}
}

// checkSparse validates both sparse histogram pairs.
func checkSparse(index1 []int, values1 []float64, index2 []int, values2 []float64) error {
	if len(index1) != len(values1) || len(index2) != len(values2) {
		return ErrLengthMismatch
	}
	if !increasing(index1) || !increasing(index2) {
		return ErrUnsortedIndex
	}
	if !finite(values1) || !finite(values2) {
		return ErrNaNInf
	}

	return nil
}

// increasing reports whether the indices are strictly increasing.
func increasing(index []int) bool {
	for i := 1; i < len(index); i++ {
		if index[i] <= index[i-1] {
			return false
		}
	}

	return true
}
