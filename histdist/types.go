package histdist

import "errors"

// probFloor clamps histogram values away from zero inside the
// Kullback-Leibler divergence so log ratios stay finite.
const probFloor = 1e-5

var (
	// ErrLengthMismatch - paired inputs have different lengths.
	ErrLengthMismatch = errors.New("histdist: input lengths differ")

	// ErrUnsortedIndex - a sparse index sequence is not strictly increasing.
	ErrUnsortedIndex = errors.New("histdist: sparse indices must be strictly increasing")

	// ErrNaNInf - a histogram value is NaN or infinite.
	ErrNaNInf = errors.New("histdist: NaN or Inf encountered")
)
