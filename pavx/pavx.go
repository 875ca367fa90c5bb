package pavx

import "math"

// Pavx — Pool-Adjacent-Violators
//
// Algorithm outline:
//  1. Sweep y left to right, pushing each value as a fresh block of
//     length 1 onto a block stack (left index, length, running mean).
//  2. While the newest block's mean does not exceed its left neighbor's
//     (a monotonicity violation), merge the two: the combined mean is the
//     length-weighted average, the combined length the sum.
//  3. Expand the surviving blocks right to left, filling every original
//     index of a block's span with the block's final mean.
//
// Each element is pushed once and merged at most O(1) amortized times,
// so the whole fit is O(n).

// Pavx returns the non-decreasing least-squares fit of y.
// The input is left untouched.
func Pavx(y []float64) ([]float64, error) {
	if err := validate(y); err != nil {
		return nil, err
	}
	ghat := make([]float64, len(y))
	PavxUnchecked(y, ghat)

	return ghat, nil
}

// PavxInto writes the non-decreasing least-squares fit of y into ghat,
// which must have the same length. y and ghat may not alias.
func PavxInto(y, ghat []float64) error {
	if err := validate(y); err != nil {
		return err
	}
	if len(ghat) != len(y) {
		return ErrDimensionMismatch
	}
	PavxUnchecked(y, ghat)

	return nil
}

// PavxWidth returns the fit together with the width (original-index run
// length) of every surviving block, left to right. Σwidth == len(y).
func PavxWidth(y []float64) (ghat []float64, width []int, err error) {
	if err = validate(y); err != nil {
		return nil, nil, err
	}
	n := len(y)
	ghat = make([]float64, n)
	index := make([]int, n)
	length := make([]int, n)
	ci := pool(y, ghat, index, length)

	width = make([]int, ci+1)
	copy(width, length[:ci+1])

	expand(ghat, index, ci)

	return ghat, width, nil
}

// PavxWidthHeight returns the fit together with the width and the height
// (fitted mean) of every surviving block, left to right. Expanding
// (width, height) into a full-length sequence reproduces ghat exactly.
func PavxWidthHeight(y []float64) (ghat []float64, width []int, height []float64, err error) {
	if err = validate(y); err != nil {
		return nil, nil, nil, err
	}
	n := len(y)
	ghat = make([]float64, n)
	index := make([]int, n)
	length := make([]int, n)
	ci := pool(y, ghat, index, length)

	// Capture the block structure before expansion overwrites the means.
	width = make([]int, ci+1)
	copy(width, length[:ci+1])
	height = make([]float64, ci+1)
	copy(height, ghat[:ci+1])

	expand(ghat, index, ci)

	return ghat, width, height, nil
}

// PavxUnchecked writes the fit of y into ghat with zero validation:
// callers guarantee len(y) == len(ghat) >= 1, finite values, no aliasing.
func PavxUnchecked(y, ghat []float64) {
	n := len(y)
	index := make([]int, n)
	length := make([]int, n)
	ci := pool(y, ghat, index, length)
	expand(ghat, index, ci)
}

// pool is the merge sweep. On return, blocks 0..ci occupy the prefixes of
// index (left endpoint), length and ghat (block mean); ci is the index of
// the last block.
func pool(y, ghat []float64, index, length []int) int {
	ci := 0
	index[ci], length[ci], ghat[ci] = 0, 1, y[0]
	for j := 1; j < len(y); j++ {
		// A fresh single-element block for y[j].
		ci++
		index[ci], length[ci], ghat[ci] = j, 1, y[j]
		// Pool adjacent violators: merge while monotonicity is broken.
		for ci >= 1 && ghat[ci-1] >= ghat[ci] {
			nw := float64(length[ci-1] + length[ci])
			ghat[ci-1] += float64(length[ci]) / nw * (ghat[ci] - ghat[ci-1])
			length[ci-1] = int(nw)
			ci--
		}
	}

	return ci
}

// expand fills every original index with its block's final mean,
// right to left.
func expand(ghat []float64, index []int, ci int) {
	n := len(ghat)
	for n >= 1 {
		v := ghat[ci]
		for k := index[ci]; k < n; k++ {
			ghat[k] = v
		}
		n = index[ci]
		ci--
	}
}

// validate rejects empty and non-finite input.
func validate(y []float64) error {
	if len(y) == 0 {
		return ErrEmptyInput
	}
	for _, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNaNInf
		}
	}

	return nil
}
