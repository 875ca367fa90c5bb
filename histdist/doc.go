// Package histdist - Fast similarity and divergence measures for histograms.
//
// histdist compares two histograms, given either densely (one value per
// bin, equal lengths) or sparsely (sorted bin indices plus values, with
// absent bins counted as zero).
//
// # What measures are available?
//
//   - Intersection: Σ min(h1ᵢ, h2ᵢ). A similarity; higher means closer.
//     For normalized histograms it lies in [0, 1].
//   - ChiSquare: Σ (h1ᵢ−h2ᵢ)²∕(h1ᵢ+h2ᵢ). A distance; bins where both
//     histograms agree contribute nothing.
//   - KullbackLeibler: the symmetrized divergence
//     Σ (h1ᵢ−h2ᵢ)·ln(h1ᵢ∕h2ᵢ), with every value floored at 1e-5 so that
//     empty bins stay finite.
//
// # ✨ Features
//
//   - Dense and sparse input forms for every measure.
//   - Sparse form merges two sorted index lists in a single pass.
//   - Checked entry points validate shapes and ordering; Unchecked
//     twins skip validation for hot loops.
//   - O(n) time, zero allocations.
//
// # 🚀 Quick usage
//
//	sim, err := histdist.Intersection(h1, h2)
//	d, err := histdist.ChiSquare(h1, h2)
//	kl, err := histdist.KullbackLeiblerSparse(idx1, val1, idx2, val2)
//
// Errors are sentinel values (ErrLengthMismatch, ErrUnsortedIndex, ...)
// matched with errors.Is.
package histdist
