// Package pavx performs isotonic regression with the Pool-Adjacent-Violators
// (PAV) algorithm: the least-squares fit of a sequence by the nearest
// non-decreasing sequence.
//
// 🚀 What is PAV?
//
//	Given y of length n, PAV finds ghat minimizing Σ(yᵢ−ghatᵢ)² subject to
//	ghat₁ ≤ ghat₂ ≤ … ≤ ghatₙ. It is the workhorse of score calibration:
//	  • ROC convex hulls & score-to-LLR calibration
//	  • Monotone probability calibration of classifiers
//	  • Order-restricted statistical inference
//
// ✨ Key features:
//   - O(n) amortized single pass (block stack with weighted-mean merges)
//   - Block output on demand: width (run length) and height (fitted mean)
//     of every merged block, left to right
//   - Checked entry points plus a raw PavxUnchecked fast path
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlopt/pavx"
//
//	ghat, err := pavx.Pavx(y)                          // fitted sequence
//	ghat, w, h, err := pavx.PavxWidthHeight(y)         // + block structure
//
// The fitted sequence is piecewise constant; expanding (width, height)
// reproduces it exactly, and Σwidth == len(y).
//
// Complexity: O(n) time amortized (each element is merged O(1) times),
// O(n) working memory.
package pavx
