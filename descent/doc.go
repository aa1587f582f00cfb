// Package descent implements gradient-descent optimization over numeric
// parameter vectors: batch steepest descent with a discrete step-size
// search, stochastic (per-example) descent with learning-rate decay, the
// finite-difference gradient estimator, and the maximize duals.
//
// 🚀 What is descent?
//
//	Given a target function and a starting Point, descent walks downhill:
//	  • MinimizeBatch      — try a fixed menu of step sizes against the
//	    gradient each iteration, keep the best candidate, stop when the
//	    improvement drops below a tolerance
//	  • MinimizeStochastic — shuffle the dataset each epoch, step after
//	    every example, decay the rate on non-improving epochs, stop after
//	    a patience budget of epochs without improvement
//	  • MaximizeBatch / MaximizeStochastic — the same walks on the negated
//	    target (Negate / NegateAll), so the result maximizes the original
//	  • EstimateGradient   — numeric partial derivatives when no
//	    closed-form gradient is available
//	  • Safe / SafeFunc    — total-order adapters: any evaluation failure
//	    becomes +Inf instead of aborting the search
//
// ✨ Design notes:
//
//   - Points are immutable: every iteration allocates a fresh candidate,
//     and the inputs of each call are never written to.
//   - The step-size menu defaults to
//     [100, 10, 1, 0.1, 0.01, 0.001, 0.0001, 0.00001]; candidate selection
//     is a stable minimum, so ties resolve to the earlier menu entry.
//   - Batch termination compares values, not points: when
//     |value − nextValue| < tolerance the CURRENT theta is returned, not
//     the candidate that triggered the check.
//   - When every candidate evaluates to +Inf the stable minimum still
//     selects the first menu entry and the loop may stall — deliberately
//     kept, see the package README history in DESIGN.md.
//   - No global random state: the epoch shuffle draws from the *rand.Rand
//     supplied via WithRand (deterministically seeded by default), so runs
//     are reproducible and concurrent optimizations never interfere.
//   - EstimateGradient calls the target 2·len(v) times, one coordinate at
//     a time, with no caching and no parallelism.  That cost is the
//     caller's cue to supply a closed-form gradient where one exists.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/numkit/descent"
//
//	sumOfSquares := func(v []float64) float64 {
//	  s, _ := vector.SumOfSquares(v)
//	  return s
//	}
//	grad := func(v []float64) []float64 { return vector.Scale(v, 2) }
//
//	theta, err := descent.MinimizeBatch(sumOfSquares, grad, []float64{10, 10})
//	// theta ≈ [0 0]
//
// Errors are contract violations only (empty starting point, mismatched
// dataset lengths, gradient/point shape mismatch) — evaluation failures
// of the target never abort a search, they rank last via Safe.
//
// Complexity per batch iteration: one gradient evaluation plus
// len(StepSizes) target evaluations, O(len(theta)) arithmetic each.
package descent
