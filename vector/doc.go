// Package vector implements elementwise arithmetic over dense numeric
// vectors represented as plain []float64 slices.
//
// 🚀 What is vector?
//
//	The leaf building block of numkit: every higher-level package
//	(stats, descent, matrix) moves data around as Vectors.  It covers:
//	  • elementwise Add / Sub / Sum / Mean
//	  • Scale (scalar multiply) and Dot (inner product)
//	  • SumOfSquares, Magnitude
//	  • SquaredDistance, Distance
//
// ✨ Design notes:
//
//   - Vector is an alias of []float64 — callers pass ordinary slices,
//     no wrapping or conversion required.
//   - Every operation returns a freshly allocated result; inputs are
//     never mutated.  Treat produced Vectors as immutable values.
//   - Shape violations are contract errors, not recoverable conditions:
//     combining two vectors of different lengths fails with
//     ErrDimensionMismatch, and empty inputs fail with ErrEmptyVector.
//     Both are sentinel errors matched via errors.Is.  Nothing is
//     retried or degraded internally.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/numkit/vector"
//
//	sum, err := vector.Add([]float64{1, 2, 3}, []float64{1, 2, 3})
//	if err != nil {
//	  // ErrDimensionMismatch or ErrEmptyVector
//	}
//	fmt.Println(sum) // [2 4 6]
//
// Complexity: all operations are single-pass, O(n) time, O(n) space for
// the result (O(1) for scalar-valued results).
//
// See examples in example_test.go.
package vector
