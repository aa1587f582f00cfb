package descent_test

import (
	"testing"

	"github.com/katalvlaran/numkit/descent"
	"github.com/katalvlaran/numkit/vector"
)

// benchPoint builds a deterministic n-dimensional starting point.
func benchPoint(n int) vector.Vector {
	v := make(vector.Vector, n)
	for i := range v {
		v[i] = float64(i%7) + 1
	}

	return v
}

// BenchmarkEstimateGradient_10d measures the 2n-evaluation cost of the
// finite-difference estimator in 10 dimensions.
func BenchmarkEstimateGradient_10d(b *testing.B) {
	v := benchPoint(10)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = descent.EstimateGradient(sumOfSquares, v, 1e-5)
	}
}

// BenchmarkMinimizeBatch_SumOfSquares2d measures a full batch run on the
// canonical 2-D bowl.
func BenchmarkMinimizeBatch_SumOfSquares2d(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := descent.MinimizeBatch(sumOfSquares, sumOfSquaresGradient, vector.Vector{10, 10}); err != nil {
			b.Fatalf("MinimizeBatch failed: %v", err)
		}
	}
}

// BenchmarkSafe_Overhead measures the wrapper cost on a trivially cheap
// target (the recover scaffolding dominates).
func BenchmarkSafe_Overhead(b *testing.B) {
	f := descent.Safe(sumOfSquares)
	v := benchPoint(4)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f(v)
	}
}
