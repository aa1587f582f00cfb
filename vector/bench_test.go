package vector_test

import (
	"testing"

	"github.com/katalvlaran/numkit/vector"
)

// benchVectors builds two predictable vectors of length n for benchmarking.
func benchVectors(n int) (vector.Vector, vector.Vector) {
	v := make(vector.Vector, n)
	w := make(vector.Vector, n)
	for i := 0; i < n; i++ {
		v[i] = float64(i)
		w[i] = float64(n - i)
	}

	return v, w
}

// BenchmarkAdd_1k benchmarks elementwise addition of two 1000-element vectors.
func BenchmarkAdd_1k(b *testing.B) {
	v, w := benchVectors(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := vector.Add(v, w); err != nil {
			b.Fatalf("Add failed: %v", err)
		}
	}
}

// BenchmarkDot_1k benchmarks the inner product of two 1000-element vectors.
func BenchmarkDot_1k(b *testing.B) {
	v, w := benchVectors(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := vector.Dot(v, w); err != nil {
			b.Fatalf("Dot failed: %v", err)
		}
	}
}

// BenchmarkScale_1k benchmarks scalar multiplication of a 1000-element vector.
func BenchmarkScale_1k(b *testing.B) {
	v, _ := benchVectors(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = vector.Scale(v, 0.5)
	}
}
