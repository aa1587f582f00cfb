package vector_test

import (
	"fmt"

	"github.com/katalvlaran/numkit/vector"
)

// ExampleAdd demonstrates elementwise addition of two equal-length vectors.
func ExampleAdd() {
	sum, err := vector.Add([]float64{1, 2, 3}, []float64{1, 2, 3})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(sum)
	// Output:
	// [2 4 6]
}

// ExampleDot demonstrates the inner product of two vectors.
func ExampleDot() {
	dot, err := vector.Dot([]float64{1, 2, 3}, []float64{4, 5, 6})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(dot)
	// Output:
	// 32
}

// ExampleMean demonstrates the elementwise mean of several vectors.
func ExampleMean() {
	mean, err := vector.Mean(
		[]float64{1, 2, 3},
		[]float64{2, 2, 2},
		[]float64{3, 2, 1},
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(mean)
	// Output:
	// [2 2 2]
}

// ExampleMagnitude demonstrates the Euclidean norm.
func ExampleMagnitude() {
	mag, _ := vector.Magnitude([]float64{3, 4})
	fmt.Println(mag)
	// Output:
	// 5
}
