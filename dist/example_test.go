package dist_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/numkit/dist"
)

// ExampleNormalCDF demonstrates the standard normal cdf at its center.
func ExampleNormalCDF() {
	fmt.Println(dist.NormalCDF(0, 0, 1))
	// Output:
	// 0.5
}

// ExampleNormalTwoSidedBounds demonstrates a 95% interval around a mean
// of 500 — the classic coin-flipping significance setup.
func ExampleNormalTwoSidedBounds() {
	lo, hi := dist.NormalTwoSidedBounds(0.95, 500, 15.811388300841896)
	fmt.Printf("%.2f %.2f\n", lo, hi)
	// Output:
	// 469.01 530.99
}

// ExampleBinomial demonstrates reproducible sampling from an explicit
// random source.
func ExampleBinomial() {
	rng := rand.New(rand.NewSource(0))
	fmt.Println(dist.Binomial(rng, 20, 0.5) <= 20)
	// Output:
	// true
}

// ExampleBetaPDF demonstrates the flat Beta(1,1) density.
func ExampleBetaPDF() {
	fmt.Println(dist.BetaPDF(0.5, 1, 1))
	// Output:
	// 1
}
