package dist

import (
	"math"
	"math/rand"
)

// BernoulliTrial returns 1 with probability p and 0 otherwise, drawing
// from the given source. Panics if rng is nil: randomness is always
// threaded explicitly, never taken from global state.
func BernoulliTrial(rng *rand.Rand, p float64) int {
	if rng == nil {
		panic("dist: BernoulliTrial requires a non-nil *rand.Rand")
	}

	if rng.Float64() < p {
		return 1
	}

	return 0
}

// Binomial returns the sum of n Bernoulli(p) trials drawn from the given
// source. Panics if rng is nil.
func Binomial(rng *rand.Rand, n int, p float64) int {
	if rng == nil {
		panic("dist: Binomial requires a non-nil *rand.Rand")
	}

	var sum int
	for i := 0; i < n; i++ {
		sum += BernoulliTrial(rng, p)
	}

	return sum
}

// NormalApproximationToBinomial returns the (mu, sigma) of the normal
// distribution approximating Binomial(n, p).
func NormalApproximationToBinomial(n int, p float64) (mu, sigma float64) {
	mu = p * float64(n)
	sigma = math.Sqrt(p * (1 - p) * float64(n))

	return mu, sigma
}
