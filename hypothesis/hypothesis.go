package hypothesis

import "github.com/katalvlaran/numkit/dist"

// TwoSidedPValue returns the probability of observing a value at least as
// extreme as x, in either direction, under Normal(mu, sigma): twice the
// smaller tail.
func TwoSidedPValue(x, mu, sigma float64) float64 {
	if x >= mu {
		return 2 * dist.NormalProbabilityAbove(x, mu, sigma)
	}

	return 2 * dist.NormalProbabilityBelow(x, mu, sigma)
}

// UpperPValue returns the one-sided p-value for the upper tail: the mass
// of Normal(mu, sigma) above x.
func UpperPValue(x, mu, sigma float64) float64 {
	return dist.NormalProbabilityAbove(x, mu, sigma)
}

// LowerPValue returns the one-sided p-value for the lower tail: the mass
// of Normal(mu, sigma) below x.
func LowerPValue(x, mu, sigma float64) float64 {
	return dist.NormalProbabilityBelow(x, mu, sigma)
}
