package dist

import "math"

// DefaultInverseTolerance is the bracket width at which the bisection in
// InverseNormalCDF stops when the caller passes tolerance ≤ 0.
const DefaultInverseTolerance = 1e-5

// Bisection bracket for the standard normal quantile: ±10 standard
// deviations cover every probability float64 can distinguish from 0 or 1.
const (
	inverseLowZ  = -10.0
	inverseHighZ = 10.0
)

// NormalPDF returns the density of the Normal(mu, sigma) distribution at x.
func NormalPDF(x, mu, sigma float64) float64 {
	sqrtTwoPi := math.Sqrt(2 * math.Pi)

	return math.Exp(-(x-mu)*(x-mu)/2/(sigma*sigma)) / (sqrtTwoPi * sigma)
}

// NormalCDF returns the probability that a Normal(mu, sigma) variable is
// ≤ x, computed from the error function.
func NormalCDF(x, mu, sigma float64) float64 {
	return (1 + math.Erf((x-mu)/math.Sqrt2/sigma)) / 2
}

// InverseNormalCDF returns the x for which NormalCDF(x, mu, sigma) ≈ p.
//
// The routine bisects z over [-10, 10] against the standard normal cdf
// until the bracket is narrower than tolerance, then returns the midpoint.
// Non-standard (mu, sigma) are handled by rescaling the standard result.
// A tolerance ≤ 0 falls back to DefaultInverseTolerance.
//
// Complexity: O(log(range/tolerance)) cdf evaluations.
func InverseNormalCDF(p, mu, sigma, tolerance float64) float64 {
	if tolerance <= 0 {
		tolerance = DefaultInverseTolerance
	}

	// Translate to the standard normal, solve there, translate back.
	if mu != 0 || sigma != 1 {
		return mu + sigma*InverseNormalCDF(p, 0, 1, tolerance)
	}

	lowZ, highZ := inverseLowZ, inverseHighZ
	var midZ float64
	for highZ-lowZ > tolerance {
		midZ = (lowZ + highZ) / 2
		midP := NormalCDF(midZ, 0, 1)
		switch {
		case midP < p:
			lowZ = midZ
		case midP > p:
			highZ = midZ
		default:
			return midZ
		}
	}

	return midZ
}

// NormalProbabilityBelow returns P(X ≤ x) for X ~ Normal(mu, sigma).
// It is the cdf under its hypothesis-testing name.
func NormalProbabilityBelow(x, mu, sigma float64) float64 {
	return NormalCDF(x, mu, sigma)
}

// NormalProbabilityAbove returns P(X > lo) for X ~ Normal(mu, sigma).
func NormalProbabilityAbove(lo, mu, sigma float64) float64 {
	return 1 - NormalCDF(lo, mu, sigma)
}

// NormalProbabilityBetween returns P(lo < X ≤ hi) for X ~ Normal(mu, sigma).
func NormalProbabilityBetween(lo, hi, mu, sigma float64) float64 {
	return NormalCDF(hi, mu, sigma) - NormalCDF(lo, mu, sigma)
}

// NormalProbabilityOutside returns P(X ≤ lo or X > hi), the complement of
// NormalProbabilityBetween.
func NormalProbabilityOutside(lo, hi, mu, sigma float64) float64 {
	return 1 - NormalProbabilityBetween(lo, hi, mu, sigma)
}

// NormalUpperBound returns the z for which P(X ≤ z) = probability.
func NormalUpperBound(probability, mu, sigma float64) float64 {
	return InverseNormalCDF(probability, mu, sigma, DefaultInverseTolerance)
}

// NormalLowerBound returns the z for which P(X ≥ z) = probability.
func NormalLowerBound(probability, mu, sigma float64) float64 {
	return InverseNormalCDF(1-probability, mu, sigma, DefaultInverseTolerance)
}

// NormalTwoSidedBounds returns the symmetric (lo, hi) interval about the
// mean that contains the given probability mass.
func NormalTwoSidedBounds(probability, mu, sigma float64) (lo, hi float64) {
	tailProbability := (1 - probability) / 2

	// The upper bound has tailProbability above it, the lower below it.
	hi = NormalLowerBound(tailProbability, mu, sigma)
	lo = NormalUpperBound(tailProbability, mu, sigma)

	return lo, hi
}
