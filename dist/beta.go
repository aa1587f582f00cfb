package dist

import "math"

// B returns the Beta function B(alpha, beta), the normalizing constant
// that makes the Beta density integrate to one.
func B(alpha, beta float64) float64 {
	return math.Gamma(alpha) * math.Gamma(beta) / math.Gamma(alpha+beta)
}

// BetaPDF returns the density of the Beta(alpha, beta) distribution at x.
// The support is the open interval (0, 1); everything outside is 0.
func BetaPDF(x, alpha, beta float64) float64 {
	if x <= 0 || x >= 1 {
		return 0
	}

	return math.Pow(x, alpha-1) * math.Pow(1-x, beta-1) / B(alpha, beta)
}
