package dist

// UniformPDF returns the density of the Uniform(0,1) distribution at x:
// 1 on [0, 1), 0 everywhere else.
func UniformPDF(x float64) float64 {
	if x >= 0 && x < 1 {
		return 1
	}

	return 0
}

// UniformCDF returns the probability that a Uniform(0,1) variable is ≤ x.
// The result clamps to 0 below the support and to 1 above it.
func UniformCDF(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x < 1:
		return x
	default:
		return 1
	}
}
