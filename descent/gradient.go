package descent

import "github.com/katalvlaran/numkit/vector"

// DifferenceQuotient returns (f(x+h) − f(x)) / h, the one-dimensional
// finite-difference approximation of f′(x).
//
// The caller chooses h. A zero h is NOT guarded: the resulting ±Inf/NaN
// propagates, because silently substituting a default would hide the bug.
func DifferenceQuotient(f func(float64) float64, x, h float64) float64 {
	return (f(x+h) - f(x)) / h
}

// PartialDifferenceQuotient approximates ∂f/∂v_i at v by perturbing only
// coordinate i by h and holding every other coordinate fixed.
//
// An out-of-range i is a programmer error and panics via slice indexing.
func PartialDifferenceQuotient(f Objective, v vector.Vector, i int, h float64) float64 {
	w := make(vector.Vector, len(v))
	copy(w, v)
	w[i] += h

	return (f(w) - f(v)) / h
}

// EstimateGradient approximates the gradient of f at v numerically, one
// coordinate at a time. An h ≤ 0 falls back to DefaultGradientStep.
//
// Cost: f is evaluated 2·len(v) times — no caching across coordinates,
// no parallelism. When a closed-form gradient exists, supply it to the
// optimizer instead.
func EstimateGradient(f Objective, v vector.Vector, h float64) vector.Vector {
	if h <= 0 {
		h = DefaultGradientStep
	}

	grad := make(vector.Vector, len(v))
	for i := range v {
		grad[i] = PartialDifferenceQuotient(f, v, i, h)
	}

	return grad
}

// Step returns the Point reached by moving stepSize along direction from
// v: a new Vector whose i-th coordinate is v_i + stepSize·direction_i.
// Pass a negative stepSize to move against a gradient (descent).
//
// Errors: the vector pair contract — ErrEmptyVector / ErrDimensionMismatch
// when v and direction cannot be combined.
func Step(v, direction vector.Vector, stepSize float64) (vector.Vector, error) {
	return vector.Add(v, vector.Scale(direction, stepSize))
}
