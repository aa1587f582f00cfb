package descent

import (
	"math"

	"github.com/katalvlaran/numkit/vector"
)

// MinimizeBatch finds a Point that locally minimizes target by steepest
// descent with a discrete step-size search.
//
// Each iteration computes the gradient at the current theta (via gradient,
// or EstimateGradient when gradient is nil), builds one candidate per menu
// entry by stepping AGAINST the gradient, scores every candidate through
// the Safe wrapper, and keeps the stable minimum. When the improvement
// |value − nextValue| drops below the tolerance the CURRENT theta is
// returned — the pre-step Point, since the step it would take is judged
// negligible.
//
// There is no iteration cap: the loop runs until convergence. Accepted
// values are monotonically non-increasing, but a target that is +Inf
// everywhere reachable can stall the loop indefinitely (every candidate
// ties at +Inf and never comes within tolerance of a finite value).
//
// Errors:
//   - ErrEmptyPoint — theta0 has no coordinates.
//   - vector.ErrDimensionMismatch — gradient length differs from theta.
//
// Complexity per iteration: one gradient evaluation plus
// len(StepSizes) target evaluations.
func MinimizeBatch(target Objective, gradient GradientFunc, theta0 vector.Vector, opts ...Option) (vector.Vector, error) {
	if len(theta0) == 0 {
		return nil, ErrEmptyPoint
	}
	o := apply(opts)

	if gradient == nil {
		h := o.GradientStep
		gradient = func(v vector.Vector) vector.Vector {
			return EstimateGradient(target, v, h)
		}
	}

	safeTarget := Safe(target)

	theta := make(vector.Vector, len(theta0))
	copy(theta, theta0)
	value := safeTarget(theta)

	for {
		grad := gradient(theta)

		// Score one candidate per menu entry; stable minimum keeps the
		// earliest entry on ties (including the all-+Inf tie).
		var nextTheta vector.Vector
		nextValue := math.Inf(1)
		for _, size := range o.StepSizes {
			candidate, err := Step(theta, grad, -size)
			if err != nil {
				return nil, err
			}
			if v := safeTarget(candidate); nextTheta == nil || v < nextValue {
				nextTheta, nextValue = candidate, v
			}
		}

		if math.Abs(value-nextValue) < o.Tolerance {
			return theta, nil
		}

		theta, value = nextTheta, nextValue
	}
}

// Negate returns the function computing −f(v).
func Negate(f Objective) Objective {
	return func(v vector.Vector) float64 {
		return -f(v)
	}
}

// NegateAll returns the function computing the elementwise negation of
// g's vector result — the gradient of the negated objective.
func NegateAll(g GradientFunc) GradientFunc {
	return func(v vector.Vector) vector.Vector {
		return vector.Scale(g(v), -1)
	}
}

// MaximizeBatch finds a Point that locally maximizes target: it minimizes
// the negated target with the negated gradient and returns the located
// Point unchanged (the two negations cancel on the argmax).
//
// A nil gradient is passed through: the fallback estimator then differences
// the negated target, which is the same thing. Errors: same contract as
// MinimizeBatch.
func MaximizeBatch(target Objective, gradient GradientFunc, theta0 vector.Vector, opts ...Option) (vector.Vector, error) {
	var negGradient GradientFunc
	if gradient != nil {
		negGradient = NegateAll(gradient)
	}

	return MinimizeBatch(Negate(target), negGradient, theta0, opts...)
}
