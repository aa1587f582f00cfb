package descent

import (
	"math"

	"github.com/katalvlaran/numkit/vector"
)

// MinimizeStochastic minimizes a per-example loss summed over the paired
// dataset (xs, ys) by online gradient steps with a decaying learning rate.
//
// Each outer epoch:
//  1. scores the CURRENT theta by summing target over every example;
//  2. on improvement over the best total so far, records theta as the
//     new best, resets the patience counter, and resets the learning
//     rate to Alpha0;
//  3. otherwise counts the epoch against the patience budget and shrinks
//     the rate by ×0.9;
//  4. visits every example exactly once in a fresh uniformly random
//     permutation and immediately updates theta against that example's
//     gradient — exploration always continues from the updated theta,
//     improving or not.
//
// The run stops after Patience consecutive non-improving epochs and
// returns the best-recorded Point. If no epoch ever produced a finite
// total (the loss is +Inf/NaN everywhere), the result is nil.
//
// Errors:
//   - ErrNoData         — the dataset is empty.
//   - ErrLengthMismatch — len(xs) != len(ys).
//   - ErrEmptyPoint     — theta0 has no coordinates.
//   - vector.ErrDimensionMismatch — a per-example gradient length differs
//     from theta.
func MinimizeStochastic(target PointObjective, gradient PointGradient, xs []vector.Vector, ys []float64, theta0 vector.Vector, opts ...Option) (vector.Vector, error) {
	if len(xs) != len(ys) {
		return nil, ErrLengthMismatch
	}
	if len(xs) == 0 {
		return nil, ErrNoData
	}
	if len(theta0) == 0 {
		return nil, ErrEmptyPoint
	}
	o := apply(opts)

	theta := make(vector.Vector, len(theta0))
	copy(theta, theta0)
	alpha := o.Alpha0

	var best vector.Vector
	bestValue := math.Inf(1)

	for epochsWithoutImprovement := 0; epochsWithoutImprovement < o.Patience; {
		var value float64
		for i := range xs {
			value += target(xs[i], ys[i], theta)
		}

		if value < bestValue {
			best = make(vector.Vector, len(theta))
			copy(best, theta)
			bestValue = value
			epochsWithoutImprovement = 0
			alpha = o.Alpha0
		} else {
			epochsWithoutImprovement++
			alpha *= alphaDecay
		}

		// Fresh permutation every epoch: a reused visiting order would
		// bias the online updates.
		for _, i := range o.Rand.Perm(len(xs)) {
			grad := gradient(xs[i], ys[i], theta)
			next, err := Step(theta, grad, -alpha)
			if err != nil {
				return nil, err
			}
			theta = next
		}
	}

	return best, nil
}

// MaximizeStochastic maximizes a per-example objective: it minimizes the
// negated loss with the negated gradient and returns the located Point
// unchanged.
func MaximizeStochastic(target PointObjective, gradient PointGradient, xs []vector.Vector, ys []float64, theta0 vector.Vector, opts ...Option) (vector.Vector, error) {
	negTarget := func(x vector.Vector, y float64, theta vector.Vector) float64 {
		return -target(x, y, theta)
	}
	negGradient := func(x vector.Vector, y float64, theta vector.Vector) vector.Vector {
		return vector.Scale(gradient(x, y, theta), -1)
	}

	return MinimizeStochastic(negTarget, negGradient, xs, ys, theta0, opts...)
}
