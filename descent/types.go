// Package descent defines the function contracts, configuration options
// and sentinel errors shared by the batch and stochastic optimizers.
package descent

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/numkit/vector"
)

// Sentinel errors returned by the optimizers.
var (
	// ErrEmptyPoint indicates an empty starting point (theta0 with no coordinates).
	ErrEmptyPoint = errors.New("descent: starting point must be non-empty")

	// ErrNoData indicates a stochastic run over an empty dataset.
	ErrNoData = errors.New("descent: dataset must be non-empty")

	// ErrLengthMismatch indicates parallel input/label sequences of different lengths.
	ErrLengthMismatch = errors.New("descent: inputs and labels must be the same length")
)

// Objective maps a Point to a real-valued score. It may fail (panic, or
// produce NaN) for Points outside its domain; wrap with Safe before
// ranking candidates.
type Objective func(v vector.Vector) float64

// GradientFunc maps a Point to its Gradient: the vector of partial
// derivatives of the objective at that Point, with the same length.
type GradientFunc func(v vector.Vector) vector.Vector

// PointObjective is a per-example loss: the cost of predicting label y
// from input x under the parameters theta.
type PointObjective func(x vector.Vector, y float64, theta vector.Vector) float64

// PointGradient is the gradient of a PointObjective with respect to theta.
type PointGradient func(x vector.Vector, y float64, theta vector.Vector) vector.Vector

// Defaults applied by DefaultOptions.
const (
	// DefaultTolerance is the batch termination threshold on |value − nextValue|.
	DefaultTolerance = 1e-6

	// DefaultAlpha0 is the initial stochastic learning rate.
	DefaultAlpha0 = 0.01

	// DefaultPatience is the number of consecutive non-improving epochs
	// after which a stochastic run stops.
	DefaultPatience = 100

	// DefaultGradientStep is the finite-difference h used by
	// EstimateGradient when the caller passes h ≤ 0.
	DefaultGradientStep = 1e-5

	// alphaDecay shrinks the stochastic learning rate on every
	// non-improving epoch.
	alphaDecay = 0.9

	// defaultSeed seeds the shuffle source when WithRand is not given,
	// keeping unconfigured runs reproducible.
	defaultSeed = 1
)

// defaultStepSizes is the fixed menu of step magnitudes tried at every
// batch iteration, largest first.
var defaultStepSizes = []float64{100, 10, 1, 0.1, 0.01, 0.001, 0.0001, 0.00001}

// Options configures both optimizers.
//
// StepSizes    – batch step-size menu, tried in order each iteration.
// Tolerance    – batch termination threshold (must be > 0).
// Alpha0       – initial stochastic learning rate (must be > 0).
// Patience     – non-improving epochs before a stochastic run stops (must be > 0).
// GradientStep – finite-difference h for gradient estimation (must be > 0).
// Rand         – source for the per-epoch dataset shuffle (must be non-nil).
type Options struct {
	StepSizes    []float64
	Tolerance    float64
	Alpha0       float64
	Patience     int
	GradientStep float64
	Rand         *rand.Rand
}

// Option is a functional option for configuring an optimization run.
type Option func(*Options)

// WithStepSizes replaces the batch step-size menu. The menu order matters:
// ties in candidate scores resolve to the earlier entry.
// Panics on an empty menu (invalid configuration, programmer error).
func WithStepSizes(sizes ...float64) Option {
	return func(o *Options) {
		if len(sizes) == 0 {
			panic("descent: step-size menu must be non-empty")
		}
		o.StepSizes = sizes
	}
}

// WithTolerance sets the batch termination threshold.
// Panics on a non-positive tolerance.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			panic("descent: tolerance must be positive")
		}
		o.Tolerance = tol
	}
}

// WithAlpha0 sets the initial stochastic learning rate.
// Panics on a non-positive rate.
func WithAlpha0(alpha float64) Option {
	return func(o *Options) {
		if alpha <= 0 {
			panic("descent: alpha0 must be positive")
		}
		o.Alpha0 = alpha
	}
}

// WithPatience sets how many consecutive non-improving epochs a
// stochastic run tolerates before stopping.
// Panics on a non-positive count.
func WithPatience(epochs int) Option {
	return func(o *Options) {
		if epochs <= 0 {
			panic("descent: patience must be positive")
		}
		o.Patience = epochs
	}
}

// WithGradientStep sets the finite-difference h used when a batch run
// falls back to EstimateGradient (nil GradientFunc).
// Panics on a non-positive h.
func WithGradientStep(h float64) Option {
	return func(o *Options) {
		if h <= 0 {
			panic("descent: gradient step must be positive")
		}
		o.GradientStep = h
	}
}

// WithRand supplies the random source driving the per-epoch shuffle,
// making stochastic runs reproducible under the caller's control.
// Panics on a nil source.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng == nil {
			panic("descent: random source must be non-nil")
		}
		o.Rand = rng
	}
}

// DefaultOptions returns the configuration used when no options are given.
//
// Defaults:
//   - StepSizes:    [100, 10, 1, 0.1, 0.01, 0.001, 0.0001, 0.00001]
//   - Tolerance:    1e-6
//   - Alpha0:       0.01
//   - Patience:     100
//   - GradientStep: 1e-5
//   - Rand:         deterministically seeded source (reproducible runs)
func DefaultOptions() Options {
	menu := make([]float64, len(defaultStepSizes))
	copy(menu, defaultStepSizes)

	return Options{
		StepSizes:    menu,
		Tolerance:    DefaultTolerance,
		Alpha0:       DefaultAlpha0,
		Patience:     DefaultPatience,
		GradientStep: DefaultGradientStep,
		Rand:         rand.New(rand.NewSource(defaultSeed)),
	}
}

// apply folds functional options over the defaults.
func apply(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
