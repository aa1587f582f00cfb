package dist_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/numkit/dist"
)

// TestUniform verifies the exact piecewise semantics of the unit uniform.
func TestUniform(t *testing.T) {
	assert.Equal(t, 1.0, dist.UniformPDF(0.5))
	assert.Equal(t, 1.0, dist.UniformPDF(0))
	assert.Equal(t, 0.0, dist.UniformPDF(1), "pdf is 0 at the right-open boundary")
	assert.Equal(t, 0.0, dist.UniformPDF(2))
	assert.Equal(t, 0.0, dist.UniformPDF(-1))

	assert.Equal(t, 0.0, dist.UniformCDF(-0.0001))
	assert.Equal(t, 0.0, dist.UniformCDF(0))
	assert.Equal(t, 0.5, dist.UniformCDF(0.5))
	assert.Equal(t, 0.9, dist.UniformCDF(0.9))
	assert.Equal(t, 1.0, dist.UniformCDF(3))
}

// TestNormalPDFCDF verifies known standard-normal values and agreement
// with distuv across a sweep of points and parameters.
func TestNormalPDFCDF(t *testing.T) {
	assert.InDelta(t, 0.3989422804014327, dist.NormalPDF(0, 0, 1), 1e-15)
	assert.InDelta(t, 0.5, dist.NormalCDF(0, 0, 1), 1e-15)
	assert.InDelta(t, 0, dist.NormalCDF(0, 20, 1), 1e-15)

	for _, p := range []struct{ mu, sigma float64 }{{0, 1}, {2, 3}, {-1, 0.5}} {
		ref := distuv.Normal{Mu: p.mu, Sigma: p.sigma}
		for x := -5.0; x <= 5.0; x += 0.25 {
			assert.InDelta(t, ref.Prob(x), dist.NormalPDF(x, p.mu, p.sigma), 1e-12, "pdf at %v for %+v", x, p)
			assert.InDelta(t, ref.CDF(x), dist.NormalCDF(x, p.mu, p.sigma), 1e-12, "cdf at %v for %+v", x, p)
		}
	}
}

// TestInverseNormalCDF verifies the bisection quantile against distuv
// and its round-trip with NormalCDF.
func TestInverseNormalCDF(t *testing.T) {
	std := distuv.Normal{Mu: 0, Sigma: 1}
	for _, p := range []float64{0.01, 0.1, 0.25, 0.5, 0.75, 0.9, 0.95, 0.975, 0.99} {
		z := dist.InverseNormalCDF(p, 0, 1, 0)
		assert.InDelta(t, std.Quantile(p), z, 1e-4, "quantile at p=%v", p)
		assert.InDelta(t, p, dist.NormalCDF(z, 0, 1), 1e-5, "round trip at p=%v", p)
	}

	// Non-standard parameters rescale the standard quantile.
	z := dist.InverseNormalCDF(0.975, 100, 15, 0)
	assert.InDelta(t, 100+15*std.Quantile(0.975), z, 1e-3)
}

// TestNormalProbabilityHelpers verifies the interval helpers sum to one
// and match their cdf definitions.
func TestNormalProbabilityHelpers(t *testing.T) {
	assert.InDelta(t, 0.3085375387259869, dist.NormalProbabilityAbove(0.5, 0, 1), 1e-12)

	between := dist.NormalProbabilityBetween(0.2, 0.3, 0, 1)
	assert.InDelta(t, dist.NormalCDF(0.3, 0, 1)-dist.NormalCDF(0.2, 0, 1), between, 1e-15)
	assert.InDelta(t, 1-between, dist.NormalProbabilityOutside(0.2, 0.3, 0, 1), 1e-15)
}

// TestNormalBounds verifies the one- and two-sided bound helpers on the
// course's polling example.
func TestNormalBounds(t *testing.T) {
	assert.InDelta(t, 1.6449, dist.NormalUpperBound(0.95, 0, 1), 1e-3)
	assert.InDelta(t, -1.6449, dist.NormalLowerBound(0.95, 0, 1), 1e-3)

	lo, hi := dist.NormalTwoSidedBounds(0.95, 500, 15.811388300841896)
	assert.InDelta(t, 469.01, lo, 0.01)
	assert.InDelta(t, 530.99, hi, 0.01)
}

// TestBinomialSampling verifies reproducibility for a fixed seed and the
// law-of-large-numbers behavior of the sample mean.
func TestBinomialSampling(t *testing.T) {
	a := dist.Binomial(rand.New(rand.NewSource(7)), 100, 0.5)
	b := dist.Binomial(rand.New(rand.NewSource(7)), 100, 0.5)
	assert.Equal(t, a, b, "same seed must reproduce the same draw")

	rng := rand.New(rand.NewSource(42))
	const n, p, draws = 50, 0.3, 2000
	var sum float64
	for i := 0; i < draws; i++ {
		sum += float64(dist.Binomial(rng, n, p))
	}
	mu, sigma := dist.NormalApproximationToBinomial(n, p)
	assert.InDelta(t, mu, sum/draws, 3*sigma/math.Sqrt(draws))

	assert.Panics(t, func() { dist.BernoulliTrial(nil, 0.5) })
}

// TestNormalApproximationToBinomial verifies the (mu, sigma) mapping.
func TestNormalApproximationToBinomial(t *testing.T) {
	mu, sigma := dist.NormalApproximationToBinomial(1, 0.5)
	assert.Equal(t, 0.5, mu)
	assert.Equal(t, 0.5, sigma)

	mu, sigma = dist.NormalApproximationToBinomial(1000, 0.5)
	assert.Equal(t, 500.0, mu)
	assert.InDelta(t, 15.811388300841896, sigma, 1e-12)
}

// TestBeta verifies the normalizing constant, the density, and agreement
// with distuv inside the support.
func TestBeta(t *testing.T) {
	assert.InDelta(t, 1.0, dist.B(1, 1), 1e-15)
	assert.InDelta(t, 0.1, dist.B(10, 1), 1e-12)
	assert.InDelta(t, 0.1, dist.B(1, 10), 1e-12)

	assert.Equal(t, 1.0, dist.BetaPDF(0.5, 1, 1))
	assert.Equal(t, 0.0, dist.BetaPDF(0, 1, 1))
	assert.Equal(t, 0.0, dist.BetaPDF(1, 1, 1))

	ref := distuv.Beta{Alpha: 2, Beta: 5}
	for x := 0.05; x < 1; x += 0.05 {
		assert.InDelta(t, ref.Prob(x), dist.BetaPDF(x, 2, 5), 1e-12, "beta pdf at %v", x)
	}
}
