package hypothesis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/numkit/dist"
	"github.com/katalvlaran/numkit/hypothesis"
)

// The null hypothesis of the course's coin example: 1000 fair flips.
const (
	fairMu    = 500.0
	fairSigma = 15.811388300841896
)

// TestTwoSidedPValue verifies the doubled-tail rule on both sides of the
// mean and the course's known value for 530 heads.
func TestTwoSidedPValue(t *testing.T) {
	// 529.5 rather than 530: continuity correction for the discrete count.
	assert.InDelta(t, 0.062, hypothesis.TwoSidedPValue(529.5, fairMu, fairSigma), 1e-3)

	// Symmetry: equally extreme observations on either side agree.
	above := hypothesis.TwoSidedPValue(529.5, fairMu, fairSigma)
	below := hypothesis.TwoSidedPValue(470.5, fairMu, fairSigma)
	assert.InDelta(t, above, below, 1e-12)

	// At the mean both tails are half, so the doubled value is one.
	assert.InDelta(t, 1.0, hypothesis.TwoSidedPValue(fairMu, fairMu, fairSigma), 1e-12)
}

// TestOneSidedPValues verifies the delegation to the dist tail helpers.
func TestOneSidedPValues(t *testing.T) {
	x := 524.5
	assert.Equal(t, dist.NormalProbabilityAbove(x, fairMu, fairSigma), hypothesis.UpperPValue(x, fairMu, fairSigma))
	assert.Equal(t, dist.NormalProbabilityBelow(x, fairMu, fairSigma), hypothesis.LowerPValue(x, fairMu, fairSigma))
	assert.InDelta(t, 0.061, hypothesis.UpperPValue(x, fairMu, fairSigma), 1e-3)
}
