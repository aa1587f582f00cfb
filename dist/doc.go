// Package dist implements the probability distributions of a from-scratch
// data-science course: Uniform(0,1), Normal, Binomial and Beta, plus the
// interval/bound helpers hypothesis testing is built on.
//
// 🚀 What is dist?
//
//	Closed-form pdf/cdf formulas and one numeric routine:
//	  • UniformPDF / UniformCDF           — the unit uniform distribution
//	  • NormalPDF / NormalCDF             — Gaussian density and erf-based cdf
//	  • InverseNormalCDF                  — quantile via bisection search
//	  • NormalProbabilityBelow / Above / Between / Outside
//	  • NormalUpperBound / LowerBound / TwoSidedBounds
//	  • BernoulliTrial / Binomial         — sampling with an explicit source
//	  • NormalApproximationToBinomial     — (mu, sigma) of Binomial(n, p)
//	  • B / BetaPDF                       — Beta density and its constant
//
// ✨ Design notes:
//
//   - No package-global random state.  Every sampling function takes an
//     explicit *rand.Rand so results are reproducible and concurrent
//     callers never share hidden state.  A nil source is a programmer
//     error and panics.
//   - InverseNormalCDF binary-searches z ∈ [-10, 10] until the bracket is
//     narrower than the requested tolerance, translating non-standard
//     (mu, sigma) to the standard normal first.  DefaultInverseTolerance
//     (1e-5) applies when tolerance ≤ 0 is passed.
//   - Pure functions throughout; no allocation beyond return values.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/numkit/dist"
//
//	p := dist.NormalCDF(0, 0, 1)                      // 0.5
//	z := dist.InverseNormalCDF(0.975, 0, 1, 0)        // ≈ 1.96
//	lo, hi := dist.NormalTwoSidedBounds(0.95, 500, 15.8)
//
// See hypothesis for the p-value helpers layered on this package.
package dist
