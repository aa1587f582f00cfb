// Package hypothesis provides the p-value helpers for normal-approximation
// significance testing, layered on package dist.
//
// A p-value answers: assuming the null hypothesis Normal(mu, sigma), how
// likely is a value at least as extreme as the one observed?
//
//   - TwoSidedPValue — doubles the smaller tail (extreme in either direction)
//   - UpperPValue    — mass above the observation
//   - LowerPValue    — mass below the observation
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/numkit/hypothesis"
//
//	// 530 heads in 1000 fair-coin flips:
//	p := hypothesis.TwoSidedPValue(529.5, 500, 15.811388300841896) // ≈ 0.062
//
// The 529.5 above is the usual continuity correction: the discrete count
// 530 is represented by the interval it rounds from.
package hypothesis
