// Package stats implements the descriptive statistics of a from-scratch
// data-science course: central tendency, dispersion, and the two-sample
// measures covariance and correlation.
//
// 🚀 What is stats?
//
//	Single-pass (or sort-and-index) formulas over []float64 data:
//	  • Mean, Median, Quantile, Mode
//	  • DataRange, DeMean, Variance, StandardDeviation, InterquartileRange
//	  • Covariance, Correlation
//
// ✨ Design notes:
//
//   - Variance and Covariance use the sample (n−1) denominator.
//   - Quantile(p) returns the element at index ⌊p·n⌋ of the sorted data,
//     the coarse course definition — deliberately NOT an interpolating
//     percentile.  Tests cross-check only the agreeing cases against
//     reference libraries.
//   - Correlation returns 0 when either side has zero spread (no
//     division-by-zero surprises on constant data).
//   - Inputs are never mutated: Median/Quantile/Mode sort private copies.
//   - Empty data is a contract error (ErrEmptyData); combining two
//     sequences of different lengths fails with ErrLengthMismatch.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/numkit/stats"
//
//	m, err := stats.Mean([]float64{1, 2, 3})        // 2
//	v, err := stats.Variance([]float64{1, 2, 3, 4}) // 5/3
//	c, err := stats.Correlation(xs, ys)
//
// Complexity: O(n) for the moment-based measures, O(n log n) where
// sorting is involved (Median, Quantile, InterquartileRange).
package stats
