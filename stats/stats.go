package stats

import (
	"errors"
	"math"
	"sort"

	"github.com/katalvlaran/numkit/vector"
)

// Sentinel errors returned by statistics operations.
var (
	// ErrEmptyData indicates that a statistic was requested over no observations.
	ErrEmptyData = errors.New("stats: data must be non-empty")

	// ErrLengthMismatch indicates two paired samples of different lengths.
	ErrLengthMismatch = errors.New("stats: paired samples must be the same length")
)

// Mean returns the arithmetic mean of xs.
//
// Errors: ErrEmptyData on empty input.
// Complexity: O(n).
func Mean(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptyData
	}

	var sum float64
	for _, x := range xs {
		sum += x
	}

	return sum / float64(len(xs)), nil
}

// sortedCopy returns xs sorted ascending without mutating the input.
func sortedCopy(xs []float64) []float64 {
	out := make([]float64, len(xs))
	copy(out, xs)
	sort.Float64s(out)

	return out
}

// Median returns the middle value of xs: the central element for odd n,
// the midpoint of the two central elements for even n.
//
// Errors: ErrEmptyData on empty input.
// Complexity: O(n log n).
func Median(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptyData
	}

	s := sortedCopy(xs)
	mid := len(s) / 2
	if len(s)%2 == 1 {
		return s[mid], nil
	}

	return (s[mid-1] + s[mid]) / 2, nil
}

// Quantile returns the element of sorted xs at index ⌊p·n⌋.
//
// This is the coarse course definition: Quantile(0.5) on even-length data
// returns the upper of the two central elements rather than their mean.
// p must lie in [0, 1); values at or above 1 index past the end.
//
// Errors: ErrEmptyData on empty input.
// Complexity: O(n log n).
func Quantile(xs []float64, p float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptyData
	}

	idx := int(p * float64(len(xs)))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(xs) {
		idx = len(xs) - 1
	}

	return sortedCopy(xs)[idx], nil
}

// Mode returns all values that appear most often in xs, sorted ascending.
//
// Errors: ErrEmptyData on empty input.
// Complexity: O(n log n) from the final sort of the winners.
func Mode(xs []float64) ([]float64, error) {
	if len(xs) == 0 {
		return nil, ErrEmptyData
	}

	counts := make(map[float64]int, len(xs))
	best := 0
	for _, x := range xs {
		counts[x]++
		if counts[x] > best {
			best = counts[x]
		}
	}

	var modes []float64
	for x, c := range counts {
		if c == best {
			modes = append(modes, x)
		}
	}
	sort.Float64s(modes)

	return modes, nil
}

// DataRange returns max(xs) - min(xs).
//
// Errors: ErrEmptyData on empty input.
// Complexity: O(n).
func DataRange(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptyData
	}

	lo, hi := xs[0], xs[0]
	for _, x := range xs[1:] {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}

	return hi - lo, nil
}

// DeMean returns a copy of xs with the mean subtracted from every element,
// so the result has mean zero.
//
// Errors: ErrEmptyData on empty input.
// Complexity: O(n).
func DeMean(xs []float64) ([]float64, error) {
	mean, err := Mean(xs)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = x - mean
	}

	return out, nil
}

// Variance returns the sample variance of xs (n−1 denominator).
//
// Errors: ErrEmptyData on fewer than two observations — a single point
// has no spread to estimate.
// Complexity: O(n).
func Variance(xs []float64) (float64, error) {
	if len(xs) < 2 {
		return 0, ErrEmptyData
	}

	dev, err := DeMean(xs)
	if err != nil {
		return 0, err
	}

	ss, err := vector.SumOfSquares(dev)
	if err != nil {
		return 0, err
	}

	return ss / float64(len(xs)-1), nil
}

// StandardDeviation returns the square root of the sample variance.
//
// Errors: same contract as Variance.
// Complexity: O(n).
func StandardDeviation(xs []float64) (float64, error) {
	v, err := Variance(xs)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(v), nil
}

// InterquartileRange returns Quantile(0.75) - Quantile(0.25).
//
// Errors: ErrEmptyData on empty input.
// Complexity: O(n log n).
func InterquartileRange(xs []float64) (float64, error) {
	q3, err := Quantile(xs, 0.75)
	if err != nil {
		return 0, err
	}
	q1, err := Quantile(xs, 0.25)
	if err != nil {
		return 0, err
	}

	return q3 - q1, nil
}

// Covariance returns the sample covariance of the paired samples xs, ys.
//
// Errors:
//   - ErrLengthMismatch — the samples differ in length.
//   - ErrEmptyData      — fewer than two paired observations.
//
// Complexity: O(n).
func Covariance(xs, ys []float64) (float64, error) {
	if len(xs) != len(ys) {
		return 0, ErrLengthMismatch
	}
	if len(xs) < 2 {
		return 0, ErrEmptyData
	}

	dx, err := DeMean(xs)
	if err != nil {
		return 0, err
	}
	dy, err := DeMean(ys)
	if err != nil {
		return 0, err
	}

	dot, err := vector.Dot(dx, dy)
	if err != nil {
		return 0, err
	}

	return dot / float64(len(xs)-1), nil
}

// Correlation returns the Pearson correlation of xs and ys, or 0 when
// either side has zero spread (constant data correlates with nothing).
//
// Errors: same contract as Covariance.
// Complexity: O(n).
func Correlation(xs, ys []float64) (float64, error) {
	cov, err := Covariance(xs, ys)
	if err != nil {
		return 0, err
	}

	sx, err := StandardDeviation(xs)
	if err != nil {
		return 0, err
	}
	sy, err := StandardDeviation(ys)
	if err != nil {
		return 0, err
	}

	if sx == 0 || sy == 0 {
		return 0, nil
	}

	return cov / sx / sy, nil
}
