package vector

import (
	"errors"
	"math"
)

// Sentinel errors returned by vector operations.
var (
	// ErrEmptyVector indicates that an operation received a vector with no elements.
	ErrEmptyVector = errors.New("vector: vector must be non-empty")

	// ErrDimensionMismatch indicates that two combined vectors differ in length.
	ErrDimensionMismatch = errors.New("vector: vectors must be the same length")

	// ErrNoVectors indicates that an aggregate operation (Sum, Mean) received no vectors.
	ErrNoVectors = errors.New("vector: at least one vector is required")
)

// Vector is a dense, fixed-length sequence of real numbers.
//
// It is a type alias, not a defined type: any []float64 is a Vector and
// vice versa, so callers never need conversions.
type Vector = []float64

// validatePair checks the shared contract of all two-vector operations:
// both operands non-empty and of equal length.
func validatePair(v, w Vector) error {
	if len(v) == 0 || len(w) == 0 {
		return ErrEmptyVector
	}
	if len(v) != len(w) {
		return ErrDimensionMismatch
	}

	return nil
}

// Add returns the elementwise sum of v and w as a new Vector.
//
// Errors:
//   - ErrEmptyVector       — either operand is empty.
//   - ErrDimensionMismatch — operands differ in length.
//
// Complexity: O(n) time, O(n) space.
func Add(v, w Vector) (Vector, error) {
	if err := validatePair(v, w); err != nil {
		return nil, err
	}

	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] + w[i]
	}

	return out, nil
}

// Sub returns the elementwise difference v - w as a new Vector.
//
// Errors: same contract as Add.
// Complexity: O(n) time, O(n) space.
func Sub(v, w Vector) (Vector, error) {
	if err := validatePair(v, w); err != nil {
		return nil, err
	}

	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] - w[i]
	}

	return out, nil
}

// Sum returns the elementwise sum of all given vectors as a new Vector.
//
// Errors:
//   - ErrNoVectors         — no vectors were passed.
//   - ErrEmptyVector       — any vector is empty.
//   - ErrDimensionMismatch — vectors differ in length.
//
// Complexity: O(k·n) time for k vectors of length n, O(n) space.
func Sum(vs ...Vector) (Vector, error) {
	if len(vs) == 0 {
		return nil, ErrNoVectors
	}
	if len(vs[0]) == 0 {
		return nil, ErrEmptyVector
	}

	out := make(Vector, len(vs[0]))
	copy(out, vs[0])
	for _, v := range vs[1:] {
		if err := validatePair(out, v); err != nil {
			return nil, err
		}
		for i := range v {
			out[i] += v[i]
		}
	}

	return out, nil
}

// Scale returns v multiplied by the scalar c as a new Vector.
//
// Scale never fails: an empty input yields an empty output.
// Complexity: O(n) time, O(n) space.
func Scale(v Vector, c float64) Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] * c
	}

	return out
}

// Mean returns the vector whose i-th element is the arithmetic mean of
// the i-th elements of the given vectors.
//
// Errors: same contract as Sum.
// Complexity: O(k·n) time, O(n) space.
func Mean(vs ...Vector) (Vector, error) {
	sum, err := Sum(vs...)
	if err != nil {
		return nil, err
	}

	return Scale(sum, 1/float64(len(vs))), nil
}

// Dot returns the inner product of v and w.
//
// Errors: same contract as Add.
// Complexity: O(n) time, O(1) space.
func Dot(v, w Vector) (float64, error) {
	if err := validatePair(v, w); err != nil {
		return 0, err
	}

	var dot float64
	for i := range v {
		dot += v[i] * w[i]
	}

	return dot, nil
}

// SumOfSquares returns v·v, the sum of the squared elements of v.
//
// Errors: ErrEmptyVector on empty input.
// Complexity: O(n) time, O(1) space.
func SumOfSquares(v Vector) (float64, error) {
	return Dot(v, v)
}

// Magnitude returns the Euclidean norm of v, sqrt(v·v).
//
// Errors: ErrEmptyVector on empty input.
// Complexity: O(n) time, O(1) space.
func Magnitude(v Vector) (float64, error) {
	ss, err := SumOfSquares(v)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(ss), nil
}

// SquaredDistance returns the squared Euclidean distance between v and w,
// i.e. the sum of squared coordinate differences.
//
// Errors: same contract as Add.
// Complexity: O(n) time, O(1) space.
func SquaredDistance(v, w Vector) (float64, error) {
	diff, err := Sub(v, w)
	if err != nil {
		return 0, err
	}

	return SumOfSquares(diff)
}

// Distance returns the Euclidean distance between v and w.
//
// Errors: same contract as Add.
// Complexity: O(n) time, O(1) space.
func Distance(v, w Vector) (float64, error) {
	sq, err := SquaredDistance(v, w)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(sq), nil
}
