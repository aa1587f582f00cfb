package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/numkit/vector"
)

// Sentinel errors returned by matrix operations.
var (
	// ErrEmptyMatrix indicates a matrix with no rows or no columns.
	ErrEmptyMatrix = errors.New("matrix: matrix must have at least one row and one column")

	// ErrRaggedMatrix indicates that the rows of a matrix differ in length.
	ErrRaggedMatrix = errors.New("matrix: each row must have the same number of columns")

	// ErrRowOutOfRange indicates a row index outside [0, rows).
	ErrRowOutOfRange = errors.New("matrix: row index out of range")

	// ErrColOutOfRange indicates a column index outside [0, cols).
	ErrColOutOfRange = errors.New("matrix: column index out of range")
)

// Matrix is a row-major matrix: a slice of equal-length rows.
//
// It is a type alias, not a defined type, so any [][]float64 literal is
// usable directly. Validity (non-empty, non-ragged) is re-checked at
// every entry point because the alias carries no construction guarantee.
type Matrix = [][]float64

// validate checks that m is non-empty and that all rows share the length
// of the first row. Returns the shared shape on success.
func validate(m Matrix) (rows, cols int, err error) {
	if len(m) == 0 || len(m[0]) == 0 {
		return 0, 0, ErrEmptyMatrix
	}

	rows, cols = len(m), len(m[0])
	for _, r := range m[1:] {
		if len(r) != cols {
			return 0, 0, ErrRaggedMatrix
		}
	}

	return rows, cols, nil
}

// Shape returns the (rows, cols) dimensions of m.
//
// Errors:
//   - ErrEmptyMatrix  — m has no rows or its rows have no columns.
//   - ErrRaggedMatrix — rows differ in length.
//
// Complexity: O(rows) time, O(1) space.
func Shape(m Matrix) (rows, cols int, err error) {
	return validate(m)
}

// Row returns a copy of the i-th row of m as a vector.Vector.
//
// Errors: the Shape contract, plus ErrRowOutOfRange when i is outside
// [0, rows); the wrapped message names both the index and the bound.
//
// Complexity: O(rows + cols) time, O(cols) space.
func Row(m Matrix, i int) (vector.Vector, error) {
	rows, cols, err := validate(m)
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= rows {
		return nil, fmt.Errorf("matrix has %d rows but row %d was requested: %w", rows, i, ErrRowOutOfRange)
	}

	out := make(vector.Vector, cols)
	copy(out, m[i])

	return out, nil
}

// Col returns a copy of the j-th column of m as a vector.Vector.
//
// Errors: the Shape contract, plus ErrColOutOfRange when j is outside
// [0, cols); the wrapped message names both the index and the bound.
//
// Complexity: O(rows) time, O(rows) space.
func Col(m Matrix, j int) (vector.Vector, error) {
	rows, cols, err := validate(m)
	if err != nil {
		return nil, err
	}
	if j < 0 || j >= cols {
		return nil, fmt.Errorf("matrix has %d columns but column %d was requested: %w", cols, j, ErrColOutOfRange)
	}

	out := make(vector.Vector, rows)
	for i := range m {
		out[i] = m[i][j]
	}

	return out, nil
}

// New builds a rows×cols matrix whose (i, j) entry is entryFn(i, j).
//
// Errors: ErrEmptyMatrix when rows or cols is not positive.
// Complexity: O(rows·cols) time and space.
func New(rows, cols int, entryFn func(i, j int) float64) (Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyMatrix
	}

	m := make(Matrix, rows)
	for i := range m {
		m[i] = make([]float64, cols)
		for j := range m[i] {
			m[i][j] = entryFn(i, j)
		}
	}

	return m, nil
}

// Identity returns the n×n identity matrix: ones on the diagonal, zeroes
// everywhere else. Panics only if n is not positive (programmer error).
func Identity(n int) Matrix {
	m, err := New(n, n, func(i, j int) float64 {
		if i == j {
			return 1
		}

		return 0
	})
	if err != nil {
		panic(err)
	}

	return m
}
