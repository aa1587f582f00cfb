package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/numkit/matrix"
)

// TestShape_Basic verifies shape reporting and ragged/empty detection.
func TestShape_Basic(t *testing.T) {
	rows, cols, err := matrix.Shape(matrix.Matrix{{1, 2, 3}, {1, 2, 3}})
	require.NoError(t, err)
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)

	_, _, err = matrix.Shape(matrix.Matrix{{1, 2, 3}, {1, 2}})
	assert.ErrorIs(t, err, matrix.ErrRaggedMatrix)

	_, _, err = matrix.Shape(nil)
	assert.ErrorIs(t, err, matrix.ErrEmptyMatrix)

	_, _, err = matrix.Shape(matrix.Matrix{{}})
	assert.ErrorIs(t, err, matrix.ErrEmptyMatrix)
}

// TestRow_CopyAndBounds verifies row extraction, bounds, and copy semantics.
func TestRow_CopyAndBounds(t *testing.T) {
	m := matrix.Matrix{{1, 2, 3}, {4, 5, 6}}

	row, err := matrix.Row(m, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6}, row)

	row[0] = 99
	assert.Equal(t, 4.0, m[1][0], "Row must return a copy")

	_, err = matrix.Row(m, 3)
	assert.ErrorIs(t, err, matrix.ErrRowOutOfRange)

	_, err = matrix.Row(m, -1)
	assert.ErrorIs(t, err, matrix.ErrRowOutOfRange)

	_, err = matrix.Row(matrix.Matrix{{1, 2, 3}, {1, 2}}, 0)
	assert.ErrorIs(t, err, matrix.ErrRaggedMatrix)
}

// TestCol_CopyAndBounds verifies column extraction and bounds.
func TestCol_CopyAndBounds(t *testing.T) {
	m := matrix.Matrix{{1, 2, 3}, {4, 5, 6}}

	col, err := matrix.Col(m, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 5}, col)

	_, err = matrix.Col(m, 4)
	assert.ErrorIs(t, err, matrix.ErrColOutOfRange)
}

// TestNew_EntryFn verifies building from a generator and the shape contract.
func TestNew_EntryFn(t *testing.T) {
	m, err := matrix.New(2, 2, func(i, j int) float64 {
		if i == j {
			return 1
		}

		return 0
	})
	require.NoError(t, err)
	assert.Equal(t, matrix.Matrix{{1, 0}, {0, 1}}, m)

	_, err = matrix.New(0, 2, func(i, j int) float64 { return 0 })
	assert.ErrorIs(t, err, matrix.ErrEmptyMatrix)
}

// TestIdentity verifies the diagonal structure.
func TestIdentity(t *testing.T) {
	assert.Equal(t, matrix.Matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, matrix.Identity(3))
}

// TestAgainstGonumDense cross-checks Row/Col extraction against mat.Dense
// on the same data.
func TestAgainstGonumDense(t *testing.T) {
	m := matrix.Matrix{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	d := mat.NewDense(3, 3, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9})

	for i := 0; i < 3; i++ {
		row, err := matrix.Row(m, i)
		require.NoError(t, err)
		assert.Equal(t, mat.Row(nil, i, d), row, "row %d", i)
	}
	for j := 0; j < 3; j++ {
		col, err := matrix.Col(m, j)
		require.NoError(t, err)
		assert.Equal(t, mat.Col(nil, j, d), col, "col %d", j)
	}
}
