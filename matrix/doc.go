// Package matrix provides row-major teaching matrices built on plain
// [][]float64 slices.
//
// 🚀 What is matrix?
//
//	A matrix here is a slice of equal-length rows: if A is a Matrix then
//	A[i][j] is the element in the i-th row and j-th column.  The package
//	covers the small surface a from-scratch data-science course needs:
//	  • Shape  — (rows, cols) with ragged-input detection
//	  • Row / Col — copy out a single row or column as a vector.Vector
//	  • New   — build a matrix from an entry-generator function
//	  • Identity — the n×n identity via New
//
// ✨ Design notes:
//
//   - Matrix is a type alias of [][]float64; any slice-of-slices works,
//     which is why every entry point re-checks that rows are equal length
//     (sequences of unverified provenance, checked where combined).
//   - Row and Col return copies; mutating the result never aliases the
//     source matrix.
//   - Ragged or empty inputs and out-of-range indices are contract errors
//     surfaced as sentinels (ErrRaggedMatrix, ErrEmptyMatrix,
//     ErrRowOutOfRange, ErrColOutOfRange) matched via errors.Is.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/numkit/matrix"
//
//	m := matrix.Matrix{{1, 2, 3}, {4, 5, 6}}
//	rows, cols, err := matrix.Shape(m) // 2, 3, nil
//	row, err := matrix.Row(m, 1)       // [4 5 6]
//	col, err := matrix.Col(m, 1)       // [2 5]
//	eye := matrix.Identity(3)
//
// Complexity: Shape O(r), Row O(c), Col O(r), New O(r·c).
package matrix
