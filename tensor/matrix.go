package tensor

import "github.com/sparsegrid/kronbatch/internal/assert"

// Matrix is an owned, column-major dense matrix.
// Column-major matches the BLAS convention used throughout the module, so
// views over a Matrix hand BLAS their stride as the leading dimension.
type Matrix[T Scalar] struct {
	rows, cols int
	data       []T // len == rows*cols, column j at data[j*rows:]
}

// NewMatrix creates a zeroed rows×cols matrix.
// Complexity: O(rows*cols) time and memory.
func NewMatrix[T Scalar](rows, cols int) *Matrix[T] {
	assert.Positive(rows, "tensor: matrix rows")
	assert.Positive(cols, "tensor: matrix cols")
	return &Matrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix[T]) Cols() int { return m.cols }

// Stride returns the leading dimension of the storage, which for an owned
// matrix is always the row count. Complexity: O(1).
func (m *Matrix[T]) Stride() int { return m.rows }

// At returns the element at (i, j). Complexity: O(1).
func (m *Matrix[T]) At(i, j int) T {
	assert.Index(i, m.rows, "tensor: matrix row")
	assert.Index(j, m.cols, "tensor: matrix col")
	return m.data[j*m.rows+i]
}

// SetAt assigns x at (i, j). Complexity: O(1).
func (m *Matrix[T]) SetAt(i, j int, x T) {
	assert.Index(i, m.rows, "tensor: matrix row")
	assert.Index(j, m.cols, "tensor: matrix col")
	m.data[j*m.rows+i] = x
}

// SetCol overwrites column j with col. Complexity: O(rows).
func (m *Matrix[T]) SetCol(j int, col []T) {
	assert.Index(j, m.cols, "tensor: matrix col")
	assert.Thatf(len(col) == m.rows,
		"tensor: column of length %d into matrix with %d rows", len(col), m.rows)
	copy(m.data[j*m.rows:(j+1)*m.rows], col)
}

// Data returns the backing slice in column-major order.
func (m *Matrix[T]) Data() []T { return m.data }

// Clone returns a deep copy. Complexity: O(rows*cols).
func (m *Matrix[T]) Clone() *Matrix[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)
	return &Matrix[T]{rows: m.rows, cols: m.cols, data: data}
}

// View returns a view spanning the whole matrix. Complexity: O(1).
func (m *Matrix[T]) View() MatView[T] {
	return MatView[T]{data: m.data, rows: m.rows, cols: m.cols, stride: m.rows}
}

// Window extracts the inclusive sub-matrix [r0, r1]×[c0, c1] as a view.
// The view inherits this matrix's stride. Complexity: O(1).
func (m *Matrix[T]) Window(r0, r1, c0, c1 int) MatView[T] {
	return m.View().Window(r0, r1, c0, c1)
}

// MatView is a non-owning window over column-major storage: shape, a stride
// (distance between consecutive columns in the underlying buffer) and a data
// slice positioned at the window origin.
type MatView[T Scalar] struct {
	data       []T
	rows, cols int
	stride     int
}

// Rows returns the window's row count. Complexity: O(1).
func (v MatView[T]) Rows() int { return v.rows }

// Cols returns the window's column count. Complexity: O(1).
func (v MatView[T]) Cols() int { return v.cols }

// Stride returns the leading dimension inherited from the backing storage.
func (v MatView[T]) Stride() int { return v.stride }

// Data returns the aliased slice positioned at the window origin.
func (v MatView[T]) Data() []T { return v.data }

// At returns the element at (i, j) within the window. Complexity: O(1).
func (v MatView[T]) At(i, j int) T {
	assert.Index(i, v.rows, "tensor: matrix view row")
	assert.Index(j, v.cols, "tensor: matrix view col")
	return v.data[j*v.stride+i]
}

// SetAt assigns x at (i, j) within the window. Complexity: O(1).
func (v MatView[T]) SetAt(i, j int, x T) {
	assert.Index(i, v.rows, "tensor: matrix view row")
	assert.Index(j, v.cols, "tensor: matrix view col")
	v.data[j*v.stride+i] = x
}

// Window extracts the inclusive sub-matrix [r0, r1]×[c0, c1], validating
// that it lies within this view. The sweep driver uses this to cut one
// degree×degree operator block per dimension out of a coefficient matrix.
// Complexity: O(1).
func (v MatView[T]) Window(r0, r1, c0, c1 int) MatView[T] {
	assert.Thatf(r0 >= 0 && r1 >= r0 && r1 < v.rows,
		"tensor: window rows [%d, %d] outside view with %d rows", r0, r1, v.rows)
	assert.Thatf(c0 >= 0 && c1 >= c0 && c1 < v.cols,
		"tensor: window cols [%d, %d] outside view with %d cols", c0, c1, v.cols)
	origin := c0*v.stride + r0
	span := (c1-c0)*v.stride + (r1 - r0) + 1
	return MatView[T]{
		data:   v.data[origin : origin+span : origin+span],
		rows:   r1 - r0 + 1,
		cols:   c1 - c0 + 1,
		stride: v.stride,
	}
}
