package tensor

import "github.com/sparsegrid/kronbatch/internal/assert"

// Vector is an owned, flat buffer of scalars.
// It is the backing storage type for solution vectors and rank workspaces.
type Vector[T Scalar] struct {
	data []T // flat backing storage
}

// NewVector creates a zeroed vector of length n.
// Complexity: O(n) time and memory.
func NewVector[T Scalar](n int) *Vector[T] {
	assert.Positive(n, "tensor: vector length")
	return &Vector[T]{data: make([]T, n)}
}

// FromSlice creates a vector holding a copy of vals.
// Complexity: O(n).
func FromSlice[T Scalar](vals []T) *Vector[T] {
	assert.Positive(len(vals), "tensor: vector length")
	data := make([]T, len(vals))
	copy(data, vals)
	return &Vector[T]{data: data}
}

// Len returns the number of elements. Complexity: O(1).
func (v *Vector[T]) Len() int { return len(v.data) }

// At returns the element at index i. Complexity: O(1).
func (v *Vector[T]) At(i int) T {
	assert.Index(i, len(v.data), "tensor: vector")
	return v.data[i]
}

// SetAt assigns x at index i. Complexity: O(1).
func (v *Vector[T]) SetAt(i int, x T) {
	assert.Index(i, len(v.data), "tensor: vector")
	v.data[i] = x
}

// Data returns the backing slice. Writing through it is allowed; the vector
// owns the storage and views alias it.
func (v *Vector[T]) Data() []T { return v.data }

// Fill sets every element to x. Complexity: O(n).
func (v *Vector[T]) Fill(x T) {
	for i := range v.data {
		v.data[i] = x
	}
}

// Clone returns a deep copy. Complexity: O(n).
func (v *Vector[T]) Clone() *Vector[T] {
	data := make([]T, len(v.data))
	copy(data, v.data)
	return &Vector[T]{data: data}
}

// View extracts the inclusive window [start, stop] as a non-owning view.
// Complexity: O(1).
func (v *Vector[T]) View(start, stop int) VecView[T] {
	return vecWindow(v.data, start, stop)
}

// VecView is a non-owning window over contiguous scalar storage.
// Its data slice is positioned at the window origin and exactly spans the
// window; the view never copies or resizes the underlying buffer.
type VecView[T Scalar] struct {
	data []T
}

// vecWindow validates and builds a window over raw storage.
// start/stop are inclusive, mirroring the operator-offset arithmetic in the
// sweep driver, which computes last-element offsets.
func vecWindow[T Scalar](data []T, start, stop int) VecView[T] {
	assert.Thatf(start >= 0 && stop >= start && stop < len(data),
		"tensor: vector window [%d, %d] outside storage of length %d", start, stop, len(data))
	return VecView[T]{data: data[start : stop+1 : stop+1]}
}

// Len returns the window length. Complexity: O(1).
func (w VecView[T]) Len() int { return len(w.data) }

// Data returns the aliased slice positioned at the window origin.
func (w VecView[T]) Data() []T { return w.data }

// At returns the element at index i within the window. Complexity: O(1).
func (w VecView[T]) At(i int) T {
	assert.Index(i, len(w.data), "tensor: vector view")
	return w.data[i]
}

// SetAt assigns x at index i within the window. Complexity: O(1).
func (w VecView[T]) SetAt(i int, x T) {
	assert.Index(i, len(w.data), "tensor: vector view")
	w.data[i] = x
}

// View extracts the inclusive sub-window [start, stop]. Complexity: O(1).
func (w VecView[T]) View(start, stop int) VecView[T] {
	return vecWindow(w.data, start, stop)
}

// AsMatrix reinterprets the window as a rows×cols column-major matrix view
// with a tight stride. The window must hold exactly rows*cols elements or
// more; no data moves. Complexity: O(1).
func (w VecView[T]) AsMatrix(rows, cols int) MatView[T] {
	return w.AsMatrixAt(rows, cols, 0)
}

// AsMatrixAt reinterprets the window starting at element offset as a
// rows×cols column-major matrix view with stride == rows. This is the
// reshape primitive the kronmult decomposition uses to address disjoint
// sub-blocks of a shared work buffer. Complexity: O(1).
func (w VecView[T]) AsMatrixAt(rows, cols, offset int) MatView[T] {
	assert.Positive(rows, "tensor: reshape rows")
	assert.Positive(cols, "tensor: reshape cols")
	assert.Thatf(offset >= 0 && offset+rows*cols <= len(w.data),
		"tensor: reshape %dx%d at offset %d exceeds window of length %d",
		rows, cols, offset, len(w.data))
	return MatView[T]{
		data:   w.data[offset : offset+rows*cols : offset+rows*cols],
		rows:   rows,
		cols:   cols,
		stride: rows,
	}
}
