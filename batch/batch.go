package batch

import (
	"github.com/sparsegrid/kronbatch/internal/assert"
	"github.com/sparsegrid/kronbatch/tensor"
)

// Batch is an ordered, fixed-length list of operand pointers for one role of
// a batched matrix multiply. Every slot shares the declared shape, stride
// and transpose flag; the batch owns only the slot array, never the data the
// slots alias.
type Batch[T tensor.Scalar] struct {
	numEntries int
	nrows      int
	ncols      int
	stride     int
	trans      bool
	entries    [][]T // nil until assigned; aliases into caller storage
}

// NewBatch creates a batch with every slot unassigned.
// All of numEntries, nrows, ncols and stride must be positive.
func NewBatch[T tensor.Scalar](numEntries, nrows, ncols, stride int, trans bool) *Batch[T] {
	assert.Positive(numEntries, "batch: num entries")
	assert.Positive(nrows, "batch: rows")
	assert.Positive(ncols, "batch: cols")
	assert.Positive(stride, "batch: stride")
	return &Batch[T]{
		numEntries: numEntries,
		nrows:      nrows,
		ncols:      ncols,
		stride:     stride,
		trans:      trans,
		entries:    make([][]T, numEntries),
	}
}

// NumEntries returns the batch cardinality.
func (b *Batch[T]) NumEntries() int { return b.numEntries }

// Rows returns the declared operand row count (before transposition).
func (b *Batch[T]) Rows() int { return b.nrows }

// Cols returns the declared operand column count (before transposition).
func (b *Batch[T]) Cols() int { return b.ncols }

// Stride returns the declared leading dimension shared by every slot.
func (b *Batch[T]) Stride() int { return b.stride }

// Trans reports whether operands are consumed transposed.
func (b *Batch[T]) Trans() bool { return b.trans }

// Entry returns the operand data assigned at position, or nil.
func (b *Batch[T]) Entry(position int) []T {
	assert.Index(position, b.numEntries, "batch: entry")
	return b.entries[position]
}

// AssignEntry stores the view's data pointer at the given position.
//
// The view must match the batch's declared shape, and — unless this is a
// batch of single-column vectors (stride 1) — its stride. A slot may be
// assigned exactly once before being cleared: the single-writer invariant
// per slot is the earliest point at which double-counted connectivity is
// caught, so an occupied slot aborts.
func (b *Batch[T]) AssignEntry(v tensor.MatView[T], position int) {
	assert.Thatf(v.Rows() == b.nrows && v.Cols() == b.ncols,
		"batch: assigning %dx%d view into batch of %dx%d entries",
		v.Rows(), v.Cols(), b.nrows, b.ncols)
	// a batch of vectors does not constrain the single column's stride
	if b.stride != 1 {
		assert.Thatf(v.Stride() == b.stride,
			"batch: view stride %d does not match batch stride %d", v.Stride(), b.stride)
	}
	assert.Index(position, b.numEntries, "batch: entry")
	assert.Thatf(b.entries[position] == nil, "batch: entry %d already assigned", position)
	b.entries[position] = v.Data()
}

// ClearEntry unassigns one slot and reports whether it had been assigned.
func (b *Batch[T]) ClearEntry(position int) bool {
	assert.Index(position, b.numEntries, "batch: entry")
	assigned := b.entries[position] != nil
	b.entries[position] = nil
	return assigned
}

// ClearAll unassigns every slot, keeping shape and capacity so the batch can
// be refilled between time steps without reallocation.
func (b *Batch[T]) ClearAll() {
	for i := range b.entries {
		b.entries[i] = nil
	}
}

// IsFilled reports whether no unassigned slots remain.
func (b *Batch[T]) IsFilled() bool {
	for _, e := range b.entries {
		if e == nil {
			return false
		}
	}
	return true
}

// Equal reports whether two batches have identical shape, stride,
// cardinality, transpose flag and slot contents. Slots compare by pointer
// identity of the assigned operand, not by pointee values.
func (b *Batch[T]) Equal(other *Batch[T]) bool {
	if b.nrows != other.nrows || b.ncols != other.ncols {
		return false
	}
	if b.stride != other.stride || b.numEntries != other.numEntries || b.trans != other.trans {
		return false
	}
	for i := range b.entries {
		a, o := b.entries[i], other.entries[i]
		if (a == nil) != (o == nil) {
			return false
		}
		if a != nil && !tensor.SameOrigin(a, o) {
			return false
		}
	}
	return true
}

// Clone deep-copies the slot array. The copy is shallow with respect to the
// operand data, which the batch never owned.
func (b *Batch[T]) Clone() *Batch[T] {
	entries := make([][]T, b.numEntries)
	copy(entries, b.entries)
	return &Batch[T]{
		numEntries: b.numEntries,
		nrows:      b.nrows,
		ncols:      b.ncols,
		stride:     b.stride,
		trans:      b.trans,
		entries:    entries,
	}
}

// OperandSet groups the three batches of one matrix-multiply stage.
// A and B are read operands; C is the write operand and must not carry a
// transpose flag (BLAS has no transposed-output form).
type OperandSet[T tensor.Scalar] struct {
	A *Batch[T]
	B *Batch[T]
	C *Batch[T]
}

// NewOperandSet validates and groups one stage's batches.
func NewOperandSet[T tensor.Scalar](a, b, c *Batch[T]) OperandSet[T] {
	assert.Thatf(a.NumEntries() == b.NumEntries() && b.NumEntries() == c.NumEntries(),
		"batch: operand set cardinality mismatch %d/%d/%d",
		a.NumEntries(), b.NumEntries(), c.NumEntries())
	assert.That(!c.Trans(), "batch: output batch cannot be transposed")
	return OperandSet[T]{A: a, B: b, C: c}
}

// ClearAll unassigns every slot in all three batches.
func (s OperandSet[T]) ClearAll() {
	s.A.ClearAll()
	s.B.ClearAll()
	s.C.ClearAll()
}
