package batch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparsegrid/kronbatch/batch"
	"github.com/sparsegrid/kronbatch/tensor"
)

// TestNewBatch_NonPositivePanics verifies construction rejects any
// non-positive extent.
func TestNewBatch_NonPositivePanics(t *testing.T) {
	assert.Panics(t, func() { batch.NewBatch[float64](0, 2, 2, 2, false) })
	assert.Panics(t, func() { batch.NewBatch[float64](4, 0, 2, 2, false) })
	assert.Panics(t, func() { batch.NewBatch[float64](4, 2, -1, 2, false) })
	assert.Panics(t, func() { batch.NewBatch[float64](4, 2, 2, 0, false) })
}

// TestBatch_AssignUntilFilled verifies that assigning every distinct
// position exactly once fills the batch, and that slots start empty.
func TestBatch_AssignUntilFilled(t *testing.T) {
	const n = 3
	b := batch.NewBatch[float64](n, 2, 2, 2, false)
	m := tensor.NewMatrix[float64](2, 2*n)

	assert.False(t, b.IsFilled(), "fresh batch has no assignments")
	for i := 0; i < n; i++ {
		assert.Nil(t, b.Entry(i))
		b.AssignEntry(m.Window(0, 1, 2*i, 2*i+1), i)
	}
	assert.True(t, b.IsFilled())
	for i := 0; i < n; i++ {
		assert.True(t, tensor.SameOrigin(b.Entry(i), m.Window(0, 1, 2*i, 2*i+1).Data()))
	}
}

// TestBatch_DoubleAssignPanics verifies the single-writer slot invariant:
// a second assignment at a filled position is a fatal precondition
// violation.
func TestBatch_DoubleAssignPanics(t *testing.T) {
	b := batch.NewBatch[float64](2, 2, 2, 2, false)
	m := tensor.NewMatrix[float64](2, 2)

	b.AssignEntry(m.View(), 0)
	assert.Panics(t, func() { b.AssignEntry(m.View(), 0) })

	// clearing re-opens the slot
	require.True(t, b.ClearEntry(0))
	assert.NotPanics(t, func() { b.AssignEntry(m.View(), 0) })
}

// TestBatch_AssignValidation verifies shape, stride and position checks.
func TestBatch_AssignValidation(t *testing.T) {
	b := batch.NewBatch[float64](2, 2, 2, 4, false)
	fits := tensor.NewMatrix[float64](4, 4).Window(0, 1, 0, 1)
	wrongShape := tensor.NewMatrix[float64](3, 2).View()
	wrongStride := tensor.NewMatrix[float64](2, 2).View()

	assert.NotPanics(t, func() { b.AssignEntry(fits, 0) })
	assert.Panics(t, func() { b.AssignEntry(wrongShape, 1) }, "shape mismatch")
	assert.Panics(t, func() { b.AssignEntry(wrongStride, 1) }, "stride mismatch")
	assert.Panics(t, func() { b.AssignEntry(fits, 2) }, "position out of range")
	assert.Panics(t, func() { b.AssignEntry(fits, -1) })

	// vector batches (stride 1) skip the stride check
	v := batch.NewBatch[float64](1, 2, 1, 1, false)
	col := tensor.NewMatrix[float64](4, 2).Window(0, 1, 1, 1)
	assert.NotPanics(t, func() { v.AssignEntry(col, 0) })
}

// TestBatch_ClearEntry verifies the reported previous-assignment state.
func TestBatch_ClearEntry(t *testing.T) {
	b := batch.NewBatch[float64](2, 2, 2, 2, false)
	m := tensor.NewMatrix[float64](2, 2)

	assert.False(t, b.ClearEntry(0), "clearing an empty slot")
	b.AssignEntry(m.View(), 0)
	assert.True(t, b.ClearEntry(0), "clearing an assigned slot")
	assert.False(t, b.IsFilled())
}

// TestBatch_ClearAllIdempotence verifies that clearing and re-assigning the
// same views reproduces the pre-clear batch pointer-for-pointer.
func TestBatch_ClearAllIdempotence(t *testing.T) {
	const n = 4
	b := batch.NewBatch[float64](n, 3, 3, 3, true)
	views := make([]tensor.MatView[float64], n)
	for i := range views {
		views[i] = tensor.NewMatrix[float64](3, 3).View()
		b.AssignEntry(views[i], i)
	}
	snapshot := b.Clone()

	b.ClearAll()
	assert.False(t, b.Equal(snapshot))
	for i := 0; i < n; i++ {
		assert.Nil(t, b.Entry(i))
	}

	for i := range views {
		b.AssignEntry(views[i], i)
	}
	assert.True(t, b.Equal(snapshot), "re-assignment reproduces the batch exactly")
}

// TestBatch_Equal verifies equality is shape+stride+flag+pointer identity.
func TestBatch_Equal(t *testing.T) {
	m := tensor.NewMatrix[float64](2, 2)
	m2 := tensor.NewMatrix[float64](2, 2)

	a := batch.NewBatch[float64](1, 2, 2, 2, false)
	b := batch.NewBatch[float64](1, 2, 2, 2, false)
	a.AssignEntry(m.View(), 0)
	b.AssignEntry(m.View(), 0)
	assert.True(t, a.Equal(b))

	// same pointee values, different storage: not equal
	c := batch.NewBatch[float64](1, 2, 2, 2, false)
	c.AssignEntry(m2.View(), 0)
	assert.False(t, a.Equal(c))

	// differing shape or flag: not equal
	assert.False(t, a.Equal(batch.NewBatch[float64](1, 2, 2, 2, true)))
	assert.False(t, a.Equal(batch.NewBatch[float64](2, 2, 2, 2, false)))
}

// TestNewOperandSet_Validation verifies cardinality and output-transpose
// preconditions.
func TestNewOperandSet_Validation(t *testing.T) {
	mk := func(n int, trans bool) *batch.Batch[float64] {
		return batch.NewBatch[float64](n, 2, 2, 2, trans)
	}

	assert.NotPanics(t, func() { batch.NewOperandSet(mk(3, false), mk(3, true), mk(3, false)) })
	assert.Panics(t, func() { batch.NewOperandSet(mk(3, false), mk(2, false), mk(3, false)) })
	assert.Panics(t, func() { batch.NewOperandSet(mk(3, false), mk(3, false), mk(3, true)) },
		"transposed output")
}
