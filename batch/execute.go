package batch

import (
	"github.com/sparsegrid/kronbatch/dispatch"
	"github.com/sparsegrid/kronbatch/internal/assert"
	"github.com/sparsegrid/kronbatch/tensor"
)

// BatchedGemm performs one dense multiply C(i) := alpha·op(A(i))·op(B(i)) +
// beta·C(i) for every index i where all three slots are assigned. Slots left
// nil represent unused worst-case capacity in the current connectivity
// pattern and are silently skipped.
//
// Preconditions: equal cardinality across a, b, c; c non-transposed;
// dimension compatibility after applying each operand's transpose flag.
func BatchedGemm[T tensor.Scalar](be dispatch.Backend[T], a, b, c *Batch[T], alpha, beta T) {
	assert.Thatf(a.NumEntries() == b.NumEntries() && b.NumEntries() == c.NumEntries(),
		"batch: gemm cardinality mismatch %d/%d/%d", a.NumEntries(), b.NumEntries(), c.NumEntries())
	assert.That(!c.Trans(), "batch: gemm output cannot be transposed")

	// extents after the optional transposes
	rowsA, colsA := opShape(a)
	rowsB, colsB := opShape(b)
	assert.Thatf(colsA == rowsB,
		"batch: gemm inner extents %d and %d differ", colsA, rowsB)
	assert.Thatf(c.Rows() == rowsA && c.Cols() == colsB,
		"batch: gemm output %dx%d for %dx%d product", c.Rows(), c.Cols(), rowsA, colsB)

	m, n, k := rowsA, colsB, colsA
	for i := 0; i < a.NumEntries(); i++ {
		ai, bi, ci := a.Entry(i), b.Entry(i), c.Entry(i)
		if ai == nil || bi == nil || ci == nil {
			continue
		}
		be.Gemm(a.Trans(), b.Trans(), m, n, k, alpha, ai, a.Stride(), bi, b.Stride(), beta, ci, c.Stride())
	}
}

// BatchedGemv is the matrix×column-vector specialization: y(i) :=
// alpha·op(A(i))·x(i) + beta·y(i) per populated triple. The vector operands
// b and c must be single-column and non-transposed; their declared strides
// act as element increments.
func BatchedGemv[T tensor.Scalar](be dispatch.Backend[T], a, b, c *Batch[T], alpha, beta T) {
	assert.Thatf(a.NumEntries() == b.NumEntries() && b.NumEntries() == c.NumEntries(),
		"batch: gemv cardinality mismatch %d/%d/%d", a.NumEntries(), b.NumEntries(), c.NumEntries())
	assert.That(!b.Trans() && !c.Trans(), "batch: gemv vector operands cannot be transposed")

	rowsA, colsA := opShape(a)
	assert.Thatf(colsA == b.Rows(),
		"batch: gemv inner extents %d and %d differ", colsA, b.Rows())
	assert.That(b.Cols() == 1 && c.Cols() == 1, "batch: gemv operands must be single-column")
	assert.Thatf(c.Rows() == rowsA,
		"batch: gemv output length %d for %d-row operator", c.Rows(), rowsA)

	for i := 0; i < a.NumEntries(); i++ {
		ai, bi, ci := a.Entry(i), b.Entry(i), c.Entry(i)
		if ai == nil || bi == nil || ci == nil {
			continue
		}
		be.Gemv(a.Trans(), a.Rows(), a.Cols(), alpha, ai, a.Stride(), bi, b.Stride(), beta, ci, c.Stride())
	}
}

// Execute runs this stage's batched multiply.
func (s OperandSet[T]) Execute(be dispatch.Backend[T], alpha, beta T) {
	BatchedGemm(be, s.A, s.B, s.C, alpha, beta)
}

// opShape returns a batch's operand extents after its transpose flag.
func opShape[T tensor.Scalar](b *Batch[T]) (rows, cols int) {
	if b.Trans() {
		return b.Cols(), b.Rows()
	}
	return b.Rows(), b.Cols()
}
