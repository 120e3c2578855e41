package batch

import (
	"github.com/sparsegrid/kronbatch/internal/assert"
	"github.com/sparsegrid/kronbatch/tensor"
)

// kronBase enqueues the single GEMM of the lowest decomposition stage:
// operator × reshaped input. batchOffset is the flat ordinal of the
// (element, connected, term) work item these assignments belong to.
func kronBase[T tensor.Scalar](a tensor.MatView[T], x, y tensor.VecView[T],
	set OperandSet[T], batchOffset, degree, numDims int) {
	set.A.AssignEntry(a, batchOffset)
	sizes := ComputeDimensions(degree, numDims, 0)
	set.B.AssignEntry(x.AsMatrix(sizes.RowsB, sizes.ColsB), batchOffset)
	set.C.AssignEntry(y.AsMatrix(sizes.RowsA, sizes.ColsB), batchOffset)
}

// KronmultToBatchSets transforms one Kronecker-product×vector apply into
// batch assignments across the per-dimension operand sets.
//
// a holds the num-dims operator views (each degree×degree); x is the input
// window, y the output window, work the intermediate windows (up to two,
// each the size of one output element). batches are the pre-allocated
// operand sets this call populates; batchOffset is the work item's ordinal
// within the sweep.
//
// Stage 0 multiplies a[0] into work[0] (or straight into y when numDims is
// 1). Each intermediate stage d reads work[(d-1)%2] and writes work[d%2] —
// ping-pong, so a stage's input never aliases its output — and addresses
// its sub-blocks at disjoint offsets blockSize×g within the shared buffer,
// which is what lets one dimension's sub-blocks form a single flat batch.
// The final stage writes directly into y. Every assignment lands at slot
// batchOffset (single-GEMM stages) or batchOffset×numGemms+g; distinct work
// items therefore never collide, and a collision panics in AssignEntry.
func KronmultToBatchSets[T tensor.Scalar](a []tensor.MatView[T], x, y tensor.VecView[T],
	work []tensor.VecView[T], batches []OperandSet[T], batchOffset int, p Descriptor[T]) {
	degree := p.Degree()
	numDims := p.NumDims()

	// one output element's extent
	resultSize := ipow(degree, numDims)
	assert.Thatf(x.Len() == resultSize, "batch: kronmult input of %d, want %d", x.Len(), resultSize)
	assert.Thatf(y.Len() == resultSize, "batch: kronmult output of %d, want %d", y.Len(), resultSize)

	assert.Thatf(len(work) == min(numDims-1, 2),
		"batch: kronmult got %d work views, want %d", len(work), min(numDims-1, 2))
	for _, w := range work {
		assert.Thatf(w.Len() == resultSize, "batch: work view of %d, want %d", w.Len(), resultSize)
	}

	assert.Thatf(len(a) == numDims, "batch: kronmult got %d operators, want %d", len(a), numDims)
	for _, op := range a {
		assert.Thatf(op.Rows() == degree && op.Cols() == degree,
			"batch: %dx%d operator view, want %dx%d", op.Rows(), op.Cols(), degree, degree)
	}

	assert.Thatf(len(batches) == numDims,
		"batch: kronmult got %d operand sets, want %d", len(batches), numDims)
	assert.Thatf(batchOffset >= 0, "batch: negative batch offset %d", batchOffset)

	// terminal case: a 1-D apply writes its only stage straight into y
	if numDims == 1 {
		kronBase(a[0], x, y, batches[0], batchOffset, degree, numDims)
		return
	}

	// lowest stage feeds the first work buffer
	kronBase(a[0], x, work[0], batches[0], batchOffset, degree, numDims)

	// intermediate stages ping-pong between the two work buffers
	for dim := 1; dim < numDims-1; dim++ {
		sizes := ComputeDimensions(degree, numDims, dim)
		numGemms := ComputeBatchSize(degree, numDims, dim)
		blockSize := sizes.RowsA * sizes.ColsA
		assert.Thatf(blockSize*numGemms == resultSize,
			"batch: stage %d blocks cover %d of %d", dim, blockSize*numGemms, resultSize)

		for g := 0; g < numGemms; g++ {
			slot := batchOffset*numGemms + g
			xv := work[(dim-1)%2].AsMatrixAt(sizes.RowsA, sizes.ColsA, blockSize*g)
			batches[dim].A.AssignEntry(xv, slot)
			batches[dim].B.AssignEntry(a[dim], slot)
			wv := work[dim%2].AsMatrixAt(sizes.RowsA, sizes.ColsA, blockSize*g)
			batches[dim].C.AssignEntry(wv, slot)
		}
	}

	// highest stage writes directly into the output window
	sizes := ComputeDimensions(degree, numDims, numDims-1)
	last := batches[numDims-1]
	last.A.AssignEntry(work[numDims%2].AsMatrix(sizes.RowsA, sizes.ColsA), batchOffset)
	last.B.AssignEntry(a[numDims-1], batchOffset)
	last.C.AssignEntry(y.AsMatrix(sizes.RowsA, sizes.ColsA), batchOffset)
}
