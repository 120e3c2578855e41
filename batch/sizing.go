package batch

import (
	"github.com/sparsegrid/kronbatch/internal/assert"
	"github.com/sparsegrid/kronbatch/tensor"
)

// Descriptor is the PDE surface the engine consumes: dimension count,
// uniform polynomial degree, term count and a coefficient-matrix accessor.
// Concrete PDE definitions live in package pde; tests substitute fakes.
type Descriptor[T tensor.Scalar] interface {
	NumDims() int
	Degree() int
	NumTerms() int

	// Coefficient returns a view over the square operator matrix for the
	// given term and dimension. All terms share one shape and stride per
	// dimension.
	Coefficient(term, dim int) tensor.MatView[T]
}

// Sizes holds the operand extents of the GEMM at one decomposition stage.
type Sizes struct {
	RowsA, ColsA int
	RowsB, ColsB int
}

// ComputeBatchSize returns how many GEMMs a single kronmult adds at the
// given PDE dimension. The first and last stages always touch the full
// reduced (respectively un-reduced) extent in one operation; every
// intermediate stage collapses one dimension's extent per sub-block, so it
// contributes degree^(numDims-dimension-1) operations.
func ComputeBatchSize(degree, numDims, dimension int) int {
	assert.Positive(degree, "batch: degree")
	assert.Positive(numDims, "batch: num dims")
	assert.Index(dimension, numDims, "batch: dimension")

	if dimension == 0 || dimension == numDims-1 {
		return 1
	}
	return ipow(degree, numDims-dimension-1)
}

// ComputeDimensions returns the operand extents for the GEMM at the given
// stage: at dimension 0 the A operand is the degree×degree operator and B/C
// carry degree^(numDims-1) columns; at any other dimension A's row extent is
// the already-contracted degree^dimension and B/C are degree×degree.
func ComputeDimensions(degree, numDims, dimension int) Sizes {
	assert.Positive(degree, "batch: degree")
	assert.Positive(numDims, "batch: num dims")
	assert.Index(dimension, numDims, "batch: dimension")

	if dimension == 0 {
		return Sizes{RowsA: degree, ColsA: degree, RowsB: degree, ColsB: ipow(degree, numDims-1)}
	}
	return Sizes{RowsA: ipow(degree, dimension), ColsA: degree, RowsB: degree, ColsB: degree}
}

// AllocateBatches builds one empty operand set per PDE dimension, sized for
// a sweep over numElems (element, connected, term) work items. The first
// dimension's A operands are coefficient-matrix windows, so that batch
// carries the coefficient layout's stride; subsequent dimensions multiply by
// the transposed coefficient windows as the B operand and use tight strides
// everywhere else.
func AllocateBatches[T tensor.Scalar](p Descriptor[T], numElems int) []OperandSet[T] {
	assert.Positive(numElems, "batch: num elements")

	degree := p.Degree()
	numDims := p.NumDims()
	sets := make([]OperandSet[T], 0, numDims)

	// first (lowest) dimension: operator × reshaped input
	numGemms := p.NumTerms() * numElems
	sizes := ComputeDimensions(degree, numDims, 0)
	stride := p.Coefficient(0, 0).Stride()
	sets = append(sets, NewOperandSet(
		NewBatch[T](numGemms, sizes.RowsA, sizes.ColsA, stride, false),
		NewBatch[T](numGemms, sizes.RowsB, sizes.ColsB, sizes.RowsB, false),
		NewBatch[T](numGemms, sizes.RowsA, sizes.ColsB, sizes.RowsA, false),
	))

	// remaining dimensions: running tensor × transposed operator
	for dim := 1; dim < numDims; dim++ {
		numGemms = ComputeBatchSize(degree, numDims, dim) * p.NumTerms() * numElems
		sizes = ComputeDimensions(degree, numDims, dim)
		stride = p.Coefficient(0, dim).Stride()
		sets = append(sets, NewOperandSet(
			NewBatch[T](numGemms, sizes.RowsA, sizes.ColsA, sizes.RowsA, false),
			NewBatch[T](numGemms, sizes.RowsB, sizes.ColsB, stride, true),
			NewBatch[T](numGemms, sizes.RowsA, sizes.RowsB, sizes.RowsA, false),
		))
	}
	return sets
}

// ipow is integer exponentiation for the small extents used here.
func ipow(base, exp int) int {
	out := 1
	for i := 0; i < exp; i++ {
		out *= base
	}
	return out
}
