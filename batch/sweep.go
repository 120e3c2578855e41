package batch

import (
	"github.com/sparsegrid/kronbatch/grid"
	"github.com/sparsegrid/kronbatch/internal/assert"
	"github.com/sparsegrid/kronbatch/tensor"
)

// Elements is the coordinate-lookup surface of the element table the sweep
// driver consumes.
type Elements interface {
	Size() int

	// Coords returns an element's coordinate vector: numDims levels
	// followed by numDims cells.
	Coords(element int) []int
}

// BuildBatches walks one connectivity chunk and returns one operand set per
// PDE dimension, fully populated and ready for sequential execution. The
// caller runs the executor over the sets in dimension order, then reduces
// the per-term, per-connected-element outputs left in the workspace's
// reduction space.
//
// Per (element, connected, term) triple the driver computes a flat ordinal —
// term-major, then connected element, then element row — and derives the
// triple's output, intermediate and input offsets from it. Each triple
// therefore owns disjoint batch slots and disjoint workspace regions, which
// is what makes the triples independent and, eventually, parallelizable.
func BuildBatches[T tensor.Scalar](p Descriptor[T], elems Elements,
	workspace *RankWorkspace[T], chunk grid.Chunk) []OperandSet[T] {
	degree := p.Degree()
	numDims := p.NumDims()
	numTerms := p.NumTerms()
	elemSize := ipow(degree, numDims)

	assert.Thatf(workspace.BatchInput.Len() >= elems.Size()*elemSize,
		"batch: input space of %d for %d elements of size %d",
		workspace.BatchInput.Len(), elems.Size(), elemSize)

	elementsInChunk := chunk.NumElements()
	assert.Thatf(workspace.ReductionSpace.Len() >= elemSize*elementsInChunk*numTerms,
		"batch: reduction space of %d for %d work items of size %d",
		workspace.ReductionSpace.Len(), elementsInChunk*numTerms, elemSize)

	numWorkspaces := min(numDims-1, 2)
	assert.Thatf(workspace.intermediateLen() == workspace.ReductionSpace.Len()*numWorkspaces,
		"batch: intermediate space of %d, want %d",
		workspace.intermediateLen(), workspace.ReductionSpace.Len()*numWorkspaces)

	assert.Thatf(workspace.UnitVector().Len() >= numTerms*chunk.MaxConnected(),
		"batch: unit vector of %d for %d items to reduce",
		workspace.UnitVector().Len(), numTerms*chunk.MaxConnected())

	batches := AllocateBatches(p, elementsInChunk)

	// cumulative connected count of the rows already processed
	prevRowElems := 0

	for _, row := range chunk {
		// row portion of the operator windows for this element
		coords := elems.Coords(row.Element)
		assert.Thatf(len(coords) == numDims*2,
			"batch: coordinate vector of %d for %d dims", len(coords), numDims)
		operatorRow := scaleIndices(grid.Linearize(coords), degree)

		for j := row.Connected.Start; j <= row.Connected.Stop; j++ {
			// col portion, from the connected element
			coords := elems.Coords(j)
			assert.Thatf(len(coords) == numDims*2,
				"batch: coordinate vector of %d for %d dims", len(coords), numDims)
			operatorCol := scaleIndices(grid.Linearize(coords), degree)

			totalPrevElems := prevRowElems + j - row.Connected.Start

			for k := 0; k < numTerms; k++ {
				// term-major ordinal of this work item within the sweep
				kronIndex := k + totalPrevElems*numTerms

				// output window in the reduction space
				yIndex := elemSize * kronIndex
				yView := workspace.ReductionSpace.View(yIndex, yIndex+elemSize-1)

				// intermediate windows, one output-element extent each
				workIndex := elemSize * kronIndex * numWorkspaces
				workViews := make([]tensor.VecView[T], numWorkspaces)
				for w := 0; w < numWorkspaces; w++ {
					start := workIndex + w*elemSize
					workViews[w] = workspace.BatchIntermediate.View(start, start+elemSize-1)
				}

				// operator windows, highest dimension first
				operatorViews := make([]tensor.MatView[T], 0, numDims)
				for d := numDims - 1; d >= 0; d-- {
					operatorViews = append(operatorViews, p.Coefficient(k, d).Window(
						operatorRow[d], operatorRow[d]+degree-1,
						operatorCol[d], operatorCol[d]+degree-1))
				}

				// input window for the connected element
				xIndex := (totalPrevElems % elems.Size()) * elemSize
				xView := workspace.BatchInput.View(xIndex, xIndex+elemSize-1)

				KronmultToBatchSets(operatorViews, xView, yView, workViews, batches, kronIndex, p)
			}
		}
		prevRowElems += row.Connected.Count()
	}
	return batches
}

// scaleIndices turns per-dimension 1-D element indices into operator matrix
// offsets (index × degree).
func scaleIndices(indices []int, degree int) []int {
	out := make([]int, len(indices))
	for i, idx := range indices {
		out[i] = idx * degree
	}
	return out
}
