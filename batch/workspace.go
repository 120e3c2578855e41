package batch

import (
	"github.com/sparsegrid/kronbatch/grid"
	"github.com/sparsegrid/kronbatch/tensor"
)

// RankWorkspace is the set of flat buffers one execution rank reuses across
// every time step and every element sweep: the input vector space, the
// reduction (output) space, the intermediate ping-pong space, and the unit
// vector consumed by the downstream reduction stage.
//
// The workspace is sized once from worst-case connectivity; the engine only
// reads and writes through views into these buffers and never resizes them.
type RankWorkspace[T tensor.Scalar] struct {
	// BatchInput holds the full solution vector laid out element by element;
	// kronmult input windows are cut from it.
	BatchInput *tensor.Vector[T]

	// ReductionSpace receives one element-sized kron output per (element,
	// connected, term) work item of the current chunk.
	ReductionSpace *tensor.Vector[T]

	// BatchIntermediate is the ping-pong space: per work item, one output
	// element's extent per intermediate buffer. Nil for 1-D problems, which
	// use no intermediates.
	BatchIntermediate *tensor.Vector[T]

	unitVector *tensor.Vector[T]
}

// NewRankWorkspace sizes a workspace for sweeping any of the given chunks
// over a table of tableSize elements.
func NewRankWorkspace[T tensor.Scalar](p Descriptor[T], tableSize int, chunks []grid.Chunk) *RankWorkspace[T] {
	elemSize := ipow(p.Degree(), p.NumDims())

	maxChunkElems, maxConnected := 0, 0
	for _, c := range chunks {
		if n := c.NumElements(); n > maxChunkElems {
			maxChunkElems = n
		}
		if n := c.MaxConnected(); n > maxConnected {
			maxConnected = n
		}
	}

	w := &RankWorkspace[T]{
		BatchInput:     tensor.NewVector[T](tableSize * elemSize),
		ReductionSpace: tensor.NewVector[T](elemSize * maxChunkElems * p.NumTerms()),
	}
	if n := min(p.NumDims()-1, 2); n > 0 {
		w.BatchIntermediate = tensor.NewVector[T](w.ReductionSpace.Len() * n)
	}
	w.unitVector = tensor.NewVector[T](p.NumTerms() * maxConnected)
	w.unitVector.Fill(1)
	return w
}

// UnitVector returns the all-ones buffer used as the reduction's right-hand
// operand.
func (w *RankWorkspace[T]) UnitVector() *tensor.Vector[T] { return w.unitVector }

// intermediateLen returns the ping-pong space length, zero when absent.
func (w *RankWorkspace[T]) intermediateLen() int {
	if w.BatchIntermediate == nil {
		return 0
	}
	return w.BatchIntermediate.Len()
}
