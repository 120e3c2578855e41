package timestep

import (
	"github.com/sparsegrid/kronbatch/internal/assert"
	"github.com/sparsegrid/kronbatch/tensor"
)

// HostWorkspace holds the stage vectors one rank reuses across time steps.
// X is the current solution; ExplicitAdvance reads it and leaves the next
// solution in FX.
type HostWorkspace[T tensor.Scalar] struct {
	X  *tensor.Vector[T]
	FX *tensor.Vector[T]

	stage1 *tensor.Vector[T]
	stage2 *tensor.Vector[T]
	rhs    *tensor.Vector[T]
}

// NewHostWorkspace allocates stage vectors for a solution of size entries.
func NewHostWorkspace[T tensor.Scalar](size int) *HostWorkspace[T] {
	assert.Positive(size, "timestep: solution size")
	return &HostWorkspace[T]{
		X:      tensor.NewVector[T](size),
		FX:     tensor.NewVector[T](size),
		stage1: tensor.NewVector[T](size),
		stage2: tensor.NewVector[T](size),
		rhs:    tensor.NewVector[T](size),
	}
}

// Swap exchanges X and FX, adopting the last step's output as the current
// solution without copying.
func (w *HostWorkspace[T]) Swap() {
	w.X, w.FX = w.FX, w.X
}
