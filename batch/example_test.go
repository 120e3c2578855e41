package batch_test

import (
	"fmt"

	"github.com/sparsegrid/kronbatch/batch"
	"github.com/sparsegrid/kronbatch/dispatch"
	"github.com/sparsegrid/kronbatch/tensor"
)

// examplePDE is a fixed two-dimensional, degree-2, single-term descriptor.
type examplePDE struct {
	coeffs [2]*tensor.Matrix[float64]
}

func (p *examplePDE) NumDims() int  { return 2 }
func (p *examplePDE) Degree() int   { return 2 }
func (p *examplePDE) NumTerms() int { return 1 }

func (p *examplePDE) Coefficient(term, dim int) tensor.MatView[float64] {
	return p.coeffs[dim].View()
}

// ExampleKronmultToBatchSets decomposes y = (A ⊗ B)·x into staged batched
// multiplies and executes them, for
//
//	A = | 1 0 |    B = | 1 1 |    x = (1, 2, 3, 4)
//	    | 0 2 |        | 0 1 |
func ExampleKronmultToBatchSets() {
	a := tensor.NewMatrix[float64](2, 2)
	a.SetAt(0, 0, 1)
	a.SetAt(1, 1, 2)

	b := tensor.NewMatrix[float64](2, 2)
	b.SetAt(0, 0, 1)
	b.SetAt(0, 1, 1)
	b.SetAt(1, 1, 1)

	p := &examplePDE{coeffs: [2]*tensor.Matrix[float64]{a, b}}

	x := tensor.FromSlice([]float64{1, 2, 3, 4})
	y := tensor.NewVector[float64](4)
	work := tensor.NewVector[float64](4)

	sets := batch.AllocateBatches[float64](p, 1)

	// operator views ordered highest dimension first
	ops := []tensor.MatView[float64]{p.Coefficient(0, 1), p.Coefficient(0, 0)}
	batch.KronmultToBatchSets(ops, x.View(0, 3), y.View(0, 3),
		[]tensor.VecView[float64]{work.View(0, 3)}, sets, 0, p)

	be := dispatch.Default[float64]()
	for _, s := range sets {
		s.Execute(be, 1, 0)
	}

	fmt.Println(y.Data())
	// Output:
	// [3 2 14 8]
}
