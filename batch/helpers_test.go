package batch_test

import (
	"math/rand"
	"testing"

	"github.com/sparsegrid/kronbatch/batch"
	"github.com/sparsegrid/kronbatch/tensor"
)

// testPDE is a minimal Descriptor for exercising the engine without the pde
// package: square coefficient matrices per (term, dimension), explicitly
// seeded by the tests.
type testPDE struct {
	numDims  int
	degree   int
	numTerms int
	coeffs   [][]*tensor.Matrix[float64] // [term][dim]
}

// newTestPDE builds a descriptor whose coefficient matrices cover numElems1D
// one-dimensional elements per dimension, filled with deterministic
// pseudo-random values.
func newTestPDE(numDims, degree, numTerms, numElems1D int) *testPDE {
	rng := rand.New(rand.NewSource(42))
	p := &testPDE{numDims: numDims, degree: degree, numTerms: numTerms}
	side := degree * numElems1D
	for t := 0; t < numTerms; t++ {
		dims := make([]*tensor.Matrix[float64], numDims)
		for d := range dims {
			m := tensor.NewMatrix[float64](side, side)
			for j := 0; j < side; j++ {
				for i := 0; i < side; i++ {
					m.SetAt(i, j, rng.Float64()*2-1)
				}
			}
			dims[d] = m
		}
		p.coeffs = append(p.coeffs, dims)
	}
	return p
}

func (p *testPDE) NumDims() int  { return p.numDims }
func (p *testPDE) Degree() int   { return p.degree }
func (p *testPDE) NumTerms() int { return p.numTerms }

func (p *testPDE) Coefficient(term, dim int) tensor.MatView[float64] {
	return p.coeffs[term][dim].View()
}

// testElements is a fixed coordinate table.
type testElements struct {
	coords [][]int
}

func (e *testElements) Size() int              { return len(e.coords) }
func (e *testElements) Coords(element int) []int { return e.coords[element] }

// newFilledBatch allocates a batch of rows×cols entries, each backed by its
// own matrix of deterministic pseudo-random values.
func newFilledBatch(tb testing.TB, numEntries, rows, cols int) *batch.Batch[float64] {
	tb.Helper()
	rng := rand.New(rand.NewSource(int64(numEntries*rows + cols)))
	b := batch.NewBatch[float64](numEntries, rows, cols, rows, false)
	for e := 0; e < numEntries; e++ {
		m := tensor.NewMatrix[float64](rows, cols)
		for j := 0; j < cols; j++ {
			for i := 0; i < rows; i++ {
				m.SetAt(i, j, rng.Float64()*2-1)
			}
		}
		b.AssignEntry(m.View(), e)
	}
	return b
}

// kronMatVec multiplies the dense Kronecker product ops[0]⊗ops[1]⊗…⊗ops[d-1]
// against x, with the last dimension's index varying fastest (column-major
// vec convention). The reference the batched decomposition must reproduce.
func kronMatVec(ops []tensor.MatView[float64], x []float64) []float64 {
	rows, cols := 1, 1
	for _, op := range ops {
		rows *= op.Rows()
		cols *= op.Cols()
	}

	y := make([]float64, rows)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			entry := 1.0
			ri, cj := i, j
			for d := len(ops) - 1; d >= 0; d-- {
				op := ops[d]
				entry *= op.At(ri%op.Rows(), cj%op.Cols())
				ri /= op.Rows()
				cj /= op.Cols()
			}
			y[i] += entry * x[j]
		}
	}
	return y
}
