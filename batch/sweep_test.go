package batch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparsegrid/kronbatch/batch"
	"github.com/sparsegrid/kronbatch/dispatch"
	"github.com/sparsegrid/kronbatch/grid"
	"github.com/sparsegrid/kronbatch/tensor"
)

// twoElementTable is a 2-D table with two elements whose per-dimension 1-D
// indices are (0,0) and (1,1), so operator windows land at offsets 0 and
// degree.
func twoElementTable() *testElements {
	return &testElements{coords: [][]int{
		{0, 0, 0, 0}, // levels (0,0), cells (0,0) → indices (0,0)
		{1, 1, 0, 0}, // levels (1,1), cells (0,0) → indices (1,1)
	}}
}

func fullChunk(size int) grid.Chunk {
	chunk := make(grid.Chunk, size)
	for i := range chunk {
		chunk[i] = grid.Row{Element: i, Connected: grid.Limits{Start: 0, Stop: size - 1}}
	}
	return chunk
}

// TestBuildBatches_EndToEnd runs the full sweep for a 2-D, degree-2,
// one-term problem over two fully connected elements and checks every
// (element, connected) pair's output against the dense Kronecker-product
// matrix-vector result.
func TestBuildBatches_EndToEnd(t *testing.T) {
	p := newTestPDE(2, 2, 1, 2) // coefficient side 4
	elems := twoElementTable()
	chunk := fullChunk(2)
	ws := batch.NewRankWorkspace[float64](p, elems.Size(), []grid.Chunk{chunk})

	// element j's input occupies [j*4, j*4+4) of the input space
	xin := []float64{1, 2, -1, 0.5, 0, 1, 1, -2}
	copy(ws.BatchInput.Data(), xin)

	sets := batch.BuildBatches[float64](p, elems, ws, chunk)
	require.Len(t, sets, 2)
	for d, s := range sets {
		require.True(t, s.A.IsFilled() && s.B.IsFilled() && s.C.IsFilled(),
			"full connectivity fills every slot at dimension %d", d)
	}

	be := dispatch.Default[float64]()
	for _, s := range sets {
		s.Execute(be, 1, 0)
	}

	const elemSize = 4
	rowOffsets := [][]int{{0, 0}, {2, 2}} // element index × degree per dimension
	kronIndex := 0
	for i := 0; i < 2; i++ { // element rows
		for j := 0; j < 2; j++ { // connected elements
			ops := make([]tensor.MatView[float64], 2)
			for d := 0; d < 2; d++ {
				r, c := rowOffsets[i][d], rowOffsets[j][d]
				ops[d] = p.Coefficient(0, d).Window(r, r+1, c, c+1)
			}
			want := kronMatVec(ops, xin[j*elemSize:(j+1)*elemSize])

			got := ws.ReductionSpace.Data()[kronIndex*elemSize : (kronIndex+1)*elemSize]
			assert.InDeltaSlice(t, want, got, 1e-12, "element %d connected %d", i, j)
			kronIndex++
		}
	}
}

// TestBuildBatches_TermMajorLayout verifies the kron-index ordinal is
// term-major within each (element, connected) pair for a multi-term sweep.
func TestBuildBatches_TermMajorLayout(t *testing.T) {
	p := newTestPDE(2, 2, 2, 2) // two terms
	elems := twoElementTable()
	chunk := fullChunk(2)
	ws := batch.NewRankWorkspace[float64](p, elems.Size(), []grid.Chunk{chunk})

	xin := []float64{1, -1, 2, 0, 0.5, 1, -0.5, 1}
	copy(ws.BatchInput.Data(), xin)

	sets := batch.BuildBatches[float64](p, elems, ws, chunk)
	be := dispatch.Default[float64]()
	for _, s := range sets {
		s.Execute(be, 1, 0)
	}

	const elemSize = 4
	rowOffsets := [][]int{{0, 0}, {2, 2}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				ops := make([]tensor.MatView[float64], 2)
				for d := 0; d < 2; d++ {
					r, c := rowOffsets[i][d], rowOffsets[j][d]
					ops[d] = p.Coefficient(k, d).Window(r, r+1, c, c+1)
				}
				want := kronMatVec(ops, xin[j*elemSize:(j+1)*elemSize])

				kronIndex := k + (i*2+j)*2
				got := ws.ReductionSpace.Data()[kronIndex*elemSize : (kronIndex+1)*elemSize]
				assert.InDeltaSlice(t, want, got, 1e-12,
					"element %d connected %d term %d", i, j, k)
			}
		}
	}
}

// TestBuildBatches_OneDimensional verifies the sweep in the terminal
// no-intermediate case.
func TestBuildBatches_OneDimensional(t *testing.T) {
	p := newTestPDE(1, 3, 1, 2) // coefficient side 6
	elems := &testElements{coords: [][]int{{0, 0}, {1, 0}}}
	chunk := fullChunk(2)
	ws := batch.NewRankWorkspace[float64](p, elems.Size(), []grid.Chunk{chunk})
	require.Nil(t, ws.BatchIntermediate, "1-D sweeps carry no ping-pong space")

	xin := []float64{1, 0, -1, 2, 1, 0.5}
	copy(ws.BatchInput.Data(), xin)

	sets := batch.BuildBatches[float64](p, elems, ws, chunk)
	require.Len(t, sets, 1)
	sets[0].Execute(dispatch.Default[float64](), 1, 0)

	kronIndex := 0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			op := p.Coefficient(0, 0).Window(3*i, 3*i+2, 3*j, 3*j+2)
			want := kronMatVec([]tensor.MatView[float64]{op}, xin[3*j:3*j+3])
			got := ws.ReductionSpace.Data()[kronIndex*3 : (kronIndex+1)*3]
			assert.InDeltaSlice(t, want, got, 1e-12)
			kronIndex++
		}
	}
}

// TestBuildBatches_UndersizedWorkspacePanics verifies workspace sizing is a
// fatal precondition.
func TestBuildBatches_UndersizedWorkspacePanics(t *testing.T) {
	p := newTestPDE(2, 2, 1, 2)
	elems := twoElementTable()
	chunk := fullChunk(2)

	// workspace sized for a single-row chunk cannot serve the full chunk
	small := batch.NewRankWorkspace[float64](p, elems.Size(), []grid.Chunk{chunk[:1]})
	assert.Panics(t, func() { batch.BuildBatches[float64](p, elems, small, chunk) })
}
