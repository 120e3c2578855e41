package timestep

import (
	"github.com/sparsegrid/kronbatch/batch"
	"github.com/sparsegrid/kronbatch/dispatch"
	"github.com/sparsegrid/kronbatch/grid"
	"github.com/sparsegrid/kronbatch/internal/assert"
	"github.com/sparsegrid/kronbatch/tensor"
)

// Problem is the equation surface the time stepper consumes: the engine's
// descriptor plus per-source time scaling.
type Problem[T tensor.Scalar] interface {
	batch.Descriptor[T]

	// SourceTime returns source i's scaling at time t.
	SourceTime(i int, t float64) float64
}

// ApplyOperator computes fx = A·x, where A is the sum over terms of the
// Kronecker products of the coefficient windows selected by the element
// table. The solution is staged through the rank workspace chunk by chunk;
// each chunk's per-work-item outputs are reduced into fx with one batched
// unit-vector gemv, one entry per element row.
func ApplyOperator[T tensor.Scalar](be dispatch.Backend[T], p batch.Descriptor[T],
	elems batch.Elements, rank *batch.RankWorkspace[T], chunks []grid.Chunk,
	x, fx *tensor.Vector[T]) {
	elemSize := ipow(p.Degree(), p.NumDims())
	numTerms := p.NumTerms()

	assert.Thatf(x.Len() == elems.Size()*elemSize,
		"timestep: input of %d for %d elements of size %d", x.Len(), elems.Size(), elemSize)
	assert.Thatf(fx.Len() == x.Len(),
		"timestep: output of %d for input of %d", fx.Len(), x.Len())

	copy(rank.BatchInput.Data(), x.Data())
	fx.Fill(0)

	for _, chunk := range chunks {
		sets := batch.BuildBatches(p, elems, rank, chunk)
		for _, s := range sets {
			s.Execute(be, 1, 0)
		}

		reduceChunk(be, chunk, rank, fx, elemSize, numTerms)
	}
}

// reduceChunk sums each element row's contiguous per-(connected, term)
// outputs into fx: one batched gemv of the reduction-space windows against
// the all-ones unit vector, one entry per row. Rows must share a connected
// count, which the contiguous-range connectivity model guarantees.
func reduceChunk[T tensor.Scalar](be dispatch.Backend[T], chunk grid.Chunk,
	rank *batch.RankWorkspace[T], fx *tensor.Vector[T], elemSize, numTerms int) {
	if len(chunk) == 0 {
		return
	}
	items := chunk[0].Connected.Count() * numTerms

	a := batch.NewBatch[T](len(chunk), elemSize, items, elemSize, false)
	ones := batch.NewBatch[T](len(chunk), items, 1, 1, false)
	out := batch.NewBatch[T](len(chunk), elemSize, 1, 1, false)

	red := rank.ReductionSpace.View(0, rank.ReductionSpace.Len()-1)
	unit := rank.UnitVector().View(0, items-1).AsMatrix(items, 1)
	fxv := fx.View(0, fx.Len()-1)

	prevRowElems := 0
	for i, row := range chunk {
		assert.Thatf(row.Connected.Count()*numTerms == items,
			"timestep: row %d reduces %d items in a chunk of %d-item rows",
			i, row.Connected.Count()*numTerms, items)
		a.AssignEntry(red.AsMatrixAt(elemSize, items, prevRowElems*numTerms*elemSize), i)
		ones.AssignEntry(unit, i)
		out.AssignEntry(fxv.AsMatrixAt(elemSize, 1, row.Element*elemSize), i)
		prevRowElems += row.Connected.Count()
	}
	batch.BatchedGemv(be, a, ones, out, 1, 1)
}

// rhsAt evaluates the semi-discrete right-hand side at time t into out:
// the operator applied to v plus the time-scaled sources.
func rhsAt[T tensor.Scalar](be dispatch.Backend[T], p Problem[T], elems batch.Elements,
	sources []*tensor.Vector[T], rank *batch.RankWorkspace[T], chunks []grid.Chunk,
	v, out *tensor.Vector[T], t float64) {
	ApplyOperator(be, p, elems, rank, chunks, v, out)
	for i, s := range sources {
		scale := T(p.SourceTime(i, t))
		od, sd := out.Data(), s.Data()
		for n := range od {
			od[n] += scale * sd[n]
		}
	}
}

// ExplicitAdvance performs one strong-stability-preserving third-order
// Runge-Kutta step of size dt from the given time. It reads host.X and
// writes the advanced solution to host.FX.
func ExplicitAdvance[T tensor.Scalar](be dispatch.Backend[T], p Problem[T],
	elems batch.Elements, sources []*tensor.Vector[T], host *HostWorkspace[T],
	rank *batch.RankWorkspace[T], chunks []grid.Chunk, time, dt float64) {
	assert.Thatf(dt > 0, "timestep: non-positive dt %g", dt)

	x := host.X.Data()
	u1 := host.stage1.Data()
	u2 := host.stage2.Data()
	r := host.rhs.Data()
	out := host.FX.Data()
	h := T(dt)

	// u1 = x + dt·L(x, t)
	rhsAt(be, p, elems, sources, rank, chunks, host.X, host.rhs, time)
	for n := range x {
		u1[n] = x[n] + h*r[n]
	}

	// u2 = 3/4·x + 1/4·u1 + 1/4·dt·L(u1, t+dt)
	rhsAt(be, p, elems, sources, rank, chunks, host.stage1, host.rhs, time+dt)
	for n := range x {
		u2[n] = 3*x[n]/4 + u1[n]/4 + h*r[n]/4
	}

	// x⁺ = 1/3·x + 2/3·u2 + 2/3·dt·L(u2, t+dt/2)
	rhsAt(be, p, elems, sources, rank, chunks, host.stage2, host.rhs, time+dt/2)
	for n := range x {
		out[n] = x[n]/3 + 2*u2[n]/3 + 2*h*r[n]/3
	}
}

func ipow(base, exp int) int {
	out := 1
	for i := 0; i < exp; i++ {
		out *= base
	}
	return out
}
