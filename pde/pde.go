package pde

import (
	"math"

	"github.com/sparsegrid/kronbatch/grid"
	"github.com/sparsegrid/kronbatch/internal/assert"
	"github.com/sparsegrid/kronbatch/tensor"
)

// PDE is an equation instantiated at a grid level and basis degree, with
// every coefficient matrix generated. It satisfies the engine's descriptor
// surface.
type PDE[T tensor.Scalar] struct {
	def    Definition
	level  int
	degree int

	basis  basis
	coeffs [][]*tensor.Matrix[T] // [term][dim]
}

// New instantiates a registered equation. The level sets 2^level cells per
// dimension; the degree sets basis functions per cell.
func New[T tensor.Scalar](name string, level, degree int) (*PDE[T], error) {
	def, ok := registry[name]
	if !ok {
		return nil, ErrUnknownPDE
	}
	if level < 0 {
		return nil, ErrBadLevel
	}
	if degree < 1 {
		return nil, ErrBadDegree
	}

	p := &PDE[T]{def: def(), level: level, degree: degree, basis: newBasis(degree)}
	for _, row := range p.def.Terms {
		assert.Thatf(len(row) == len(p.def.Dims),
			"pde: term row of %d factors for %d dims", len(row), len(p.def.Dims))
		mats := make([]*tensor.Matrix[T], len(row))
		for d, term := range row {
			mats[d] = generateCoefficient[T](p.basis, term, p.def.Dims[d], level)
		}
		p.coeffs = append(p.coeffs, mats)
	}
	return p, nil
}

// Name returns the equation's registry name.
func (p *PDE[T]) Name() string { return p.def.Name }

// NumDims returns the dimension count.
func (p *PDE[T]) NumDims() int { return len(p.def.Dims) }

// Degree returns the basis functions per cell per dimension.
func (p *PDE[T]) Degree() int { return p.degree }

// Level returns the grid refinement level.
func (p *PDE[T]) Level() int { return p.level }

// NumTerms returns the separable operator term count.
func (p *PDE[T]) NumTerms() int { return len(p.def.Terms) }

// NumSources returns the source count.
func (p *PDE[T]) NumSources() int { return len(p.def.Sources) }

// Coefficient returns the operator matrix of one term factor. The matrix is
// square with side degree·2^level; row and column blocks are addressed by
// per-dimension element index times degree.
func (p *PDE[T]) Coefficient(term, dim int) tensor.MatView[T] {
	assert.Index(term, len(p.coeffs), "pde: term")
	assert.Index(dim, len(p.coeffs[term]), "pde: dimension")
	return p.coeffs[term][dim].View()
}

// Dt returns the CFL-free base time step: the first dimension's cell width.
func (p *PDE[T]) Dt() float64 {
	return p.def.Dims[0].Width() / math.Pow(2, float64(p.level))
}

// HasExact reports whether the equation carries an analytic solution.
func (p *PDE[T]) HasExact() bool { return p.def.ExactSpace != nil }

// ExactAt projects the analytic solution at time t onto the basis.
func (p *PDE[T]) ExactAt(table *grid.Table, t float64) *tensor.Vector[T] {
	assert.That(p.HasExact(), "pde: no analytic solution")
	return p.ProjectSeparable(table, p.def.ExactSpace, p.def.ExactTime(t))
}

// InitialAt projects the initial condition onto the basis. Equations without
// initial components start from zero.
func (p *PDE[T]) InitialAt(table *grid.Table) *tensor.Vector[T] {
	if p.def.Initial == nil {
		return tensor.NewVector[T](table.Size() * p.elemSize())
	}
	return p.ProjectSeparable(table, p.def.Initial, 1)
}

// SourceVectors projects every source's spatial part onto the basis, without
// time scaling. Computed once per run; SourceTime supplies the per-step
// scaling.
func (p *PDE[T]) SourceVectors(table *grid.Table) []*tensor.Vector[T] {
	out := make([]*tensor.Vector[T], len(p.def.Sources))
	for i, s := range p.def.Sources {
		out[i] = p.ProjectSeparable(table, s.Space, 1)
	}
	return out
}

// SourceTime returns source i's time scaling at time t.
func (p *PDE[T]) SourceTime(i int, t float64) float64 {
	assert.Index(i, len(p.def.Sources), "pde: source")
	return p.def.Sources[i].Time(t)
}

// ProjectSeparable projects a separable function onto the basis over the
// element table: per dimension, the 1-D expansion of its component; per
// element, the scaled tensor product of the per-dimension blocks, last
// dimension fastest.
func (p *PDE[T]) ProjectSeparable(table *grid.Table, space []SpaceFunc, scale float64) *tensor.Vector[T] {
	numDims := p.NumDims()
	assert.Thatf(len(space) == numDims,
		"pde: %d separable components for %d dims", len(space), numDims)
	assert.Thatf(table.NumDims() == numDims,
		"pde: %d-dim table for a %d-dim equation", table.NumDims(), numDims)

	perDim := make([][]float64, numDims)
	for d := range perDim {
		perDim[d] = projectDim(p.basis, p.def.Dims[d], p.level, space[d])
	}

	elemSize := p.elemSize()
	out := tensor.NewVector[T](table.Size() * elemSize)
	offsets := make([]int, numDims)
	for e := 0; e < table.Size(); e++ {
		indices := grid.Linearize(table.Coords(e))
		for d, idx := range indices {
			offsets[d] = idx * p.degree
		}
		for k := 0; k < elemSize; k++ {
			v := scale
			rem := k
			for d := numDims - 1; d >= 0; d-- {
				v *= perDim[d][offsets[d]+rem%p.degree]
				rem /= p.degree
			}
			out.SetAt(e*elemSize+k, T(v))
		}
	}
	return out
}

func (p *PDE[T]) elemSize() int {
	size := 1
	for d := 0; d < p.NumDims(); d++ {
		size *= p.degree
	}
	return size
}
