package pde

import (
	"math"

	"github.com/sparsegrid/kronbatch/quadrature"
	"github.com/sparsegrid/kronbatch/tensor"
)

// quadMinPoints is the quadrature order floor; raised per-instance when the
// basis degree needs more points for exact mass integrals.
const quadMinPoints = 10

// basis bundles the reference-cell quadrature rule with the Legendre basis
// values it will be contracted against. Values are kept in float64 and
// narrowed at matrix-assembly time.
type basis struct {
	degree  int
	points  []float64 // reference cell [-1, 1]
	weights []float64
	vals    *tensor.Matrix[float64] // [point, basis]
	derivs  *tensor.Matrix[float64]
	edges   *tensor.Matrix[float64] // rows: basis at -1, basis at +1
}

func newBasis(degree int) basis {
	n := max(quadMinPoints, degree+1)
	roots, weights := quadrature.LegendreWeights[float64](n, -1, 1)
	vals, derivs := quadrature.Legendre(roots, degree)
	edges, _ := quadrature.Legendre(tensor.FromSlice([]float64{-1, 1}), degree)
	return basis{
		degree:  degree,
		points:  roots.Data(),
		weights: weights.Data(),
		vals:    vals,
		derivs:  derivs,
		edges:   edges,
	}
}

// generateCoefficient assembles the operator matrix of one term factor on
// one dimension: degree·2^level square, indexed (cell, basis) within each
// dimension, periodic in the cell index.
//
// Mass rows are block diagonal: ∫ g·φi·φj over the cell. Grad rows carry the
// weak-form derivative: the boundary trace with a central numerical flux
// minus the volume integral ∫ g·φi′·φj.
func generateCoefficient[T tensor.Scalar](b basis, term Term, dim Dimension, level int) *tensor.Matrix[T] {
	degree := b.degree
	numCells := 1 << level
	h := dim.Width() / float64(numCells)
	n := degree * numCells
	m := tensor.NewMatrix[T](n, n)

	set := func(cellRow, i, cellCol, j int, v float64) {
		r := cellRow*degree + i
		c := cellCol*degree + j
		m.SetAt(r, c, m.At(r, c)+T(v))
	}

	for cell := 0; cell < numCells; cell++ {
		left := dim.Min + float64(cell)*h
		// volume integrals over the cell, by quadrature
		for q, xi := range b.points {
			x := left + (xi+1)/2*h
			g := term.G(x, 0)
			for i := 0; i < degree; i++ {
				for j := 0; j < degree; j++ {
					switch term.Kind {
					case Mass:
						set(cell, i, cell, j, b.weights[q]*g*b.vals.At(q, i)*b.vals.At(q, j)/2)
					case Grad:
						set(cell, i, cell, j, -b.weights[q]*g*b.derivs.At(q, i)*b.vals.At(q, j)/h)
					}
				}
			}
		}
		if term.Kind != Grad {
			continue
		}

		// central-flux traces at both cell faces, periodic neighbors
		gL := term.G(left, 0)
		gR := term.G(left+h, 0)
		prev := (cell + numCells - 1) % numCells
		next := (cell + 1) % numCells
		for i := 0; i < degree; i++ {
			for j := 0; j < degree; j++ {
				eiL, eiR := b.edges.At(0, i), b.edges.At(1, i)
				ejL, ejR := b.edges.At(0, j), b.edges.At(1, j)
				set(cell, i, cell, j, (gR*eiR*ejR-gL*eiL*ejL)/(2*h))
				set(cell, i, next, j, gR*eiR*ejL/(2*h))
				set(cell, i, prev, j, -gL*eiL*ejR/(2*h))
			}
		}
	}
	return m
}

// projectDim computes one dimension's expansion coefficients of f: per cell,
// the inner products of f against the cell's basis functions.
func projectDim(b basis, dim Dimension, level int, f SpaceFunc) []float64 {
	degree := b.degree
	numCells := 1 << level
	h := dim.Width() / float64(numCells)
	out := make([]float64, degree*numCells)

	scale := math.Sqrt(h) / 2
	for cell := 0; cell < numCells; cell++ {
		left := dim.Min + float64(cell)*h
		for q, xi := range b.points {
			x := left + (xi+1)/2*h
			fx := f(x)
			for k := 0; k < degree; k++ {
				out[cell*degree+k] += b.weights[q] * fx * b.vals.At(q, k) * scale
			}
		}
	}
	return out
}
