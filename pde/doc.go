// Package pde defines the solvable equations: their dimensions, separable
// terms and sources, exact solutions, and the per-(term, dimension) operator
// coefficient matrices the kronmult engine consumes.
//
// What: a Definition declares an equation symbolically; New instantiates it
// at a grid level and basis degree, generating every coefficient matrix with
// a discontinuous-Galerkin assembly over a Legendre basis. The instantiated
// PDE satisfies the engine's descriptor surface and additionally projects
// separable functions (initial conditions, sources, exact solutions) onto
// the basis.
//
// Why: the engine is equation-agnostic; everything equation-specific funnels
// through this package.
//
// Errors: New returns sentinel errors (ErrUnknownPDE, ErrBadLevel,
// ErrBadDegree) for invalid instantiation requests. Generated matrices are
// validated with panics, like the rest of the numeric core.
//
// Complexity: coefficient generation is O(terms × dims × cells × degree² ×
// quadrature points) at construction; all descriptor methods are O(1).
package pde
