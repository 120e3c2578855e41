// Package kronbatch is a batched Kronecker-product engine for sparse-grid
// PDE solvers — it turns high-dimensional tensor-product operators into
// flat lists of small dense matrix multiplies.
//
// 🚀 What is kronbatch?
//
//	A pure-Go numerical core that brings together:
//		• Non-owning tensor views: shape/stride/offset windows over shared buffers
//		• Batch lists: fixed-arity operand sets for batched GEMM/GEMV
//		• Kronmult decomposition: one d-dimensional Kronecker apply as d staged
//		  batched multiplies over ping-pong workspaces
//		• Sweep driver: element connectivity → collision-free batch slots
//		• DG collaborators: Legendre-Gauss quadrature, PDE descriptors
//		  (continuity family), explicit RK3 time advance
//
// ✨ Why choose kronbatch?
//
//   - Alias-free by construction – every (element, connected, term) triple owns
//     disjoint batch slots and workspace offsets, checked at assignment time
//   - Fail-fast guarantees – invariant violations abort immediately; there is
//     no recoverable-error path inside the core
//   - Pluggable linear algebra – BLAS calls go through an injected backend
//     (gonum by default), so the batching logic never hand-rolls a kernel
//   - Generic precision – float32 and float64 from a single implementation
//
// Under the hood, everything is organized in flat subpackages:
//
//	tensor/     — owned dense storage + non-owning matrix/vector views
//	dispatch/   — the injected BLAS backend (gonum-backed default)
//	batch/      — batch lists, executor, sizing, kronmult, sweep driver
//	quadrature/ — Legendre basis values and Legendre-Gauss nodes/weights
//	pde/        — PDE descriptors, coefficient generation, continuity family
//	grid/       — sparse-grid element table, coordinates, connectivity chunks
//	timestep/   — explicit third-order Runge-Kutta advance
//
// Quick sketch: applying A₁⊗A₂ to x never forms the Kronecker matrix —
//
//	X := reshape(x)         // via view strides, no data movement
//	W := A₂ · X             // stage 0, batched
//	Y := W · A₁ᵀ            // stage 1, batched
//
// Dive into each package's doc.go for contracts, complexity and examples.
//
//	go get github.com/sparsegrid/kronbatch
package kronbatch
