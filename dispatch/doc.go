// Package dispatch is the injected linear-algebra backend boundary.
//
// What:
//
//   - Backend: the two BLAS entry points the engine needs (dense GEMM and
//     GEMV), expressed over raw column-major slices with explicit leading
//     dimensions, transpose flags and alpha/beta scalars.
//   - Default: a gonum-backed implementation covering float32 and float64.
//
// Why:
//
//   - Keeping BLAS behind an interface means the batching logic never touches
//     a concrete provider; tests substitute recording or reference backends,
//     and an accelerated provider can be dropped in without touching batch.
//
// Convention:
//
//   - Column-major throughout, matching the operand layout produced by the
//     tensor views. gonum's native BLAS is row-major, so Default adapts by
//     the usual identity Cᵀ = op(B)ᵀ·op(A)ᵀ — swap the operands and the
//     output dimensions, keep the transpose flags.
package dispatch
