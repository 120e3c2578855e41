package dispatch

import "github.com/sparsegrid/kronbatch/tensor"

// Backend abstracts the dense BLAS entry points consumed by the batched
// executor. All matrices are column-major; lda/ldb/ldc are leading
// dimensions (the stride between consecutive columns in storage).
//
// Implementations must follow standard BLAS level-2/level-3 semantics:
//
//	Gemm: C := alpha·op(A)·op(B) + beta·C, op(X) = X or Xᵀ per flag,
//	      with op(A) m×k, op(B) k×n, C m×n.
//	Gemv: y := alpha·op(A)·x + beta·y, with A m×n and incX/incY the
//	      element strides of the vector operands.
type Backend[T tensor.Scalar] interface {
	Gemm(transA, transB bool, m, n, k int, alpha T, a []T, lda int, b []T, ldb int, beta T, c []T, ldc int)
	Gemv(transA bool, m, n int, alpha T, a []T, lda int, x []T, incX int, beta T, y []T, incY int)
}
