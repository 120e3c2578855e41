package dispatch

import (
	"gonum.org/v1/gonum/blas"
	blasimpl "gonum.org/v1/gonum/blas/gonum"

	"github.com/sparsegrid/kronbatch/tensor"
)

// impl is gonum's pure-Go BLAS implementation. It is stateless, so one
// shared value serves every backend instance and precision.
var impl blasimpl.Implementation

// Default returns the gonum-backed Backend for T.
func Default[T tensor.Scalar]() Backend[T] {
	return gonumBackend[T]{}
}

// gonumBackend adapts gonum's row-major BLAS to the module's column-major
// convention. For GEMM the identity Cᵀ = op(B)ᵀ·op(A)ᵀ lets us hand the
// buffers over unchanged: swap the A/B operands and the m/n extents, keep
// each operand's transpose flag. For GEMV the reinterpretation of a
// column-major A as its row-major transpose flips the transpose flag and
// swaps the stored extents.
type gonumBackend[T tensor.Scalar] struct{}

func transFlag(t bool) blas.Transpose {
	if t {
		return blas.Trans
	}
	return blas.NoTrans
}

func (gonumBackend[T]) Gemm(transA, transB bool, m, n, k int, alpha T, a []T, lda int, b []T, ldb int, beta T, c []T, ldc int) {
	tA, tB := transFlag(transA), transFlag(transB)
	switch a := any(a).(type) {
	case []float64:
		impl.Dgemm(tB, tA, n, m, k, float64(alpha),
			any(b).([]float64), ldb, a, lda, float64(beta), any(c).([]float64), ldc)
	case []float32:
		impl.Sgemm(tB, tA, n, m, k, float32(alpha),
			any(b).([]float32), ldb, a, lda, float32(beta), any(c).([]float32), ldc)
	}
}

func (gonumBackend[T]) Gemv(transA bool, m, n int, alpha T, a []T, lda int, x []T, incX int, beta T, y []T, incY int) {
	// Column-major A (m×n, lda) is row-major Aᵀ (n×m, lda): flip the flag.
	tA := transFlag(!transA)
	switch a := any(a).(type) {
	case []float64:
		impl.Dgemv(tA, n, m, float64(alpha), a, lda,
			any(x).([]float64), incX, float64(beta), any(y).([]float64), incY)
	case []float32:
		impl.Sgemv(tA, n, m, float32(alpha), a, lda,
			any(x).([]float32), incX, float32(beta), any(y).([]float32), incY)
	}
}
