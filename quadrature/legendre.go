package quadrature

import (
	"math"

	"github.com/sparsegrid/kronbatch/internal/assert"
	"github.com/sparsegrid/kronbatch/tensor"
)

// Legendre evaluates the first degree Legendre polynomials and their first
// derivatives at every point of domain. Column i of each returned matrix
// holds the order-i polynomial (or its derivative) at each point, scaled by
// sqrt(2i+1) so the family is orthonormal on the unit interval. Rows whose
// point lies outside [-1, 1] are zeroed.
func Legendre[T tensor.Scalar](domain *tensor.Vector[T], degree int) (vals, derivs *tensor.Matrix[T]) {
	assert.Thatf(degree >= 0, "quadrature: negative degree %d", degree)
	assert.Positive(domain.Len(), "quadrature: domain size")

	n := domain.Len()
	cols := max(1, degree)
	vals = tensor.NewMatrix[T](n, cols)
	derivs = tensor.NewMatrix[T](n, cols)

	x := make([]float64, n)
	for i := range x {
		x[i] = float64(domain.At(i))
	}

	// three-term recurrence, carried per point in float64
	leg := make([][]float64, cols)
	prime := make([][]float64, cols)
	for c := range leg {
		leg[c] = make([]float64, n)
		prime[c] = make([]float64, n)
	}
	for i := range x {
		leg[0][i] = 1
	}
	if degree >= 2 {
		for i, xi := range x {
			leg[1][i] = xi
			prime[1][i] = 1
		}
	}
	for c := 2; c < degree; c++ {
		k := float64(c - 1)
		for i, xi := range x {
			leg[c][i] = ((2*k+1)*xi*leg[c-1][i] - k*leg[c-2][i]) / (k + 1)
			prime[c][i] = ((2*k+1)*(xi*prime[c-1][i]+leg[c-1][i]) - k*prime[c-2][i]) / (k + 1)
		}
	}

	for c := 0; c < cols; c++ {
		// 1/sqrt(2/(2i+1)), then sqrt(2): orthonormal on the unit interval.
		// The degree-0 placeholder column stays unscaled.
		scale := 1.0
		if c < degree {
			scale = math.Sqrt(2) / math.Sqrt(2/(2*float64(c)+1))
		}
		for i, xi := range x {
			if xi < -1 || xi > 1 {
				continue
			}
			vals.SetAt(i, c, T(leg[c][i]*scale))
			derivs.SetAt(i, c, T(prime[c][i]*scale))
		}
	}
	return vals, derivs
}

// LegendreWeights computes the degree-point Legendre-Gauss quadrature rule
// on [start, end]: the roots of the order-degree Legendre polynomial mapped
// to the interval, and the matching weights. Nodes are returned in
// ascending order.
func LegendreWeights[T tensor.Scalar](degree int, start, end T) (roots, weights *tensor.Vector[T]) {
	assert.Positive(degree, "quadrature: degree")
	lo, hi := float64(start), float64(end)
	assert.Thatf(lo < hi, "quadrature: empty interval [%g, %g]", lo, hi)

	x := make([]float64, degree)
	for i := range x {
		guess := math.Cos(float64(2*i+1) * math.Pi / float64(2*degree))
		guess += 0.27 / float64(degree) *
			math.Sin(math.Pi*linPoint(-1, 1, degree, i)*float64(degree-1)/float64(degree+1))
		x[i] = guess
	}

	// Newton iteration on the three-term recurrence: root update
	// x ← x − P_n(x)/P'_n(x), with P'_n(x) = n(P_{n-1}(x) − x·P_n(x))/(1 − x²).
	pn := make([]float64, degree)    // P_degree at the current roots
	prime := make([]float64, degree) // P'_degree at the current roots
	eps := epsOf[T]()
	for {
		maxDiff := 0.0
		for i, xi := range x {
			p0, p1 := 1.0, xi
			for k := 1; k < degree; k++ {
				p0, p1 = p1, ((2*float64(k)+1)*xi*p1-float64(k)*p0)/float64(k+1)
			}
			pn[i] = p1
			prime[i] = float64(degree) * (p0 - xi*p1) / (1 - xi*xi)

			next := xi - p1/prime[i]
			if d := math.Abs(next - xi); d > maxDiff {
				maxDiff = d
			}
			x[i] = next
		}
		if maxDiff <= eps {
			break
		}
	}

	roots = tensor.NewVector[T](degree)
	weights = tensor.NewVector[T](degree)
	span := hi - lo
	for i, xi := range x {
		w := span / ((1 - xi*xi) * prime[i] * prime[i])
		mapped := (lo*(1-xi) + hi*(1+xi)) / 2
		// cosine guesses descend; store ascending
		roots.SetAt(degree-1-i, T(mapped))
		weights.SetAt(degree-1-i, T(w))
	}
	return roots, weights
}

// linPoint returns point i of an n-point linear spacing of [a, b].
func linPoint(a, b float64, n, i int) float64 {
	if n == 1 {
		return a
	}
	return a + (b-a)*float64(i)/float64(n-1)
}

func epsOf[T tensor.Scalar]() float64 {
	switch any(T(0)).(type) {
	case float32:
		return 1.1920929e-07
	default:
		return 2.220446049250313e-16
	}
}
