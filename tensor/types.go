// Package tensor: scalar constraint shared by the whole module.
package tensor

// Scalar is the set of element types the engine instantiates for.
// Both precisions flow through one generic implementation; the BLAS
// backend dispatches to the matching precision entry points.
type Scalar interface {
	~float32 | ~float64
}

// SameOrigin reports whether two slices alias the same first element.
// Batch equality is pointer identity over assigned operands, not a
// comparison of pointee contents.
func SameOrigin[T Scalar](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return len(a) == len(b)
	}
	return &a[0] == &b[0]
}
