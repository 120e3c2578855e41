// Package tensor provides the flat dense containers and non-owning views the
// batching engine is built on.
//
// What:
//
//   - Vector / Matrix: owned, flat, column-major storage of a Scalar type.
//   - VecView / MatView: cheap non-owning windows (shape, stride, offset) into
//     existing storage, with sub-window extraction and vector↔matrix reshape
//     expressed purely through offsets — never by copying data.
//
// Why:
//
//   - The Kronecker decomposition in package batch addresses thousands of
//     small sub-blocks of a handful of shared workspaces per sweep. Views make
//     each sub-block a (pointer, shape, stride) triple that BLAS can consume
//     directly, so one sweep allocates nothing per block.
//
// Ownership & lifetime:
//
//   - A view never outlives its backing storage; the caller enforces this.
//     Views are immutable once constructed: shape and origin never change.
//
// Errors:
//
//   - Out-of-range windows, bad shapes and index violations are programmer
//     errors and panic immediately (see internal/assert). There is no
//     recoverable-error surface in this package.
//
// Complexity: all view constructions and accessors are O(1); Clone and Fill
// are O(n) over the owned buffer.
package tensor
