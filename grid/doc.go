// Package grid enumerates the elements of a tensor-product grid and the
// connectivity chunks the sweep driver iterates.
//
// What:
//
//   - Table: the element list for a given max level and dimension count.
//     Each element carries a coordinate vector of length 2×numDims — the
//     per-dimension (level, cell) pairs, levels first, cells second.
//   - Index1D: the flat ordinal of a (level, cell) pair within one
//     dimension's hierarchy: 0 at level 0, 2^(level-1)+cell above.
//   - Chunk: a contiguous run of elements with, for each, an inclusive range
//     of connected element indices. Full connectivity is assumed: every
//     element in a row's [Start, Stop] range is treated as interacting, and
//     the batch engine's offset arithmetic relies on the range being
//     contiguous. A sparsified connectivity model would change this package
//     first.
//
// Selection rules:
//
//   - FullGrid keeps every combination of per-dimension 1-D elements.
//   - SparseGrid keeps combinations whose levels sum to at most the max
//     level, the standard sparse-grid truncation.
//
// Errors:
//
//   - ErrBadLevel, ErrBadDims, ErrBadChunkCount: construction-time input
//     validation (these are user inputs, so they are sentinel errors, not
//     panics — the fail-fast layer begins behind this boundary).
package grid
