// Package batch is the batch construction and execution engine: it maps a
// PDE's per-dimension operator matrices and an element-connectivity chunk
// into flat lists of small dense matrix multiplies, then executes them
// through the injected BLAS backend.
//
// What:
//
//   - Batch: a fixed-arity list of operand pointers sharing one logical
//     shape (rows, cols, stride) and one transpose flag. Slots are assigned
//     exactly once per run — double assignment aborts, which is the primary
//     guard against double-counted connectivity.
//   - OperandSet: three batches {A, B, C} forming one batched-GEMM stage.
//   - BatchedGemm / BatchedGemv: one multiply per populated slot triple;
//     empty slots are skipped (unused worst-case capacity, not an error).
//   - ComputeBatchSize / ComputeDimensions / AllocateBatches: per-dimension
//     sizing of a full sparse-grid sweep.
//   - KronmultToBatchSets: the per-element-pair decomposition of one
//     d-dimensional Kronecker apply into d staged multiplies over two
//     ping-pong work buffers, expressed purely through view offsets.
//   - BuildBatches: the sweep driver — walks a connectivity chunk and
//     assigns every (element, connected, term) triple into disjoint batch
//     slots and disjoint workspace offsets.
//
// Why this shape:
//
//	A Kronecker product A₁⊗…⊗A_d applied to x is the same as reshaping x
//	into a d-dimensional tensor and contracting one mode at a time against
//	each Aᵢ. Each contraction is a 2-D matrix multiply; batching them
//	across every element pair of a sweep amortizes dispatch overhead and
//	keeps the small operands hot in cache. Per-triple slot and offset
//	disjointness is what makes the triples independent and reorderable.
//
// Errors:
//
//	Shape mismatch, slot collision, under-sized workspace and invalid
//	degree/dimension are caller defects and panic immediately
//	(internal/assert). The one intentional non-error is the nil-slot skip
//	in the executor.
package batch
