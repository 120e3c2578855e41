// Package timestep advances a solution vector in time with an explicit
// third-order strong-stability-preserving Runge-Kutta scheme, applying the
// Kronecker-product operator through the batched engine.
//
// What: ApplyOperator computes A·x for the full element table, chunk by
// chunk: it builds the per-dimension batch lists, runs the staged batched
// multiplies, and reduces each element's per-term, per-connected outputs
// with a unit-vector gemv. ExplicitAdvance wraps three such applications,
// plus time-scaled source contributions, into one Runge-Kutta step.
//
// Why: the engine produces per-work-item kron outputs; this package owns
// the reduction to element space and the time loop around it.
//
// Complexity: one ExplicitAdvance performs three operator applications;
// each application is O(table² × terms × degree^(dims+1)) floating-point
// work under full connectivity.
package timestep
