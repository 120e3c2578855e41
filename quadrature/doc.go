// Package quadrature evaluates normalized Legendre polynomials and computes
// Legendre-Gauss quadrature rules.
//
// What: Legendre returns the values and first derivatives of the first
// `degree` Legendre polynomials on a point set, scaled so the polynomials are
// orthonormal on the unit interval. LegendreWeights returns the
// Legendre-Gauss nodes and weights on an integer interval, found by Newton
// iteration on the three-term recurrence.
//
// Why: the coefficient-matrix generator integrates products of basis
// functions; both the basis values and the quadrature rule come from here.
//
// Errors: inputs are validated with panics. A non-positive degree or an
// empty interval is a programming error, not a runtime condition.
//
// Complexity: Legendre is O(points × degree). LegendreWeights is
// O(degree²) per Newton step; the iteration converges to machine epsilon in
// a handful of steps.
package quadrature
