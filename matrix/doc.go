// Package matrix provides dense linear-algebra primitives for array-based
// numeric pipelines.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 container with bounds-checked access,
//     deep cloning and a flat backing slice for cache friendliness.
//   - Canonical kernels (Mul, Transpose, Scale, MatVec, Copy) with strict
//     fail-fast validation and deterministic loop orders.
//   - Vector utilities (Norm, Normalize, Dot) shared by iterative solvers.
//   - Column statistics (MeanColumns, CenterColumns, Covariance) used to
//     prepare data for covariance-based decompositions.
//
// Dense storage is best for small or moderately sized matrices where O(r·c)
// memory and O(n³) dense arithmetic are acceptable; sparse layouts are out of
// scope.
//
// All user-triggered error conditions surface as package sentinel errors
// (errors.go) and are matched via errors.Is; kernels never panic on bad input.
//
// See the examples in this package and in pca for usage patterns.
package matrix
