// Package pca implements Principal Component Analysis over dense float64
// matrices: fitting a reusable projection model on training data and
// transforming new data of the same feature dimensionality.
//
// Algorithm Outline:
//  1. Compute per-feature means and center the data IN PLACE.
//  2. Build the sample covariance matrix Cov = (Xᵀ X)/max(r−1, 1).
//  3. Extract all C eigenpairs of Cov by power iteration with sequential
//     deflation (PowerEigen): each pass starts from the deterministic seed
//     v[i] = 1/√C, iterates v ← A·v with Rayleigh-quotient convergence, then
//     removes the found pair via A ← A − λ·v·vᵀ.
//  4. Sort eigenpairs by eigenvalue descending (SortEigenPairs).
//  5. Record the explained-variance ratio of the leading n_components pairs.
//
// Transform centers incoming data with the stored means (again in place) and
// projects it onto the first n_components eigenvector columns.
//
// Determinism:
//
//	The power-iteration seed is the constant 1/√C vector, never random, so
//	identical inputs always produce identical models. Non-convergence within
//	MaxIterations is NOT an error: the engine keeps its best estimate.
//
// Known precision limits:
//
//	Deflation accumulates floating-point error, so eigenvector orthogonality
//	degrades near repeated or clustered eigenvalues. This is inherent to the
//	method, not a defect; the ops package offers a Jacobi decomposition as a
//	more robust alternative for such spectra.
//
// Side effects:
//
//	Fit and Transform center the caller's matrix IN PLACE. Callers that need
//	the original data afterwards must Clone before calling. This is a
//	documented part of the contract (no silent copy-on-write).
//
// Complexity:
//
//	Fit: O(r·c²) covariance + O(MaxIterations·c³) worst-case eigen extraction.
//	Transform: O(r·c·k).
package pca
