// SPDX-License-Identifier: MIT
// Package pca: eigen engine — power iteration with sequential deflation.
// Extracts ALL eigenpairs of a symmetric matrix in decreasing dominance order
// as discovered; floating-point drift across deflation steps means the raw
// order is not guaranteed strictly descending, so SortEigenPairs must run
// afterwards (it is mandatory, not redundant).

package pca

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlpca/matrix"
)

// symmetryEps is the tolerance for the fail-fast symmetry validation of the
// engine input. Covariance matrices built by this module are symmetric by
// construction; the check guards external callers feeding arbitrary matrices.
const symmetryEps = 1e-8

// Operation name constants for unified error wrapping.
const (
	opPowerEigen = "PowerEigen"
	opSortEigen  = "SortEigenPairs"
)

// pcaErrorf wraps err with an operation tag, preserving the sentinel via %w.
func pcaErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// PowerEigen computes all n eigenpairs of a symmetric n×n matrix via power
// iteration with deflation.
// Implementation:
//   - Stage 1: Validate m (not nil, square, symmetric within symmetryEps);
//     clone m into the deflation working copy A and allocate outputs.
//   - Stage 2: For k = 0..n-1: seed v with the constant 1/√n vector, iterate
//     v_new = A·v with λ = Σ v_new[i]·v[i] (pre-normalization v_new against
//     the previous v), normalize, and stop once |λ−λ_prev| < tolerance or the
//     iteration cap is hit (cap exhaustion keeps the last estimate).
//   - Stage 3: Store (λ, v) into eigenvalues[k] / eigenvectors[:,k] and
//     deflate A[i,j] -= λ·v[i]·v[j] so the next pass converges to the
//     next-dominant pair.
//
// Behavior highlights:
//   - Deterministic seed (1/√n, never random) ⇒ reproducible results.
//   - Non-convergence is best-effort, never an error.
//   - Eigenvector columns have unit L2 norm within convergence tolerance.
//
// Inputs:
//   - m: symmetric Matrix (intended: a covariance matrix, which is PSD).
//   - opts: WithTolerance / WithMaxIterations overrides.
//
// Returns:
//   - []float64: eigenvalues, index-paired with eigenvector columns.
//   - *matrix.Dense: n×n matrix whose column k is the k-th eigenvector.
//
// Errors:
//   - ErrEigenFailed wrapping the structural cause (nil input, non-square,
//     asymmetry, or working-buffer allocation failure).
//
// Determinism:
//   - Fixed loop orders and a constant seed; identical inputs yield identical
//     outputs across runs.
//
// Complexity:
//   - Time O(maxIterations·n³) worst case, Space O(n²).
func PowerEigen(m matrix.Matrix, opts ...Option) ([]float64, *matrix.Dense, error) {
	// Stage 1 (Validate): not nil, square, symmetric within eps.
	if err := matrix.ValidateSymmetric(m, symmetryEps); err != nil {
		return nil, nil, pcaErrorf(opPowerEigen, fmt.Errorf("%w: %w", ErrEigenFailed, err))
	}
	o := gatherOptions(opts...)

	// Stage 1 (Prepare): working copy A (deflated in place) and outputs.
	n := m.Rows()
	A := m.Clone() // deep copy; the caller's matrix is never deflated
	values := make([]float64, n)
	vectors, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, pcaErrorf(opPowerEigen, fmt.Errorf("%w: %w", ErrEigenFailed, err))
	}

	seed := 1.0 / math.Sqrt(float64(n)) // deterministic per-entry seed value
	var (
		k, i, j, iter  int
		lambda, prev   float64
		v              = make([]float64, n) // current direction estimate
		aij, deflation float64
	)
	for k = 0; k < n; k++ {
		// Stage 2 (Seed): constant 1/√n vector — reproducibility requirement.
		for i = 0; i < n; i++ {
			v[i] = seed
		}

		// Stage 2 (Iterate): power passes with Rayleigh-quotient convergence.
		prev = 0.0
		for iter = 0; iter < o.maxIterations; iter++ {
			// v_new = A·v (MatVec has a *Dense fast-path).
			vNew, mvErr := matrix.MatVec(A, v)
			if mvErr != nil {
				return nil, nil, pcaErrorf(opPowerEigen, fmt.Errorf("%w: %w", ErrEigenFailed, mvErr))
			}
			// λ candidate: pre-normalization v_new against the previous v.
			lambda, _ = matrix.Dot(vNew, v) // lengths match by construction

			// Normalize v_new to unit norm (no-op when norm ≤ NormFloor).
			matrix.Normalize(vNew)

			// Converged once the Rayleigh quotient stabilizes.
			if math.Abs(lambda-prev) < o.tolerance {
				copy(v, vNew)
				break
			}
			prev = lambda
			copy(v, vNew)
			// Cap exhaustion keeps the last λ and v — best-effort by contract.
		}

		// Stage 3 (Store): eigenvalues[k] and eigenvector column k.
		values[k] = lambda
		for i = 0; i < n; i++ {
			_ = vectors.Set(i, k, v[i]) // bounds-safe after shape validation
		}

		// Stage 3 (Deflate): A[i,j] -= λ·v[i]·v[j], removing the found pair
		// from the spectrum so the next pass targets the next-dominant one.
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				aij, _ = A.At(i, j)
				deflation = lambda * v[i] * v[j]
				_ = A.Set(i, j, aij-deflation)
			}
		}
	}

	return values, vectors, nil
}

// SortEigenPairs reorders (eigenvalue, eigenvector-column) pairs by eigenvalue
// descending, IN PLACE, keeping values[j] and column j of vectors paired at
// every step.
// Implementation:
//   - Stage 1: Validate vectors non-nil and len(values) == vectors.Cols().
//   - Stage 2: Adjacent-swap (bubble) passes — O(n²) comparisons, which is
//     fine for the feature counts this module targets.
//
// Behavior highlights:
//   - Tie-break among exactly-equal eigenvalues is unspecified; only the
//     descending order and the pairing invariant are guaranteed.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (values length vs columns).
//
// Complexity:
//   - Time O(n²·r) including column swaps, Space O(1).
func SortEigenPairs(values []float64, vectors matrix.Matrix) error {
	// Stage 1 (Validate): presence and pairing width.
	if err := matrix.ValidateNotNil(vectors); err != nil {
		return pcaErrorf(opSortEigen, err)
	}
	if err := matrix.ValidateVecLen(values, vectors.Cols()); err != nil {
		return pcaErrorf(opSortEigen, err)
	}

	// Stage 2 (Sort): bubble passes with synchronous column swaps.
	n := len(values)
	rows := vectors.Rows()
	var i, j, k int
	var left, right float64
	for i = 0; i < n-1; i++ {
		for j = 0; j < n-i-1; j++ {
			if values[j] >= values[j+1] {
				continue // already in descending order
			}
			// Swap eigenvalues.
			values[j], values[j+1] = values[j+1], values[j]
			// Swap the paired eigenvector columns row by row.
			for k = 0; k < rows; k++ {
				left, _ = vectors.At(k, j)
				right, _ = vectors.At(k, j+1)
				_ = vectors.Set(k, j, right)
				_ = vectors.Set(k, j+1, left)
			}
		}
	}

	return nil
}
