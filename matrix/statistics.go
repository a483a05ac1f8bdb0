// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the column statistics needed by covariance-based decompositions:
//     per-column means, in-place centering and the sample covariance matrix.
//
// Exposed API:
//   - MeanColumns(X)        -> means            // per-column averages
//   - CenterColumns(X, mu)  -> error            // X[i,j] -= mu[j], IN PLACE
//   - Covariance(X)         -> (Cov, error)     // (Xᵀ X)/max(r-1, 1), X centered
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths avoid At/Set and operate on row-major flat buffers.
//
// Contract note:
//   - CenterColumns deliberately mutates its argument. Callers that need the
//     uncentered data afterwards must clone before calling — this observable
//     side effect is part of the fit/transform contract, not an optimization.

package matrix

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMeanColumns   = "MeanColumns"
	opCenterColumns = "CenterColumns"
	opCovariance    = "Covariance"
)

// MeanColumns returns the per-column means of X: mean[j] = Σ_i X[i,j] / r.
// Implementation:
//   - Stage 1: Validate X non-nil (shape is always ≥1×1 by construction).
//   - Stage 2: Accumulate column sums deterministically, then divide by r.
//
// Returns:
//   - []float64: column means (len = X.Cols()).
//
// Errors:
//   - ErrNilMatrix from validation; wrapped At errors from the fallback path.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func MeanColumns(X Matrix) ([]float64, error) {
	// Stage 1 (Validate): ensure X is present.
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opMeanColumns, err)
	}

	r, c := X.Rows(), X.Cols()
	means := make([]float64, c)

	// Stage 2 (Execute): Dense fast-path uses the row-major flat buffer directly.
	var i, j int
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ { // deterministic row order
			base := i * c           // cache row base offset
			for j = 0; j < c; j++ { // deterministic column order
				means[j] += d.data[base+j] // accumulate sum for column j
			}
		}
	} else {
		// Fallback: use At(i,j) with full error propagation.
		var v float64
		var err error
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				v, err = X.At(i, j)
				if err != nil {
					return nil, matrixErrorf(opMeanColumns, err)
				}
				means[j] += v
			}
		}
	}

	// Stage 3 (Finalize): divide sums by r to obtain means.
	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}

	return means, nil
}

// CenterColumns subtracts mean[j] from every element of column j, IN PLACE.
// Implementation:
//   - Stage 1: Validate X non-nil and len(mean) == X.Cols().
//   - Stage 2: Subtract with a Dense fast-path; At/Set fallback otherwise.
//
// Behavior highlights:
//   - Mutates X — the caller's matrix is centered, not a copy. This is the
//     documented contract of the fit/transform pipeline.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (mean length vs columns).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func CenterColumns(X Matrix, mean []float64) error {
	// Stage 1 (Validate): presence and mean length.
	if err := ValidateNotNil(X); err != nil {
		return matrixErrorf(opCenterColumns, err)
	}
	if err := ValidateVecLen(mean, X.Cols()); err != nil {
		return matrixErrorf(opCenterColumns, err)
	}

	r, c := X.Rows(), X.Cols()
	var i, j int

	// Stage 2 (Execute): Dense fast-path on the flat buffer.
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				d.data[base+j] -= mean[j] // subtract column mean in place
			}
		}
		return nil
	}

	// Fallback: interface path with full error propagation.
	var v float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err = X.At(i, j)
			if err != nil {
				return matrixErrorf(opCenterColumns, err)
			}
			if err = X.Set(i, j, v-mean[j]); err != nil {
				return matrixErrorf(opCenterColumns, err)
			}
		}
	}

	return nil
}

// Covariance computes the sample covariance of an ALREADY CENTERED matrix:
// Cov = (Xᵀ X)/max(r−1, 1), a symmetric c×c matrix.
// Implementation:
//   - Stage 1: Validate X non-nil.
//   - Stage 2: Cov = Scale(Mul(Transpose(X), X), 1/max(r-1, 1)) via canonical
//     kernels.
//
// Behavior highlights:
//   - The divisor is clamped to 1 so a single-sample matrix yields a valid
//     (all-zero after centering) covariance instead of dividing by zero.
//   - Result is positive semi-definite on well-formed data, modulo numeric
//     noise; the diagonal holds per-column sample variances.
//
// Errors:
//   - ErrNilMatrix; wrapped kernel errors from Transpose/Mul/Scale.
//
// Complexity:
//   - Time O(r*c²), Space O(c²).
func Covariance(X Matrix) (Matrix, error) {
	// Stage 1 (Validate): ensure X is present.
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opCovariance, err)
	}

	// Stage 2 (Compute): Cov = (Xᵀ X)/max(r-1, 1) via canonical kernels.
	Xt, err := Transpose(X)
	if err != nil {
		return nil, matrixErrorf(opCovariance, err)
	}
	G, err := Mul(Xt, X)
	if err != nil {
		return nil, matrixErrorf(opCovariance, err)
	}

	// Clamp the divisor so r==1 stays well-defined (degenerate but legal).
	divisor := X.Rows() - 1
	if divisor < 1 {
		divisor = 1
	}
	Cov, err := Scale(G, 1.0/float64(divisor))
	if err != nil {
		return nil, matrixErrorf(opCovariance, err)
	}

	return Cov, nil
}
