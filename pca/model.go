// SPDX-License-Identifier: MIT
// Package pca: model lifecycle — Fit (training) and Transform (projection).
// The model exclusively owns its mean/eigenvalue/eigenvector buffers; all
// accessors hand out copies so no caller can alias into fitted state.

package pca

import (
	"fmt"

	"github.com/katalvlaran/lvlpca/matrix"
)

// Operation name constants for unified error wrapping.
const (
	opFit       = "Fit"
	opTransform = "Transform"
)

// Model is a fitted PCA projection: the training mean, ALL feature-count
// eigenpairs in descending eigenvalue order (kept in full so callers can
// re-slice to a different component count later), the selected component
// count and the explained-variance ratio of that selection.
//
// A Model is immutable after Fit and safe for concurrent read-only use;
// Transform never writes model state.
type Model struct {
	nComponents            int            // selected K, 1 ≤ K ≤ feature count
	mean                   []float64      // per-feature training means, len C
	eigenvalues            []float64      // all C eigenvalues, descending
	eigenvectors           *matrix.Dense  // C×C, column j pairs eigenvalues[j]
	explainedVarianceRatio float64        // Σ top-K / Σ all; 0 when total is 0
}

// Fit trains a PCA model on data, selecting nComponents principal components.
// Implementation:
//   - Stage 1: Validate data non-nil and 1 ≤ nComponents ≤ data.Cols().
//   - Stage 2: Compute means → center data IN PLACE → covariance →
//     PowerEigen (all C pairs) → SortEigenPairs descending.
//   - Stage 3: explained ratio = Σ top-K eigenvalues / Σ all eigenvalues;
//     a zero total (constant dataset) deterministically yields ratio 0.
//
// Behavior highlights:
//   - SIDE EFFECT: the caller's data matrix is centered in place. Callers
//     needing the original values afterwards must Clone before calling —
//     documented contract, not a bug.
//   - All C eigenpairs are retained, not just the selected K.
//
// Errors:
//   - ErrInvalidComponentCount (nComponents outside [1, C]).
//   - ErrEigenFailed (structural failure inside the eigen engine).
//   - matrix.ErrNilMatrix and wrapped kernel errors on malformed input.
//
// Complexity:
//   - Time O(r·c²) + O(maxIterations·c³) worst case, Space O(c²).
func Fit(data matrix.Matrix, nComponents int, opts ...Option) (*Model, error) {
	// Stage 1 (Validate): presence first, then the component range.
	if err := matrix.ValidateNotNil(data); err != nil {
		return nil, pcaErrorf(opFit, err)
	}
	if nComponents < 1 || nComponents > data.Cols() {
		return nil, pcaErrorf(opFit, ErrInvalidComponentCount)
	}

	// Stage 2 (Center): compute feature means, then mutate data in place.
	mean, err := matrix.MeanColumns(data)
	if err != nil {
		return nil, pcaErrorf(opFit, err)
	}
	if err = matrix.CenterColumns(data, mean); err != nil {
		return nil, pcaErrorf(opFit, err)
	}

	// Stage 2 (Covariance): (Xᵀ X)/max(r−1, 1) on the centered data.
	cov, err := matrix.Covariance(data)
	if err != nil {
		return nil, pcaErrorf(opFit, err)
	}

	// Stage 2 (Decompose): all C eigenpairs, then mandatory descending sort.
	values, vectors, err := PowerEigen(cov, opts...)
	if err != nil {
		return nil, pcaErrorf(opFit, err)
	}
	if err = SortEigenPairs(values, vectors); err != nil {
		return nil, pcaErrorf(opFit, err)
	}

	// Stage 3 (Ratio): share of variance captured by the leading K pairs.
	var total, captured float64
	for i, v := range values {
		total += v
		if i < nComponents {
			captured += v
		}
	}
	ratio := 0.0 // deterministic fallback for zero-variance (constant) data
	if total != 0 {
		ratio = captured / total
	}

	return &Model{
		nComponents:            nComponents,
		mean:                   mean,
		eigenvalues:            values,
		eigenvectors:           vectors,
		explainedVarianceRatio: ratio,
	}, nil
}

// Transform projects data onto the model's first nComponents principal
// components.
// Implementation:
//   - Stage 1: Validate the model is fitted and data.Cols() equals the
//     fit-time feature count.
//   - Stage 2: Center data IN PLACE with the stored training means, slice the
//     leading K eigenvector columns, and matrix-multiply.
//
// Behavior highlights:
//   - SIDE EFFECT: the caller's data matrix is centered in place (same
//     contract as Fit).
//   - The returned matrix is a fresh rows×K allocation, independent of the
//     input and of model state.
//
// Errors:
//   - ErrNotFitted (nil/unfitted model).
//   - matrix.ErrDimensionMismatch (feature count differs from fit time).
//
// Complexity:
//   - Time O(r·c·k), Space O(r·k) for the projection.
func (m *Model) Transform(data matrix.Matrix) (matrix.Matrix, error) {
	// Stage 1 (Validate): fitted model, present data, matching width.
	if m == nil || m.eigenvectors == nil {
		return nil, pcaErrorf(opTransform, ErrNotFitted)
	}
	if err := matrix.ValidateNotNil(data); err != nil {
		return nil, pcaErrorf(opTransform, err)
	}
	c := len(m.mean)
	if data.Cols() != c {
		return nil, pcaErrorf(opTransform, fmt.Errorf("features %d vs fitted %d: %w",
			data.Cols(), c, matrix.ErrDimensionMismatch))
	}

	// Stage 2 (Center): mutate the caller's matrix with the training means.
	if err := matrix.CenterColumns(data, m.mean); err != nil {
		return nil, pcaErrorf(opTransform, err)
	}

	// Stage 2 (Slice): leading K eigenvector columns into a C×K matrix.
	components, err := matrix.NewDense(c, m.nComponents)
	if err != nil {
		return nil, pcaErrorf(opTransform, err)
	}
	var i, j int
	var v float64
	for i = 0; i < c; i++ {
		for j = 0; j < m.nComponents; j++ {
			v, _ = m.eigenvectors.At(i, j) // bounds-safe by construction
			_ = components.Set(i, j, v)
		}
	}

	// Stage 2 (Project): X_pca = X_centered × components.
	projected, err := matrix.Mul(data, components)
	if err != nil {
		return nil, pcaErrorf(opTransform, err)
	}

	return projected, nil
}

// NComponents returns the selected component count K.
func (m *Model) NComponents() int { return m.nComponents }

// FeatureCount returns the feature dimensionality C the model was fitted on.
func (m *Model) FeatureCount() int { return len(m.mean) }

// ExplainedVarianceRatio returns the fraction of total training variance
// captured by the first NComponents eigenpairs (0 for zero-variance data).
func (m *Model) ExplainedVarianceRatio() float64 { return m.explainedVarianceRatio }

// Mean returns a copy of the per-feature training means.
func (m *Model) Mean() []float64 {
	out := make([]float64, len(m.mean))
	copy(out, m.mean)

	return out
}

// Eigenvalues returns a copy of all C eigenvalues in descending order.
func (m *Model) Eigenvalues() []float64 {
	out := make([]float64, len(m.eigenvalues))
	copy(out, m.eigenvalues)

	return out
}

// Eigenvectors returns a deep copy of the C×C eigenvector matrix; column j is
// the unit-norm eigenvector paired with Eigenvalues()[j].
func (m *Model) Eigenvectors() matrix.Matrix {
	return m.eigenvectors.Clone()
}
