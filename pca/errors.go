// SPDX-License-Identifier: MIT
// Package pca: sentinel error set. All operations return these sentinels
// (possibly wrapped with an operation tag) and tests check them via errors.Is.
// Shape violations raised by the underlying matrix kernels surface unchanged,
// so matrix.ErrDimensionMismatch is the sentinel for transform-vs-fit
// feature-count mismatches.

package pca

import "errors"

var (
	// ErrInvalidComponentCount indicates n_components outside [1, feature
	// count]. The core always rejects out-of-range requests; clamping to the
	// feature count is a caller-layer courtesy, never done here.
	ErrInvalidComponentCount = errors.New("pca: n_components must be in [1, feature count]")

	// ErrEigenFailed indicates a structural failure while preparing the
	// power-iteration working buffers. It is NOT raised for non-convergence,
	// which is handled best-effort by design.
	ErrEigenFailed = errors.New("pca: eigen computation failed")

	// ErrNotFitted indicates that a nil or unfitted model was asked to
	// transform data or to serialize itself.
	ErrNotFitted = errors.New("pca: model is not fitted")

	// ErrInvalidModel indicates an inconsistent serialized model record
	// (mismatched mean/eigenvalue/eigenvector dimensions).
	ErrInvalidModel = errors.New("pca: invalid model record")
)
