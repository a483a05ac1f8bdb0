// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions; panics
// are reserved for programmer errors in private helpers (if any).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive. Constructors must validate before allocation.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside the
	// valid range. Public indexers (At/Set) MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows, Copy between unequal shapes, or a
	// vector whose length does not match the expected axis.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the configured tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")
)
