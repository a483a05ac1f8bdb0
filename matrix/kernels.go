// SPDX-License-Identifier: MIT
// Package matrix: canonical linear-algebra kernels used across the module,
// including matrix multiplication, transpose, scalar scaling, matrix-vector
// products and element-wise copy. All functions perform strict fail-fast
// validation and return clear sentinel errors on dimension mismatches.
//
// Notes:
//   - All kernels use the central validators and wrap errors via matrixErrorf
//     with a stable "Op: underlying" shape for uniform reporting.
//   - Each kernel has a *Dense fast-path operating on flat slices and a
//     generic At/Set fallback with fixed i→j loop order for determinism.

package matrix

import "fmt"

// ZeroSum is the initial accumulator value for dot-product style loops.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opMatVec    = "MatVec"
	opCopy      = "Copy"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w so callers can still match sentinels with errors.Is.
// Use only when err != nil to avoid wrapping a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and
//     skip zeros; otherwise use i→j→k with a fixed order.
//
// Behavior highlights:
//   - Deterministic triple loops; one allocation for C; inputs never mutated.
//
// Returns:
//   - Matrix: new Dense C with shape (A.Rows × B.Cols).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	// Validate inputs via canonical validator
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Allocate result Dense
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int // loop iterators
		av, bv, current float64
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// row-major multiplication into res.data
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}
			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue // skip zero for performance
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv // accumulate product
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	// Return result
	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Input is validated non-nil; the original matrix is never mutated.
// Fast-path copies *Dense data via flat indexing; fallback uses At/Set.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
func Transpose(m Matrix) (Matrix, error) {
	// Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Allocate result Dense with flipped dimensions
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Fast-path for Dense → Dense
	var i, j int // loop iterators
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}
		return res, nil
	}

	// Fallback: generic interface loop
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	// Return result
	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Input is validated non-nil; the original matrix is never mutated.
// Fast-path multiplies a *Dense backing slice in a single flat loop.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	// Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Allocate result Dense
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Fast-path for Dense → Dense
	if dm, ok := m.(*Dense); ok {
		n := rows * cols
		for idx := 0; idx < n; idx++ {
			res.data[idx] = dm.data[idx] * alpha
		}
		return res, nil
	}

	// Fallback: generic interface loop
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, j, v*alpha); err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	// Return result
	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	// Validate m is not nil.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	// Validate x is not nil and matches the number of columns.
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	// Prepare result vector y with length rows.
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows) // allocate exactly rows outputs

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int // indices and row base offset
		var acc, xv float64
		for i = 0; i < d.r; i++ { // iterate rows deterministically
			acc = ZeroSum             // reset accumulator per row
			base = i * d.c            // compute flat base offset for row i
			for j = 0; j < d.c; j++ { // iterate columns
				xv = x[j]    // read x(j) once per iteration
				if xv != 0 { // skip zero multiplications
					acc += d.data[base+j] * xv // accumulate a(i,j)*x(j)
				}
			}
			y[i] = acc // store y(i)
		}

		return y, nil // return on fast-path
	}

	// Fallback: interface-based dot-products via At.
	var i, j int   // loop indices
	var mv float64 // temporary to hold m(i,j)
	var err error
	for i = 0; i < rows; i++ { // iterate rows
		y[i] = ZeroSum             // initialize y(i) to zero
		for j = 0; j < cols; j++ { // iterate columns
			mv, err = m.At(i, j) // read m(i,j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j] // accumulate
		}
	}

	return y, nil // return computed vector
}

// Copy performs an element-wise copy of src into dst.
// Implementation:
//   - Stage 1: Validate both operands non-nil and identically shaped.
//   - Stage 2: Fast-path when both are *Dense (single flat copy); otherwise
//     fall back to At/Set with fixed i→j order.
//
// Behavior highlights:
//   - dst is the only mutated operand; src is read-only.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from ValidateBinarySameShape).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Copy(dst, src Matrix) error {
	// Validate shapes match
	if err := ValidateBinarySameShape(dst, src); err != nil {
		return matrixErrorf(opCopy, err)
	}

	// Fast-path: both *Dense → single built-in copy over the backing slices.
	if dd, okD := dst.(*Dense); okD {
		if ds, okS := src.(*Dense); okS {
			copy(dd.data, ds.data)
			return nil
		}
	}

	// Fallback: generic interface loop with fixed i→j order.
	rows, cols := src.Rows(), src.Cols()
	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = src.At(i, j)
			if err != nil {
				return matrixErrorf(opCopy, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = dst.Set(i, j, v); err != nil {
				return matrixErrorf(opCopy, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return nil
}
