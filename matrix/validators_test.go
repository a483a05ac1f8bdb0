// Package matrix_test contains unit tests for the canonical validators.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlpca/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSymmetric covers the structural guards and the tolerance scan.
func TestValidateSymmetric(t *testing.T) {
	err := matrix.ValidateSymmetric(nil, 1e-9) // nil input
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}}) // non-square
	err = matrix.ValidateSymmetric(rect, 1e-9)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	sym := mustDense(t, [][]float64{{2, 1}, {1, 2}}) // exactly symmetric
	require.NoError(t, matrix.ValidateSymmetric(sym, 1e-9))

	skew := mustDense(t, [][]float64{{2, 1}, {1.1, 2}}) // off by 0.1
	err = matrix.ValidateSymmetric(skew, 1e-9)
	require.ErrorIs(t, err, matrix.ErrAsymmetry) // beyond tolerance

	require.NoError(t, matrix.ValidateSymmetric(skew, 0.5)) // within tolerance

	one := mustDense(t, [][]float64{{7}}) // 1x1 is trivially symmetric
	require.NoError(t, matrix.ValidateSymmetric(one, 0))
}

// TestValidateMulCompatible covers nil and inner-dimension guards.
func TestValidateMulCompatible(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}})         // 1x2
	b := mustDense(t, [][]float64{{1}, {2}})       // 2x1, compatible
	require.NoError(t, matrix.ValidateMulCompatible(a, b))

	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, b), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, a), matrix.ErrDimensionMismatch)
}

// TestValidateVecLen covers nil vectors and exact-length matching.
func TestValidateVecLen(t *testing.T) {
	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 2), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
}
