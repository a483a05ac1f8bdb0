// Package pca_test contains unit tests for the eigen engine: PowerEigen
// (power iteration with deflation) and SortEigenPairs.
package pca_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlpca/matrix"
	"github.com/katalvlaran/lvlpca/pca"
	"github.com/stretchr/testify/require"
)

// mustDense builds a Dense matrix from row slices, failing the test on error.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(len(rows), len(rows[0]))
	require.NoError(t, err)
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}

// column extracts eigenvector column j as a plain slice.
func column(t *testing.T, m matrix.Matrix, j int) []float64 {
	t.Helper()
	out := make([]float64, m.Rows())
	for i := range out {
		v, err := m.At(i, j)
		require.NoError(t, err)
		out[i] = v
	}

	return out
}

// TestPowerEigenDiagonal extracts the full spectrum of diag(5,2,1): every
// eigenvalue lands exactly on the diagonal, eigenvectors on the axes.
func TestPowerEigenDiagonal(t *testing.T) {
	A := mustDense(t, [][]float64{{5, 0, 0}, {0, 2, 0}, {0, 0, 1}})

	values, vectors, err := pca.PowerEigen(A)
	require.NoError(t, err)
	require.Len(t, values, 3)

	require.InDelta(t, 5.0, values[0], 1e-8) // dominant pair first out
	require.InDelta(t, 2.0, values[1], 1e-8)
	require.InDelta(t, 1.0, values[2], 1e-8)

	// Each eigenvector aligns with the matching axis (up to sign).
	for k, axis := range []int{0, 1, 2} {
		v := column(t, vectors, k)
		require.InDelta(t, 1.0, math.Abs(v[axis]), 1e-6)
	}
}

// TestPowerEigenKnownSpectrum checks a non-diagonal symmetric 2x2 against
// its analytic eigenvalues (7 ± sqrt(5))/2.
func TestPowerEigenKnownSpectrum(t *testing.T) {
	A := mustDense(t, [][]float64{{4, 1}, {1, 3}})

	values, vectors, err := pca.PowerEigen(A)
	require.NoError(t, err)

	sqrt5 := math.Sqrt(5)
	require.InDelta(t, (7+sqrt5)/2, values[0], 1e-6) // dominant eigenvalue
	require.InDelta(t, (7-sqrt5)/2, values[1], 1e-6) // subdominant after deflation

	// Trace law: the eigenvalues sum to the trace.
	require.InDelta(t, 7.0, values[0]+values[1], 1e-6)

	// Orthonormality for a distinct spectrum.
	v0, v1 := column(t, vectors, 0), column(t, vectors, 1)
	require.InDelta(t, 1.0, matrix.Norm(v0), 1e-6)
	require.InDelta(t, 1.0, matrix.Norm(v1), 1e-6)
	dot, err := matrix.Dot(v0, v1)
	require.NoError(t, err)
	require.InDelta(t, 0.0, dot, 1e-4)

	// Residual law: A·v ≈ λ·v for the dominant pair.
	Av, err := matrix.MatVec(A, v0)
	require.NoError(t, err)
	for i := range Av {
		require.InDelta(t, values[0]*v0[i], Av[i], 1e-4)
	}
}

// TestPowerEigenNonNegativeOnPSD verifies eigenvalues of a covariance matrix
// stay above the numerical-noise floor.
func TestPowerEigenNonNegativeOnPSD(t *testing.T) {
	X := mustDense(t, [][]float64{{-3, 1}, {-1, -1}, {1, -1}, {3, 1}}) // centered
	cov, err := matrix.Covariance(X)
	require.NoError(t, err)

	values, _, err := pca.PowerEigen(cov)
	require.NoError(t, err)
	var trace float64
	for i := 0; i < cov.Rows(); i++ {
		d, atErr := cov.At(i, i)
		require.NoError(t, atErr)
		trace += d
	}
	var sum float64
	for _, v := range values {
		require.GreaterOrEqual(t, v, -1e-9) // PSD modulo numeric slack
		sum += v
	}
	require.InDelta(t, trace, sum, 1e-8) // trace law on a real covariance
}

// TestPowerEigenDeterministic ensures two runs on the same input produce
// bitwise-identical results (constant seed, fixed loop orders).
func TestPowerEigenDeterministic(t *testing.T) {
	A := mustDense(t, [][]float64{{4, 1}, {1, 3}})

	v1, m1, err := pca.PowerEigen(A)
	require.NoError(t, err)
	v2, m2, err := pca.PowerEigen(A)
	require.NoError(t, err)

	require.Equal(t, v1, v2) // identical eigenvalues, not just close
	for i := 0; i < m1.Rows(); i++ {
		for j := 0; j < m1.Cols(); j++ {
			a, _ := m1.At(i, j)
			b, _ := m2.At(i, j)
			require.Equal(t, a, b) // identical eigenvector entries
		}
	}
}

// TestPowerEigenInputUntouched ensures deflation happens on a working copy.
func TestPowerEigenInputUntouched(t *testing.T) {
	A := mustDense(t, [][]float64{{4, 1}, {1, 3}})

	_, _, err := pca.PowerEigen(A)
	require.NoError(t, err)

	v, err := A.At(0, 0) // original must be unchanged after the run
	require.NoError(t, err)
	require.Equal(t, 4.0, v)
}

// TestPowerEigenRejectsBadInput covers the structural failure modes, all
// surfaced through ErrEigenFailed.
func TestPowerEigenRejectsBadInput(t *testing.T) {
	_, _, err := pca.PowerEigen(nil) // nil matrix
	require.ErrorIs(t, err, pca.ErrEigenFailed)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}}) // non-square
	_, _, err = pca.PowerEigen(rect)
	require.ErrorIs(t, err, pca.ErrEigenFailed)

	skew := mustDense(t, [][]float64{{1, 2}, {5, 1}}) // asymmetric
	_, _, err = pca.PowerEigen(skew)
	require.ErrorIs(t, err, pca.ErrEigenFailed)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)
}

// TestPowerEigenBestEffortCap confirms that exhausting the iteration cap is
// NOT an error: the engine returns its last estimate.
func TestPowerEigenBestEffortCap(t *testing.T) {
	A := mustDense(t, [][]float64{{4, 1}, {1, 3}})

	values, vectors, err := pca.PowerEigen(A, pca.WithMaxIterations(1)) // starved cap
	require.NoError(t, err)      // best-effort, never a failure
	require.NotNil(t, vectors)   // outputs are still produced
	require.Len(t, values, 2)
}

// TestSortEigenPairsDescending verifies descending order and that each
// eigenvector column travels with its eigenvalue.
func TestSortEigenPairsDescending(t *testing.T) {
	values := []float64{1, 3, 2}
	// Column j is the constant vector (j+1), a visible pairing marker.
	vectors := mustDense(t, [][]float64{{1, 2, 3}, {1, 2, 3}})

	require.NoError(t, pca.SortEigenPairs(values, vectors))

	require.Equal(t, []float64{3, 2, 1}, values) // descending eigenvalues
	// Markers must follow their values: 3 paired with column "2", etc.
	require.Equal(t, []float64{2, 2}, column(t, vectors, 0))
	require.Equal(t, []float64{3, 3}, column(t, vectors, 1))
	require.Equal(t, []float64{1, 1}, column(t, vectors, 2))
}

// TestSortEigenPairsValidation covers the nil and pairing-width guards.
func TestSortEigenPairsValidation(t *testing.T) {
	err := pca.SortEigenPairs([]float64{1}, nil) // nil vectors
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	vectors := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	err = pca.SortEigenPairs([]float64{1}, vectors) // 1 value vs 2 columns
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestOptionPanics ensures nonsensical option values panic immediately.
func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { pca.WithTolerance(-1) })      // negative tolerance
	require.Panics(t, func() { pca.WithTolerance(math.NaN()) })
	require.Panics(t, func() { pca.WithMaxIterations(0) })   // zero cap
}
