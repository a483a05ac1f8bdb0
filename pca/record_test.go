// Package pca_test contains unit tests for model persistence: Record,
// FromRecord and the JSON save/load round-trip.
package pca_test

import (
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvlpca/pca"
	"github.com/stretchr/testify/require"
)

// TestRecordRoundTrip snapshots a fitted model and rebuilds it, requiring an
// identical projection from the rebuilt model.
func TestRecordRoundTrip(t *testing.T) {
	model, err := pca.Fit(canonicalData(t), 1)
	require.NoError(t, err)

	rec, err := model.Record()
	require.NoError(t, err)
	require.Equal(t, 1, rec.NComponents)
	require.Len(t, rec.Mean, 2)
	require.Len(t, rec.Eigenvalues, 2)
	require.Len(t, rec.Eigenvectors, 2)

	rebuilt, err := pca.FromRecord(rec)
	require.NoError(t, err)

	want, err := model.Transform(canonicalData(t))
	require.NoError(t, err)
	got, err := rebuilt.Transform(canonicalData(t))
	require.NoError(t, err)
	for i := 0; i < want.Rows(); i++ {
		a, _ := want.At(i, 0)
		b, _ := got.At(i, 0)
		require.Equal(t, a, b) // identical projection after the round-trip
	}
}

// TestRecordUnfitted ensures an unfitted model refuses to snapshot.
func TestRecordUnfitted(t *testing.T) {
	var model pca.Model // never fitted

	_, err := model.Record()
	require.ErrorIs(t, err, pca.ErrNotFitted)
}

// TestFromRecordRejectsInconsistent covers the structural validation of
// serialized records.
func TestFromRecordRejectsInconsistent(t *testing.T) {
	_, err := pca.FromRecord(nil) // nil record
	require.ErrorIs(t, err, pca.ErrInvalidModel)

	base := func() *pca.ModelRecord {
		return &pca.ModelRecord{
			NComponents:  1,
			Mean:         []float64{0, 0},
			Eigenvalues:  []float64{2, 1},
			Eigenvectors: [][]float64{{1, 0}, {0, 1}},
		}
	}

	rec := base()
	rec.NComponents = 3 // exceeds the 2 features
	_, err = pca.FromRecord(rec)
	require.ErrorIs(t, err, pca.ErrInvalidModel)

	rec = base()
	rec.Eigenvalues = []float64{2} // wrong spectrum length
	_, err = pca.FromRecord(rec)
	require.ErrorIs(t, err, pca.ErrInvalidModel)

	rec = base()
	rec.Eigenvectors = [][]float64{{1, 0}} // missing a row
	_, err = pca.FromRecord(rec)
	require.ErrorIs(t, err, pca.ErrInvalidModel)

	rec = base()
	rec.Eigenvectors[1] = []float64{0} // ragged row
	_, err = pca.FromRecord(rec)
	require.ErrorIs(t, err, pca.ErrInvalidModel)

	_, err = pca.FromRecord(&pca.ModelRecord{NComponents: 1}) // empty mean
	require.ErrorIs(t, err, pca.ErrInvalidModel)
}

// TestSaveLoadModel persists a fitted model to disk and reloads it.
func TestSaveLoadModel(t *testing.T) {
	model, err := pca.Fit(canonicalData(t), 1)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, pca.SaveModel(model, path))

	loaded, err := pca.LoadModel(path)
	require.NoError(t, err)
	require.Equal(t, model.NComponents(), loaded.NComponents())
	require.Equal(t, model.FeatureCount(), loaded.FeatureCount())
	require.Equal(t, model.Mean(), loaded.Mean())
	require.Equal(t, model.Eigenvalues(), loaded.Eigenvalues())
	require.Equal(t, model.ExplainedVarianceRatio(), loaded.ExplainedVarianceRatio())
}

// TestSaveModelUnfitted ensures persistence refuses an unfitted model.
func TestSaveModelUnfitted(t *testing.T) {
	var model pca.Model

	err := pca.SaveModel(&model, filepath.Join(t.TempDir(), "model.json"))
	require.ErrorIs(t, err, pca.ErrNotFitted)
}

// TestLoadModelMissingFile ensures a missing path surfaces the I/O error.
func TestLoadModelMissingFile(t *testing.T) {
	_, err := pca.LoadModel(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}
