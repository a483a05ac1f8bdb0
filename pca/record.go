// SPDX-License-Identifier: MIT
// Package pca: model persistence. A fitted Model round-trips through
// ModelRecord, a plain JSON-taggable snapshot, so models can be saved after an
// expensive Fit and reloaded for transform-only workloads.

package pca

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/katalvlaran/lvlpca/matrix"
)

// Operation name constants for unified error wrapping.
const (
	opRecord     = "Record"
	opFromRecord = "FromRecord"
	opSaveModel  = "SaveModel"
	opLoadModel  = "LoadModel"
)

// modelFilePerm is the file mode for persisted model snapshots.
const modelFilePerm = 0o644

// ModelRecord is the serialized form of a fitted Model. Eigenvectors are
// stored row-major as a slice of rows; column j of the nested slice pairs
// Eigenvalues[j].
type ModelRecord struct {
	NComponents            int         `json:"n_components"`
	Mean                   []float64   `json:"mean"`
	Eigenvalues            []float64   `json:"eigenvalues"`
	Eigenvectors           [][]float64 `json:"eigenvectors"`
	ExplainedVarianceRatio float64     `json:"explained_variance_ratio"`
}

// Record snapshots the fitted model into a ModelRecord.
// Errors: ErrNotFitted for a nil or unfitted receiver.
// Complexity: O(c²) for the eigenvector copy.
func (m *Model) Record() (*ModelRecord, error) {
	if m == nil || m.eigenvectors == nil {
		return nil, pcaErrorf(opRecord, ErrNotFitted)
	}

	c := len(m.mean)
	vectors := make([][]float64, c)
	var i, j int
	var v float64
	for i = 0; i < c; i++ {
		vectors[i] = make([]float64, c)
		for j = 0; j < c; j++ {
			v, _ = m.eigenvectors.At(i, j) // bounds-safe: C×C by construction
			vectors[i][j] = v
		}
	}

	return &ModelRecord{
		NComponents:            m.nComponents,
		Mean:                   m.Mean(),
		Eigenvalues:            m.Eigenvalues(),
		Eigenvectors:           vectors,
		ExplainedVarianceRatio: m.explainedVarianceRatio,
	}, nil
}

// FromRecord rebuilds a Model from a serialized snapshot.
// Implementation:
//   - Stage 1: Validate internal consistency — component range, matching
//     mean/eigenvalue lengths, and a square C×C eigenvector grid.
//   - Stage 2: Deep-copy every buffer so the Model never aliases the record.
//
// Errors: ErrInvalidModel wrapping the specific inconsistency.
// Complexity: O(c²).
func FromRecord(rec *ModelRecord) (*Model, error) {
	// Stage 1 (Validate): reject structurally inconsistent records outright.
	if rec == nil {
		return nil, pcaErrorf(opFromRecord, fmt.Errorf("nil record: %w", ErrInvalidModel))
	}
	c := len(rec.Mean)
	if c == 0 {
		return nil, pcaErrorf(opFromRecord, fmt.Errorf("empty mean: %w", ErrInvalidModel))
	}
	if rec.NComponents < 1 || rec.NComponents > c {
		return nil, pcaErrorf(opFromRecord, fmt.Errorf("n_components %d vs %d features: %w",
			rec.NComponents, c, ErrInvalidModel))
	}
	if len(rec.Eigenvalues) != c {
		return nil, pcaErrorf(opFromRecord, fmt.Errorf("eigenvalues %d vs %d features: %w",
			len(rec.Eigenvalues), c, ErrInvalidModel))
	}
	if len(rec.Eigenvectors) != c {
		return nil, pcaErrorf(opFromRecord, fmt.Errorf("eigenvector rows %d vs %d features: %w",
			len(rec.Eigenvectors), c, ErrInvalidModel))
	}

	// Stage 2 (Copy): fresh buffers, validating row widths as we go.
	vectors, err := matrix.NewDense(c, c)
	if err != nil {
		return nil, pcaErrorf(opFromRecord, err)
	}
	var i, j int
	for i = 0; i < c; i++ {
		if len(rec.Eigenvectors[i]) != c {
			return nil, pcaErrorf(opFromRecord, fmt.Errorf("eigenvector row %d width %d vs %d: %w",
				i, len(rec.Eigenvectors[i]), c, ErrInvalidModel))
		}
		for j = 0; j < c; j++ {
			_ = vectors.Set(i, j, rec.Eigenvectors[i][j])
		}
	}

	mean := make([]float64, c)
	copy(mean, rec.Mean)
	values := make([]float64, c)
	copy(values, rec.Eigenvalues)

	return &Model{
		nComponents:            rec.NComponents,
		mean:                   mean,
		eigenvalues:            values,
		eigenvectors:           vectors,
		explainedVarianceRatio: rec.ExplainedVarianceRatio,
	}, nil
}

// SaveModel writes the fitted model to path as indented JSON.
// Errors: ErrNotFitted, or the underlying marshal/write error.
func SaveModel(m *Model, path string) error {
	rec, err := m.Record()
	if err != nil {
		return pcaErrorf(opSaveModel, err)
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return pcaErrorf(opSaveModel, err)
	}
	if err = os.WriteFile(path, data, modelFilePerm); err != nil {
		return pcaErrorf(opSaveModel, err)
	}

	return nil
}

// LoadModel reads a JSON model snapshot from path and rebuilds the Model.
// Errors: the underlying read/unmarshal error, or ErrInvalidModel for an
// inconsistent record.
func LoadModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pcaErrorf(opLoadModel, err)
	}
	var rec ModelRecord
	if err = json.Unmarshal(data, &rec); err != nil {
		return nil, pcaErrorf(opLoadModel, err)
	}
	model, err := FromRecord(&rec)
	if err != nil {
		return nil, pcaErrorf(opLoadModel, err)
	}

	return model, nil
}
