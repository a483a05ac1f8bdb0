// SPDX-License-Identifier: MIT

// Package dataset loads and stores numeric matrices as CSV files: every row
// is one observation, every column one feature, every cell a float64. It is
// the bridge between on-disk datasets and the matrix package.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/lvlpca/matrix"
)

// Sentinel errors for malformed dataset files.
var (
	// ErrEmptyDataset indicates a CSV file with no data rows.
	ErrEmptyDataset = errors.New("dataset: file contains no rows")

	// ErrBadCell indicates a CSV cell that does not parse as float64.
	ErrBadCell = errors.New("dataset: cell is not a number")
)

// Formatting and naming constants.
const (
	// cellFormat renders written cells with six fractional digits, enough to
	// round-trip the precision PCA projections carry in practice.
	cellFormat = "%.6f"

	// timestampLayout stamps output file names down to the second.
	timestampLayout = "20060102_150405"

	datasetFilePerm = 0o644
)

// ReadCSV loads path into a dense rows×cols matrix.
// Implementation:
//   - Stage 1: Read all records; csv.Reader enforces rectangular rows, so a
//     ragged file surfaces as a parse error with the offending line number.
//   - Stage 2: Parse every cell as float64 into a fresh Dense.
//
// Errors: file-system errors, ErrEmptyDataset, ErrBadCell (wrapped with the
// row/column position), matrix.ErrInvalidDimensions on a zero-width row.
// Complexity: O(r·c).
func ReadCSV(path string) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadCSV: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ReadCSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("ReadCSV: %s: %w", path, ErrEmptyDataset)
	}

	rows, cols := len(records), len(records[0])
	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("ReadCSV: %w", err)
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = strconv.ParseFloat(strings.TrimSpace(records[i][j]), 64)
			if err != nil {
				return nil, fmt.Errorf("ReadCSV: row %d col %d %q: %w", i, j, records[i][j], ErrBadCell)
			}
			_ = m.Set(i, j, v) // bounds-safe: i,j bounded by the allocation
		}
	}

	return m, nil
}

// WriteCSV stores m at path, one matrix row per CSV record, cells rendered
// with cellFormat.
// Errors: matrix.ErrNilMatrix, file-system or flush errors.
// Complexity: O(r·c).
func WriteCSV(m matrix.Matrix, path string) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, datasetFilePerm)
	if err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	rows, cols := m.Rows(), m.Cols()
	record := make([]string, cols)
	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, _ = m.At(i, j) // bounds-safe: i,j bounded by the shape
			record[j] = fmt.Sprintf(cellFormat, v)
		}
		if err = w.Write(record); err != nil {
			return fmt.Errorf("WriteCSV: %w", err)
		}
	}
	w.Flush()
	if err = w.Error(); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}

	return nil
}

// TimestampedName derives an output file name from path by inserting a
// timestamp before the extension: "out/result.csv" at 2026-08-30 12:00:00
// becomes "out/result_20260830_120000.csv".
func TimestampedName(path string, t time.Time) string {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)

	return fmt.Sprintf("%s_%s%s", base, t.Format(timestampLayout), ext)
}
