// Package pca_test provides benchmarks for the eigen engine and the model
// lifecycle, using deterministic random fill for Dense matrices.
package pca_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlpca/matrix"
	"github.com/katalvlaran/lvlpca/pca"
)

// sinks to defeat dead-code elimination
var (
	sinkM     matrix.Matrix
	sinkV     []float64
	sinkModel *pca.Model
)

// benchDense allocates a rows×cols Dense, failing the benchmark on error.
func benchDense(b *testing.B, rows, cols int) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		b.Fatalf("NewDense(%d,%d): %v", rows, cols, err)
	}

	return m
}

// fillDenseRand fills m with deterministic pseudo-random values in [-1, 1).
func fillDenseRand(b *testing.B, m *matrix.Dense, seed int64) {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if err := m.Set(i, j, rng.Float64()*2-1); err != nil {
				b.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}
}

// benchCovariance builds a PSD covariance matrix of a random rows×n dataset.
func benchCovariance(b *testing.B, rows, n int, seed int64) matrix.Matrix {
	b.Helper()
	X := benchDense(b, rows, n)
	fillDenseRand(b, X, seed)
	means, err := matrix.MeanColumns(X)
	if err != nil {
		b.Fatal(err)
	}
	if err = matrix.CenterColumns(X, means); err != nil {
		b.Fatal(err)
	}
	cov, err := matrix.Covariance(X)
	if err != nil {
		b.Fatal(err)
	}

	return cov
}

func BenchmarkPowerEigen(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{8, 16, 32} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			cov := benchCovariance(b, 256, n, 606)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				values, vectors, err := pca.PowerEigen(cov)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = values
				sinkM = vectors
			}
		})
	}
}

func BenchmarkFit(b *testing.B) {
	b.ReportAllocs()
	for _, c := range []int{4, 8, 16} {
		b.Run(fmt.Sprintf("c=%d", c), func(b *testing.B) {
			data := benchDense(b, 512, c)
			fillDenseRand(b, data, 303)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				// Fit centers its argument in place; a fresh clone per
				// iteration keeps every run measuring the same work.
				b.StopTimer()
				d := data.Clone()
				b.StartTimer()
				model, err := pca.Fit(d, c/2)
				if err != nil {
					b.Fatal(err)
				}
				sinkModel = model
			}
		})
	}
}

func BenchmarkTransform(b *testing.B) {
	b.ReportAllocs()
	for _, c := range []int{4, 8, 16} {
		b.Run(fmt.Sprintf("c=%d", c), func(b *testing.B) {
			data := benchDense(b, 512, c)
			fillDenseRand(b, data, 404)
			model, err := pca.Fit(data.Clone(), c/2)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				// Transform also centers in place; clone per iteration.
				b.StopTimer()
				d := data.Clone()
				b.StartTimer()
				projected, trErr := model.Transform(d)
				if trErr != nil {
					b.Fatal(trErr)
				}
				sinkM = projected
			}
		})
	}
}
