// Package lvlpca is a small, deterministic toolkit for principal component
// analysis over dense float64 matrices.
//
// 🚀 What is lvlpca?
//
//	A focused numeric library plus CLI that brings together:
//		• Matrix primitives: dense row-major storage, multiplication,
//		  transpose, scaling, matrix-vector products
//		• Column statistics: means, in-place centering, sample covariance
//		• Eigen engines: power iteration with deflation (deterministic seed)
//		  and a Jacobi decomposition for clustered spectra
//		• PCA models: fit, project, explained-variance accounting and JSON
//		  persistence
//		• Dataset plumbing: CSV in/out with timestamped output naming
//
// ✨ Why choose lvlpca?
//
//   - Deterministic by construction – constant iteration seeds, fixed loop
//     orders, identical inputs give identical models
//   - Explicit contracts – documented in-place centering, sentinel errors
//     matched with errors.Is
//   - Beginner-friendly – minimal API, clear, intuitive naming
//
// Everything is organized under a handful of subpackages:
//
//	matrix/     — Dense storage, kernels, vector utilities, column statistics
//	matrix/ops/ — Jacobi eigenvalue decomposition
//	pca/        — model lifecycle: Fit, Transform, persistence
//	dataset/    — CSV loading and storing
//	cmd/lvlpca/ — command-line pipeline (run, transform)
//
// Quick start:
//
//	data, _ := dataset.ReadCSV("samples.csv")
//	model, _ := pca.Fit(data, 2)
//	projected, _ := model.Transform(fresh)
//
//	go get github.com/katalvlaran/lvlpca
package lvlpca
