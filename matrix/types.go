// SPDX-License-Identifier: MIT

// Package matrix: domain-facing types. Errors live in errors.go and the
// validation helpers in validators.go per the package conventions.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Algorithms in this module accept the interface and return concrete *Dense
// results, so custom storage layouts remain pluggable on the input side.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrIndexOutOfBounds if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrIndexOutOfBounds if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
