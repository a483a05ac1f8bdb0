// SPDX-License-Identifier: MIT
// Package matrix: fixed-length vector utilities shared by iterative solvers.
// These are pure functions over []float64; none of them allocates except Dot's
// scalar result, and Normalize is the only one that mutates its argument.

package matrix

import "math"

// NormFloor is the smallest L2 norm Normalize will divide by. Norms at or
// below this floor leave the vector unchanged to avoid division by near-zero.
const NormFloor = 1e-10

// Norm returns the L2 (Euclidean) norm of v: sqrt(Σ v[i]²).
// A nil or empty vector has norm 0.
// Complexity: O(n), Space O(1).
func Norm(v []float64) float64 {
	sq := ZeroSum
	for i := 0; i < len(v); i++ { // deterministic accumulation order
		sq += v[i] * v[i]
	}

	return math.Sqrt(sq)
}

// Normalize scales v in place to unit L2 norm.
// Degenerate vectors (norm ≤ NormFloor) are left unchanged — a stable policy
// that avoids amplifying numeric noise into a fake direction.
// Complexity: O(n), Space O(1).
func Normalize(v []float64) {
	norm := Norm(v)
	if norm <= NormFloor {
		return // keep the vector exactly as-is
	}
	inv := 1.0 / norm
	for i := 0; i < len(v); i++ {
		v[i] *= inv
	}
}

// Dot returns the inner product Σ a[i]·b[i].
// Returns ErrDimensionMismatch when the lengths differ; nil slices of equal
// length (both empty) yield 0.
// Complexity: O(n), Space O(1).
func Dot(a, b []float64) (float64, error) {
	// Lengths must agree exactly; there is no broadcasting.
	if len(a) != len(b) {
		return 0, validatorErrorf("Dot", ErrDimensionMismatch)
	}
	sum := ZeroSum
	for i := 0; i < len(a); i++ {
		sum += a[i] * b[i]
	}

	return sum, nil
}
