// SPDX-License-Identifier: MIT

// Package pca: functional configuration for the eigen engine. This file
// defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves setters against defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package pca

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the Rayleigh-quotient convergence threshold: a power
	// pass stops once |λ_new − λ_prev| drops below it.
	DefaultTolerance = 1e-10

	// DefaultMaxIterations caps each power pass. Exhausting the cap is NOT an
	// error — the engine accepts its last estimate (best-effort convergence).
	DefaultMaxIterations = 1000
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicToleranceInvalid     = "pca: WithTolerance: tol must be finite, non-negative"
	panicMaxIterationsInvalid = "pca: WithMaxIterations: n must be > 0"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally unexported-field-only to prevent external mutation;
// public entry points accept `...Option` and resolve them via gatherOptions.
type Options struct {
	tolerance     float64 // >= 0; DefaultTolerance
	maxIterations int     // > 0; DefaultMaxIterations
}

// WithTolerance sets the convergence threshold for the Rayleigh quotient.
// Implementation:
//   - Stage 1: validate tol is finite and ≥ 0 (panic otherwise).
//   - Stage 2: return a setter that writes tol into Options.
//
// Notes:
//   - Smaller tolerances sharpen eigenvalues at the cost of more iterations;
//     1e-10 is a sound default for float64 covariance input.
//
// Complexity: O(1).
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	// Assign validated tolerance
	return func(o *Options) { o.tolerance = tol }
}

// WithMaxIterations caps the per-eigenpair power-iteration loop.
// Implementation:
//   - Stage 1: validate n > 0 (panic otherwise).
//   - Stage 2: return a setter that writes n into Options.
//
// Notes:
//   - The cap is the sole bound on the iteration loop; there is no timeout or
//     cancellation primitive in the core.
//
// Complexity: O(1).
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterationsInvalid)
	}

	// Assign validated iteration cap
	return func(o *Options) { o.maxIterations = n }
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Implementation:
//   - Stage 1: start from the documented defaults.
//   - Stage 2: apply setters in order (last-writer-wins).
//
// Determinism: stable for a given sequence of setters.
// Complexity: O(k) for k = len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		tolerance:     DefaultTolerance,
		maxIterations: DefaultMaxIterations,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
