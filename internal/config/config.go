// SPDX-License-Identifier: MIT

// Package config loads run configuration for the lvlpca CLI from a YAML file.
// Flags override file values; file values override the defaults below.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults applied before the file and flags are consulted.
const (
	DefaultComponents    = 2
	DefaultTolerance     = 1e-10
	DefaultMaxIterations = 1000
)

// ErrInvalidConfig flags a configuration that cannot drive a run.
var ErrInvalidConfig = errors.New("config: invalid run configuration")

// Run describes one PCA run: where the data lives, where results go, and the
// numeric knobs forwarded to the engine.
type Run struct {
	// Input is the CSV dataset to fit and project (rows = observations).
	Input string `yaml:"input"`
	// Output is the base name for the projected CSV; a timestamp is inserted
	// before the extension at write time.
	Output string `yaml:"output"`
	// ModelOut, when non-empty, is where the fitted model JSON is saved.
	ModelOut string `yaml:"model_out"`
	// Components is the number of principal components to keep.
	Components int `yaml:"components"`
	// Tolerance is the eigenvalue convergence threshold.
	Tolerance float64 `yaml:"tolerance"`
	// MaxIterations caps each power-iteration pass.
	MaxIterations int `yaml:"max_iterations"`
}

// DefaultRun returns a Run populated with the package defaults and empty paths.
func DefaultRun() Run {
	return Run{
		Components:    DefaultComponents,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// Load reads a YAML run configuration from path on top of the defaults.
// An empty path returns the defaults unchanged.
func Load(path string) (Run, error) {
	run := DefaultRun()
	if path == "" {
		return run, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return run, fmt.Errorf("config: %w", err)
	}
	if err = yaml.Unmarshal(data, &run); err != nil {
		return run, fmt.Errorf("config: %w", err)
	}

	return run, nil
}

// Validate rejects configurations that cannot drive a run. The component
// count is only checked for positivity here; the upper bound depends on the
// dataset width and is enforced after the input is read.
func (r Run) Validate() error {
	if r.Input == "" {
		return fmt.Errorf("input path is required: %w", ErrInvalidConfig)
	}
	if r.Output == "" {
		return fmt.Errorf("output path is required: %w", ErrInvalidConfig)
	}
	if r.Components < 1 {
		return fmt.Errorf("components must be >= 1, got %d: %w", r.Components, ErrInvalidConfig)
	}
	if r.Tolerance < 0 {
		return fmt.Errorf("tolerance must be >= 0, got %g: %w", r.Tolerance, ErrInvalidConfig)
	}
	if r.MaxIterations < 1 {
		return fmt.Errorf("max_iterations must be >= 1, got %d: %w", r.MaxIterations, ErrInvalidConfig)
	}

	return nil
}
