// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlpca/dataset"
	"github.com/katalvlaran/lvlpca/internal/config"
	"github.com/katalvlaran/lvlpca/pca"
)

var (
	runConfigPath string
	runInput      string
	runOutput     string
	runModelOut   string
	runComponents int
	runTolerance  float64
	runMaxIter    int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fit a PCA model on a CSV dataset and write the projection",
	Long: `Run the full pipeline: read the input CSV, fit a PCA model with the
requested component count, project the data onto the principal components and
write the result next to the requested output path with a timestamp inserted
before the extension. With --model-out the fitted model is also saved as JSON.

A component count larger than the dataset width is clamped to the width with
a warning; the engine itself always rejects out-of-range counts.`,
	RunE: runPipeline,
}

func init() {
	runCmd.Flags().StringVarP(&runConfigPath, "config", "c", "", "YAML run configuration file")
	runCmd.Flags().StringVarP(&runInput, "input", "i", "", "input CSV dataset")
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "", "output CSV base path")
	runCmd.Flags().StringVar(&runModelOut, "model-out", "", "save the fitted model JSON here")
	runCmd.Flags().IntVarP(&runComponents, "components", "k", 0, "number of principal components")
	runCmd.Flags().Float64Var(&runTolerance, "tolerance", 0, "eigenvalue convergence threshold")
	runCmd.Flags().IntVar(&runMaxIter, "max-iterations", 0, "power iteration cap per eigenpair")
	rootCmd.AddCommand(runCmd)
}

// mergeFlags lays explicitly-set flags over the file/default configuration.
func mergeFlags(cmd *cobra.Command, run *config.Run) {
	if cmd.Flags().Changed("input") {
		run.Input = runInput
	}
	if cmd.Flags().Changed("output") {
		run.Output = runOutput
	}
	if cmd.Flags().Changed("model-out") {
		run.ModelOut = runModelOut
	}
	if cmd.Flags().Changed("components") {
		run.Components = runComponents
	}
	if cmd.Flags().Changed("tolerance") {
		run.Tolerance = runTolerance
	}
	if cmd.Flags().Changed("max-iterations") {
		run.MaxIterations = runMaxIter
	}
}

func runPipeline(cmd *cobra.Command, _ []string) error {
	run, err := config.Load(runConfigPath)
	if err != nil {
		return err
	}
	mergeFlags(cmd, &run)
	if err = run.Validate(); err != nil {
		return err
	}

	data, err := dataset.ReadCSV(run.Input)
	if err != nil {
		return err
	}
	log.Info().Str("input", run.Input).
		Int("rows", data.Rows()).Int("cols", data.Cols()).
		Msg("dataset loaded")

	// Courtesy clamp at the CLI boundary; the engine rejects k > width.
	k := run.Components
	if k > data.Cols() {
		log.Warn().Int("requested", k).Int("features", data.Cols()).
			Msg("components exceed feature count, clamping")
		k = data.Cols()
	}

	start := time.Now()
	model, err := pca.Fit(data, k,
		pca.WithTolerance(run.Tolerance),
		pca.WithMaxIterations(run.MaxIterations))
	if err != nil {
		return fmt.Errorf("fit: %w", err)
	}
	log.Info().Int("components", model.NComponents()).
		Float64("explained_variance_ratio", model.ExplainedVarianceRatio()).
		Dur("elapsed", time.Since(start)).
		Msg("model fitted")
	log.Debug().Floats64("eigenvalues", model.Eigenvalues()).Msg("spectrum")

	// Fit centered `data` in place; reload the file so Transform centers
	// the original values exactly once.
	fresh, err := dataset.ReadCSV(run.Input)
	if err != nil {
		return err
	}
	projected, err := model.Transform(fresh)
	if err != nil {
		return fmt.Errorf("transform: %w", err)
	}

	outPath := dataset.TimestampedName(run.Output, time.Now())
	if err = dataset.WriteCSV(projected, outPath); err != nil {
		return err
	}
	log.Info().Str("output", outPath).
		Int("rows", projected.Rows()).Int("cols", projected.Cols()).
		Msg("projection written")

	if run.ModelOut != "" {
		if err = pca.SaveModel(model, run.ModelOut); err != nil {
			return fmt.Errorf("save model: %w", err)
		}
		log.Info().Str("model", run.ModelOut).Msg("model saved")
	}

	return nil
}
