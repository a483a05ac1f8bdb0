// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlpca/dataset"
	"github.com/katalvlaran/lvlpca/pca"
)

var (
	transformModel  string
	transformInput  string
	transformOutput string
)

var transformCmd = &cobra.Command{
	Use:   "transform",
	Short: "Project a CSV dataset with a previously saved model",
	Long: `Load a fitted model from JSON and project a CSV dataset onto its
principal components without refitting. The dataset must have the same
feature count the model was fitted on.`,
	RunE: transformPipeline,
}

func init() {
	transformCmd.Flags().StringVarP(&transformModel, "model", "m", "", "fitted model JSON (required)")
	transformCmd.Flags().StringVarP(&transformInput, "input", "i", "", "input CSV dataset (required)")
	transformCmd.Flags().StringVarP(&transformOutput, "output", "o", "", "output CSV base path (required)")
	_ = transformCmd.MarkFlagRequired("model")
	_ = transformCmd.MarkFlagRequired("input")
	_ = transformCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(transformCmd)
}

func transformPipeline(_ *cobra.Command, _ []string) error {
	model, err := pca.LoadModel(transformModel)
	if err != nil {
		return err
	}
	log.Info().Str("model", transformModel).
		Int("components", model.NComponents()).Int("features", model.FeatureCount()).
		Msg("model loaded")

	data, err := dataset.ReadCSV(transformInput)
	if err != nil {
		return err
	}
	projected, err := model.Transform(data)
	if err != nil {
		return fmt.Errorf("transform: %w", err)
	}

	outPath := dataset.TimestampedName(transformOutput, time.Now())
	if err = dataset.WriteCSV(projected, outPath); err != nil {
		return err
	}
	log.Info().Str("output", outPath).
		Int("rows", projected.Rows()).Int("cols", projected.Cols()).
		Msg("projection written")

	return nil
}
