// SPDX-License-Identifier: MIT

// Command lvlpca fits PCA models on CSV datasets and projects data onto the
// leading principal components.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lvlpca",
	Short: "Principal component analysis over CSV datasets",
	Long: `lvlpca reads a CSV dataset (rows = observations, columns = features),
fits a PCA model by power iteration with deflation, and writes the projected
data to a timestamped CSV. Fitted models can be saved as JSON and reused.`,
	SilenceUsage: true,
}

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cobra.OnInitialize(setupLogging)
}

func setupLogging() {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
