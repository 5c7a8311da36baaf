// Package main provides the akin CLI entry point.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

// verbose enables debug-level diagnostics, including per-token
// dictionary misses.
var verbose bool

var logger = logrus.New()

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "akin",
	Short: "Related-posts generator for markdown corpora",
	Long: `akin computes content similarity across a corpus of markdown articles
and emits, for each article, its most similar neighbors.

Articles are cleaned, lemmatized against a static dictionary, reduced
to sparse term-frequency vectors and scored pairwise with cosine
similarity. Results are written as JSON and can be cached in SQLite
for fast lookups.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	// Pick up AKIN_* overrides from a .env file if present.
	_ = godotenv.Load()

	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetOutput(os.Stderr)

	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Version = Version
}
