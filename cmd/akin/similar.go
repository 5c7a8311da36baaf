package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akinlabs/akin/internal/config"
	"github.com/akinlabs/akin/internal/similarity"
	"github.com/akinlabs/akin/internal/storage"
)

var (
	similarConfigPath string
	similarDatabase   string
	similarLimit      int
)

func init() {
	rootCmd.AddCommand(similarCmd)

	similarCmd.Flags().StringVarP(&similarConfigPath, "config", "c", config.DefaultFile, "Path to config file")
	similarCmd.Flags().StringVar(&similarDatabase, "db", "", "Cache database path (overrides config)")
	similarCmd.Flags().IntVarP(&similarLimit, "limit", "l", 0, "Maximum number of results")
}

// SimilarResponse is the response for the similar command.
type SimilarResponse struct {
	Permalink string                `json:"permalink"`
	Neighbors []similarity.Neighbor `json:"neighbors"`
	Total     int                   `json:"total"`
}

var similarCmd = &cobra.Command{
	Use:   "similar <permalink>",
	Short: "Look up precomputed neighbors for one article",
	Long: `Similar reads the neighbor list computed by 'akin build --db' from
the cache database. The source article is never in its own list.`,
	Args: cobra.ExactArgs(1),
	RunE: runSimilar,
}

func runSimilar(cmd *cobra.Command, args []string) error {
	permalink := args[0]

	dbPath := similarDatabase
	if dbPath == "" {
		cfg, err := config.Load(similarConfigPath)
		if err != nil {
			exitWithError(ExitConfigError, "loading config: %v", err)
		}
		dbPath = cfg.Database
	}
	if dbPath == "" {
		exitWithError(ExitConfigError, "no cache database configured; run 'akin build --db' first")
	}

	db, err := storage.Open(dbPath)
	if err != nil {
		exitWithError(ExitError, "opening cache database: %v", err)
	}
	defer db.Close()

	neighbors, err := db.Neighbors(permalink, similarLimit)
	if errors.Is(err, storage.ErrNotIndexed) {
		exitWithError(ExitNotIndexed, "permalink %q is not in the cache; rebuild with 'akin build --db'", permalink)
	}
	if err != nil {
		exitWithError(ExitError, "querying neighbors: %v", err)
	}

	if humanOutput {
		fmt.Printf("Articles similar to %s:\n", permalink)
		for i, n := range neighbors {
			fmt.Printf("%2d. %s (%.4f)\n", i+1, n.Permalink, n.Score)
		}
	} else {
		outputJSON(SimilarResponse{
			Permalink: permalink,
			Neighbors: neighbors,
			Total:     len(neighbors),
		})
	}

	return nil
}
