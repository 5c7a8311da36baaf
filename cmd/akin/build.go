package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/akinlabs/akin/internal/config"
	"github.com/akinlabs/akin/internal/corpus"
	"github.com/akinlabs/akin/internal/lexicon"
	"github.com/akinlabs/akin/internal/similarity"
	"github.com/akinlabs/akin/internal/storage"
)

var (
	buildConfigPath string
	buildTopK       int
	buildWorkers    int
	buildOutput     string
	buildDatabase   string
)

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVarP(&buildConfigPath, "config", "c", config.DefaultFile, "Path to config file")
	buildCmd.Flags().IntVarP(&buildTopK, "top-k", "k", 0, "Neighbors per article (overrides config)")
	buildCmd.Flags().IntVar(&buildWorkers, "workers", 0, "Worker pool size (overrides config)")
	buildCmd.Flags().StringVarP(&buildOutput, "out", "o", "", "Result file path (overrides config)")
	buildCmd.Flags().StringVar(&buildDatabase, "db", "", "Also persist vectors and neighbors to this SQLite cache")
}

// BuildReport is the run report printed by the build command.
type BuildReport struct {
	Articles      int              `json:"articles"`
	Skipped       []corpus.Skipped `json:"skipped,omitempty"`
	TopK          int              `json:"top_k"`
	Output        string           `json:"output"`
	RunID         string           `json:"run_id,omitempty"`
	MissedLookups int64            `json:"missed_lookups"`
	DurationMs    int64            `json:"duration_ms"`
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Compute related posts for the whole corpus",
	Long: `Build runs the full pipeline: load the lemma dictionary and stopword
list, clean and vectorize every markdown article under the corpus
root, score all article pairs with cosine similarity and write the
top-K neighbors per article as JSON.

Malformed articles are skipped and reported; they never abort the run.`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	start := time.Now()

	cfg, err := config.Load(buildConfigPath)
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	if buildTopK > 0 {
		cfg.TopK = buildTopK
	}
	if buildWorkers > 0 {
		cfg.Workers = buildWorkers
	}
	if buildOutput != "" {
		cfg.Output = buildOutput
	}
	if buildDatabase != "" {
		cfg.Database = buildDatabase
	}

	log := logger.WithField("component", "build")
	dict, stops := mustLoadLexicon(cfg, log)

	paths, err := corpus.Scan(cfg.CorpusRoot)
	if err != nil {
		exitWithError(ExitDataError, "scanning corpus: %v", err)
	}
	if len(paths) == 0 {
		exitWithError(ExitDataError, "no markdown articles under %s", cfg.CorpusRoot)
	}

	analyzer := lexicon.NewAnalyzer(dict, stops, log)
	articles, skipped := corpus.Analyze(paths, analyzer, cfg.Workers, log)
	log.WithFields(logrus.Fields{
		"articles": len(articles),
		"skipped":  len(skipped),
		"misses":   analyzer.MissedLookups(),
	}).Info("corpus vectorized")

	matrix := similarity.Build(articles, cfg.Workers)
	top := similarity.TopK(matrix, cfg.TopK, cfg.Workers)

	if err := writeResults(cfg.Output, top); err != nil {
		exitWithError(ExitError, "writing results: %v", err)
	}

	var runID string
	if cfg.Database != "" {
		runID, err = persist(cfg, articles, skipped, top, start)
		if err != nil {
			exitWithError(ExitError, "updating cache database: %v", err)
		}
	}

	report := BuildReport{
		Articles:      len(articles),
		Skipped:       skipped,
		TopK:          cfg.TopK,
		Output:        cfg.Output,
		RunID:         runID,
		MissedLookups: analyzer.MissedLookups(),
		DurationMs:    time.Since(start).Milliseconds(),
	}

	if humanOutput {
		fmt.Printf("Vectorized %d articles (%d skipped), wrote top-%d neighbors to %s in %s\n",
			report.Articles, len(skipped), report.TopK, report.Output, time.Since(start).Round(time.Millisecond))
		for _, s := range skipped {
			fmt.Printf("  skipped %s: %s\n", s.Path, s.Reason)
		}
	} else {
		outputJSON(report)
	}

	return nil
}

// writeResults serializes the permalink -> neighbor-permalinks mapping
// atomically: temp file first, then rename.
func writeResults(path string, top map[string][]similarity.Neighbor) error {
	out := make(map[string][]string, len(top))
	for permalink, neighbors := range top {
		links := make([]string, len(neighbors))
		for i, n := range neighbors {
			links[i] = n.Permalink
		}
		out[permalink] = links
	}

	data, err := json.Marshal(out)
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// persist writes vectors, neighbor lists and a run record to the cache
// database.
func persist(cfg *config.Config, articles []corpus.Article, skipped []corpus.Skipped, top map[string][]similarity.Neighbor, start time.Time) (string, error) {
	db, err := storage.Open(cfg.Database)
	if err != nil {
		return "", err
	}
	defer db.Close()

	if err := db.ReplaceArticles(articles); err != nil {
		return "", err
	}
	if err := db.ReplaceNeighbors(top); err != nil {
		return "", err
	}
	return db.SaveRun(start, time.Now(), len(articles), len(skipped), cfg.TopK)
}
