package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/akinlabs/akin/internal/config"
	"github.com/akinlabs/akin/internal/corpus"
	"github.com/akinlabs/akin/internal/lexicon"
	"github.com/akinlabs/akin/internal/text"
)

var (
	inspectConfigPath string
	inspectTerms      int
)

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVarP(&inspectConfigPath, "config", "c", config.DefaultFile, "Path to config file")
	inspectCmd.Flags().IntVarP(&inspectTerms, "terms", "t", 10, "Number of top terms to show")
}

// TermCount is one lemma and its occurrence count.
type TermCount struct {
	Lemma string `json:"lemma"`
	Count int    `json:"count"`
}

// InspectResponse is the response for the inspect command.
type InspectResponse struct {
	Permalink      string      `json:"permalink"`
	Lemmas         int         `json:"lemmas"`
	DistinctLemmas int         `json:"distinct_lemmas"`
	TopTerms       []TermCount `json:"top_terms"`
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Show the term-frequency vector for one article",
	Long: `Inspect runs the clean, lemmatize and vectorize steps on a single
article file and prints its permalink and most frequent terms. Useful
for checking what the pipeline actually sees in an article.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(inspectConfigPath)
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	log := logger.WithField("component", "inspect")
	dict, stops := mustLoadLexicon(cfg, log)

	raw, err := os.ReadFile(args[0])
	if err != nil {
		exitWithError(ExitDataError, "reading article: %v", err)
	}

	frontMatter, body, err := text.Split(string(raw))
	if err != nil {
		exitWithError(ExitDataError, "splitting article: %v", err)
	}
	permalink, err := text.Permalink(frontMatter)
	if err != nil {
		exitWithError(ExitDataError, "extracting permalink: %v", err)
	}

	analyzer := lexicon.NewAnalyzer(dict, stops, log)
	lemmas := analyzer.Lemmas(text.Clean(body))
	terms := corpus.CountLemmas(lemmas)

	counts := make([]TermCount, 0, len(terms))
	for lemma, count := range terms {
		counts = append(counts, TermCount{Lemma: lemma, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Lemma < counts[j].Lemma
	})
	if inspectTerms > 0 && len(counts) > inspectTerms {
		counts = counts[:inspectTerms]
	}

	if humanOutput {
		fmt.Printf("%s: %d lemmas, %d distinct\n", permalink, len(lemmas), len(terms))
		for _, tc := range counts {
			fmt.Printf("%6d  %s\n", tc.Count, tc.Lemma)
		}
	} else {
		outputJSON(InspectResponse{
			Permalink:      permalink,
			Lemmas:         len(lemmas),
			DistinctLemmas: len(terms),
			TopTerms:       counts,
		})
	}

	return nil
}
