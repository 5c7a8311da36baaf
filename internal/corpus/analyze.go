package corpus

import (
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/akinlabs/akin/internal/lexicon"
	"github.com/akinlabs/akin/internal/text"
)

// Skipped records an article that could not be processed, and why.
type Skipped struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// Analyze cleans, lemmatizes and vectorizes every file on a worker
// pool. Articles are independent: a malformed or unreadable file is
// skipped with a diagnostic and never aborts the rest of the batch.
// Results are sorted so output does not depend on scheduling order.
func Analyze(paths []string, analyzer *lexicon.Analyzer, workers int, log *logrus.Entry) ([]Article, []Skipped) {
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	jobs := make(chan string)

	var (
		mu       sync.Mutex
		articles []Article
		skipped  []Skipped
	)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				article, err := analyzeFile(path, analyzer)
				if err != nil {
					if log != nil {
						log.WithField("path", path).WithError(err).Warn("skipping article")
					}
					mu.Lock()
					skipped = append(skipped, Skipped{Path: path, Reason: err.Error()})
					mu.Unlock()
					continue
				}
				mu.Lock()
				articles = append(articles, *article)
				mu.Unlock()
			}
		}()
	}

	for _, path := range paths {
		jobs <- path
	}
	close(jobs)
	wg.Wait()

	sort.Slice(articles, func(i, j int) bool { return articles[i].Permalink < articles[j].Permalink })
	sort.Slice(skipped, func(i, j int) bool { return skipped[i].Path < skipped[j].Path })

	return articles, skipped
}

// analyzeFile runs the clean -> lemmatize -> count pipeline on one
// article file.
func analyzeFile(path string, analyzer *lexicon.Analyzer) (*Article, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading article: %w", err)
	}

	frontMatter, body, err := text.Split(string(raw))
	if err != nil {
		return nil, err
	}

	permalink, err := text.Permalink(frontMatter)
	if err != nil {
		return nil, err
	}

	lemmas := analyzer.Lemmas(text.Clean(body))
	return &Article{Permalink: permalink, Terms: CountLemmas(lemmas)}, nil
}
