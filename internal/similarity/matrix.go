package similarity

import (
	"runtime"
	"sync"

	"github.com/akinlabs/akin/internal/corpus"
)

// Matrix holds the symmetric pairwise similarity scores, keyed both
// ways: Matrix[a][b] == Matrix[b][a]. Self-pairs are never present.
type Matrix map[string]map[string]float64

// Score returns the similarity of two distinct articles.
func (m Matrix) Score(a, b string) (float64, bool) {
	row, ok := m[a]
	if !ok {
		return 0, false
	}
	score, ok := row[b]
	return score, ok
}

// pairScore is one scored unordered article pair, by index into the
// article slice.
type pairScore struct {
	i, j  int
	score float64
}

// Build computes the full pairwise similarity matrix. Rows of the
// upper triangle are striped across workers; each worker fills a
// private slice and the matrix is assembled single-threaded
// afterwards, so no two goroutines ever write the same map.
func Build(articles []corpus.Article, workers int) Matrix {
	n := len(articles)
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}

	results := make(chan []pairScore, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			var local []pairScore
			for i := w; i < n; i += workers {
				for j := i + 1; j < n; j++ {
					local = append(local, pairScore{
						i:     i,
						j:     j,
						score: Cosine(articles[i].Terms, articles[j].Terms),
					})
				}
			}
			results <- local
		}(w)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	matrix := make(Matrix, n)
	for _, a := range articles {
		matrix[a.Permalink] = make(map[string]float64, n-1)
	}
	for local := range results {
		for _, p := range local {
			a := articles[p.i].Permalink
			b := articles[p.j].Permalink
			// Distinct files can carry the same permalink; they collapse
			// into one row, which must never list itself.
			if a == b {
				continue
			}
			matrix[a][b] = p.score
			matrix[b][a] = p.score
		}
	}

	return matrix
}
