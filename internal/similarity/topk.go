package similarity

import (
	"runtime"
	"sort"
	"sync"
)

// Neighbor is one scored related article.
type Neighbor struct {
	Permalink string  `json:"permalink"`
	Score     float64 `json:"score"`
}

// TopK selects, for every article, its k highest-scoring neighbors in
// descending order. Ties break by ascending permalink so results never
// depend on map iteration order. A corpus with fewer than k+1 articles
// yields shorter lists, never an error.
func TopK(matrix Matrix, k, workers int) map[string][]Neighbor {
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	permalinks := make([]string, 0, len(matrix))
	for p := range matrix {
		permalinks = append(permalinks, p)
	}
	sort.Strings(permalinks)

	// Each slot is owned by exactly one worker.
	ranked := make([][]Neighbor, len(permalinks))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for idx := w; idx < len(permalinks); idx += workers {
				ranked[idx] = rank(matrix[permalinks[idx]], k)
			}
		}(w)
	}
	wg.Wait()

	top := make(map[string][]Neighbor, len(permalinks))
	for i, p := range permalinks {
		top[p] = ranked[i]
	}
	return top
}

// rank sorts one article's scored neighbors and keeps the first k.
func rank(row map[string]float64, k int) []Neighbor {
	neighbors := make([]Neighbor, 0, len(row))
	for permalink, score := range row {
		neighbors = append(neighbors, Neighbor{Permalink: permalink, Score: score})
	}

	sort.Slice(neighbors, func(i, j int) bool {
		if neighbors[i].Score != neighbors[j].Score {
			return neighbors[i].Score > neighbors[j].Score
		}
		return neighbors[i].Permalink < neighbors[j].Permalink
	})

	if k > 0 && len(neighbors) > k {
		neighbors = neighbors[:k]
	}
	return neighbors
}
