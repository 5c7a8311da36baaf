// Package similarity scores article pairs and selects nearest
// neighbors.
package similarity

import (
	"math"

	"github.com/akinlabs/akin/internal/corpus"
)

// Cosine computes the cosine similarity of two sparse term-frequency
// vectors. Only lemmas present in both vectors contribute to the dot
// product. A zero-magnitude vector scores 0 against everything; the
// result is clamped to [0,1].
func Cosine(a, b corpus.TermVector) float64 {
	// The dot product only needs the intersection, so iterate the
	// smaller vector.
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}

	var dot float64
	for lemma, n := range small {
		if m, ok := large[lemma]; ok {
			dot += float64(n) * float64(m)
		}
	}

	magA := magnitude(a)
	magB := magnitude(b)
	if magA == 0 || magB == 0 {
		return 0
	}

	score := dot / magA / magB
	return math.Min(math.Max(score, 0), 1)
}

func magnitude(v corpus.TermVector) float64 {
	var sum float64
	for _, n := range v {
		sum += float64(n) * float64(n)
	}
	return math.Sqrt(sum)
}
