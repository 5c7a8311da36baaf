// Package corpus loads and vectorizes the article collection.
package corpus

// TermVector is a sparse term-frequency vector: lemma to occurrence
// count. A lemma present in the map occurred at least once.
type TermVector map[string]int

// CountLemmas aggregates a lemma stream into a term-frequency vector.
func CountLemmas(lemmas []string) TermVector {
	v := make(TermVector)
	for _, lemma := range lemmas {
		v[lemma]++
	}
	return v
}

// Article is one vectorized document, keyed by the permalink from its
// front matter. Immutable after vectorization.
type Article struct {
	Permalink string     `json:"permalink"`
	Terms     TermVector `json:"terms"`
}
