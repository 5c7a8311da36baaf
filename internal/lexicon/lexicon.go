// Package lexicon builds the shared lemma dictionary and stopword set
// and maps cleaned article text to lemma streams.
package lexicon

// Dictionary maps surface word forms to canonical lemmas. It is built
// once at startup and read-only afterwards, so it is safe to share
// across workers without locking.
type Dictionary map[string]string

// Lemma returns the canonical form for a surface word.
func (d Dictionary) Lemma(word string) (string, bool) {
	lemma, ok := d[word]
	return lemma, ok
}

// StopwordSet holds surface forms excluded from counting. Immutable
// after construction, shared read-only.
type StopwordSet map[string]struct{}

// Contains reports whether a word is a stopword.
func (s StopwordSet) Contains(word string) bool {
	_, ok := s[word]
	return ok
}
