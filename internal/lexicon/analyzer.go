package lexicon

import (
	"strings"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// escapeMarker prefixes tokens left over from markdown escapes; they
// are never real words.
const escapeMarker = '\\'

// Analyzer maps cleaned article text to a lemma stream using the
// shared dictionary and stopword set. It is safe for concurrent use.
type Analyzer struct {
	dict  Dictionary
	stops StopwordSet
	log   *logrus.Entry

	missed atomic.Int64
}

// NewAnalyzer creates an analyzer over an immutable dictionary and
// stopword set.
func NewAnalyzer(dict Dictionary, stops StopwordSet, log *logrus.Entry) *Analyzer {
	return &Analyzer{dict: dict, stops: stops, log: log}
}

// Lemmas splits cleaned text on whitespace and maps each surviving
// token to its lemma. Tokens of length <= 1, tokens starting with the
// escape marker, and stopwords are dropped. A token without a
// dictionary entry passes through unchanged; the miss is logged and
// never aborts processing.
func (a *Analyzer) Lemmas(body string) []string {
	fields := strings.Fields(body)
	lemmas := make([]string, 0, len(fields))

	for _, tok := range fields {
		if len(tok) <= 1 || tok[0] == escapeMarker {
			continue
		}
		if a.stops.Contains(tok) {
			continue
		}

		lemma, ok := a.dict.Lemma(tok)
		if !ok {
			a.missed.Add(1)
			if a.log != nil {
				a.log.WithField("token", tok).Debug("no dictionary entry")
			}
			lemma = tok
		}
		lemmas = append(lemmas, lemma)
	}

	return lemmas
}

// MissedLookups reports how many tokens had no dictionary entry.
func (a *Analyzer) MissedLookups() int64 {
	return a.missed.Load()
}
