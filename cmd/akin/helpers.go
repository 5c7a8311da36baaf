package main

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/akinlabs/akin/internal/config"
	"github.com/akinlabs/akin/internal/lexicon"
)

// mustLoadLexicon builds the dictionary and stopword set concurrently,
// exiting on failure. Both are prerequisites for any work; once built
// they are immutable and shared read-only by every worker.
func mustLoadLexicon(cfg *config.Config, log *logrus.Entry) (lexicon.Dictionary, lexicon.StopwordSet) {
	var (
		wg               sync.WaitGroup
		dict             lexicon.Dictionary
		stops            lexicon.StopwordSet
		dictErr, stopErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		dict, dictErr = lexicon.LoadDictionary(cfg.Dictionary, cfg.Workers, log)
	}()
	go func() {
		defer wg.Done()
		stops, stopErr = lexicon.LoadStopwords(cfg.Stopwords, cfg.Workers, log)
	}()
	wg.Wait()

	if dictErr != nil {
		exitWithError(ExitDataError, "loading dictionary: %v", dictErr)
	}
	if stopErr != nil {
		exitWithError(ExitDataError, "loading stopwords: %v", stopErr)
	}

	return dict, stops
}
