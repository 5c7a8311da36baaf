package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/andybalholm/brotli"
	"github.com/sirupsen/logrus"
)

// maxLineCapacity bounds scanner buffers when reading dictionary and
// stopword sources (1MB per line).
const maxLineCapacity = 1024 * 1024

// BrotliExt marks a brotli-compressed source file.
const BrotliExt = ".br"

// LoadDictionary reads a semicolon-delimited lemma dictionary. Each
// line carries at least two fields: field 2 is the surface form, field
// 1 the lemma; lines with fewer fields are skipped. Files ending in
// .br are decompressed transparently. Lines are partitioned across
// workers building partial maps that are merged in partition order, so
// duplicate surface forms resolve the same way on every run.
func LoadDictionary(path string, workers int, log *logrus.Entry) (Dictionary, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, fmt.Errorf("reading dictionary: %w", err)
	}

	chunks := partition(lines, workers)
	partials := make([]Dictionary, len(chunks))

	var wg sync.WaitGroup
	for i, chunk := range chunks {
		wg.Add(1)
		go func(i int, chunk []string) {
			defer wg.Done()
			local := make(Dictionary, len(chunk))
			for _, line := range chunk {
				fields := strings.SplitN(line, ";", 3)
				if len(fields) < 2 {
					continue
				}
				local[fields[1]] = fields[0]
			}
			partials[i] = local
		}(i, chunk)
	}
	wg.Wait()

	dict := make(Dictionary, len(lines))
	for _, local := range partials {
		for surface, lemma := range local {
			dict[surface] = lemma
		}
	}

	if log != nil {
		log.WithField("entries", len(dict)).Info("dictionary loaded")
	}
	return dict, nil
}

// LoadStopwords reads one stopword per line, trimmed and lower-cased.
// Construction mirrors LoadDictionary: partial sets per worker, merged
// at the end.
func LoadStopwords(path string, workers int, log *logrus.Entry) (StopwordSet, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, fmt.Errorf("reading stopwords: %w", err)
	}

	chunks := partition(lines, workers)
	partials := make([]StopwordSet, len(chunks))

	var wg sync.WaitGroup
	for i, chunk := range chunks {
		wg.Add(1)
		go func(i int, chunk []string) {
			defer wg.Done()
			local := make(StopwordSet, len(chunk))
			for _, line := range chunk {
				word := strings.ToLower(strings.TrimSpace(line))
				if word == "" {
					continue
				}
				local[word] = struct{}{}
			}
			partials[i] = local
		}(i, chunk)
	}
	wg.Wait()

	stops := make(StopwordSet, len(lines))
	for _, local := range partials {
		for word := range local {
			stops[word] = struct{}{}
		}
	}

	if log != nil {
		log.WithField("words", len(stops)).Info("stopwords loaded")
	}
	return stops, nil
}

// readLines reads a line-oriented source, decompressing .br files.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, BrotliExt) {
		r = brotli.NewReader(f)
	}

	scanner := bufio.NewScanner(r)
	buf := make([]byte, maxLineCapacity)
	scanner.Buffer(buf, maxLineCapacity)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// partition splits lines into at most n contiguous chunks.
func partition(lines []string, n int) [][]string {
	if n < 1 {
		n = 1
	}
	if n > len(lines) {
		n = len(lines)
	}
	if n == 0 {
		return nil
	}

	size := (len(lines) + n - 1) / n
	chunks := make([][]string, 0, n)
	for start := 0; start < len(lines); start += size {
		end := start + size
		if end > len(lines) {
			end = len(lines)
		}
		chunks = append(chunks, lines[start:end])
	}
	return chunks
}
