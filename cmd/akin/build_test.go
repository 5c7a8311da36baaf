package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/akinlabs/akin/internal/similarity"
)

func TestWriteResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "results.json")

	top := map[string][]similarity.Neighbor{
		"/a/": {
			{Permalink: "/b/", Score: 0.9},
			{Permalink: "/c/", Score: 0.4},
		},
		"/b/": {
			{Permalink: "/a/", Score: 0.9},
		},
		"/solo/": {},
	}

	if err := writeResults(path, top); err != nil {
		t.Fatalf("writeResults() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading results: %v", err)
	}

	var got map[string][]string
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("results are not valid JSON: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("got %d entries, want 3", len(got))
	}
	if got["/a/"][0] != "/b/" || got["/a/"][1] != "/c/" {
		t.Errorf("got[/a/] = %v, want [/b/ /c/] in score order", got["/a/"])
	}
	if len(got["/solo/"]) != 0 {
		t.Errorf("got[/solo/] = %v, want empty list", got["/solo/"])
	}

	// No temp file left behind.
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file was not cleaned up by rename")
	}
}

func TestWriteResultsUnwritablePath(t *testing.T) {
	dir := t.TempDir()
	// A directory at the target path makes the rename fail.
	target := filepath.Join(dir, "results.json")
	if err := os.Mkdir(target, 0755); err != nil {
		t.Fatalf("making blocker dir: %v", err)
	}

	err := writeResults(target, map[string][]similarity.Neighbor{})
	if err == nil {
		t.Error("expected error writing over a directory")
	}
}
