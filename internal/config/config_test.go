package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)

	require.Equal(t, 3, cfg.TopK)
	require.Equal(t, "./results.json", cfg.Output)
	require.GreaterOrEqual(t, cfg.Workers, 1)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "akin.yml")
	content := `
corpus_root: ./content/posts
dictionary: ./polish.out.br
stopwords: ./stopwords.txt
output: ./related.json
top_k: 5
workers: 2
database: ./cache.db
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "./content/posts", cfg.CorpusRoot)
	require.Equal(t, "./polish.out.br", cfg.Dictionary)
	require.Equal(t, "./related.json", cfg.Output)
	require.Equal(t, 5, cfg.TopK)
	require.Equal(t, 2, cfg.Workers)
	require.Equal(t, "./cache.db", cfg.Database)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("AKIN_TOP_K", "7")
	t.Setenv("AKIN_OUTPUT", "/tmp/out.json")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)

	require.Equal(t, 7, cfg.TopK)
	require.Equal(t, "/tmp/out.json", cfg.Output)
}

func TestLoadRejectsInvalidTopK(t *testing.T) {
	path := filepath.Join(t.TempDir(), "akin.yml")
	require.NoError(t, os.WriteFile(path, []byte("top_k: 0\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "top_k")
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "akin.yml")
	require.NoError(t, os.WriteFile(path, []byte("corpus_root: [unclosed\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "akin.yml")

	original := Default()
	original.TopK = 9
	original.Database = "./cache.db"
	require.NoError(t, original.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 9, loaded.TopK)
	require.Equal(t, "./cache.db", loaded.Database)
}
