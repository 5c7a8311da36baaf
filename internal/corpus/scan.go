package corpus

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// Scan walks the corpus root and returns every markdown file under it,
// in lexical order. An unreadable root is fatal: without a corpus
// there is no work to do.
func Scan(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".md") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning corpus root %s: %w", root, err)
	}
	return paths, nil
}
