// Package storage persists computed term vectors and neighbor lists in
// a SQLite cache so lookups do not rerun the pipeline.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/akinlabs/akin/internal/corpus"
	"github.com/akinlabs/akin/internal/similarity"
)

// ErrNotIndexed is returned when a permalink is not in the cache.
var ErrNotIndexed = errors.New("permalink not in cache")

// DB wraps the SQLite cache database.
type DB struct {
	db *sql.DB
}

// Open opens or creates the cache database at the given path.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// createSchema creates the database schema if it doesn't exist.
func createSchema(db *sql.DB) error {
	schema := `
		-- Term-frequency vectors, one row per article
		CREATE TABLE IF NOT EXISTS articles (
			permalink TEXT PRIMARY KEY,
			terms_json TEXT NOT NULL,
			distinct_lemmas INTEGER NOT NULL
		);

		-- Ranked neighbor lists, best first
		CREATE TABLE IF NOT EXISTS neighbors (
			permalink TEXT NOT NULL,
			position INTEGER NOT NULL,
			neighbor TEXT NOT NULL,
			score REAL NOT NULL,
			PRIMARY KEY (permalink, position)
		);

		CREATE INDEX IF NOT EXISTS idx_neighbors_permalink ON neighbors(permalink);

		-- Build-run bookkeeping
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			started_at TEXT NOT NULL,
			finished_at TEXT NOT NULL,
			articles INTEGER NOT NULL,
			skipped INTEGER NOT NULL,
			top_k INTEGER NOT NULL
		);
	`
	_, err := db.Exec(schema)
	return err
}

// ReplaceArticles clears the articles table and stores the given
// vectors.
func (d *DB) ReplaceArticles(articles []corpus.Article) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM articles"); err != nil {
		return fmt.Errorf("clearing articles: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO articles (permalink, terms_json, distinct_lemmas)
		VALUES (?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing articles insert: %w", err)
	}
	defer stmt.Close()

	for _, a := range articles {
		terms, err := json.Marshal(a.Terms)
		if err != nil {
			return fmt.Errorf("encoding terms for %s: %w", a.Permalink, err)
		}
		if _, err := stmt.Exec(a.Permalink, string(terms), len(a.Terms)); err != nil {
			return fmt.Errorf("inserting article %s: %w", a.Permalink, err)
		}
	}

	return tx.Commit()
}

// ReplaceNeighbors clears the neighbors table and stores the given
// ranked lists.
func (d *DB) ReplaceNeighbors(top map[string][]similarity.Neighbor) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM neighbors"); err != nil {
		return fmt.Errorf("clearing neighbors: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO neighbors (permalink, position, neighbor, score)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing neighbors insert: %w", err)
	}
	defer stmt.Close()

	permalinks := make([]string, 0, len(top))
	for p := range top {
		permalinks = append(permalinks, p)
	}
	sort.Strings(permalinks)

	for _, permalink := range permalinks {
		for i, n := range top[permalink] {
			if _, err := stmt.Exec(permalink, i+1, n.Permalink, n.Score); err != nil {
				return fmt.Errorf("inserting neighbor for %s: %w", permalink, err)
			}
		}
	}

	return tx.Commit()
}

// Neighbors returns the stored neighbor list for a permalink, best
// first. Returns ErrNotIndexed if the permalink is not in the cache;
// an indexed article in a single-article corpus legitimately has an
// empty list.
func (d *DB) Neighbors(permalink string, limit int) ([]similarity.Neighbor, error) {
	query := `
		SELECT neighbor, score FROM neighbors
		WHERE permalink = ?
		ORDER BY position
	`
	args := []interface{}{permalink}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying neighbors: %w", err)
	}
	defer rows.Close()

	var neighbors []similarity.Neighbor
	for rows.Next() {
		var n similarity.Neighbor
		if err := rows.Scan(&n.Permalink, &n.Score); err != nil {
			return nil, fmt.Errorf("scanning neighbor: %w", err)
		}
		neighbors = append(neighbors, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading neighbors: %w", err)
	}

	if len(neighbors) == 0 {
		var count int
		err := d.db.QueryRow("SELECT COUNT(*) FROM articles WHERE permalink = ?", permalink).Scan(&count)
		if err != nil {
			return nil, fmt.Errorf("checking article: %w", err)
		}
		if count == 0 {
			return nil, ErrNotIndexed
		}
	}

	return neighbors, nil
}

// ArticleCount returns the number of cached articles.
func (d *DB) ArticleCount() (int, error) {
	var count int
	if err := d.db.QueryRow("SELECT COUNT(*) FROM articles").Scan(&count); err != nil {
		return 0, fmt.Errorf("counting articles: %w", err)
	}
	return count, nil
}

// SaveRun records one build run and returns its ID.
func (d *DB) SaveRun(startedAt, finishedAt time.Time, articles, skipped, topK int) (string, error) {
	id := ulid.Make().String()
	_, err := d.db.Exec(`
		INSERT INTO runs (id, started_at, finished_at, articles, skipped, top_k)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		id,
		startedAt.UTC().Format(time.RFC3339),
		finishedAt.UTC().Format(time.RFC3339),
		articles, skipped, topK,
	)
	if err != nil {
		return "", fmt.Errorf("recording run: %w", err)
	}
	return id, nil
}
