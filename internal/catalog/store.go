// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists extracted pages in a SQLite index with
// full-text search over titles and page text.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/noamKasper/HebrewOCR/internal/extract"
	"github.com/noamKasper/HebrewOCR/pkg/types"
)

const (
	pagesDir = "pages"
	indexDir = "index"
	dbFile   = "corpus.db"
)

// Store manages the corpus catalog SQLite database.
type Store struct {
	db         *sql.DB
	corpusDir  string
	maxResults int
}

// NewStore opens or creates the catalog database at
// corpusDir/index/corpus.db, creating the schema if needed.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	dbDir := filepath.Join(cfg.CorpusDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:         db,
		corpusDir:  cfg.CorpusDir,
		maxResults: maxResults,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS pages (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			record_id TEXT NOT NULL,
			page_index INTEGER NOT NULL,
			page_id INTEGER,
			title TEXT NOT NULL,
			path TEXT NOT NULL UNIQUE,
			bytes INTEGER NOT NULL,
			content TEXT NOT NULL,
			dump TEXT,
			extracted_at TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_pages_page_index ON pages(page_index)`,
		`CREATE TABLE IF NOT EXISTS indexing_status (
			path TEXT PRIMARY KEY,
			file_mod_time TEXT
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='pages_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE pages_fts USING fts5(title, content, content=pages, content_rowid=rowid)`,
			`CREATE TRIGGER pages_ai AFTER INSERT ON pages BEGIN
				INSERT INTO pages_fts(rowid, title, content) VALUES (new.rowid, new.title, new.content);
			END`,
			`CREATE TRIGGER pages_ad AFTER DELETE ON pages BEGIN
				INSERT INTO pages_fts(pages_fts, rowid, title, content) VALUES('delete', old.rowid, old.title, old.content);
			END`,
			`CREATE TRIGGER pages_au AFTER UPDATE ON pages BEGIN
				INSERT INTO pages_fts(pages_fts, rowid, title, content) VALUES('delete', old.rowid, old.title, old.content);
				INSERT INTO pages_fts(rowid, title, content) VALUES (new.rowid, new.title, new.content);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// IngestSummary holds counts from a catalog indexing run.
type IngestSummary struct {
	Indexed int
	Updated int
	Skipped int
	Failed  int
}

// Total returns the number of pages processed.
func (s IngestSummary) Total() int {
	return s.Indexed + s.Updated + s.Skipped + s.Failed
}

// HasFailures reports whether any pages failed indexing.
func (s IngestSummary) HasFailures() bool {
	return s.Failed > 0
}

// Ingest reads the extraction manifest from corpusDir/pages/ and indexes
// each page's text file. Unchanged files are skipped on subsequent runs;
// changed files replace their previous row.
func (s *Store) Ingest(ctx context.Context, w io.Writer) (IngestSummary, error) {
	manifestPath := filepath.Join(s.corpusDir, pagesDir, extract.ManifestName)
	manifest, err := extract.ReadManifest(manifestPath)
	if err != nil {
		return IngestSummary{}, err
	}

	var summary IngestSummary

	for _, rec := range manifest.Pages {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		info, err := os.Stat(rec.Path)
		if err != nil {
			fmt.Fprintf(w, "failed  %q: %v\n", rec.Title, err)
			summary.Failed++
			continue
		}
		modTime := info.ModTime().UTC().Format(time.RFC3339Nano)

		var storedModTime string
		err = s.db.QueryRowContext(ctx,
			`SELECT file_mod_time FROM indexing_status WHERE path = ?`, rec.Path,
		).Scan(&storedModTime)

		if err == nil && storedModTime == modTime {
			fmt.Fprintf(w, "skipped %q\n", rec.Title)
			summary.Skipped++
			continue
		}

		isUpdate := err == nil

		content, err := os.ReadFile(rec.Path)
		if err != nil {
			fmt.Fprintf(w, "failed  %q: %v\n", rec.Title, err)
			summary.Failed++
			continue
		}

		if err := s.ingestPage(ctx, rec, manifest.Dump, string(content), modTime, isUpdate); err != nil {
			fmt.Fprintf(w, "failed  %q: %v\n", rec.Title, err)
			summary.Failed++
			continue
		}

		if isUpdate {
			fmt.Fprintf(w, "updated %q (%d bytes)\n", rec.Title, len(content))
			summary.Updated++
		} else {
			fmt.Fprintf(w, "indexing %q (%d bytes)\n", rec.Title, len(content))
			summary.Indexed++
		}
	}

	fmt.Fprintf(w, "\nindexed: %d, updated: %d, skipped: %d, failed: %d\n",
		summary.Indexed, summary.Updated, summary.Skipped, summary.Failed)

	return summary, nil
}

func (s *Store) ingestPage(ctx context.Context, rec types.PageRecord, dump, content, modTime string, isUpdate bool) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	// Explicit delete so the FTS triggers see the old row.
	if isUpdate {
		if _, err := tx.ExecContext(ctx, `DELETE FROM pages WHERE path = ?`, rec.Path); err != nil {
			return fmt.Errorf("deleting old page: %w", err)
		}
	}

	extractedAt := ""
	if !rec.ExtractedAt.IsZero() {
		extractedAt = rec.ExtractedAt.Format(time.RFC3339)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO pages (record_id, page_index, page_id, title, path, bytes, content, dump, extracted_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.RecordID, rec.Index, rec.PageID, rec.Title, rec.Path,
		len(content), content, dump, extractedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting page: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO indexing_status (path, file_mod_time) VALUES (?, ?)
		 ON CONFLICT(path) DO UPDATE SET file_mod_time=excluded.file_mod_time`,
		rec.Path, modTime,
	)
	if err != nil {
		return fmt.Errorf("updating indexing status: %w", err)
	}

	return tx.Commit()
}
