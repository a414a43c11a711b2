// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/noamKasper/HebrewOCR/pkg/types"
)

// QueryOptions holds parameters for catalog queries.
type QueryOptions struct {
	// Query is the FTS5 full-text search string over title and content.
	Query string

	// TitleOnly restricts the full-text match to the title column.
	TitleOnly bool

	// MinBytes filters out pages smaller than the given text size.
	MinBytes int

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.MinBytes == 0
}

// SearchResult is a cataloged page with its match metadata.
type SearchResult struct {
	types.PageRecord
	Dump    string `json:"dump" yaml:"dump"`
	Snippet string `json:"snippet,omitempty" yaml:"snippet,omitempty"`
}

// Search queries the catalog. Full-text queries are ranked by bm25
// relevance; filter-only queries come back in dump order (page_index).
func (s *Store) Search(ctx context.Context, opts QueryOptions) ([]SearchResult, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT p.record_id, p.page_index, p.page_id, p.title, p.path, p.bytes,
				p.dump, p.extracted_at,
				snippet(pages_fts, 1, '[', ']', '…', 12)
			FROM pages_fts
			JOIN pages p ON p.rowid = pages_fts.rowid
			WHERE pages_fts MATCH ?`)
		args = append(args, matchExpr(opts))
	} else {
		qb.WriteString(
			`SELECT p.record_id, p.page_index, p.page_id, p.title, p.path, p.bytes,
				p.dump, p.extracted_at,
				'' AS snippet
			FROM pages p
			WHERE 1=1`)
	}

	if opts.MinBytes > 0 {
		qb.WriteString(` AND p.bytes >= ?`)
		args = append(args, opts.MinBytes)
	}

	if useFTS {
		qb.WriteString(` ORDER BY pages_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY p.page_index`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var results []SearchResult
	for rows.Next() {
		var (
			r           SearchResult
			dump        sql.NullString
			extractedAt sql.NullString
		)
		if err := rows.Scan(
			&r.RecordID, &r.Index, &r.PageID, &r.Title, &r.Path, &r.Bytes,
			&dump, &extractedAt, &r.Snippet,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		if dump.Valid {
			r.Dump = dump.String
		}
		if extractedAt.Valid && extractedAt.String != "" {
			if t, parseErr := time.Parse(time.RFC3339, extractedAt.String); parseErr == nil {
				r.ExtractedAt = t
			}
		}
		results = append(results, r)
	}

	return results, rows.Err()
}

// matchExpr builds the FTS5 MATCH expression, scoping it to the title
// column when requested.
func matchExpr(opts QueryOptions) string {
	if opts.TitleOnly {
		return "title : (" + opts.Query + ")"
	}
	return opts.Query
}
