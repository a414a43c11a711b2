// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"
)

// ExportEntry holds one cataloged page for export.
type ExportEntry struct {
	RecordID    string    `json:"record_id" yaml:"record_id"`
	Index       int       `json:"index" yaml:"index"`
	PageID      int64     `json:"page_id" yaml:"page_id"`
	Title       string    `json:"title" yaml:"title"`
	Path        string    `json:"path" yaml:"path"`
	Bytes       int       `json:"bytes" yaml:"bytes"`
	Dump        string    `json:"dump,omitempty" yaml:"dump,omitempty"`
	ExtractedAt time.Time `json:"extracted_at,omitempty" yaml:"extracted_at,omitempty"`
}

const exportLimit = 1000000

// ExportPath returns the file a given export format writes to.
func (s *Store) ExportPath(format string) string {
	return filepath.Join(s.corpusDir, indexDir, "export."+format)
}

// ExportYAML writes the catalog to corpusDir/index/export.yaml. It
// supports the same filters as Search.
func (s *Store) ExportYAML(ctx context.Context, opts QueryOptions) error {
	entries, err := s.exportEntries(ctx, opts)
	if err != nil {
		return err
	}

	path := s.ExportPath("yaml")
	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ExportJSON writes the catalog to corpusDir/index/export.json. It
// supports the same filters as Search.
func (s *Store) ExportJSON(ctx context.Context, opts QueryOptions) error {
	entries, err := s.exportEntries(ctx, opts)
	if err != nil {
		return err
	}

	path := s.ExportPath("json")
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func (s *Store) exportEntries(ctx context.Context, opts QueryOptions) ([]ExportEntry, error) {
	// Zero means "export everything"; a caller-supplied limit is a
	// partial export and must survive.
	if opts.MaxResults == 0 {
		opts.MaxResults = exportLimit
	}
	results, err := s.Search(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}

	entries := make([]ExportEntry, len(results))
	for i, r := range results {
		entries[i] = ExportEntry{
			RecordID:    r.RecordID,
			Index:       r.Index,
			PageID:      r.PageID,
			Title:       r.Title,
			Path:        r.Path,
			Bytes:       r.Bytes,
			Dump:        r.Dump,
			ExtractedAt: r.ExtractedAt,
		}
	}

	return entries, nil
}
