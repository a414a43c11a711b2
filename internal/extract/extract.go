// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract writes dump pages to one text file per page.
// File names come from the sanitized page title; redirects, pages
// before the start offset, and pages missing a title or revision text
// produce no file.
package extract

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/noamKasper/HebrewOCR/pkg/types"
)

// PageSource yields dump pages in document order. *dump.Reader
// satisfies it; tests supply fakes.
type PageSource interface {
	// Next returns the next page, or io.EOF after the last one.
	Next() (*types.Page, error)
}

// Summary holds the outcome of an extraction run.
type Summary struct {
	// Written counts pages emitted as files.
	Written int

	// Redirects counts pages skipped for carrying a redirect marker.
	Redirects int

	// Incomplete counts pages skipped for a missing title or text.
	Incomplete int

	// LastIndex is the index of the last page observed, -1 when the
	// dump held none.
	LastIndex int

	// Pages records every written page, in output order.
	Pages []types.PageRecord
}

// Total returns the number of pages considered at or past the start offset.
func (s Summary) Total() int {
	return s.Written + s.Redirects + s.Incomplete
}

// Pages streams pages from src and writes each eligible page's text to
// cfg.OutputDir/<sanitized title>.txt. Pages with index below cfg.Start
// are passed over without counting toward cfg.Limit; redirect pages are
// skipped when cfg.SkipRedirects is set but still advance the index.
// Extraction stops once cfg.Limit files have been written (zero means
// no limit). Colliding titles overwrite: last writer wins.
//
// Per-page action lines and a final summary go to w when cfg.Verbose is
// set. A source error aborts the run; files already written stay on disk.
func Pages(src PageSource, cfg types.ExtractConfig, w io.Writer) (Summary, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return Summary{LastIndex: -1}, fmt.Errorf("creating output directory: %w", err)
	}

	summary := Summary{LastIndex: -1}

	for {
		p, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return summary, err
		}
		summary.LastIndex = p.Index

		if p.Index < cfg.Start {
			continue
		}

		if cfg.SkipRedirects && p.Redirect {
			summary.Redirects++
			if cfg.Verbose {
				fmt.Fprintf(w, "skipped %d: %q (redirect to %q)\n", p.Index, p.Title, p.RedirectTo)
			}
			continue
		}

		if !p.Complete() {
			summary.Incomplete++
			if cfg.Verbose {
				fmt.Fprintf(w, "skipped %d: missing title or text\n", p.Index)
			}
			continue
		}

		path := filepath.Join(cfg.OutputDir, Sanitize(p.Title, cfg.Replacement)+".txt")
		if cfg.Verbose {
			fmt.Fprintf(w, "writing %d: %q to %s\n", p.Index, p.Title, path)
		}
		if err := os.WriteFile(path, []byte(p.Text), 0o644); err != nil {
			return summary, fmt.Errorf("writing page %d (%q): %w", p.Index, p.Title, err)
		}

		summary.Written++
		summary.Pages = append(summary.Pages, types.PageRecord{
			RecordID:    recordID(p.Title, p.Text),
			Index:       p.Index,
			PageID:      p.ID,
			Title:       p.Title,
			Path:        path,
			Bytes:       len(p.Text),
			ExtractedAt: time.Now().UTC(),
		})

		if cfg.Limit > 0 && summary.Written >= cfg.Limit {
			break
		}
	}

	if cfg.Verbose {
		fmt.Fprintf(w, "\nwrote %d page(s), skipped %d redirect(s) and %d incomplete, last index %d\n",
			summary.Written, summary.Redirects, summary.Incomplete, summary.LastIndex)
	}

	return summary, nil
}

// recordID generates a deterministic ID for a written page. The ID is
// the first 12 hex characters of SHA-256(title + text).
func recordID(title, text string) string {
	h := sha256.New()
	h.Write([]byte(title))
	h.Write([]byte(text))
	return fmt.Sprintf("%x", h.Sum(nil))[:12]
}
