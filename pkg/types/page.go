// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Page is a single page record streamed out of a MediaWiki XML export.
// It is transient: the extractor turns it into a text file and a
// PageRecord, and never persists the struct itself.
type Page struct {
	// Index is the zero-based position of the page in the dump stream.
	Index int

	// ID is the numeric page ID from the dump, when present.
	ID int64

	// Namespace is the MediaWiki namespace number (0 for articles).
	Namespace int

	// Title is the page title as it appears in the dump.
	Title string

	// Redirect reports whether the page carries a redirect marker.
	Redirect bool

	// RedirectTo is the redirect target title, empty for regular pages.
	RedirectTo string

	// Text is the raw wikitext body of the page's revision.
	Text string

	// HasText distinguishes an empty revision body from a missing
	// <text> element.
	HasText bool
}

// Complete reports whether the page has the elements required to emit a
// file: a title and a revision text body.
func (p *Page) Complete() bool {
	return p.Title != "" && p.HasText
}

// PageRecord describes one page written to the corpus. Records are
// collected into the run manifest and later ingested by the catalog.
type PageRecord struct {
	// RecordID is a stable short ID derived from title and content.
	RecordID string `json:"record_id" yaml:"record_id"`

	// Index is the zero-based position of the page in the dump stream.
	Index int `json:"index" yaml:"index"`

	// PageID is the numeric page ID from the dump.
	PageID int64 `json:"page_id" yaml:"page_id"`

	// Title is the original (unsanitized) page title.
	Title string `json:"title" yaml:"title"`

	// Path is the output file the page text was written to.
	Path string `json:"path" yaml:"path"`

	// Bytes is the size of the written text in bytes.
	Bytes int `json:"bytes" yaml:"bytes"`

	// ExtractedAt is when the file was written.
	ExtractedAt time.Time `json:"extracted_at" yaml:"extracted_at"`
}
