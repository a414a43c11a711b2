// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "wikitext/0.1"). Wikimedia rejects anonymous clients.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ExtractConfig holds settings for the extraction stage.
type ExtractConfig struct {
	// OutputDir is the directory page text files are written to.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Start is the zero-based page index extraction begins at. Pages
	// before it are never written and never count toward Limit.
	Start int `json:"start" yaml:"start"`

	// Limit is the maximum number of page files to write. Zero means
	// no limit.
	Limit int `json:"limit" yaml:"limit"`

	// SkipRedirects drops pages that carry a redirect marker. The page
	// index still advances past them.
	SkipRedirects bool `json:"skip_redirects" yaml:"skip_redirects"`

	// Replacement substitutes characters that are illegal in file
	// names, verbatim: empty removes them. The CLI defaults to a
	// single space.
	Replacement string `json:"replacement" yaml:"replacement"`

	// Verbose enables per-page action lines and a run summary.
	Verbose bool `json:"verbose" yaml:"verbose"`
}

// FetchConfig holds settings for the dump download stage.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// DumpsDir is the directory downloaded dumps are stored in.
	DumpsDir string `json:"dumps_dir" yaml:"dumps_dir"`

	// MirrorBase is the dump mirror root (default https://dumps.wikimedia.org).
	MirrorBase string `json:"mirror_base" yaml:"mirror_base"`

	// MaxRetries is the number of retries on throttled responses (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// CatalogConfig holds settings for the corpus catalog stage.
type CatalogConfig struct {
	// CorpusDir is the base directory for the corpus (contains pages/, index/).
	CorpusDir string `json:"corpus_dir" yaml:"corpus_dir"`

	// MaxResults is the default maximum number of search results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Fetch   FetchConfig   `json:"fetch" yaml:"fetch"`
	Extract ExtractConfig `json:"extract" yaml:"extract"`
	Catalog CatalogConfig `json:"catalog" yaml:"catalog"`
}
