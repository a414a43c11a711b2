// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch downloads wikimedia dumps into the local dumps directory.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/noamKasper/HebrewOCR/internal/httputil"
	"github.com/noamKasper/HebrewOCR/pkg/types"
)

// FetchDump resolves arg to a dump URL and downloads it into
// cfg.DumpsDir, reporting progress to w. Existing dumps are skipped.
// It returns the local path of the dump.
func FetchDump(ctx context.Context, client *http.Client, arg string, cfg types.FetchConfig, w io.Writer) (string, error) {
	dumpURL, err := Resolve(arg, cfg.MirrorBase)
	if err != nil {
		return "", err
	}

	destPath := filepath.Join(cfg.DumpsDir, DestName(dumpURL))
	if _, err := os.Stat(destPath); err == nil {
		fmt.Fprintf(w, "skipped: %s (already exists)\n", destPath)
		return destPath, nil
	}

	if err := os.MkdirAll(cfg.DumpsDir, 0o755); err != nil {
		return "", fmt.Errorf("creating dumps directory: %w", err)
	}

	fmt.Fprintf(w, "downloading: %s\n", dumpURL)
	if err := downloadFile(ctx, client, dumpURL, destPath, cfg); err != nil {
		return "", fmt.Errorf("downloading %s: %w", dumpURL, err)
	}

	fmt.Fprintf(w, "saved: %s\n", destPath)
	return destPath, nil
}

// downloadFile fetches url to destPath using a temporary file so an
// interrupted download never leaves a truncated dump behind.
func downloadFile(ctx context.Context, client *http.Client, url, destPath string, cfg types.FetchConfig) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, client, req, cfg.MaxRetries)
	if err != nil {
		return fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(destPath), ".fetch-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, copyErr := io.Copy(tmpFile, resp.Body)
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing download: %w", copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
