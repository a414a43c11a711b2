// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/noamKasper/HebrewOCR/internal/fetch"
	"github.com/noamKasper/HebrewOCR/pkg/types"
)

const (
	defaultTimeout   = 30 * time.Minute
	defaultUserAgent = "wikitext/0.1"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <lang|url>",
	Short: "Download a Wikipedia dump",
	Long: `Fetch downloads a pages-articles dump into the dumps directory. A bare
language code ("he", "en") resolves to the latest export on the mirror;
a full URL is downloaded as-is. Existing dumps are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().String("dumps-dir", "dumps", "directory for downloaded dumps")
	fetchCmd.Flags().String("mirror", fetch.DefaultMirror, "dump mirror base URL")
	fetchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30m)")
	fetchCmd.Flags().Int("max-retries", 0, "retries on throttled responses (default 5)")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	dumpsDir, _ := cmd.Flags().GetString("dumps-dir")
	mirror, _ := cmd.Flags().GetString("mirror")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}
	maxRetries, _ := cmd.Flags().GetInt("max-retries")

	cfg := types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		DumpsDir:   dumpsDir,
		MirrorBase: mirror,
		MaxRetries: maxRetries,
	}

	client := &http.Client{
		Timeout: cfg.Timeout,
	}

	_, err := fetch.FetchDump(context.Background(), client, args[0], cfg, os.Stdout)
	return err
}
