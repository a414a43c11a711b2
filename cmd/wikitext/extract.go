// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/noamKasper/HebrewOCR/internal/dump"
	"github.com/noamKasper/HebrewOCR/internal/extract"
	"github.com/noamKasper/HebrewOCR/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract <dump>",
	Short: "Write one text file per dump page",
	Long: `Extract streams the page elements of a Wikipedia XML dump (plain,
.gz, or .bz2) and writes each page's raw wikitext to
<output-dir>/<sanitized title>.txt. Redirect pages are skipped unless
--keep-redirects is set; --start and --limit window the run. A manifest
of written pages is recorded for the catalog stage.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().String("output-dir", filepath.Join("corpus", "pages"), "directory for extracted page files")
	extractCmd.Flags().Int("start", 0, "zero-based page index to start at")
	extractCmd.Flags().Int("limit", 0, "maximum pages to write (0 = all)")
	extractCmd.Flags().Bool("keep-redirects", false, "also write redirect pages")
	extractCmd.Flags().String("replacement", " ", "substitute for characters illegal in file names (empty removes them)")
	extractCmd.Flags().BoolP("verbose", "v", false, "log per-page actions and a summary")
	extractCmd.Flags().Bool("manifest", true, "write manifest.yaml next to the page files")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	dumpPath := args[0]

	outputDir, _ := cmd.Flags().GetString("output-dir")
	start, _ := cmd.Flags().GetInt("start")
	limit, _ := cmd.Flags().GetInt("limit")
	keepRedirects, _ := cmd.Flags().GetBool("keep-redirects")
	replacement, _ := cmd.Flags().GetString("replacement")
	verbose, _ := cmd.Flags().GetBool("verbose")
	writeManifest, _ := cmd.Flags().GetBool("manifest")

	cfg := types.ExtractConfig{
		OutputDir:     outputDir,
		Start:         start,
		Limit:         limit,
		SkipRedirects: !keepRedirects,
		Replacement:   replacement,
		Verbose:       verbose,
	}

	r, err := dump.Open(dumpPath)
	if err != nil {
		return err
	}
	defer r.Close()

	summary, err := extract.Pages(r, cfg, os.Stdout)
	if err != nil {
		return err
	}

	if writeManifest {
		manifestPath := filepath.Join(outputDir, extract.ManifestName)
		if err := extract.WriteManifest(manifestPath, dumpPath, summary.Pages); err != nil {
			return err
		}
	}

	if !verbose {
		fmt.Fprintf(os.Stdout, "wrote %d page(s) to %s\n", summary.Written, outputDir)
	}
	return nil
}
