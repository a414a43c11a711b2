// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/noamKasper/HebrewOCR/internal/catalog"
	"github.com/noamKasper/HebrewOCR/pkg/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the corpus catalog (index, search, export)",
	Long: `Catalog maintains a SQLite index of the extracted page corpus. Use
subcommands to index the pages written by extract, search them with
full-text queries, or export the catalog.`,
}

// --- index subcommand ---

var catalogIndexCmd = &cobra.Command{
	Use:   "index",
	Short: "Index extracted pages into the catalog",
	Long: `Index reads the extraction manifest from <corpus-dir>/pages/ and
ingests each page file into a SQLite database with FTS5 search over
titles and text. Unchanged pages are skipped on subsequent runs.`,
	RunE: runCatalogIndex,
}

func runCatalogIndex(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := store.Ingest(context.Background(), os.Stdout)
	if err != nil {
		return err
	}
	if summary.HasFailures() {
		return fmt.Errorf("%d page(s) failed indexing", summary.Failed)
	}
	return nil
}

// --- search subcommand ---

var catalogSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the corpus with full-text queries",
	Long: `Search runs an FTS5 full-text query over page titles and text,
ranked by relevance. Without a query, --min-bytes filters pages in dump
order.`,
	RunE: runCatalogSearch,
}

func runCatalogSearch(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	opts := searchOptsFromFlags(cmd, args)
	if opts.IsEmpty() {
		return fmt.Errorf("query or filter required: provide a search query or --min-bytes")
	}

	results, err := store.Search(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatSearchOutput(results, jsonOutput)
}

func formatSearchOutput(results []catalog.SearchResult, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-8s  %-40s  %-8s  %s\n",
		"Rank", "Index", "Title", "Bytes", "Snippet")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))

	for i, r := range results {
		title := truncate(r.Title, 40)
		snippet := truncate(strings.ReplaceAll(r.Snippet, "\n", " "), 40)
		fmt.Fprintf(os.Stdout, "%-4d  %-8d  %-40s  %-8d  %s\n",
			i+1, r.Index, title, r.Bytes, snippet)
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

// truncate shortens s to at most max runes. Hebrew titles are
// multi-byte, so byte slicing could split a rune.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

// --- export subcommand ---

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog to YAML or JSON",
	Long: `Export writes the full catalog (or a filtered subset) to
<corpus-dir>/index/export.yaml or export.json. Supports the same filter
flags as search for partial exports.`,
	RunE: runCatalogExport,
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	opts := searchOptsFromFlags(cmd, args)

	switch format {
	case "yaml", "":
		if err := store.ExportYAML(context.Background(), opts); err != nil {
			return err
		}
		fmt.Printf("Exported to %s\n", store.ExportPath("yaml"))
	case "json":
		if err := store.ExportJSON(context.Background(), opts); err != nil {
			return err
		}
		fmt.Printf("Exported to %s\n", store.ExportPath("json"))
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	return nil
}

// --- shared helpers ---

func openStore(cmd *cobra.Command) (*catalog.Store, error) {
	corpusDir, _ := cmd.Flags().GetString("corpus-dir")
	if corpusDir == "" {
		corpusDir = "corpus"
	}
	maxResults, _ := cmd.Flags().GetInt("max-results")

	cfg := types.CatalogConfig{
		CorpusDir:  corpusDir,
		MaxResults: maxResults,
	}
	return catalog.NewStore(cfg)
}

func searchOptsFromFlags(cmd *cobra.Command, args []string) catalog.QueryOptions {
	queryText, _ := cmd.Flags().GetString("query")
	if queryText == "" && len(args) > 0 {
		queryText = strings.Join(args, " ")
	}

	titleOnly, _ := cmd.Flags().GetBool("title-only")
	minBytes, _ := cmd.Flags().GetInt("min-bytes")
	limit, _ := cmd.Flags().GetInt("limit")

	return catalog.QueryOptions{
		Query:      queryText,
		TitleOnly:  titleOnly,
		MinBytes:   minBytes,
		MaxResults: limit,
	}
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	catalogCmd.PersistentFlags().String("corpus-dir", "corpus", "base directory for the corpus (contains pages/, index/)")
	catalogCmd.PersistentFlags().Int("max-results", 20, "maximum number of search results")

	// Search flags.
	catalogSearchCmd.Flags().String("query", "", "full-text search query")
	catalogSearchCmd.Flags().Bool("title-only", false, "match titles only")
	catalogSearchCmd.Flags().Int("min-bytes", 0, "only pages with at least this much text")
	catalogSearchCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	catalogSearchCmd.Flags().Bool("json", false, "output results as JSON")

	// Export flags.
	catalogExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	catalogExportCmd.Flags().String("query", "", "full-text search filter for partial export")
	catalogExportCmd.Flags().Bool("title-only", false, "match titles only")
	catalogExportCmd.Flags().Int("min-bytes", 0, "only pages with at least this much text")
	catalogExportCmd.Flags().Int("limit", 0, "maximum pages to export (0 = all)")

	// Wire subcommands.
	catalogCmd.AddCommand(catalogIndexCmd)
	catalogCmd.AddCommand(catalogSearchCmd)
	catalogCmd.AddCommand(catalogExportCmd)

	rootCmd.AddCommand(catalogCmd)
}
