// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the wikitext CLI, the corpus
// builder behind the HebrewOCR training data: it downloads Wikipedia
// XML dumps, extracts one text file per page, and maintains a
// searchable catalog of the extracted corpus.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the wikitext CLI.
var rootCmd = &cobra.Command{
	Use:   "wikitext",
	Short: "Wikipedia dump text extraction for OCR corpora",
	Long: `wikitext turns Wikipedia XML dumps into a plain-text page corpus.

Each pipeline stage is a subcommand: fetch downloads a dump, extract
writes one .txt file per page (named after the sanitized title), and
catalog indexes the written pages into a searchable SQLite database.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./wikitext.yaml or ~/.config/wikitext/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("wikitext")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "wikitext"))
		}
	}

	viper.SetEnvPrefix("WIKITEXT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
