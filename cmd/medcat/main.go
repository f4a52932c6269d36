// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the medcat CLI, a browser for
// dataset catalogs kept in markdown files. Each operation is a
// subcommand: search, browse, list-categories, stats, get, and export.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/medcat/internal/catalog"
	"github.com/pdiddy/medcat/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the medcat CLI.
var rootCmd = &cobra.Command{
	Use:   "medcat",
	Short: "Browse, search, and analyze a markdown dataset catalog",
	Long: `medcat parses a hand-authored markdown catalog of datasets into typed
records and answers queries over them: keyword search, category browsing,
summary statistics, and JSON/YAML export.

The catalog file defaults to README.md and can be set with --catalog, the
MEDCAT_CATALOG environment variable, or a medcat.yaml config file.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./medcat.yaml or ~/.config/medcat/config.yaml)")
	rootCmd.PersistentFlags().String("catalog", "", "path to the markdown catalog file (default: README.md)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "print progress lines to stderr")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("medcat")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "medcat"))
		}
	}

	viper.SetDefault("catalog", "README.md")
	viper.SetDefault("truncate_length", 100)

	viper.SetEnvPrefix("MEDCAT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// catalogConfig resolves the effective configuration from flags and viper.
// Flags win over config file values, which win over defaults.
func catalogConfig(cmd *cobra.Command) types.CatalogConfig {
	cfg := types.CatalogConfig{
		CatalogPath:    viper.GetString("catalog"),
		TruncateLength: viper.GetInt("truncate_length"),
	}
	if path, _ := cmd.Flags().GetString("catalog"); path != "" {
		cfg.CatalogPath = path
	}
	cfg.Verbose, _ = cmd.Flags().GetBool("verbose")
	return cfg.Defaults()
}

// openBrowser loads and parses the configured catalog file. A missing
// or unreadable file is fatal here; the caller surfaces the error and
// the process exits non-zero.
func openBrowser(cmd *cobra.Command) (*catalog.Browser, types.CatalogConfig, error) {
	cfg := catalogConfig(cmd)
	b, err := catalog.New(cfg.CatalogPath, catalog.Options{
		Log:     os.Stderr,
		Verbose: cfg.Verbose,
	})
	if err != nil {
		return nil, cfg, err
	}
	return b, cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
