package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/medcat/internal/format"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search for datasets by keyword",
	Long: `Search matches the query as a substring against dataset names and
descriptions and prints the matching entries in catalog order. An empty
query matches every dataset.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	caseSensitive, _ := cmd.Flags().GetBool("case-sensitive")
	detailed, _ := cmd.Flags().GetBool("detailed")
	noURLs, _ := cmd.Flags().GetBool("no-urls")

	browser, cfg, err := openBrowser(cmd)
	if err != nil {
		return err
	}

	query := args[0]
	results := browser.Search(query, caseSensitive)
	if len(results) == 0 {
		fmt.Printf("No datasets found matching %q\n", query)
		return nil
	}

	fmt.Printf("Found %d dataset(s) matching %q:\n\n", len(results), query)
	for i, d := range results {
		fmt.Fprintf(os.Stdout, "%d. %s\n", i+1, strings.Repeat("-", 70))
		fmt.Fprintln(os.Stdout, format.Dataset(d, detailed, !noURLs, cfg.TruncateLength))
		fmt.Fprintln(os.Stdout)
	}
	return nil
}

func init() {
	searchCmd.Flags().Bool("case-sensitive", false, "match case exactly")
	searchCmd.Flags().Bool("detailed", false, "show full descriptions")
	searchCmd.Flags().Bool("no-urls", false, "hide URLs in output")

	rootCmd.AddCommand(searchCmd)
}
