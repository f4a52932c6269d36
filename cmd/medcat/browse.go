package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/medcat/internal/format"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse datasets by category",
	Long: `Browse prints the datasets in one category, in catalog order.
Category names are matched exactly; use list-categories to see them.`,
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	category, _ := cmd.Flags().GetString("category")
	detailed, _ := cmd.Flags().GetBool("detailed")
	noURLs, _ := cmd.Flags().GetBool("no-urls")

	browser, cfg, err := openBrowser(cmd)
	if err != nil {
		return err
	}

	results := browser.BrowseByCategory(category)
	if len(results) == 0 {
		fmt.Printf("No datasets found in category %q\n", category)
		fmt.Println("\nUse 'medcat list-categories' to see available categories")
		return nil
	}

	fmt.Printf("Found %d dataset(s) in category %q:\n\n", len(results), category)
	for i, d := range results {
		fmt.Fprintf(os.Stdout, "%d. %s\n", i+1, strings.Repeat("-", 70))
		fmt.Fprintln(os.Stdout, format.Dataset(d, detailed, !noURLs, cfg.TruncateLength))
		fmt.Fprintln(os.Stdout)
	}
	return nil
}

func init() {
	browseCmd.Flags().StringP("category", "c", "", "category name to browse")
	browseCmd.MarkFlagRequired("category")
	browseCmd.Flags().Bool("detailed", false, "show full descriptions")
	browseCmd.Flags().Bool("no-urls", false, "hide URLs in output")

	rootCmd.AddCommand(browseCmd)
}
