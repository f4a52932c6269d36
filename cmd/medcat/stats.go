package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/medcat/internal/format"
	"github.com/pdiddy/medcat/internal/query"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show summary statistics for the catalog",
	Long: `Stats reports totals, per-category counts, URL coverage, registration
requirements, and description length statistics for the whole catalog.`,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	outFormat, _ := cmd.Flags().GetString("format")
	outPath, _ := cmd.Flags().GetString("output")

	browser, _, err := openBrowser(cmd)
	if err != nil {
		return err
	}

	stats := query.Summarize(browser.Datasets())

	switch outFormat {
	case "json":
		data, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling statistics: %w", err)
		}
		if outPath != "" {
			if err := os.WriteFile(outPath, append(data, '\n'), 0o644); err != nil {
				return fmt.Errorf("writing statistics to %s: %w", outPath, err)
			}
			fmt.Printf("Statistics saved to: %s\n", outPath)
			return nil
		}
		fmt.Println(string(data))
	case "text", "":
		fmt.Println(format.Stats(stats))
	default:
		return fmt.Errorf("unsupported format %q: use text or json", outFormat)
	}
	return nil
}

func init() {
	statsCmd.Flags().String("format", "text", "output format: text or json")
	statsCmd.Flags().StringP("output", "o", "", "save JSON statistics to a file")

	rootCmd.AddCommand(statsCmd)
}
