package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/medcat/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export datasets to a JSON or YAML file",
	Long: `Export writes all datasets, or one category, to a file. The document
carries a manifest (category list and total count) followed by the
entries. Files are written atomically via a temporary sibling.`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	category, _ := cmd.Flags().GetString("category")
	outFormat, _ := cmd.Flags().GetString("format")
	indent, _ := cmd.Flags().GetInt("indent")
	includeRaw, _ := cmd.Flags().GetBool("include-raw")

	browser, _, err := openBrowser(cmd)
	if err != nil {
		return err
	}

	datasets := browser.Datasets()
	if category != "" {
		datasets = browser.BrowseByCategory(category)
		if len(datasets) == 0 {
			return fmt.Errorf("no datasets found in category %q", category)
		}
	}

	switch outFormat {
	case "json", "":
		err = export.JSON(datasets, output, indent, includeRaw)
	case "yaml":
		err = export.YAML(datasets, output, includeRaw)
	default:
		return fmt.Errorf("unsupported format %q: use json or yaml", outFormat)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Exported %d dataset(s) to: %s\n", len(datasets), output)
	return nil
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "output file path")
	exportCmd.MarkFlagRequired("output")
	exportCmd.Flags().StringP("category", "c", "", "export only this category")
	exportCmd.Flags().String("format", "json", "export format: json or yaml")
	exportCmd.Flags().Int("indent", 2, "JSON indentation level")
	exportCmd.Flags().Bool("include-raw", false, "include the raw source text of each entry")

	rootCmd.AddCommand(exportCmd)
}
