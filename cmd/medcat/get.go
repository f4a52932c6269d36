package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/medcat/internal/format"
)

var getCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Show one dataset by name",
	Long: `Get retrieves a single dataset by name. The default match is a
case-insensitive substring match; --exact requires the full name. With
--exact a miss is an error, otherwise it prints a message and exits 0.`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	exact, _ := cmd.Flags().GetBool("exact")
	outFormat, _ := cmd.Flags().GetString("format")

	browser, cfg, err := openBrowser(cmd)
	if err != nil {
		return err
	}

	name := args[0]
	d, ok := browser.GetByName(name, exact)
	if !ok {
		if exact {
			return fmt.Errorf("dataset not found: %q", name)
		}
		fmt.Printf("Dataset not found: %q\n", name)
		return nil
	}

	switch outFormat {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(d.ExportView(false))
	case "text", "":
		rule := strings.Repeat("=", 70)
		fmt.Println(rule)
		fmt.Println(format.Dataset(d, true, true, cfg.TruncateLength))
		fmt.Println(rule)
	default:
		return fmt.Errorf("unsupported format %q: use text or json", outFormat)
	}
	return nil
}

func init() {
	getCmd.Flags().Bool("exact", false, "require an exact name match")
	getCmd.Flags().String("format", "text", "output format: text or json")

	rootCmd.AddCommand(getCmd)
}
