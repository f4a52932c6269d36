package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pdiddy/medcat/internal/format"
)

var listCategoriesCmd = &cobra.Command{
	Use:   "list-categories",
	Short: "List all categories with dataset counts",
	Long: `List-categories prints every category with its dataset count,
ordered by descending count. Ties keep catalog order.`,
	RunE: runListCategories,
}

func runListCategories(cmd *cobra.Command, args []string) error {
	sortBy, _ := cmd.Flags().GetString("sort-by")
	if sortBy != "name" && sortBy != "count" {
		return fmt.Errorf("unsupported sort key %q: use name or count", sortBy)
	}

	browser, _, err := openBrowser(cmd)
	if err != nil {
		return err
	}

	categories := browser.ListCategories()
	if len(categories) == 0 {
		fmt.Println("No categories found")
		return nil
	}

	if sortBy == "name" {
		sort.SliceStable(categories, func(i, j int) bool {
			return categories[i].Category < categories[j].Category
		})
	}

	noun := "categories"
	if len(categories) == 1 {
		noun = "category"
	}
	fmt.Printf("Found %d %s:\n\n", len(categories), noun)
	fmt.Println(format.CategoryTable(categories))
	return nil
}

func init() {
	listCategoriesCmd.Flags().String("sort-by", "count", "sort categories by name or count")

	rootCmd.AddCommand(listCategoriesCmd)
}
