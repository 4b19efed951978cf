// Item list command shows the catalog.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/a-rout/price-calculator-app/pkg/types"
)

var (
	listCategory  string
	listFavorites bool
)

var itemListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog items",
	Long: `List shows the item catalog. The first list of a fresh store seeds the
default catalog.

Example:
  perkg item list
  perkg item list --category vegetables
  perkg item list --favorites
  perkg item list --json`,
	Args: cobra.NoArgs,
	RunE: runItemList,
}

func init() {
	itemListCmd.Flags().StringVar(&listCategory, "category", "", "filter by category")
	itemListCmd.Flags().BoolVar(&listFavorites, "favorites", false, "show favorites only")
}

func runItemList(cmd *cobra.Command, args []string) error {
	stores, err := openStores()
	if err != nil {
		fmt.Fprintln(os.Stderr, "item list:", err)
		os.Exit(exitSysError)
	}
	defer stores.Close()

	var items []types.Item
	switch {
	case listFavorites:
		items, err = stores.items.Favorites()
	case listCategory != "":
		var category types.Category
		category, err = parseCategoryFlag(listCategory)
		if err != nil {
			return err
		}
		items, err = stores.items.ByCategory(category)
	default:
		items, err = stores.items.List()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "item list:", err)
		os.Exit(exitSysError)
	}

	if flagJSON {
		return printJSON(items)
	}
	printItemTable(items)
	return nil
}
