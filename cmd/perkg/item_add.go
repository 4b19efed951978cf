// Item add command creates a catalog entry.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/a-rout/price-calculator-app/pkg/types"
)

var (
	addName     string
	addPrice    string
	addCategory string
)

var itemAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an item to the catalog",
	Long: `Add creates a catalog item with the given per-kg price.

Example:
  perkg item add --name Paneer --price 320 --category dairy
  perkg item add --name "Basmati Rice" --price 120.50 --category grains --json`,
	Args: cobra.NoArgs,
	RunE: runItemAdd,
}

func init() {
	itemAddCmd.Flags().StringVar(&addName, "name", "", "item name (required)")
	itemAddCmd.Flags().StringVar(&addPrice, "price", "", "price per kilogram (required)")
	itemAddCmd.Flags().StringVar(&addCategory, "category", string(types.CategoryOther), "item category")
	_ = itemAddCmd.MarkFlagRequired("name")
	_ = itemAddCmd.MarkFlagRequired("price")
}

func runItemAdd(cmd *cobra.Command, args []string) error {
	price, err := parseDecimalArg(addPrice, "price")
	if err != nil {
		return err
	}
	if !price.IsPositive() {
		return fmt.Errorf("%w: %s", types.ErrNonPositivePrice, addPrice)
	}

	category, err := parseCategoryFlag(addCategory)
	if err != nil {
		return err
	}

	stores, err := openStores()
	if err != nil {
		fmt.Fprintln(os.Stderr, "item add:", err)
		os.Exit(exitSysError)
	}
	defer stores.Close()

	item, err := stores.items.Add(addName, price, category)
	if err != nil {
		fmt.Fprintln(os.Stderr, "item add:", err)
		os.Exit(exitSysError)
	}

	if flagJSON {
		return printJSON(item)
	}
	fmt.Printf("Added %s: %s/kg (%s)\n", item.Name, item.PricePerKg, item.Category)
	return nil
}
