// Item update command edits catalog entry fields.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/a-rout/price-calculator-app/pkg/store"
	"github.com/a-rout/price-calculator-app/pkg/types"
)

var (
	updateName     string
	updatePrice    string
	updateCategory string
)

var itemUpdateCmd = &cobra.Command{
	Use:   "update <item>",
	Short: "Update an item's name, price, or category",
	Long: `Update changes only the fields given by flags; everything else keeps its
stored value. The item may be referenced by id or name.

Example:
  perkg item update Rice --price 80
  perkg item update Rice --name "Basmati Rice" --category grains`,
	Args: cobra.ExactArgs(1),
	RunE: runItemUpdate,
}

func init() {
	itemUpdateCmd.Flags().StringVar(&updateName, "name", "", "new item name")
	itemUpdateCmd.Flags().StringVar(&updatePrice, "price", "", "new price per kilogram")
	itemUpdateCmd.Flags().StringVar(&updateCategory, "category", "", "new category")
}

func runItemUpdate(cmd *cobra.Command, args []string) error {
	var patch store.ItemPatch

	if cmd.Flags().Changed("name") {
		patch.Name = &updateName
	}
	if cmd.Flags().Changed("price") {
		price, err := parseDecimalArg(updatePrice, "price")
		if err != nil {
			return err
		}
		if !price.IsPositive() {
			return fmt.Errorf("%w: %s", types.ErrNonPositivePrice, updatePrice)
		}
		patch.PricePerKg = &price
	}
	if cmd.Flags().Changed("category") {
		category, err := parseCategoryFlag(updateCategory)
		if err != nil {
			return err
		}
		patch.Category = &category
	}
	if patch.Name == nil && patch.PricePerKg == nil && patch.Category == nil {
		return fmt.Errorf("nothing to update: pass --name, --price, or --category")
	}

	stores, err := openStores()
	if err != nil {
		fmt.Fprintln(os.Stderr, "item update:", err)
		os.Exit(exitSysError)
	}
	defer stores.Close()

	item, err := findItem(stores.items, args[0])
	if err != nil {
		return err
	}

	if err := stores.items.Update(item.ID, patch); err != nil {
		fmt.Fprintln(os.Stderr, "item update:", err)
		os.Exit(exitSysError)
	}

	updated, _, err := stores.items.Get(item.ID)
	if err != nil {
		fmt.Fprintln(os.Stderr, "item update:", err)
		os.Exit(exitSysError)
	}

	if flagJSON {
		return printJSON(updated)
	}
	fmt.Printf("Updated %s: %s/kg (%s)\n", updated.Name, updated.PricePerKg, updated.Category)
	return nil
}
