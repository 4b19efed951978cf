// Calc price command computes what a weight costs.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/a-rout/price-calculator-app/pkg/calc"
	"github.com/a-rout/price-calculator-app/pkg/types"
)

var calcPriceCmd = &cobra.Command{
	Use:   "price <item> <weight-kg>",
	Short: "Price of a given weight",
	Long: `Price computes what weight-kg kilograms of the item cost at its stored
per-kg price. The conversion lands in the calculation history and marks the
item as recently used.

Example:
  perkg calc price Rice 2
  perkg calc price Rice 0.25 --json`,
	Args: cobra.ExactArgs(2),
	RunE: runCalcPrice,
}

func runCalcPrice(cmd *cobra.Command, args []string) error {
	weight, err := parseDecimalArg(args[1], "weight")
	if err != nil {
		return err
	}

	stores, err := openStores()
	if err != nil {
		fmt.Fprintln(os.Stderr, "calc price:", err)
		os.Exit(exitSysError)
	}
	defer stores.Close()

	item, err := findItem(stores.items, args[0])
	if err != nil {
		return err
	}

	price, err := calc.PriceFor(item.PricePerKg, weight)
	if err != nil {
		return fmt.Errorf("%s: %w", item.Name, err)
	}

	entry := types.Calculation{
		ItemID:     item.ID,
		ItemName:   item.Name,
		Mode:       types.ModePrice,
		Input:      weight,
		Result:     price,
		PerKgPrice: item.PricePerKg,
	}
	stamped, err := stores.history.Record(entry)
	if err != nil {
		// Bookkeeping failed (and was logged); the conversion result stands.
		stamped = entry
	}
	// Recency failures are logged by the tracker and do not block the result.
	_ = stores.recent.Touch(item.ID)

	if flagJSON {
		return printJSON(stamped)
	}
	fmt.Printf("%s kg of %s at %s/kg = %s\n",
		weight, item.Name, item.PricePerKg, price.StringFixed(calc.PriceScale))
	return nil
}
