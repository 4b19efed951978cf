// Calc weight command computes what an amount of money buys.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/a-rout/price-calculator-app/pkg/calc"
	"github.com/a-rout/price-calculator-app/pkg/types"
)

var calcWeightCmd = &cobra.Command{
	Use:   "weight <item> <amount>",
	Short: "Weight an amount of money buys",
	Long: `Weight computes how many kilograms of the item the given amount buys at
its stored per-kg price. The conversion lands in the calculation history and
marks the item as recently used.

Example:
  perkg calc weight Rice 100
  perkg calc weight Rice 50 --json`,
	Args: cobra.ExactArgs(2),
	RunE: runCalcWeight,
}

func runCalcWeight(cmd *cobra.Command, args []string) error {
	amount, err := parseDecimalArg(args[1], "amount")
	if err != nil {
		return err
	}

	stores, err := openStores()
	if err != nil {
		fmt.Fprintln(os.Stderr, "calc weight:", err)
		os.Exit(exitSysError)
	}
	defer stores.Close()

	item, err := findItem(stores.items, args[0])
	if err != nil {
		return err
	}

	weight, err := calc.WeightFor(item.PricePerKg, amount)
	if err != nil {
		return fmt.Errorf("%s: %w", item.Name, err)
	}

	entry := types.Calculation{
		ItemID:     item.ID,
		ItemName:   item.Name,
		Mode:       types.ModeWeight,
		Input:      amount,
		Result:     weight,
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
	fmt.Printf("%s buys %s kg of %s at %s/kg\n",
		amount, weight.StringFixed(calc.WeightScale), item.Name, item.PricePerKg)
	return nil
}
