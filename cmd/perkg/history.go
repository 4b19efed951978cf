// History commands inspect and clear the calculation log.
package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/a-rout/price-calculator-app/pkg/calc"
	"github.com/a-rout/price-calculator-app/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect past calculations",
}

func init() {
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyClearCmd)
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List past calculations, newest first",
	Long: `List shows the calculation log, newest first. The log keeps the most
recent entries only.

Example:
  perkg history list
  perkg history list --json`,
	Args: cobra.NoArgs,
	RunE: runHistoryList,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the calculation log",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	stores, err := openStores()
	if err != nil {
		fmt.Fprintln(os.Stderr, "history list:", err)
		os.Exit(exitSysError)
	}
	defer stores.Close()

	entries, err := stores.history.List()
	if err != nil {
		fmt.Fprintln(os.Stderr, "history list:", err)
		os.Exit(exitSysError)
	}

	if flagJSON {
		return printJSON(entries)
	}
	printHistoryTable(entries)
	return nil
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	stores, err := openStores()
	if err != nil {
		fmt.Fprintln(os.Stderr, "history clear:", err)
		os.Exit(exitSysError)
	}
	defer stores.Close()

	if err := stores.history.Clear(); err != nil {
		fmt.Fprintln(os.Stderr, "history clear:", err)
		os.Exit(exitSysError)
	}

	if flagJSON {
		return printJSON(map[string]string{"status": "cleared"})
	}
	fmt.Println("History cleared.")
	return nil
}

// printHistoryTable prints calculations in a human-readable table format.
func printHistoryTable(entries []types.Calculation) {
	if len(entries) == 0 {
		fmt.Println("No calculations yet.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "WHEN\tITEM\tCALCULATION")
	fmt.Fprintln(w, "----\t----\t-----------")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			e.Timestamp.Format("2006-01-02 15:04"),
			e.ItemName,
			describeCalculation(e),
		)
	}
	w.Flush()

	output := sb.String()
	for _, line := range strings.Split(output, "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}

	fmt.Printf("Total: %d calculation(s)\n", len(entries))
}

// describeCalculation renders one log entry the way the calculator showed it.
func describeCalculation(e types.Calculation) string {
	switch e.Mode {
	case types.ModePrice:
		return fmt.Sprintf("%s kg = %s", e.Input, e.Result.StringFixed(calc.PriceScale))
	case types.ModeWeight:
		return fmt.Sprintf("%s = %s kg", e.Input, e.Result.StringFixed(calc.WeightScale))
	default:
		return fmt.Sprintf("%s -> %s", e.Input, e.Result)
	}
}
