// Recent command shows recently used items.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently used items",
	Long: `Recent shows the items most recently used in calculations, newest first.
Items deleted since they were used are skipped.

Example:
  perkg recent
  perkg recent --json`,
	Args: cobra.NoArgs,
	RunE: runRecent,
}

func runRecent(cmd *cobra.Command, args []string) error {
	stores, err := openStores()
	if err != nil {
		fmt.Fprintln(os.Stderr, "recent:", err)
		os.Exit(exitSysError)
	}
	defer stores.Close()

	items, err := stores.recent.Resolve()
	if err != nil {
		fmt.Fprintln(os.Stderr, "recent:", err)
		os.Exit(exitSysError)
	}

	if flagJSON {
		return printJSON(items)
	}
	printItemTable(items)
	return nil
}
