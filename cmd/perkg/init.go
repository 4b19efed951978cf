// Init command for the perkg CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize perkg storage",
	Long: `Init creates the configuration directory with a default config.yaml,
opens the data directory, and seeds the default item catalog if the store
has never held one.

Example:
  perkg init
  perkg init --data-dir ~/groceries`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}
		if err := ensureConfigDir(configDir); err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}
		if err := ensureDefaultConfigFile(configDir); err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}

		stores, err := openStores()
		if err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}
		defer stores.Close()

		// The first read of a fresh store seeds the default catalog.
		items, err := stores.items.List()
		if err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}

		dataDir, err := resolveDataDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}

		fmt.Println("perkg initialized")
		fmt.Println("  config:", configDir)
		fmt.Println("  data:  ", dataDir)
		fmt.Printf("  items:  %d\n", len(items))
		return nil
	},
}
