// Item favorite command toggles the favorite flag.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var itemFavoriteCmd = &cobra.Command{
	Use:   "favorite <item>",
	Short: "Toggle an item's favorite flag",
	Long: `Favorite flips the favorite flag: favorites become plain items and plain
items become favorites. The item may be referenced by id or name.

Example:
  perkg item favorite Rice`,
	Args: cobra.ExactArgs(1),
	RunE: runItemFavorite,
}

func runItemFavorite(cmd *cobra.Command, args []string) error {
	stores, err := openStores()
	if err != nil {
		fmt.Fprintln(os.Stderr, "item favorite:", err)
		os.Exit(exitSysError)
	}
	defer stores.Close()

	item, err := findItem(stores.items, args[0])
	if err != nil {
		return err
	}

	if err := stores.items.ToggleFavorite(item.ID); err != nil {
		fmt.Fprintln(os.Stderr, "item favorite:", err)
		os.Exit(exitSysError)
	}

	updated, _, err := stores.items.Get(item.ID)
	if err != nil {
		fmt.Fprintln(os.Stderr, "item favorite:", err)
		os.Exit(exitSysError)
	}

	if flagJSON {
		return printJSON(updated)
	}
	if updated.IsFavorite {
		fmt.Printf("%s is now a favorite.\n", updated.Name)
	} else {
		fmt.Printf("%s is no longer a favorite.\n", updated.Name)
	}
	return nil
}
