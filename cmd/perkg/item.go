// Item command group for the perkg CLI.
package main

import "github.com/spf13/cobra"

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Manage the item catalog",
}

func init() {
	itemCmd.AddCommand(itemListCmd)
	itemCmd.AddCommand(itemAddCmd)
	itemCmd.AddCommand(itemUpdateCmd)
	itemCmd.AddCommand(itemDeleteCmd)
	itemCmd.AddCommand(itemFavoriteCmd)
}
