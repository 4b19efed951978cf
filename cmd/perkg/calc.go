// Calc command group for the perkg CLI.
package main

import "github.com/spf13/cobra"

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Convert between price and weight",
}

func init() {
	calcCmd.AddCommand(calcPriceCmd)
	calcCmd.AddCommand(calcWeightCmd)
}
