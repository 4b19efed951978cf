// Version command for the perkg CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped manually on release.
const version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the perkg version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("perkg", version)
	},
}
