// Package main provides the perkg CLI, a price-per-weight calculator over a
// local document store.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "perkg:", err)
		os.Exit(exitUserError)
	}
}
