// Package main is the entry point for the tactica combat simulator
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tactica",
	Short: "Tactica action resolution engine",
	Long:  `Tactica resolves turn-based tactical combat: action economy, costs, rolls, reactions, and effects.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
}
