// Package main is the entry point for the gridmage CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gridmage",
	Short: "Wave-survival spellcasting on a 12x12 grid",
	Long: `Gridmage pits a lone spellcaster against waves of goblins, archers
and ogres on a fixed battle grid. Every action you take resolves one
full enemy turn, so think before you step.`,
	// Bare "gridmage" starts a game with the play defaults.
	RunE: runPlay,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
}
