package cmd

import (
	"github.com/spf13/cobra"
)

var frameCmd = &cobra.Command{
	Use:   "frame",
	Short: "Single-bay portal frame analysis",
	Long: `Analyze single-bay portal frames by the slope-deflection method.

Subcommands:
  analyze  - Solve end moments, sway, reactions and diagrams from a JSON file

Joints are labelled A (left base), B (left top), C (right top)
and D (right base). Bases may be fixed, hinged or roller.`,
}

func init() {
	rootCmd.AddCommand(frameCmd)
}
