package cmd

import (
	"github.com/spf13/cobra"
)

var beamCmd = &cobra.Command{
	Use:   "beam",
	Short: "Continuous beam analysis",
	Long: `Analyze continuous beams of three or more spans by the
slope-deflection method.

Subcommands:
  analyze  - Solve end moments, reactions and diagrams from a JSON file

Supports may be fixed, hinged or roller. Support settlements are
given in metres, positive downward.`,
}

func init() {
	rootCmd.AddCommand(beamCmd)
}
