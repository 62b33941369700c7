package cmd

import (
	"fmt"

	"github.com/Swissguarde/dimex-sdc/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of dimex-sdc",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, version.String())
		fmt.Fprintln(out, "Slope-Deflection Calculator")
		fmt.Fprintln(out, "Continuous beams and single-bay portal frames")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
