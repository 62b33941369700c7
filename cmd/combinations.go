package cmd

import (
	"fmt"

	"github.com/Swissguarde/dimex-sdc/internal/loads"
	"github.com/spf13/cobra"
)

// Unfactored load components
var combinationLoads loads.Components

var combinationsCmd = &cobra.Command{
	Use:   "combinations",
	Short: "List NSCP load combinations and factor load components",
	Long: `List the NSCP 2015 load combinations accepted by --combo.

When unfactored load components are given, every combination is
applied to them and the governing combination is reported. Use the
same components in a structure file to factor its loads.

Load Types:
  D  - Dead load
  L  - Live load
  Lr - Roof live load
  W  - Wind load
  E  - Earthquake load
  R  - Rain load

Examples:
  # List the combinations
  dimex-sdc combinations

  # Governing UDL from 12 kN/m dead and 8 kN/m live
  dimex-sdc combinations --dead 12 --live 8`,
	Run: runCombinations,
}

func init() {
	rootCmd.AddCommand(combinationsCmd)

	combinationsCmd.Flags().Float64VarP(&combinationLoads.Dead, "dead", "D", 0, "Dead load component")
	combinationsCmd.Flags().Float64VarP(&combinationLoads.Live, "live", "L", 0, "Live load component")
	combinationsCmd.Flags().Float64Var(&combinationLoads.Roof, "roof", 0, "Roof live load component")
	combinationsCmd.Flags().Float64VarP(&combinationLoads.Wind, "wind", "W", 0, "Wind load component")
	combinationsCmd.Flags().Float64VarP(&combinationLoads.Earthquake, "earthquake", "E", 0, "Earthquake load component")
	combinationsCmd.Flags().Float64VarP(&combinationLoads.Rain, "rain", "R", 0, "Rain load component")
}

func runCombinations(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	p := printer()

	printTitle(out, "NSCP 2015 LOAD COMBINATIONS (Section 203.3)")

	given := !combinationLoads.IsZero()
	var value float64
	var governing loads.Combination
	if given {
		value, governing = loads.Governing(combinationLoads, loads.Combinations)
	}

	w := newTable(out)
	if given {
		fmt.Fprintf(w, "  #\tCombination\tFactored\n")
		fmt.Fprintf(w, "  ─\t───────────\t────────\n")
	} else {
		fmt.Fprintf(w, "  #\tCombination\n")
		fmt.Fprintf(w, "  ─\t───────────\n")
	}
	for _, combo := range loads.Combinations {
		if !given {
			fmt.Fprintf(w, "  %s\t%s\n", combo.ID, combo.Description)
			continue
		}
		marker := ""
		if combo.ID == governing.ID {
			marker = " ← GOVERNS"
		}
		p.Fprintf(w, "  %s\t%s\t%.2f%s\n", combo.ID, combo.Description, combo.Factor(combinationLoads), marker)
	}
	w.Flush()
	fmt.Fprintln(out)

	if !given {
		fmt.Fprintln(out, "  Provide components (--dead, --live, ...) to factor them.")
		fmt.Fprintln(out)
		return
	}
	printSection(out, "RESULT:")
	fmt.Fprintf(out, "  Governing Combination: %s (%s)\n", governing.ID, governing.Description)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  ╔═══════════════════════════════════╗\n")
	p.Fprintf(out, "  ║  FACTORED LOAD = %.2f  \n", value)
	fmt.Fprintf(out, "  ╚═══════════════════════════════════╝\n")
	fmt.Fprintln(out)
}
