package cmd

import (
	"fmt"

	"github.com/Swissguarde/dimex-sdc/internal/analysis"
	"github.com/Swissguarde/dimex-sdc/internal/diagram"
	"github.com/Swissguarde/dimex-sdc/internal/structure"
	"github.com/spf13/cobra"
)

var beamFlags analyzeFlags

var beamAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a continuous beam by the slope-deflection method",
	Long: `Calculate the end moments, support reactions and shear/moment
diagrams of a continuous beam described in a JSON file.

The analysis proceeds as:
  - Fixed-end moments for each span (UDL or point load)
  - Slope-deflection equation at every member end
  - Joint equilibrium and released-end boundary equations
  - Solution of the linear system and equilibrium self-check
  - Final moments, reactions and critical diagram points

Examples:
  # Analyze a three-span beam
  dimex-sdc beam analyze -f beam.json

  # Factor load components with NSCP combination 2 and print diagrams
  dimex-sdc beam analyze -f beam.json --combo 2 --diagram

  # Condense hinged ends and export the diagrams
  dimex-sdc beam analyze -f beam.json --scheme modified -o out/beam.png`,
	RunE: runBeamAnalyze,
}

func init() {
	beamCmd.AddCommand(beamAnalyzeCmd)
	beamFlags.register(beamAnalyzeCmd)
}

func runBeamAnalyze(cmd *cobra.Command, args []string) error {
	opts, combo, err := beamFlags.options(cmd)
	if err != nil {
		return err
	}

	b, err := structure.LoadBeamFromFile(beamFlags.file, combo)
	if err != nil {
		return err
	}
	logger.Printf("loaded beam %q: %d spans", b.Name, len(b.Spans))

	res, err := analysis.AnalyzeBeam(b, opts)
	if err != nil {
		return fmt.Errorf("analyze beam %q: %w", b.Name, err)
	}
	logResult(res)

	out := cmd.OutOrStdout()
	p := printer()
	title := "CONTINUOUS BEAM ANALYSIS - SLOPE-DEFLECTION METHOD"
	if combo != nil {
		title += fmt.Sprintf(" (%s)", combo.Description)
	}
	printReport(out, p, title, b.Spans, res)

	run := diagram.Run{Title: beamTitle(b), Diagrams: res.Diagrams}
	return beamFlags.finish(out, p, []diagram.Run{run})
}

func beamTitle(b structure.Beam) string {
	if b.Name != "" {
		return b.Name
	}
	return "Beam"
}
