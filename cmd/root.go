package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/Swissguarde/dimex-sdc/internal/config"
	"github.com/Swissguarde/dimex-sdc/internal/version"
	"github.com/spf13/cobra"
)

var (
	verbose bool

	// cfg holds the environment defaults, loaded before any command runs.
	cfg config.Config

	// logger writes pipeline diagnostics when --verbose is set.
	logger = log.New(io.Discard, "", 0)
)

var rootCmd = &cobra.Command{
	Use:   "dimex-sdc",
	Short: "Slope-deflection analysis of continuous beams and portal frames",
	Long: `dimex-sdc - Slope-Deflection Calculator

A CLI tool for the elastic analysis of indeterminate structures
by the slope-deflection method.

This tool helps structural engineers perform:
  - Continuous beam analysis (three or more spans, support settlement)
  - Single-bay portal frame analysis (sway, braced, roller bases)
  - Fixed-end moment, end moment and reaction calculation
  - Shear force and bending moment diagrams
  - Load factoring with NSCP 2015 load combinations

Environment:
  SDC_RELEASE_SCHEME      zero-moment or modified (default zero-moment)
  SDC_SINGULAR_TOLERANCE  smallest accepted reciprocal condition number (default 1e-9)
  SDC_RESIDUAL_TOLERANCE  equilibrium self-check tolerance (default 1e-6)
  SDC_DIAGRAM_SAMPLES     diagram intervals per member (default 40)
  SDC_LOCALE              number formatting locale (default en)`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(); err != nil {
			return err
		}
		if verbose {
			logger = log.New(cmd.ErrOrStderr(), "", 0)
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   dimex-sdc v%-45s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Slope-Deflection Calculator                             ║")
		fmt.Fprintf(out, "  ║   %-56s║\n", version.Author+" ©  "+version.Year)
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  A CLI tool for the analysis of continuous beams and portal")
		fmt.Fprintln(out, "  frames by the slope-deflection method.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Fixed-end moments for uniform and point loads")
		fmt.Fprintln(out, "    • Continuous beams with hinged, roller and fixed supports")
		fmt.Fprintln(out, "    • Sway and braced portal frames")
		fmt.Fprintln(out, "    • Shear force and bending moment diagrams (ASCII, PNG, SVG, PDF)")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'dimex-sdc --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log pipeline stages to stderr")
}
