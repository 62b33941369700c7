package cmd

import (
	"fmt"
	"io"

	"github.com/Swissguarde/dimex-sdc/internal/analysis"
	"github.com/Swissguarde/dimex-sdc/internal/diagram"
	"github.com/Swissguarde/dimex-sdc/internal/loads"
	"github.com/Swissguarde/dimex-sdc/internal/slope"
	"github.com/spf13/cobra"
	"golang.org/x/text/message"
)

// analyzeFlags are shared by beam analyze and frame analyze.
type analyzeFlags struct {
	file    string
	scheme  string
	combo   string
	diagram bool
	output  string
	samples int
}

func (f *analyzeFlags) register(c *cobra.Command) {
	c.Flags().StringVarP(&f.file, "file", "f", "", "Structure definition file (JSON) [required]")
	c.Flags().StringVarP(&f.scheme, "scheme", "s", "", "Release scheme: zero-moment or modified (default $SDC_RELEASE_SCHEME)")
	c.Flags().StringVarP(&f.combo, "combo", "c", "", "NSCP load combination ID used to factor load components")
	c.Flags().BoolVarP(&f.diagram, "diagram", "d", false, "Print ASCII shear and moment diagrams")
	c.Flags().StringVarP(&f.output, "output", "o", "", "Export diagrams to an image file (.png, .svg or .pdf)")
	c.Flags().IntVar(&f.samples, "samples", 0, "Diagram intervals per member (default $SDC_DIAGRAM_SAMPLES)")

	c.MarkFlagRequired("file")
}

// options resolves flags over the environment configuration.
func (f *analyzeFlags) options(cmd *cobra.Command) (analysis.Options, *loads.Combination, error) {
	opts, err := cfg.Options()
	if err != nil {
		return analysis.Options{}, nil, err
	}
	if cmd.Flags().Changed("scheme") {
		if opts.Scheme, err = slope.ParseScheme(f.scheme); err != nil {
			return analysis.Options{}, nil, err
		}
	}
	if !cmd.Flags().Changed("samples") || f.samples < 1 {
		f.samples = cfg.DiagramSamples
	}

	var combo *loads.Combination
	if f.combo != "" {
		c, err := loads.Lookup(f.combo)
		if err != nil {
			return analysis.Options{}, nil, err
		}
		combo = &c
	}
	return opts, combo, nil
}

// finish prints and exports the diagrams requested by the flags.
func (f *analyzeFlags) finish(out io.Writer, p *message.Printer, runs []diagram.Run) error {
	if f.diagram {
		printDiagrams(out, runs)
	}
	if f.output == "" {
		return nil
	}
	path, err := diagram.Export(f.output, runs, f.samples)
	if err != nil {
		return fmt.Errorf("export diagrams: %w", err)
	}
	logger.Printf("diagrams written to %s", path)
	p.Fprintf(out, "  Diagrams exported to: %s\n\n", path)
	return nil
}

func logResult(res *analysis.Result) {
	logger.Printf("%s %q: %s", res.Kind, res.Name, res.Model)
	logger.Printf("condition estimate %.4g, worst relative residual %.3g", res.Solution.Condition, res.MaxResidual)
}

func printer() *message.Printer {
	return message.NewPrinter(cfg.Language())
}
