package cmd

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/Swissguarde/dimex-sdc/internal/analysis"
	"github.com/Swissguarde/dimex-sdc/internal/diagram"
	"github.com/Swissguarde/dimex-sdc/internal/structure"
	"golang.org/x/text/message"
)

const (
	rule    = "═══════════════════════════════════════════════════════════════"
	subrule = "───────────────────────────────────────────────────────────────"
)

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
}

func printTitle(out io.Writer, title string) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, rule)
	fmt.Fprintf(out, "     %s\n", title)
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out)
}

func printSection(out io.Writer, title string) {
	fmt.Fprintln(out, title)
	fmt.Fprintln(out, subrule)
}

func printMembers(out io.Writer, p *message.Printer, members []structure.Member) {
	printSection(out, "INPUT DATA:")
	w := newTable(out)
	fmt.Fprintf(w, "  Member\tL (m)\tEI (kN·m²)\tStart\tEnd\tLoad\n")
	fmt.Fprintf(w, "  ──────\t─────\t──────────\t─────\t───\t────\n")
	for _, m := range members {
		p.Fprintf(w, "  %s\t%.3f\t%.4g\t%s\t%s\t%s\n", m.Label(), m.Length, m.Rigidity, m.Start, m.End, m.Load)
	}
	w.Flush()
	fmt.Fprintln(out)
}

func printFixedEnd(out io.Writer, p *message.Printer, res *analysis.Result) {
	printSection(out, "FIXED-END MOMENTS (kN·m):")
	w := newTable(out)
	fmt.Fprintf(w, "  Member\tFEM start\tFEM end\n")
	for _, f := range res.FixedEndMoments() {
		p.Fprintf(w, "  %s\t%.4f\t%.4f\n", f.Label, f.Start, f.End)
	}
	w.Flush()
	fmt.Fprintln(out)
}

func printEquations(out io.Writer, res *analysis.Result) {
	printSection(out, "SLOPE-DEFLECTION EQUATIONS:")
	for _, e := range res.Model.Ends {
		fmt.Fprintf(out, "  M%s = %s\n", e.Label, e.Expr)
	}
	fmt.Fprintln(out)

	printSection(out, fmt.Sprintf("EQUILIBRIUM EQUATIONS (%d unknowns):", len(res.Model.System.Unknowns)))
	for _, eq := range res.Model.System.Equations {
		fmt.Fprintf(out, "  [%s] %s\n", eq.Kind, eq)
	}
	fmt.Fprintln(out)
}

func printSolution(out io.Writer, p *message.Printer, res *analysis.Result) {
	printSection(out, "SOLUTION:")
	w := newTable(out)
	p.Fprintf(w, "  EI_ref:\t%.4g kN·m²\n", res.Model.Reference)
	p.Fprintf(w, "  Release scheme:\t%s\n", res.Model.Scheme)
	for _, u := range res.Solution.Unknowns {
		p.Fprintf(w, "  EI_ref·%s:\t%.6f\t(%s = %.6e)\n", u, res.Solution.Value(u), u, res.Unscaled(u))
	}
	if len(res.Solution.Unknowns) == 0 {
		fmt.Fprintf(w, "  No unknowns: every joint is clamped.\n")
	}
	w.Flush()
	fmt.Fprintln(out)
}

func printMoments(out io.Writer, p *message.Printer, res *analysis.Result) {
	printSection(out, "FINAL END MOMENTS (kN·m, clockwise positive):")
	w := newTable(out)
	fmt.Fprintf(w, "  End\tFEM\tMoment\n")
	fmt.Fprintf(w, "  ───\t───\t──────\n")
	for _, m := range res.Moments {
		note := ""
		if m.Released {
			note = "  (released)"
		}
		p.Fprintf(w, "  M%s\t%.4f\t%.4f%s\n", m.Label, m.FixedEnd, m.Value, note)
	}
	w.Flush()
	fmt.Fprintln(out)
}

func printReactions(out io.Writer, p *message.Printer, res *analysis.Result) {
	printSection(out, "SUPPORT REACTIONS (kN):")
	w := newTable(out)
	for _, r := range res.Reactions {
		p.Fprintf(w, "  %s:\t%.4f\t%s\n", r.Label, r.Value, r.Direction)
	}
	p.Fprintf(w, "  ΣV:\t%.4f\n", res.Reactions.Sum(analysis.Vertical))
	p.Fprintf(w, "  ΣH:\t%.4f\n", res.Reactions.Sum(analysis.Horizontal))
	w.Flush()
	fmt.Fprintln(out)
}

func printCriticalPoints(out io.Writer, p *message.Printer, res *analysis.Result) {
	printSection(out, "CRITICAL POINTS:")
	w := newTable(out)
	fmt.Fprintf(w, "  Member\tx (m)\tV (kN)\tM (kN·m)\tKind\n")
	fmt.Fprintf(w, "  ──────\t─────\t──────\t────────\t────\n")
	for _, d := range res.Diagrams {
		for _, c := range d.Points {
			p.Fprintf(w, "  %s\t%.3f\t%.4f\t%.4f\t%s\n", d.Label, c.X, c.Shear, c.Moment, c.Kind)
		}
	}
	w.Flush()
	fmt.Fprintln(out)

	best := res.Diagrams[0].MaxMoment()
	label := res.Diagrams[0].Label
	for _, d := range res.Diagrams[1:] {
		if m := d.MaxMoment(); math.Abs(m.Moment) > math.Abs(best.Moment) {
			best, label = m, d.Label
		}
	}
	fmt.Fprintf(out, "  ╔═════════════════════════════════════════╗\n")
	p.Fprintf(out, "  ║  MAX MOMENT = %.2f kN·m in %s at x = %.2f m\n", best.Moment, label, best.X)
	fmt.Fprintf(out, "  ╚═════════════════════════════════════════╝\n")
	fmt.Fprintln(out)
}

func printDiagrams(out io.Writer, runs []diagram.Run) {
	for _, r := range runs {
		for _, q := range []diagram.Quantity{diagram.Shear, diagram.Moment} {
			fmt.Fprintln(out, diagram.ASCII(r, q, 60, 10))
			fmt.Fprintln(out)
		}
	}
}

func printReport(out io.Writer, p *message.Printer, title string, members []structure.Member, res *analysis.Result) {
	printTitle(out, title)
	printMembers(out, p, members)
	printFixedEnd(out, p, res)
	printEquations(out, res)
	printSolution(out, p, res)
	printMoments(out, p, res)
	printReactions(out, p, res)
	printCriticalPoints(out, p, res)
}
