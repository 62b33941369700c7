package diagram

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

var (
	shearColor  = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	shearFill   = color.RGBA{R: 100, G: 149, B: 237, A: 120}
	momentColor = color.RGBA{R: 139, G: 0, B: 0, A: 255}
	momentFill  = color.RGBA{R: 237, G: 120, B: 100, A: 120}
)

// style returns the line and fill colours of q.
func style(q Quantity) (line, fill color.Color) {
	if q == Moment {
		return momentColor, momentFill
	}
	return shearColor, shearFill
}

// Plot builds the gonum plot of q along the run.
func Plot(r Run, q Quantity, samples int) (*plot.Plot, error) {
	t := r.Trace(q, samples)
	if len(t.X) == 0 {
		return nil, fmt.Errorf("%s has no members", r.Title)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s: %s", r.Title, q.Abbrev())
	p.X.Label.Text = "x (m)"
	p.Y.Label.Text = q.String()
	p.Add(plotter.NewGrid())

	lineColor, fillColor := style(q)
	xys := make(plotter.XYs, len(t.X))
	for i := range t.X {
		xys[i] = plotter.XY{X: t.X[i], Y: t.Y[i]}
	}

	// Close the curve on the axis so the area fills.
	area := make(plotter.XYs, 0, len(xys)+2)
	area = append(area, plotter.XY{X: t.X[0], Y: 0})
	area = append(area, xys...)
	area = append(area, plotter.XY{X: t.X[len(t.X)-1], Y: 0})
	poly, err := plotter.NewPolygon(area)
	if err != nil {
		return nil, err
	}
	poly.Color = fillColor
	poly.LineStyle.Width = 0
	p.Add(poly)

	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = lineColor
	p.Add(line)

	axis, err := plotter.NewLine(plotter.XYs{{X: t.X[0], Y: 0}, {X: t.X[len(t.X)-1], Y: 0}})
	if err != nil {
		return nil, err
	}
	axis.LineStyle.Width = vg.Points(1)
	axis.LineStyle.Color = color.Black
	p.Add(axis)

	crit := make(plotter.XYs, len(t.CriticalX))
	text := make([]string, len(t.CriticalX))
	for i := range t.CriticalX {
		crit[i] = plotter.XY{X: t.CriticalX[i], Y: t.CriticalY[i]}
		text[i] = fmt.Sprintf("%.2f", t.CriticalY[i])
	}
	marks, err := plotter.NewScatter(crit)
	if err != nil {
		return nil, err
	}
	marks.GlyphStyle.Color = lineColor
	marks.GlyphStyle.Radius = vg.Points(2.5)
	marks.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(marks)

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: crit, Labels: dedupe(crit, text)})
	if err != nil {
		return nil, err
	}
	p.Add(labels)

	// Keep the zero line inside the frame for one-signed diagrams.
	p.Y.Min = math.Min(p.Y.Min, 0)
	p.Y.Max = math.Max(p.Y.Max, 0)
	return p, nil
}

// dedupe blanks labels repeating the value of the previous point at the same
// place, which happens where members meet.
func dedupe(pts plotter.XYs, text []string) []string {
	out := make([]string, len(text))
	copy(out, text)
	for i := 1; i < len(pts); i++ {
		if pts[i] == pts[i-1] {
			out[i] = ""
		}
	}
	return out
}

// Export writes the SFD above the BMD for every run, one column per run, and
// returns the path written. The format follows the extension (.png, .svg or
// .pdf); any other extension gets .png appended.
func Export(filename string, runs []Run, samples int) (string, error) {
	if len(runs) == 0 {
		return "", fmt.Errorf("no diagrams to export")
	}
	rows := [][]*plot.Plot{make([]*plot.Plot, len(runs)), make([]*plot.Plot, len(runs))}
	for j, r := range runs {
		for i, q := range []Quantity{Shear, Moment} {
			p, err := Plot(r, q, samples)
			if err != nil {
				return "", fmt.Errorf("plot %s %s: %w", r.Title, q.Abbrev(), err)
			}
			rows[i][j] = p
		}
	}

	width := vg.Length(len(runs)) * 6 * vg.Inch
	height := 8 * vg.Inch

	ext := strings.ToLower(filepath.Ext(filename))
	var c interface {
		vg.CanvasSizer
		io.WriterTo
	}
	switch ext {
	case ".png":
		c = vgimg.PngCanvas{Canvas: vgimg.New(width, height)}
	case ".svg":
		c = vgsvg.New(width, height)
	case ".pdf":
		c = vgpdf.New(width, height)
	default:
		filename += ".png"
		c = vgimg.PngCanvas{Canvas: vgimg.New(width, height)}
	}

	tiles := draw.Tiles{
		Rows:      2,
		Cols:      len(runs),
		PadX:      vg.Millimeter * 4,
		PadY:      vg.Millimeter * 4,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}
	canvases := plot.Align(rows, tiles, draw.New(c))
	for i := range rows {
		for j, p := range rows[i] {
			p.Draw(canvases[i][j])
		}
	}

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}

	f, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	if _, err := c.WriteTo(f); err != nil {
		f.Close()
		return "", fmt.Errorf("write %s: %w", filename, err)
	}
	return filename, f.Close()
}
