package diagram

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
)

// ASCII plots q along the run as a terminal chart of the given size.
// The run is resampled on width equal steps since asciigraph spaces its
// values evenly.
func ASCII(r Run, q Quantity, width, height int) string {
	if width < 2 {
		width = 2
	}
	if height < 1 {
		height = 1
	}
	total := r.Length()
	values := make([]float64, width)
	for i := range values {
		values[i] = r.At(q, total*float64(i)/float64(width-1))
	}

	caption := fmt.Sprintf("%s %s, %s over %.2f m", r.Title, q.Abbrev(), q, total)
	return asciigraph.Plot(values,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(2),
		asciigraph.Caption(caption),
	)
}
