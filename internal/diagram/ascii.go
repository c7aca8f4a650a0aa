package diagram

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gosmd/internal/beam"
	"github.com/alexiusacademia/gosmd/internal/macaulay"
)

// DefaultChartHeight is the console chart height in rows.
const DefaultChartHeight = 12

// DefaultChartWidth keeps dense grids readable on a normal terminal;
// asciigraph interpolates the series down to this many columns.
const DefaultChartWidth = 70

// DrawASCIIChart renders one series as a console line chart. The bounds
// pin the vertical range so the zero baseline stays visible even for
// one-sided loadings.
func DrawASCIIChart(series []float64, b beam.AxisBounds, height int, caption string) string {
	if height <= 0 {
		height = DefaultChartHeight
	}
	return asciigraph.Plot(series,
		asciigraph.Height(height),
		asciigraph.Width(DefaultChartWidth),
		asciigraph.LowerBound(b.Min),
		asciigraph.UpperBound(b.Max),
		asciigraph.Precision(2),
		asciigraph.Caption(caption),
	)
}

// WriteDiagnosticsTable prints the per-term parse log in input order:
// index, raw text, status, and the resolved triple for accepted terms.
func WriteDiagnosticsTable(w io.Writer, diags macaulay.Diagnostics) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  #\tTerm\tStatus\tq\ta\tn\tLoad Type\n")
	fmt.Fprintf(tw, "  ─\t────\t──────\t─\t─\t─\t─────────\n")
	for _, dg := range diags {
		if dg.Status == macaulay.Accepted {
			t := dg.Term
			fmt.Fprintf(tw, "  %d\t%s\t✓ accepted\t%.4g\t%.4g\t%d\t%s\n",
				dg.Index, dg.Raw, t.Magnitude, t.Offset, t.Exponent, t.Kind())
		} else {
			fmt.Fprintf(tw, "  %d\t%s\t✗ rejected\t\t\t\t%v\n", dg.Index, dg.Raw, dg.Err)
		}
	}
	tw.Flush()
}

// WriteExtremesTable prints the governing shear and moment values with
// the stations where they occur.
func WriteExtremesTable(w io.Writer, d *beam.Diagram) {
	maxV, minV := beam.Extremes(d.Grid.X, d.V)
	maxM, minM := beam.Extremes(d.Grid.X, d.M)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Max Shear (V):\t%.3f\tat x = %.3f\n", maxV.Value, maxV.X)
	fmt.Fprintf(tw, "  Min Shear (V):\t%.3f\tat x = %.3f\n", minV.Value, minV.X)
	fmt.Fprintf(tw, "  Max Moment (M):\t%.3f\tat x = %.3f\n", maxM.Value, maxM.X)
	fmt.Fprintf(tw, "  Min Moment (M):\t%.3f\tat x = %.3f\n", minM.Value, minM.X)
	tw.Flush()
}

// DrawSummaryBox creates a boxed summary for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
