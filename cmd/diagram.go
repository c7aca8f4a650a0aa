package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosmd/internal/beam"
	"github.com/alexiusacademia/gosmd/internal/diagram"
	"github.com/alexiusacademia/gosmd/internal/macaulay"
)

var (
	// Diagram inputs
	diagramLength float64
	diagramLoad   string
	diagramStep   float64

	// Options
	diagramOutput string
	diagramHeight int
	diagramQuiet  bool
)

var diagramCmd = &cobra.Command{
	Use:   "diagram",
	Short: "Compute and render shear and moment diagrams",
	Long: `Derive the shear force V(x) and bending moment M(x) of a beam from a
loading expression in Macaulay singularity-function notation.

Each term has the shape q<x-a>^n: q is the signed intensity, a the beam
station where the load starts, and n selects the load shape:
  n = -2   concentrated moment
  n = -1   concentrated force
  n =  0   uniformly distributed load
  n >=  1  ramp / polynomial distributed load

Malformed terms are reported and skipped; the diagrams reflect the
terms that parsed.

Examples:
  # Uniform load of 10 over a 10 m beam
  gosmd diagram --length 10 --load "10*<x-0>^0"

  # Uniform load plus a point load at x=2
  gosmd diagram --length 10 --load "10*<x-0>^0 - 50*<x-2>^-1"

  # Export PNG diagrams next to the console output
  gosmd diagram -L 10 -q "10*<x-0>^0" --output beam.png`,
	Run: runDiagram,
}

func init() {
	rootCmd.AddCommand(diagramCmd)

	// Input flags
	diagramCmd.Flags().Float64VarP(&diagramLength, "length", "L", 0, "Beam length [required]")
	diagramCmd.Flags().StringVarP(&diagramLoad, "load", "q", "", "Loading expression in singularity-function notation [required]")
	diagramCmd.Flags().Float64VarP(&diagramStep, "step", "s", 0, "Grid step size (default: length/1000)")

	// Options
	diagramCmd.Flags().StringVarP(&diagramOutput, "output", "o", "", "Export diagrams as images (base path, format by extension)")
	diagramCmd.Flags().IntVar(&diagramHeight, "ascii-height", diagram.DefaultChartHeight, "Console chart height in rows")
	diagramCmd.Flags().BoolVar(&diagramQuiet, "quiet", false, "Suppress the ASCII charts, print tables only")

	diagramCmd.MarkFlagRequired("length")
	diagramCmd.MarkFlagRequired("load")
}

func runDiagram(cmd *cobra.Command, args []string) {
	// Domain validation is the only fatal error; everything after this
	// point degrades per term instead of aborting.
	grid, err := beam.NewGrid(diagramLength, diagramStep)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	diags := macaulay.ParseExpression(diagramLoad)
	terms := diags.Terms()
	d := beam.Integrate(terms, grid)

	// Print header
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          SHEAR AND MOMENT DIAGRAMS - MACAULAY METHOD")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	// Input summary
	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Beam Length (L):\t%.3f\n", grid.Length)
	fmt.Fprintf(w, "  Grid Step:\t%.6f\n", grid.Step)
	fmt.Fprintf(w, "  Samples:\t%d\n", len(grid.X))
	fmt.Fprintf(w, "  Expression:\t%s\n", diagramLoad)
	w.Flush()
	fmt.Println()

	// Per-term parse log
	fmt.Println("PARSED LOAD TERMS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	diagram.WriteDiagnosticsTable(os.Stdout, diags)
	fmt.Println()

	if rejected := diags.RejectedTerms(); len(rejected) > 0 {
		fmt.Printf("  ⚠ %d term(s) could not be parsed and were skipped.\n", len(rejected))
		fmt.Println()
	}
	if len(terms) == 0 {
		fmt.Println("  ⚠ No valid load terms; the diagrams are identically zero.")
		fmt.Println()
	}
	if d.RepairedV > 0 || d.RepairedM > 0 {
		fmt.Printf("  ⚠ Repaired %d shear and %d moment samples (NaN forward-fill).\n",
			d.RepairedV, d.RepairedM)
		fmt.Println("    A high count usually means a term evaluated badly upstream.")
		fmt.Println()
	}

	// Governing values
	fmt.Println("RESULTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	diagram.WriteExtremesTable(os.Stdout, d)
	fmt.Println()

	maxV, minV := beam.Extremes(grid.X, d.V)
	maxM, minM := beam.Extremes(grid.X, d.M)
	fmt.Println(diagram.DrawSummaryBox("GOVERNING VALUES", []string{
		fmt.Sprintf("|V|max = %.3f at x = %.3f", bigger(maxV, minV).Value, bigger(maxV, minV).X),
		fmt.Sprintf("|M|max = %.3f at x = %.3f", bigger(maxM, minM).Value, bigger(maxM, minM).X),
	}))

	if !diagramQuiet {
		vb, mb := d.Bounds()
		fmt.Println("SHEAR FORCE DIAGRAM:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		fmt.Println(diagram.DrawASCIIChart(d.V, vb, diagramHeight, "V(x)"))
		fmt.Println()
		fmt.Println("BENDING MOMENT DIAGRAM:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		fmt.Println(diagram.DrawASCIIChart(d.M, mb, diagramHeight, "M(x)"))
		fmt.Println()
	}

	if diagramOutput != "" {
		exportDiagrams(d)
	}
}

// bigger picks the extremum with the larger absolute value.
func bigger(a, b beam.Extreme) beam.Extreme {
	if math.Abs(b.Value) > math.Abs(a.Value) {
		return b
	}
	return a
}

func exportDiagrams(d *beam.Diagram) {
	shearFile, momentFile, err := diagram.ExportShearMoment(d, diagramOutput)
	if err != nil {
		fmt.Printf("Error: exporting diagrams: %v\n", err)
		return
	}
	fmt.Println("EXPORTED:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  Shear diagram:  %s\n", shearFile)
	fmt.Printf("  Moment diagram: %s\n", momentFile)
	fmt.Println()
}
