package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosmd/internal/diagram"
	"github.com/alexiusacademia/gosmd/internal/macaulay"
)

var parseLoad string

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a loading expression and show the per-term diagnostics",
	Long: `Parse a Macaulay singularity-function loading expression without
computing any diagrams. Each term is reported in input order with its
resolved (magnitude, offset, exponent) triple, or the rejection reason
if it did not parse.

Examples:
  gosmd parse --load "10*<x-0>^0 - 50*<x-2>^-1"
  gosmd parse -q "5<x-0>^0 + garbage + 3<x-1>^0"`,
	Run: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseLoad, "load", "q", "", "Loading expression in singularity-function notation [required]")
	parseCmd.MarkFlagRequired("load")
}

func runParse(cmd *cobra.Command, args []string) {
	diags := macaulay.ParseExpression(parseLoad)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          LOADING EXPRESSION PARSE DIAGNOSTICS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Printf("  Expression: %s\n", parseLoad)
	fmt.Printf("  Normalized: %s\n", macaulay.Normalize(parseLoad))
	fmt.Println()

	if len(diags) == 0 {
		fmt.Println("  No terms found.")
		fmt.Println()
		return
	}

	diagram.WriteDiagnosticsTable(os.Stdout, diags)
	fmt.Println()

	accepted := diags.Terms()
	rejected := diags.RejectedTerms()
	fmt.Printf("  %d accepted, %d rejected.\n", len(accepted), len(rejected))
	fmt.Println()
}
