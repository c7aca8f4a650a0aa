package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gosmd/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gosmd",
	Short: "Shear and Moment Diagram Tool",
	Long: `gosmd - Go Shear & Moment Diagrams

A CLI tool that derives beam shear force and bending moment diagrams
from a loading expression written in Macaulay singularity-function
notation, e.g.

  10*<x-0>^0 - 50*<x-2>^-1

This tool helps structural engineers:
  - Parse singularity-function loading expressions term by term
  - Derive V(x) and M(x) analytically by term-wise integration
  - Render the diagrams on the console or export them as images

Exponent semantics: n=-2 concentrated moment, n=-1 concentrated force,
n=0 uniform load, n>=1 ramp/polynomial distributed load.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gosmd v%-49s║\n", version.Version)
		fmt.Println("  ║   Go Shear & Moment Diagrams                              ║")
		fmt.Println("  ║   Alexius S. Academia ©  2025                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for beam shear and moment diagrams derived from")
		fmt.Println("  Macaulay singularity-function loading expressions.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Term-by-term parsing with per-term diagnostics")
		fmt.Println("    • Point loads, point moments, uniform and ramp loads")
		fmt.Println("    • ASCII shear and moment diagrams on the console")
		fmt.Println("    • PNG/SVG/PDF diagram export")
		fmt.Println()
		fmt.Println("  Use 'gosmd --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
