package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jramirezbandera/ec2fiber/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "ec2fiber",
	Short: "EC2 Fiber-Method Bending Resistance Tool",
	Long: `ec2fiber - Eurocode 2 Fiber Section Analysis

A CLI tool for computing the ultimate bending moment resistance (MRd)
of reinforced-concrete rectangular cross-sections.

The analysis uses the EN 1992-1-1 nonlinear material model:
  - Parabola-rectangle concrete diagram (fck <= 50 MPa)
  - Bilinear elastic-perfectly-plastic steel diagram
  - Strain-compatibility fiber integration of the compression zone
  - Bracketed bisection for the neutral-axis equilibrium depth`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   ec2fiber v%-46s║\n", version.Version)
		fmt.Println("  ║   Eurocode 2 Fiber Section Analysis                       ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Ultimate bending resistance of reinforced-concrete rectangular")
		fmt.Println("  sections per EN 1992-1-1, by the strain-compatibility fiber method.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Capacity analysis for both bending signs")
		fmt.Println("    • ASCII and image diagrams of the ultimate state")
		fmt.Println("    • PDF calculation notes")
		fmt.Println("    • Batch evaluation from xlsx workbooks")
		fmt.Println("    • HTTP API for programmatic use")
		fmt.Println()
		fmt.Println("  Use 'ec2fiber --help' to see available commands.")
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
