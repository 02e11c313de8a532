package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jramirezbandera/ec2fiber/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of ec2fiber",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ec2fiber v%s\n", version.Version)
		fmt.Println("Eurocode 2 Fiber Section Analysis")
		fmt.Println("Based on EN 1992-1-1 (parabola-rectangle diagram, fck <= 50 MPa)")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
