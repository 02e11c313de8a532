package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jramirezbandera/ec2fiber/internal/report"
	"github.com/jramirezbandera/ec2fiber/internal/section"
)

var (
	reportFile    string
	reportOutput  string
	reportProject string
	reportAuthor  string
	reportNotes   string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render a PDF calculation note for a section",
	Long: `Render a PDF calculation note for a section defined in a JSON file.

The note covers both bending signs (compression on the top and on the
bottom edge) with the full equilibrium state of each.

Examples:
  ec2fiber report --file section.json --output note.pdf
  ec2fiber report -f beam.json -o beam.pdf --project "Bridge deck" --author "JRB"`,
	Run: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVarP(&reportFile, "file", "f", "", "Path to section JSON file [required]")
	reportCmd.MarkFlagRequired("file")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "report.pdf", "Output PDF path")
	reportCmd.Flags().StringVar(&reportProject, "project", "", "Project name for the header")
	reportCmd.Flags().StringVar(&reportAuthor, "author", "", "Author for the header")
	reportCmd.Flags().StringVar(&reportNotes, "notes", "", "Free-form notes appended to the document")
}

func runReport(cmd *cobra.Command, args []string) {
	sec, err := section.LoadFromFile(reportFile)
	if err != nil {
		fmt.Printf("Error loading section: %v\n", err)
		return
	}

	top := *sec
	top.Sign = section.CompressTop
	topResult, err := top.Analyze()
	if err != nil {
		fmt.Printf("Error analyzing section: %v\n", err)
		return
	}

	bottom := *sec
	bottom.Sign = section.CompressBottom
	bottomResult, err := bottom.Analyze()
	if err != nil {
		fmt.Printf("Error analyzing section: %v\n", err)
		return
	}

	in := report.Input{
		Project: reportProject,
		Author:  reportAuthor,
		Notes:   reportNotes,
	}
	if err := report.Write(in, sec, topResult, bottomResult, reportOutput); err != nil {
		fmt.Printf("Error writing report: %v\n", err)
		return
	}

	fmt.Printf("Report written to: %s\n", reportOutput)
	fmt.Printf("  MRd+ = %.2f kN·m, MRd- = %.2f kN·m\n", topResult.MRd, bottomResult.MRd)
}
