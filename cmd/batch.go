package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jramirezbandera/ec2fiber/internal/batch"
)

var (
	batchFile   string
	batchOutput string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Evaluate many sections from an xlsx workbook",
	Long: `Evaluate rectangular sections listed in an xlsx workbook, one per
row on the first sheet, and write the capacities for both bending
signs to a results workbook.

Expected columns (header row skipped):
  name | width_mm | height_mm | layers | fck | fyk

The layers column uses the y:area form, multiple layers separated by
semicolons, e.g. "43:402.12;557:804.25". Blank fck/fyk fall back to
the EN 1992-1-1 defaults.

Example:
  ec2fiber batch --file sections.xlsx --output results.xlsx`,
	Run: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "Path to input xlsx workbook [required]")
	batchCmd.MarkFlagRequired("file")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "results.xlsx", "Output xlsx path")
}

func runBatch(cmd *cobra.Command, args []string) {
	log := logrus.New()

	f, err := os.Open(batchFile)
	if err != nil {
		fmt.Printf("Error opening workbook: %v\n", err)
		return
	}
	defer f.Close()

	items, err := batch.Evaluate(f)
	if err != nil {
		fmt.Printf("Error evaluating workbook: %v\n", err)
		return
	}

	ok := 0
	for _, item := range items {
		if item.Err != nil {
			log.WithFields(logrus.Fields{
				"row": item.Row,
			}).Warnf("skipped: %v", item.Err)
			continue
		}
		ok++
	}

	if err := batch.WriteResults(items, batchOutput); err != nil {
		fmt.Printf("Error writing results: %v\n", err)
		return
	}

	fmt.Printf("Evaluated %d of %d sections; results written to %s\n", ok, len(items), batchOutput)
}
