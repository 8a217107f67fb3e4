package cmd

import (
	"github.com/mouse-blink/twins/internal/adapter"
	"github.com/mouse-blink/twins/internal/domain"
	"github.com/spf13/cobra"
)

const checkLongDescription = `Compare every pair of submissions of each assignment and write the reports.

For every assignment the full similarity matrix is written as
<assignment>_plagiarism.csv and <assignment>_plagiarism.xlsx (exact matches
are highlighted), students reaching the threshold are listed in summary.csv,
and students with at least one exact match are written to
students_with_100.txt. The run is also saved so "twins view" can show it
again without recomputing.

The root defaults to ./solutions. An s3://bucket/prefix root reads the corpus
from the object storage configured under "storage".`

var checkThresholdFlag float64
var checkFormatFlags []string
var checkCorpusFlags corpusFlags

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [root]",
		Short: "Compare submissions and report similar pairs",
		Long:  checkLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := checkCorpusFlags.filter(cmd)
			if err != nil {
				return err
			}

			threshold := checkThresholdFlag
			if !cmd.Flags().Changed("threshold") && settings != nil {
				threshold = settings.Analysis.Threshold
			}

			formats := checkFormatFlags
			if !cmd.Flags().Changed("format") && settings != nil {
				formats = settings.Reports.Formats
			}

			return workflow.Check(cmd.Context(), domain.CheckArgs{
				Root:   parseRoot(args),
				Filter: filter,
				Options: domain.Options{
					Threshold: threshold,
					Workers:   checkCorpusFlags.workerCount(cmd),
				},
				Reports: reportsDir(),
				Formats: formats,
			})
		},
	}
	cmd.Flags().Float64VarP(&checkThresholdFlag, "threshold", "t", domain.DefaultThreshold, "minimum score in percent for the cross-assignment summary")
	cmd.Flags().StringSliceVarP(&checkFormatFlags, "format", "f", []string{adapter.FormatCSV, adapter.FormatXLSX, adapter.FormatTxt}, "report formats: csv, xlsx, txt")
	checkCorpusFlags.register(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
