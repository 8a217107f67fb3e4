package cmd

import (
	"github.com/mouse-blink/twins/internal/domain"
	"github.com/spf13/cobra"
)

const viewLongDescription = `View the last check saved in the reports directory.

The saved snapshot is shown as is; the corpus is not read again.`

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View the last saved similarity report",
		Long:  viewLongDescription,
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.View(domain.ViewArgs{Reports: reportsDir()})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
