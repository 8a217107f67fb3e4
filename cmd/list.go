package cmd

import (
	"github.com/mouse-blink/twins/internal/domain"
	"github.com/spf13/cobra"
)

const listLongDescription = `List the assignments found in the corpus without comparing them.

Every submission is parsed, so files with syntax errors and duplicated
submissions are reported the same way a check would report them.`

// listCmd represents the list command.
var listCmd = newListCmd()
var listCorpusFlags corpusFlags

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [root]",
		Short: "List assignments and submissions of a corpus",
		Long:  listLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := listCorpusFlags.filter(cmd)
			if err != nil {
				return err
			}

			return workflow.List(cmd.Context(), domain.ListArgs{
				Root:    parseRoot(args),
				Filter:  filter,
				Workers: listCorpusFlags.workerCount(cmd),
			})
		},
	}
	listCorpusFlags.register(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
