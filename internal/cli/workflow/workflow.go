package workflow

import (
	"github.com/spf13/cobra"
)

// WorkflowCmd returns the workflow parent command
func WorkflowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workflow",
		Short: "Manage workflows",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(RenameCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(UseCmd())

	return cmd
}
