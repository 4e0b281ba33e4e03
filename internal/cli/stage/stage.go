package stage

import (
	"github.com/spf13/cobra"
)

// StageCmd returns the stage parent command
func StageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stage",
		Short: "Manage the stages of a workflow",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(RenameCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(MoveCmd())

	return cmd
}
