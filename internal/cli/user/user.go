package user

import (
	"github.com/spf13/cobra"
)

// UserCmd returns the user parent command
func UserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage the users tasks can be assigned to",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())

	return cmd
}
