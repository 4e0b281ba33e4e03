package setup

import (
	"github.com/spf13/cobra"
)

// SetupCmd returns the setup parent command
func SetupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Set up flowmaster on this machine",
	}

	cmd.AddCommand(ConfigCmd())

	return cmd
}
