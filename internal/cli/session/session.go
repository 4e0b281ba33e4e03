package session

import "github.com/spf13/cobra"

// Cmds returns the login, register, logout and whoami commands
func Cmds() []*cobra.Command {
	return []*cobra.Command{
		LoginCmd(),
		RegisterCmd(),
		LogoutCmd(),
		WhoamiCmd(),
	}
}
