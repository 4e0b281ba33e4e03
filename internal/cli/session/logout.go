package session

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowmaster/internal/cli"
)

// LogoutCmd returns the logout command
func LogoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Log out (board data is kept)",
		RunE:  runLogout,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runLogout(cmd *cobra.Command, args []string) error {
	a, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}

	a.Auth.Logout(cmd.Context())

	return formatter.Success(map[string]bool{"authenticated": false}, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, "Logged out")
		return err
	})
}
