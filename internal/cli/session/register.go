package session

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowmaster/internal/cli"
)

// RegisterCmd returns the register command
func RegisterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		Long: `Create an account. The display name is taken from the part of the
email before the @.

Examples:
  flowmaster register --email jane@example.com --password hunter2
`,
		RunE: runRegister,
	}

	cmd.Flags().String("email", "", "Account email (required)")
	cmd.Flags().String("password", "", "Account password (required)")
	for _, name := range []string{"email", "password"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			slog.Error("failed to mark flag as required", "flag", name, "error", err)
		}
	}
	cli.AddOutputFlags(cmd)

	return cmd
}

func runRegister(cmd *cobra.Command, args []string) error {
	a, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}

	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")

	if err := a.Auth.Register(cmd.Context(), email, password); err != nil {
		return credentialsError(formatter, a.Auth.LastError(), err)
	}

	u, _ := a.Auth.CurrentUser()
	return formatter.Success(u, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "Welcome, %s! You are now logged in.\n", u.Name)
		return err
	})
}
