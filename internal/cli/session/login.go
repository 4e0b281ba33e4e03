package session

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowmaster/internal/auth"
	"github.com/thenoetrevino/flowmaster/internal/cli"
)

// LoginCmd returns the login command
func LoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to FlowMaster",
		Long: `Log in with an email and password.

Examples:
  flowmaster login --email demo@example.com --password demo123
`,
		RunE: runLogin,
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

func runLogin(cmd *cobra.Command, args []string) error {
	a, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}

	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")

	if err := a.Auth.Login(cmd.Context(), email, password); err != nil {
		return credentialsError(formatter, a.Auth.LastError(), err)
	}

	u, _ := a.Auth.CurrentUser()
	return formatter.Success(u, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "Logged in as %s (%s)\n", u.Name, u.Email)
		return err
	})
}

// credentialsError maps an auth failure to an exit code.
func credentialsError(formatter *cli.OutputFormatter, message string, err error) error {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return formatter.Fail(cli.ExitValidation, "INVALID_CREDENTIALS", message, "")
	case errors.Is(err, auth.ErrEmailTaken):
		return formatter.Fail(cli.ExitValidation, "EMAIL_TAKEN", message,
			"Log in instead: flowmaster login --email <email> --password <password>")
	case errors.Is(err, auth.ErrMissingCredentials), errors.Is(err, auth.ErrInvalidEmail),
		errors.Is(err, auth.ErrPasswordTooLong):
		return formatter.Fail(cli.ExitUsage, "INVALID_INPUT", message, "")
	default:
		return formatter.Fail(cli.ExitError, "AUTH_ERROR", err.Error(), "")
	}
}
