package user

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowmaster/internal/cli"
	"github.com/thenoetrevino/flowmaster/internal/models"
)

// AddCmd returns the user add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add or replace an assignable user",
		Long: `Add a user that tasks can be assigned to. A user with the same id is
replaced.

Examples:
  flowmaster user add --id 3 --name "Ada Lovelace" --email ada@example.com
`,
		RunE: runAdd,
	}

	cmd.Flags().String("id", "", "User ID (required)")
	cmd.Flags().String("name", "", "Display name (required)")
	cmd.Flags().String("email", "", "Email address")
	cmd.Flags().String("avatar", "", "Avatar URL")
	for _, name := range []string{"id", "name"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			slog.Error("failed to mark flag as required", "flag", name, "error", err)
		}
	}
	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	a, formatter, err := cli.RequireAuth(cmd)
	if err != nil {
		return err
	}

	u := models.User{}
	u.ID, _ = cmd.Flags().GetString("id")
	u.Name, _ = cmd.Flags().GetString("name")
	u.Email, _ = cmd.Flags().GetString("email")
	u.Avatar, _ = cmd.Flags().GetString("avatar")

	if a.Store.AddUsers(cmd.Context(), []models.User{u}) == 0 {
		return formatter.Fail(cli.ExitValidation, "INVALID_USER", "user id must not be empty", "")
	}

	return formatter.Success(&u, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "User '%s' saved (id %s)\n", u.Name, u.ID)
		return err
	})
}
