package user

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowmaster/internal/cli"
	"github.com/thenoetrevino/flowmaster/internal/cli/styles"
)

// ListCmd returns the user list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List assignable users",
		RunE:  runList,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	a, formatter, err := cli.RequireAuth(cmd)
	if err != nil {
		return err
	}

	users := a.Store.Users()

	if formatter.Quiet {
		for _, u := range users {
			fmt.Fprintln(formatter.Out, u.ID)
		}
		return nil
	}

	return formatter.Success(users, func(w io.Writer) error {
		if len(users) == 0 {
			_, err := fmt.Fprintln(w, "No users. Add one with: flowmaster user add --id <id> --name <name>")
			return err
		}
		for _, u := range users {
			if _, err := fmt.Fprintf(w, "%-6s %s %s\n", u.ID,
				styles.ValueStyle.Render(u.Name), styles.SubtitleStyle.Render(u.Email)); err != nil {
				return err
			}
		}
		return nil
	})
}
