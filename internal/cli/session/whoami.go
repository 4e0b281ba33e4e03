package session

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowmaster/internal/auth"
	"github.com/thenoetrevino/flowmaster/internal/cli"
	"github.com/thenoetrevino/flowmaster/internal/cli/styles"
)

// WhoamiCmd returns the whoami command
func WhoamiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		RunE:  runWhoami,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runWhoami(cmd *cobra.Command, args []string) error {
	a, formatter, err := cli.RequireAuth(cmd)
	if err != nil {
		return err
	}

	u, _ := a.Auth.CurrentUser()
	expires, _ := a.Auth.SessionExpiry()

	return formatter.Success(whoami{User: u, ExpiresAt: expires.UTC().Format("2006-01-02T15:04:05Z")}, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%s %s\n%s %s\n%s %s\n",
			styles.LabelStyle.Render("User:"), styles.ValueStyle.Render(u.Name),
			styles.LabelStyle.Render("Email:"), styles.ValueStyle.Render(u.Email),
			styles.LabelStyle.Render("Session ends:"), styles.SubtitleStyle.Render(expires.Format("Jan 2, 2006 3:04 PM")))
		return err
	})
}

type whoami struct {
	*auth.User
	ExpiresAt string `json:"expiresAt"`
}
