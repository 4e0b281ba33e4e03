package stage

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowmaster/internal/cli"
)

// RenameCmd returns the stage rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Rename a stage",
		Long: `Rename a stage.

Examples:
  flowmaster stage rename --id <stage-id> --title "Code Review"
`,
		RunE: runRename,
	}

	cmd.Flags().String("id", "", "Stage ID (required)")
	cmd.Flags().String("title", "", "New title")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	cli.AddOutputFlags(cmd)

	return cmd
}

func runRename(cmd *cobra.Command, args []string) error {
	a, formatter, err := cli.RequireAuth(cmd)
	if err != nil {
		return err
	}

	id, _ := cmd.Flags().GetString("id")
	title, _ := cmd.Flags().GetString("title")

	if !a.Store.UpdateStage(cmd.Context(), id, title) {
		return formatter.Fail(cli.ExitNotFound, "STAGE_NOT_FOUND",
			fmt.Sprintf("stage %s not found", id), "List stages with: flowmaster stage list")
	}

	st, _ := a.Store.Stage(id)
	return formatter.Success(st, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "Stage %s renamed to '%s'\n", st.ID, st.Title)
		return err
	})
}
