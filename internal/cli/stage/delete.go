package stage

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowmaster/internal/cli"
)

// DeleteCmd returns the stage delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a stage and its tasks",
		Long: `Delete a stage together with every task in it. The remaining stages of
the workflow are renumbered.

Examples:
  flowmaster stage delete --id <stage-id>
`,
		RunE: runDelete,
	}

	cmd.Flags().String("id", "", "Stage ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	a, formatter, err := cli.RequireAuth(cmd)
	if err != nil {
		return err
	}

	id, _ := cmd.Flags().GetString("id")
	st, err := cli.RequireStage(a, formatter, id)
	if err != nil {
		return err
	}

	a.Store.DeleteStage(cmd.Context(), id)

	return formatter.Success(st, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "Stage '%s' deleted with %d tasks\n", st.Title, len(st.TaskIDs))
		return err
	})
}
