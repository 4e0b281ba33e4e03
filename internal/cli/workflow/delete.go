package workflow

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowmaster/internal/cli"
)

// DeleteCmd returns the workflow delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a workflow with all its stages and tasks",
		RunE:  runDelete,
	}

	cmd.Flags().String("id", "", "Workflow ID (required)")
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
	wf, ok := a.Store.Workflow(id)
	if !ok {
		return formatter.Fail(cli.ExitNotFound, "WORKFLOW_NOT_FOUND",
			fmt.Sprintf("workflow %s not found", id), "")
	}

	a.Store.DeleteWorkflow(cmd.Context(), id)

	return formatter.Success(wf, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "Workflow '%s' deleted\n", wf.Name)
		return err
	})
}
