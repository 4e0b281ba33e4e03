package workflow

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowmaster/internal/cli"
)

// RenameCmd returns the workflow rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Rename a workflow",
		Long: `Rename a workflow.

Examples:
  flowmaster workflow rename --id <workflow-id> --name "Sprint 2"
`,
		RunE: runRename,
	}

	cmd.Flags().String("id", "", "Workflow ID (required)")
	cmd.Flags().String("name", "", "New name")
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
	name, _ := cmd.Flags().GetString("name")

	if !a.Store.UpdateWorkflow(cmd.Context(), id, name) {
		return formatter.Fail(cli.ExitNotFound, "WORKFLOW_NOT_FOUND",
			fmt.Sprintf("workflow %s not found", id), "List workflows with: flowmaster workflow list")
	}

	wf, _ := a.Store.Workflow(id)
	return formatter.Success(wf, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "Workflow %s renamed to '%s'\n", wf.ID, wf.Name)
		return err
	})
}
