package task

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowmaster/internal/cli"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a task",
		Long: `Delete a task and remove it from its stage.

Examples:
  flowmaster task delete --id <task-id>
`,
		RunE: runDelete,
	}

	cmd.Flags().String("id", "", "Task ID (required)")
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

	taskID, _ := cmd.Flags().GetString("id")
	task, err := cli.RequireTask(a, formatter, taskID)
	if err != nil {
		return err
	}

	a.Store.DeleteTask(cmd.Context(), taskID)

	return formatter.Success(task, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "Task '%s' deleted\n", task.Title)
		return err
	})
}
