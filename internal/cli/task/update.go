package task

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowmaster/internal/cli"
	"github.com/thenoetrevino/flowmaster/internal/store"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a task",
		Long: `Update the fields of a task. Only the flags you pass are changed. Use
'flowmaster task move' to change the stage.

Examples:
  flowmaster task update --id <task-id> --title "Fix login bug"
  flowmaster task update --id <task-id> --due 30/04/24 --assign 2

  # Remove every assignee
  flowmaster task update --id <task-id> --assign ""
`,
		RunE: runUpdate,
	}

	cmd.Flags().String("id", "", "Task ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description (use - for stdin)")
	cmd.Flags().String("start", "", "New start date (DD/MM/YY)")
	cmd.Flags().String("due", "", "New due date (DD/MM/YY)")
	cmd.Flags().String("assign", "", "Comma-separated user IDs, replacing the current assignees")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	a, formatter, err := cli.RequireAuth(cmd)
	if err != nil {
		return err
	}

	taskID, _ := cmd.Flags().GetString("id")
	if _, err := cli.RequireTask(a, formatter, taskID); err != nil {
		return err
	}

	var upd store.TaskUpdate
	flags := cmd.Flags()

	if flags.Changed("title") {
		title, _ := flags.GetString("title")
		upd.Title = &title
	}
	if flags.Changed("description") {
		description, _ := flags.GetString("description")
		if description == "-" {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return formatter.Fail(cli.ExitError, "STDIN_READ_ERROR", err.Error(), "")
			}
			description = string(data)
		}
		upd.Description = &description
	}

	var dates []cli.DateFlag
	if flags.Changed("start") {
		start, _ := flags.GetString("start")
		upd.StartDate = &start
		dates = append(dates, cli.DateFlag{Flag: "start", Value: start})
	}
	if flags.Changed("due") {
		due, _ := flags.GetString("due")
		upd.DueDate = &due
		dates = append(dates, cli.DateFlag{Flag: "due", Value: due})
	}
	if err := cli.ValidateDates(formatter, dates...); err != nil {
		return err
	}

	if flags.Changed("assign") {
		assign, _ := flags.GetString("assign")
		assigned := cli.SplitList(assign)
		if err := requireUsers(a.Store, formatter, assigned); err != nil {
			return err
		}
		upd.AssignedUsers = &assigned
	}

	if upd == (store.TaskUpdate{}) {
		return formatter.Fail(cli.ExitUsage, "NO_UPDATES", "no fields to update",
			"Pass at least one of --title, --description, --start, --due, --assign")
	}

	if !a.Store.UpdateTask(cmd.Context(), taskID, upd) {
		return formatter.Fail(cli.ExitNotFound, "TASK_NOT_FOUND",
			fmt.Sprintf("task %s not found", taskID), "")
	}

	task, _ := a.Store.Task(taskID)
	return formatter.Success(task, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "Task '%s' updated\n", task.Title)
		return err
	})
}
