package task

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowmaster/internal/cli"
	"github.com/thenoetrevino/flowmaster/internal/store"
)

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new task",
		Long: `Create a task at the end of a stage.

Dates use DD/MM/YY. Leave a date out (or pass "//") for no date.

Examples:
  # Simple task (human-readable output)
  flowmaster task create --stage <stage-id> --title "Fix bug"

  # Quiet mode for bash capture
  TASK_ID=$(flowmaster task create --stage <stage-id> --title "Fix bug" --quiet)

  # Full example with all options
  flowmaster task create \
    --stage <stage-id> \
    --title "Add authentication" \
    --description "Implement **JWT** auth" \
    --start 01/03/24 \
    --due 15/03/24 \
    --assign 1,2
`,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("stage", "", "Stage ID (required)")
	if err := cmd.MarkFlagRequired("stage"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	// Optional flags
	cmd.Flags().String("title", "", "Task title")
	cmd.Flags().String("description", "", "Task description in markdown (use - for stdin)")
	cmd.Flags().String("start", "", "Start date (DD/MM/YY)")
	cmd.Flags().String("due", "", "Due date (DD/MM/YY)")
	cmd.Flags().String("assign", "", "Comma-separated user IDs to assign")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	a, formatter, err := cli.RequireAuth(cmd)
	if err != nil {
		return err
	}

	stageID, _ := cmd.Flags().GetString("stage")
	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	start, _ := cmd.Flags().GetString("start")
	due, _ := cmd.Flags().GetString("due")
	assign, _ := cmd.Flags().GetString("assign")

	st, err := cli.RequireStage(a, formatter, stageID)
	if err != nil {
		return err
	}

	if err := cli.ValidateDates(formatter,
		cli.DateFlag{Flag: "start", Value: start},
		cli.DateFlag{Flag: "due", Value: due}); err != nil {
		return err
	}

	if description == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return formatter.Fail(cli.ExitError, "STDIN_READ_ERROR", err.Error(), "")
		}
		description = string(data)
	}

	assigned := cli.SplitList(assign)
	if err := requireUsers(a.Store, formatter, assigned); err != nil {
		return err
	}

	task, ok := a.Store.AddTask(cmd.Context(), st.ID, store.CreateTaskRequest{
		Title:         title,
		Description:   description,
		StartDate:     start,
		DueDate:       due,
		AssignedUsers: assigned,
	})
	if !ok {
		return formatter.Fail(cli.ExitNotFound, "STAGE_NOT_FOUND",
			fmt.Sprintf("stage %s not found", st.ID), "")
	}

	return formatter.Success(task, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "Task '%s' created in '%s' (id %s)\n", task.Title, st.Title, task.ID)
		return err
	})
}

// requireUsers reports the first id that is not a known user.
func requireUsers(s *store.Store, formatter *cli.OutputFormatter, ids []string) error {
	for _, id := range ids {
		if _, ok := s.User(id); !ok {
			return formatter.Fail(cli.ExitNotFound, "USER_NOT_FOUND",
				fmt.Sprintf("user %s not found", id), "List users with: flowmaster user list")
		}
	}
	return nil
}

