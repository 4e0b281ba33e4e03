package task

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowmaster/internal/cli"
	"github.com/thenoetrevino/flowmaster/internal/models"
	"github.com/thenoetrevino/flowmaster/internal/order"
)

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move a task to a stage and position",
		Long: `Move a task into a stage, which may be its current stage or a stage of
another workflow. The position is either an explicit --index or the slot under
a pointer dropped at --pointer-y, measured from the top of the destination
stage in the configured card geometry. Without either the task goes to the
end of the stage.

Examples:
  # Move to the top of another stage
  flowmaster task move --id <task-id> --to-stage <stage-id> --index 0

  # Drop below the second card
  flowmaster task move --id <task-id> --to-stage <stage-id> --pointer-y 150
`,
		RunE: runMove,
	}

	cmd.Flags().String("id", "", "Task ID (required)")
	cmd.Flags().String("to-stage", "", "Destination stage ID (defaults to the current stage)")
	cmd.Flags().Int("index", -1, "Destination position (defaults to the end)")
	cmd.Flags().Float64("pointer-y", 0, "Pointer y offset to resolve the position from")
	cmd.MarkFlagsMutuallyExclusive("index", "pointer-y")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	cli.AddOutputFlags(cmd)

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	a, formatter, err := cli.RequireAuth(cmd)
	if err != nil {
		return err
	}

	taskID, _ := cmd.Flags().GetString("id")
	destStageID, _ := cmd.Flags().GetString("to-stage")

	task, err := cli.RequireTask(a, formatter, taskID)
	if err != nil {
		return err
	}
	if destStageID == "" {
		destStageID = task.StageID
	}
	dest, err := cli.RequireStage(a, formatter, destStageID)
	if err != nil {
		return err
	}

	destTasks := a.Store.StageTasks(dest.ID)

	var applied bool
	if cmd.Flags().Changed("pointer-y") {
		y, _ := cmd.Flags().GetFloat64("pointer-y")
		board := a.Config.Board
		items := order.VerticalLayout(len(destTasks), board.CardHeight, board.CardGap)

		a.Drag.HoverTask(items, y, board.CardHeight)
		_, applied = a.Drag.DropTask(cmd.Context(), a.Store, task.StageID, dest.ID, task.ID, items, y)
	} else {
		index, _ := cmd.Flags().GetInt("index")
		if index < 0 {
			index = len(destTasks)
		}
		applied = a.Store.MoveTask(cmd.Context(), task.StageID, dest.ID, task.ID, index)
	}

	if !applied {
		return formatter.Fail(cli.ExitError, "MOVE_FAILED",
			fmt.Sprintf("task %s could not be moved", task.ID), "")
	}

	moved, _ := a.Store.Task(task.ID)
	position := 0
	for i, t := range a.Store.StageTasks(dest.ID) {
		if t.ID == moved.ID {
			position = i
			break
		}
	}

	result := taskMove{Task: moved, FromStageID: task.StageID, Index: position}
	return formatter.Success(result, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "Task '%s' moved to '%s' at position %d\n", moved.Title, dest.Title, position)
		return err
	})
}

type taskMove struct {
	*models.Task
	FromStageID string `json:"fromStageId"`
	Index       int    `json:"index"`
}
