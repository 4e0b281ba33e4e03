package stage

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowmaster/internal/cli"
	"github.com/thenoetrevino/flowmaster/internal/models"
	"github.com/thenoetrevino/flowmaster/internal/order"
)

// MoveCmd returns the stage move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Reorder a stage within its workflow",
		Long: `Move the stage at position --from to a new position. The target is either
an explicit --to index or the stage under a pointer dropped at --pointer-x,
measured from the left edge of the board in the configured stage geometry.
Out of range targets are clamped.

Examples:
  # Move the first stage to the end of a three stage workflow
  flowmaster stage move --from 0 --to 2

  # Drop the first stage where the pointer ends up
  flowmaster stage move --from 0 --pointer-x 610
`,
		RunE: runMove,
	}

	cmd.Flags().String("workflow", "", "Workflow ID (defaults to the active workflow)")
	cmd.Flags().Int("from", 0, "Current position of the stage (required)")
	cmd.Flags().Int("to", 0, "Target position")
	cmd.Flags().Float64("pointer-x", 0, "Pointer x offset to resolve the target from")
	cmd.MarkFlagsMutuallyExclusive("to", "pointer-x")
	cmd.MarkFlagsOneRequired("to", "pointer-x")
	if err := cmd.MarkFlagRequired("from"); err != nil {
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

	workflowID, _ := cmd.Flags().GetString("workflow")
	from, _ := cmd.Flags().GetInt("from")

	wf, err := cli.ResolveWorkflow(a, formatter, workflowID)
	if err != nil {
		return err
	}

	stages := a.Store.WorkflowStages(wf.ID)
	if from < 0 || from >= len(stages) {
		return formatter.Fail(cli.ExitValidation, "INVALID_POSITION",
			fmt.Sprintf("--from %d is out of range: workflow has %d stages", from, len(stages)), "")
	}
	moved := stages[from]

	var applied bool
	if cmd.Flags().Changed("pointer-x") {
		x, _ := cmd.Flags().GetFloat64("pointer-x")
		board := a.Config.Board
		items := order.HorizontalLayout(len(stages), board.StageWidth, board.StageGap)

		a.Drag.BeginStageDrag(from)
		a.Drag.HoverStage(items, x)
		applied = a.Drag.DropStage(cmd.Context(), a.Store, wf.ID)
	} else {
		to, _ := cmd.Flags().GetInt("to")
		applied = a.Store.MoveStage(cmd.Context(), wf.ID, from, to)
	}

	updated, _ := a.Store.Stage(moved.ID)
	result := stageMove{Stage: updated, From: from, Moved: applied}

	return formatter.Success(result, func(w io.Writer) error {
		if !applied || updated.Order == from {
			_, err := fmt.Fprintf(w, "Stage '%s' stays at position %d\n", updated.Title, from)
			return err
		}
		_, err := fmt.Fprintf(w, "Stage '%s' moved from position %d to %d\n", updated.Title, from, updated.Order)
		return err
	})
}

type stageMove struct {
	*models.Stage
	From  int  `json:"from"`
	Moved bool `json:"moved"`
}
