package board

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowmaster/internal/cli"
	"github.com/thenoetrevino/flowmaster/internal/cli/render"
	"github.com/thenoetrevino/flowmaster/internal/models"
	"github.com/thenoetrevino/flowmaster/internal/order"
)

// BoardCmd returns the board command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show a workflow as a kanban board",
		Long: `Render the stages of a workflow side by side with their tasks.

With --preview-stage and --pointer-y the board shows where a task dropped at
that pointer offset would land, without moving anything.

Examples:
  flowmaster board
  flowmaster board --workflow <workflow-id> --width 36
  flowmaster board --preview-stage <stage-id> --pointer-y 120
`,
		RunE: runBoard,
	}

	cmd.Flags().String("workflow", "", "Workflow ID (defaults to the active workflow)")
	cmd.Flags().Int("width", 28, "Column width in characters")
	cmd.Flags().String("preview-stage", "", "Stage to preview a drop into")
	cmd.Flags().Float64("pointer-y", 0, "Pointer y offset of the previewed drop")
	cmd.MarkFlagsRequiredTogether("preview-stage", "pointer-y")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runBoard(cmd *cobra.Command, args []string) error {
	a, formatter, err := cli.RequireAuth(cmd)
	if err != nil {
		return err
	}

	workflowID, _ := cmd.Flags().GetString("workflow")
	width, _ := cmd.Flags().GetInt("width")

	wf, err := cli.ResolveWorkflow(a, formatter, workflowID)
	if err != nil {
		return err
	}

	stages := a.Store.WorkflowStages(wf.ID)
	columns := make([]render.Column, 0, len(stages))
	for _, st := range stages {
		columns = append(columns, render.Column{Stage: st, Tasks: a.Store.StageTasks(st.ID)})
	}

	result := boardView{Workflow: wf, Columns: make([]boardColumn, len(columns))}
	for i, col := range columns {
		result.Columns[i] = boardColumn{Stage: col.Stage, Tasks: col.Tasks}
	}

	opts := render.BoardOptions{StageWidth: width}
	if previewStageID, _ := cmd.Flags().GetString("preview-stage"); previewStageID != "" {
		st, err := cli.RequireStage(a, formatter, previewStageID)
		if err != nil {
			return err
		}
		if st.WorkflowID != wf.ID {
			return formatter.Fail(cli.ExitNotFound, "STAGE_NOT_FOUND",
				fmt.Sprintf("stage %s is not in workflow %s", previewStageID, wf.ID),
				"List the workflow's stages: flowmaster stage list")
		}
		y, _ := cmd.Flags().GetFloat64("pointer-y")
		cfg := a.Config.Board
		items := order.VerticalLayout(len(a.Store.StageTasks(previewStageID)), cfg.CardHeight, cfg.CardGap)
		opts.Preview = a.Drag.HoverTask(items, y, cfg.CardHeight)
		opts.PreviewStageID = previewStageID
		defer a.Drag.LeaveTask()
		result.Preview = &opts.Preview
	}

	return formatter.Success(result, func(w io.Writer) error {
		_, err := fmt.Fprint(w, render.Board(wf, columns, opts))
		return err
	})
}

type boardColumn struct {
	*models.Stage
	Tasks []*models.Task `json:"tasks"`
}

type boardView struct {
	*models.Workflow
	Columns []boardColumn       `json:"columns"`
	Preview *models.TaskPreview `json:"preview,omitempty"`
}
