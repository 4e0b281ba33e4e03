package task

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowmaster/internal/cli"
	"github.com/thenoetrevino/flowmaster/internal/cli/render"
	"github.com/thenoetrevino/flowmaster/internal/cli/styles"
	"github.com/thenoetrevino/flowmaster/internal/models"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List the tasks of one stage, or of a whole workflow in board order
(stage by stage, top to bottom).

Examples:
  flowmaster task list
  flowmaster task list --stage <stage-id> --json
`,
		RunE: runList,
	}

	cmd.Flags().String("stage", "", "Only list tasks in this stage")
	cmd.Flags().String("workflow", "", "Workflow ID (defaults to the active workflow)")
	cmd.MarkFlagsMutuallyExclusive("stage", "workflow")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	a, formatter, err := cli.RequireAuth(cmd)
	if err != nil {
		return err
	}

	stageID, _ := cmd.Flags().GetString("stage")
	workflowID, _ := cmd.Flags().GetString("workflow")

	var tasks []*models.Task
	if stageID != "" {
		st, err := cli.RequireStage(a, formatter, stageID)
		if err != nil {
			return err
		}
		tasks = a.Store.StageTasks(st.ID)
	} else {
		wf, err := cli.ResolveWorkflow(a, formatter, workflowID)
		if err != nil {
			return err
		}
		for _, st := range a.Store.WorkflowStages(wf.ID) {
			tasks = append(tasks, a.Store.StageTasks(st.ID)...)
		}
	}
	if tasks == nil {
		tasks = []*models.Task{}
	}

	if formatter.Quiet {
		for _, t := range tasks {
			fmt.Fprintln(formatter.Out, t.ID)
		}
		return nil
	}

	return formatter.Success(tasks, func(w io.Writer) error {
		if len(tasks) == 0 {
			_, err := fmt.Fprintln(w, "No tasks found")
			return err
		}
		stageTitle := map[string]string{}
		for _, t := range tasks {
			if _, ok := stageTitle[t.StageID]; !ok {
				if st, ok := a.Store.Stage(t.StageID); ok {
					stageTitle[t.StageID] = st.Title
				}
			}
			if _, err := fmt.Fprintf(w, "%s  %-14s  %s\n",
				render.ShortID(t.ID),
				styles.SubtitleStyle.Render(stageTitle[t.StageID]),
				styles.ValueStyle.Render(t.Title)); err != nil {
				return err
			}
		}
		return nil
	})
}
