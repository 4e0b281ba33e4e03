package stage

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowmaster/internal/cli"
	"github.com/thenoetrevino/flowmaster/internal/cli/styles"
)

// ListCmd returns the stage list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the stages of a workflow in order",
		RunE:  runList,
	}

	cmd.Flags().String("workflow", "", "Workflow ID (defaults to the active workflow)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	a, formatter, err := cli.RequireAuth(cmd)
	if err != nil {
		return err
	}

	workflowID, _ := cmd.Flags().GetString("workflow")
	wf, err := cli.ResolveWorkflow(a, formatter, workflowID)
	if err != nil {
		return err
	}

	stages := a.Store.WorkflowStages(wf.ID)

	if formatter.Quiet {
		for _, st := range stages {
			fmt.Fprintln(formatter.Out, st.ID)
		}
		return nil
	}

	return formatter.Success(stages, func(w io.Writer) error {
		if _, err := fmt.Fprintln(w, styles.TitleStyle.Render(wf.Name)); err != nil {
			return err
		}
		for _, st := range stages {
			if _, err := fmt.Fprintf(w, "  %d. %s  %s  %s\n", st.Order,
				styles.StageTitleStyle.Render(st.Title), st.ID,
				styles.SubtitleStyle.Render(fmt.Sprintf("%d tasks", len(st.TaskIDs)))); err != nil {
				return err
			}
		}
		return nil
	})
}
