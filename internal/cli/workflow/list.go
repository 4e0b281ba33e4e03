package workflow

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowmaster/internal/cli"
	"github.com/thenoetrevino/flowmaster/internal/cli/styles"
	"github.com/thenoetrevino/flowmaster/internal/models"
)

// ListCmd returns the workflow list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List workflows",
		RunE:  runList,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	a, formatter, err := cli.RequireAuth(cmd)
	if err != nil {
		return err
	}

	workflows := a.Store.Workflows()
	active := a.Store.ActiveWorkflowID()

	if formatter.Quiet {
		for _, wf := range workflows {
			fmt.Fprintln(formatter.Out, wf.ID)
		}
		return nil
	}

	return formatter.Success(workflowList{Workflows: workflows, ActiveWorkflowID: active}, func(w io.Writer) error {
		if len(workflows) == 0 {
			_, err := fmt.Fprintln(w, "No workflows. Create one with: flowmaster workflow create --name <name>")
			return err
		}
		for _, wf := range workflows {
			marker := "  "
			name := styles.ValueStyle.Render(wf.Name)
			if wf.ID == active {
				marker = "* "
				name = styles.TitleStyle.Render(wf.Name)
			}
			if _, err := fmt.Fprintf(w, "%s%s  %s  %s\n", marker, wf.ID, name,
				styles.SubtitleStyle.Render(fmt.Sprintf("%d stages", len(wf.StageIDs)))); err != nil {
				return err
			}
		}
		return nil
	})
}

type workflowList struct {
	Workflows        []*models.Workflow `json:"workflows"`
	ActiveWorkflowID string             `json:"activeWorkflowId"`
}
