package stage

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowmaster/internal/cli"
)

// AddCmd returns the stage add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a stage to a workflow",
		Long: `Append a stage to the end of a workflow. Without --title the stage is
called "New Stage".

Examples:
  flowmaster stage add --title Review

  # Into a specific workflow
  flowmaster stage add --workflow <workflow-id> --title QA --quiet
`,
		RunE: runAdd,
	}

	cmd.Flags().String("workflow", "", "Workflow ID (defaults to the active workflow)")
	cmd.Flags().String("title", "", "Stage title")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	a, formatter, err := cli.RequireAuth(cmd)
	if err != nil {
		return err
	}

	workflowID, _ := cmd.Flags().GetString("workflow")
	title, _ := cmd.Flags().GetString("title")

	wf, err := cli.ResolveWorkflow(a, formatter, workflowID)
	if err != nil {
		return err
	}

	st, ok := a.Store.AddStage(cmd.Context(), wf.ID, title)
	if !ok {
		return formatter.Fail(cli.ExitNotFound, "WORKFLOW_NOT_FOUND",
			fmt.Sprintf("workflow %s not found", wf.ID), "")
	}

	return formatter.Success(st, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "Stage '%s' added to '%s' at position %d (id %s)\n",
			st.Title, wf.Name, st.Order, st.ID)
		return err
	})
}
