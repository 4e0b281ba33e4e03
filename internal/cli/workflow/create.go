package workflow

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowmaster/internal/cli"
)

// CreateCmd returns the workflow create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a workflow",
		Long: `Create a workflow with the stages Backlog, In Progress and Done.
The new workflow becomes the active one.

Examples:
  flowmaster workflow create --name "Sprint 1"

  # Capture the id
  WF=$(flowmaster workflow create --name "Sprint 1" --quiet)
`,
		RunE: runCreate,
	}

	cmd.Flags().String("name", "", "Workflow name")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	a, formatter, err := cli.RequireAuth(cmd)
	if err != nil {
		return err
	}

	name, _ := cmd.Flags().GetString("name")
	wf := a.Store.AddWorkflow(cmd.Context(), name)

	return formatter.Success(wf, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "Workflow '%s' created (id %s) and set as active\n", wf.Name, wf.ID)
		return err
	})
}
