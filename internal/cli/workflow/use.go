package workflow

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowmaster/internal/cli"
)

// UseCmd returns the workflow use subcommand
func UseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "use [id]",
		Short: "Set the active workflow",
		Long: `Set the workflow that stage, task and board commands default to.

Examples:
  flowmaster workflow use <workflow-id>

  # Clear the selection
  flowmaster workflow use --clear
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUse,
	}

	cmd.Flags().Bool("clear", false, "Clear the active workflow")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runUse(cmd *cobra.Command, args []string) error {
	a, formatter, err := cli.RequireAuth(cmd)
	if err != nil {
		return err
	}

	clearActive, _ := cmd.Flags().GetBool("clear")
	switch {
	case clearActive && len(args) == 0:
		a.Store.SetActiveWorkflow(cmd.Context(), "")
		return formatter.Success(map[string]string{"activeWorkflowId": ""}, func(w io.Writer) error {
			_, err := fmt.Fprintln(w, "No workflow selected")
			return err
		})
	case clearActive || len(args) == 0:
		return formatter.Fail(cli.ExitUsage, "INVALID_ARGS",
			"pass either a workflow id or --clear", "Usage: flowmaster workflow use <id>")
	}

	id := args[0]
	if !a.Store.SetActiveWorkflow(cmd.Context(), id) {
		return formatter.Fail(cli.ExitNotFound, "WORKFLOW_NOT_FOUND",
			fmt.Sprintf("workflow %s not found", id), "List workflows with: flowmaster workflow list")
	}

	wf, _ := a.Store.Workflow(id)
	return formatter.Success(wf, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "Now using workflow '%s'\n", wf.Name)
		return err
	})
}
