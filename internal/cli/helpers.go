package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowmaster/internal/app"
	"github.com/thenoetrevino/flowmaster/internal/models"
)

// AddOutputFlags registers the agent-friendly --json and --quiet flags.
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

// Formatter builds an OutputFormatter from the command's flags and writers.
func Formatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:   jsonOutput,
		Quiet:  quietMode,
		Out:    cmd.OutOrStdout(),
		ErrOut: cmd.ErrOrStderr(),
	}
}

// Setup returns the application and formatter for a command.
func Setup(cmd *cobra.Command) (*app.App, *OutputFormatter, error) {
	formatter := Formatter(cmd)
	a, err := AppFromContext(cmd.Context())
	if err != nil {
		return nil, formatter, formatter.Fail(ExitError, "INITIALIZATION_ERROR", err.Error(), "")
	}
	return a, formatter, nil
}

// RequireAuth is Setup for commands that need a logged-in user.
func RequireAuth(cmd *cobra.Command) (*app.App, *OutputFormatter, error) {
	a, formatter, err := Setup(cmd)
	if err != nil {
		return nil, formatter, err
	}
	if !a.Auth.IsAuthenticated() {
		return nil, formatter, formatter.Fail(ExitUsage, "NOT_AUTHENTICATED",
			"you must be logged in to use this command",
			"Run: flowmaster login --email <email> --password <password>")
	}
	return a, formatter, nil
}

// ResolveWorkflow returns workflowID, or the active workflow when it is empty.
func ResolveWorkflow(a *app.App, formatter *OutputFormatter, workflowID string) (*models.Workflow, error) {
	if workflowID == "" {
		workflowID = a.Store.ActiveWorkflowID()
		if workflowID == "" {
			return nil, formatter.Fail(ExitUsage, "NO_ACTIVE_WORKFLOW",
				"no workflow selected",
				"Pass --workflow <id> or run: flowmaster workflow use <id>")
		}
	}
	wf, ok := a.Store.Workflow(workflowID)
	if !ok {
		return nil, formatter.Fail(ExitNotFound, "WORKFLOW_NOT_FOUND",
			fmt.Sprintf("workflow %s not found", workflowID), "")
	}
	return wf, nil
}

// RequireStage returns the stage or reports it as not found.
func RequireStage(a *app.App, formatter *OutputFormatter, stageID string) (*models.Stage, error) {
	st, ok := a.Store.Stage(stageID)
	if !ok {
		return nil, formatter.Fail(ExitNotFound, "STAGE_NOT_FOUND",
			fmt.Sprintf("stage %s not found", stageID), "")
	}
	return st, nil
}

// RequireTask returns the task or reports it as not found.
func RequireTask(a *app.App, formatter *OutputFormatter, taskID string) (*models.Task, error) {
	t, ok := a.Store.Task(taskID)
	if !ok {
		return nil, formatter.Fail(ExitNotFound, "TASK_NOT_FOUND",
			fmt.Sprintf("task %s not found", taskID), "")
	}
	return t, nil
}

// DateFlag is a date flag value paired with the flag's name.
type DateFlag struct {
	Flag  string
	Value string
}

// ValidateDates checks DD/MM/YY task dates in order, naming the first flag
// that failed.
func ValidateDates(formatter *OutputFormatter, dates ...DateFlag) error {
	for _, date := range dates {
		if err := models.ValidateDate(date.Value); err != nil {
			return formatter.Fail(ExitValidation, "INVALID_DATE",
				fmt.Sprintf("--%s %q: %v", date.Flag, date.Value, err),
				"Dates use DD/MM/YY, e.g. 05/02/24")
		}
	}
	return nil
}

// SplitList splits a comma-separated flag value, dropping blanks.
func SplitList(value string) []string {
	out := []string{}
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ExitCode returns the exit code carried by err.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *CodedError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitError
}
