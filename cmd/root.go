// Package cmd wires the flowmaster command tree.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowmaster/internal/app"
	"github.com/thenoetrevino/flowmaster/internal/cli"
	"github.com/thenoetrevino/flowmaster/internal/cli/board"
	"github.com/thenoetrevino/flowmaster/internal/cli/session"
	"github.com/thenoetrevino/flowmaster/internal/cli/setup"
	"github.com/thenoetrevino/flowmaster/internal/cli/stage"
	"github.com/thenoetrevino/flowmaster/internal/cli/styles"
	"github.com/thenoetrevino/flowmaster/internal/cli/task"
	"github.com/thenoetrevino/flowmaster/internal/cli/user"
	"github.com/thenoetrevino/flowmaster/internal/cli/workflow"
	"github.com/thenoetrevino/flowmaster/internal/config"
	"github.com/thenoetrevino/flowmaster/internal/logging"
)

// environment owns what PersistentPreRunE opens for a single invocation.
type environment struct {
	app  *app.App
	logs io.Closer
}

// NewRootCmd builds the command tree. Commands executed with an App already
// in their context use it instead of opening the configured database.
func NewRootCmd() *cobra.Command {
	env := &environment{}
	return newRootCmd(env)
}

func newRootCmd(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flowmaster",
		Short: "FlowMaster - kanban workflows in your terminal",
		Long: `FlowMaster organizes tasks into workflows made of ordered stages.

Log in first (the demo account is demo@example.com / demo123), create a
workflow, then add and move tasks between its stages.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: env.setup,
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		fmt.Fprintf(c.ErrOrStderr(), "Error: %v\n", err)
		return cli.Exit(cli.ExitUsage, err)
	})

	cmd.AddCommand(session.Cmds()...)
	cmd.AddCommand(workflow.WorkflowCmd())
	cmd.AddCommand(stage.StageCmd())
	cmd.AddCommand(task.TaskCmd())
	cmd.AddCommand(user.UserCmd())
	cmd.AddCommand(board.BoardCmd())
	cmd.AddCommand(setup.SetupCmd())

	return cmd
}

func (e *environment) setup(cmd *cobra.Command, args []string) error {
	if _, err := cli.AppFromContext(cmd.Context()); err == nil {
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return cli.Exit(cli.ExitDataErr, err)
	}

	logs, err := logging.Init(config.DataDir(), cfg.LogLevel())
	if err != nil {
		slog.SetDefault(logging.Discard())
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: logging disabled: %v\n", err)
	} else {
		e.logs = logs
	}

	styles.Init(cfg.ColorScheme)

	a, err := app.New(cmd.Context(), cfg, app.WithLogger(slog.Default()))
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return cli.Exit(cli.ExitError, err)
	}
	e.app = a

	cmd.SetContext(cli.WithApp(cmd.Context(), a))
	return nil
}

// Close releases the App and the log file, in that order.
func (e *environment) Close() error {
	var err error
	if e.app != nil {
		err = e.app.Close()
		e.app = nil
	}
	if e.logs != nil {
		err = errors.Join(err, e.logs.Close())
		e.logs = nil
	}
	return err
}

// Execute runs the command tree against os.Args and returns the exit code.
func Execute() int {
	env := &environment{}
	root := newRootCmd(env)

	err := root.ExecuteContext(context.Background())
	if closeErr := env.Close(); closeErr != nil {
		slog.Error("failed to shut down cleanly", "error", closeErr)
	}

	var coded *cli.CodedError
	if err != nil && !errors.As(err, &coded) {
		// Errors cobra raises itself (missing required flags, unknown
		// commands) have not been reported yet.
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return cli.ExitCode(err)
}
