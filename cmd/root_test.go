package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/flowmaster/internal/app"
	"github.com/thenoetrevino/flowmaster/internal/cli"
	testcli "github.com/thenoetrevino/flowmaster/internal/testutil/cli"
)

func run(t *testing.T, a *app.App, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.ExecuteContext(cli.WithApp(context.Background(), a))
	return out.String(), err
}

func TestRoot_RegistersCommands(t *testing.T) {
	t.Parallel()
	root := NewRootCmd()

	for _, path := range [][]string{
		{"login"}, {"register"}, {"logout"}, {"whoami"},
		{"workflow", "create"}, {"workflow", "use"},
		{"stage", "move"}, {"task", "move"}, {"task", "show"},
		{"user", "add"}, {"board"}, {"setup", "config"},
	} {
		found, _, err := root.Find(path)
		require.NoError(t, err, "command %v", path)
		assert.Equal(t, path[len(path)-1], found.Name())
	}
}

func TestRoot_EndToEnd(t *testing.T) {
	t.Parallel()
	a := testcli.SetupCLITestLoggedOut(t)

	_, err := run(t, a, "workflow", "create", "--name", "Sprint")
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err), "commands need a login")

	_, err = run(t, a, "login", "--email", testcli.DemoEmail, "--password", testcli.DemoPassword)
	require.NoError(t, err)

	wfID, err := run(t, a, "workflow", "create", "--name", "Sprint", "--quiet")
	require.NoError(t, err)
	wfID = strings.TrimSpace(wfID)

	stageIDs, err := run(t, a, "stage", "list", "--quiet")
	require.NoError(t, err)
	stages := strings.Fields(stageIDs)
	require.Len(t, stages, 3)

	taskID, err := run(t, a, "task", "create", "--stage", stages[0], "--title", "Ship it", "--quiet")
	require.NoError(t, err)
	taskID = strings.TrimSpace(taskID)

	_, err = run(t, a, "task", "move", "--id", taskID, "--to-stage", stages[2], "--index", "0")
	require.NoError(t, err)

	board, err := run(t, a, "board", "--workflow", wfID)
	require.NoError(t, err)
	assert.Contains(t, board, "Ship it")

	task, ok := a.Store.Task(taskID)
	require.True(t, ok)
	assert.Equal(t, stages[2], task.StageID)
}

func TestRoot_FlagErrorsAreUsageErrors(t *testing.T) {
	t.Parallel()
	a := testcli.SetupCLITest(t)

	_, err := run(t, a, "stage", "move", "--from", "not-a-number", "--to", "1")
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}
