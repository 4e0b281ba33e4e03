package workflow

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	clipkg "github.com/thenoetrevino/flowmaster/internal/cli"
	"github.com/thenoetrevino/flowmaster/internal/testutil/cli"
)

func TestCreateWorkflow(t *testing.T) {
	t.Parallel()
	app := cli.SetupCLITest(t)

	output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{"--name", "Sprint 1", "--quiet"})
	require.NoError(t, err)

	id := strings.TrimSpace(output)
	wf, ok := app.Store.Workflow(id)
	require.True(t, ok, "created workflow %q must exist", id)
	assert.Equal(t, "Sprint 1", wf.Name)
	assert.Len(t, wf.StageIDs, 3)
	assert.Equal(t, id, app.Store.ActiveWorkflowID())
}

func TestCreateWorkflow_JSON(t *testing.T) {
	t.Parallel()
	app := cli.SetupCLITest(t)

	output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{"--name", "Launch", "--json"})
	require.NoError(t, err)

	data := cli.JSONData(t, output)
	assert.Equal(t, "Launch", data["name"])
	assert.Len(t, data["stageIds"], 3)
}

func TestCreateWorkflow_RequiresLogin(t *testing.T) {
	t.Parallel()
	app := cli.SetupCLITestLoggedOut(t)

	_, stderr, err := cli.ExecuteCLICommandWithStderr(t, app, CreateCmd(), []string{"--name", "Nope"})
	require.Error(t, err)
	assert.Equal(t, clipkg.ExitUsage, clipkg.ExitCode(err))
	assert.Contains(t, stderr, "logged in")
	assert.Empty(t, app.Store.Workflows())
}

func TestListWorkflows(t *testing.T) {
	t.Parallel()
	app := cli.SetupCLITest(t)

	first := cli.CreateTestWorkflow(t, app, "First")
	second := cli.CreateTestWorkflow(t, app, "Second")

	output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--quiet"})
	require.NoError(t, err)
	assert.Equal(t, first.ID+"\n"+second.ID+"\n", output)

	output, err = cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--json"})
	require.NoError(t, err)
	data := cli.JSONData(t, output)
	assert.Equal(t, second.ID, data["activeWorkflowId"])
	assert.Len(t, data["workflows"], 2)

	output, err = cli.ExecuteCLICommand(t, app, ListCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "* "+second.ID)
}

func TestRenameWorkflow(t *testing.T) {
	t.Parallel()
	app := cli.SetupCLITest(t)
	wf := cli.CreateTestWorkflow(t, app, "Old")

	_, err := cli.ExecuteCLICommand(t, app, RenameCmd(), []string{"--id", wf.ID, "--name", "New"})
	require.NoError(t, err)

	got, _ := app.Store.Workflow(wf.ID)
	assert.Equal(t, "New", got.Name)

	_, err = cli.ExecuteCLICommand(t, app, RenameCmd(), []string{"--id", "missing", "--name", "x"})
	assert.Equal(t, clipkg.ExitNotFound, clipkg.ExitCode(err))
}

func TestDeleteWorkflow(t *testing.T) {
	t.Parallel()
	app := cli.SetupCLITest(t)
	wf := cli.CreateTestWorkflow(t, app, "Doomed")
	stages := app.Store.WorkflowStages(wf.ID)

	_, err := cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", wf.ID})
	require.NoError(t, err)

	_, ok := app.Store.Workflow(wf.ID)
	assert.False(t, ok)
	_, ok = app.Store.Stage(stages[0].ID)
	assert.False(t, ok, "stages are deleted with the workflow")
	assert.Empty(t, app.Store.ActiveWorkflowID())

	_, err = cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", wf.ID})
	assert.Equal(t, clipkg.ExitNotFound, clipkg.ExitCode(err))
}

func TestUseWorkflow(t *testing.T) {
	t.Parallel()
	app := cli.SetupCLITest(t)
	first := cli.CreateTestWorkflow(t, app, "First")
	cli.CreateTestWorkflow(t, app, "Second")

	_, err := cli.ExecuteCLICommand(t, app, UseCmd(), []string{first.ID})
	require.NoError(t, err)
	assert.Equal(t, first.ID, app.Store.ActiveWorkflowID())

	_, err = cli.ExecuteCLICommand(t, app, UseCmd(), []string{"--clear"})
	require.NoError(t, err)
	assert.Empty(t, app.Store.ActiveWorkflowID())

	_, err = cli.ExecuteCLICommand(t, app, UseCmd(), []string{"missing"})
	assert.Equal(t, clipkg.ExitNotFound, clipkg.ExitCode(err))

	_, err = cli.ExecuteCLICommand(t, app, UseCmd(), nil)
	assert.Equal(t, clipkg.ExitUsage, clipkg.ExitCode(err))
}
