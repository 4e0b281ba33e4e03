package board

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	clipkg "github.com/thenoetrevino/flowmaster/internal/cli"
	"github.com/thenoetrevino/flowmaster/internal/drag"
	"github.com/thenoetrevino/flowmaster/internal/store"
	"github.com/thenoetrevino/flowmaster/internal/testutil/cli"
)

func TestBoard(t *testing.T) {
	t.Parallel()
	app := cli.SetupCLITest(t)
	wf := cli.CreateTestWorkflow(t, app, "Release")
	backlog := cli.StageByTitle(t, app, wf.ID, "Backlog")
	_, ok := app.Store.AddTask(context.Background(), backlog.ID, store.CreateTaskRequest{Title: "Tag build"})
	require.True(t, ok)

	output, err := cli.ExecuteCLICommand(t, app, BoardCmd(), nil)
	require.NoError(t, err)

	for _, want := range []string{"Release", "Backlog", "In Progress", "Done", "Tag build"} {
		assert.Contains(t, output, want)
	}
}

func TestBoard_JSON(t *testing.T) {
	t.Parallel()
	app := cli.SetupCLITest(t)
	wf := cli.CreateTestWorkflow(t, app, "Release")

	output, err := cli.ExecuteCLICommand(t, app, BoardCmd(), []string{"--workflow", wf.ID, "--json"})
	require.NoError(t, err)

	data := cli.JSONData(t, output)
	assert.Equal(t, wf.ID, data["id"])
	columns := data["columns"].([]interface{})
	require.Len(t, columns, 3)
	assert.Equal(t, "Backlog", columns[0].(map[string]interface{})["title"])
	_, hasPreview := data["preview"]
	assert.False(t, hasPreview)
}

func TestBoard_Preview(t *testing.T) {
	t.Parallel()
	app := cli.SetupCLITest(t)
	wf := cli.CreateTestWorkflow(t, app, "Release")
	done := cli.StageByTitle(t, app, wf.ID, "Done")
	for _, title := range []string{"One", "Two"} {
		_, ok := app.Store.AddTask(context.Background(), done.ID, store.CreateTaskRequest{Title: title})
		require.True(t, ok)
	}

	output, err := cli.ExecuteCLICommand(t, app, BoardCmd(), []string{
		"--preview-stage", done.ID, "--pointer-y", "100", "--json",
	})
	require.NoError(t, err)

	preview := cli.JSONData(t, output)["preview"].(map[string]interface{})
	assert.Equal(t, float64(1), preview["index"])
	assert.Equal(t, float64(80), preview["height"])
	assert.Equal(t, drag.Idle, app.Drag.TaskState(), "previews do not outlive the command")
	assert.Len(t, app.Store.StageTasks(done.ID), 2)
}

func TestBoard_PreviewStageFromAnotherWorkflow(t *testing.T) {
	t.Parallel()
	app := cli.SetupCLITest(t)
	other := cli.CreateTestWorkflow(t, app, "Other")
	foreign := cli.StageByTitle(t, app, other.ID, "Done")
	wf := cli.CreateTestWorkflow(t, app, "Release")

	output, err := cli.ExecuteCLICommand(t, app, BoardCmd(), []string{
		"--workflow", wf.ID, "--preview-stage", foreign.ID, "--pointer-y", "10", "--json",
	})
	assert.Equal(t, clipkg.ExitNotFound, clipkg.ExitCode(err))
	result := cli.ParseJSON(t, output)
	assert.Equal(t, false, result["success"])
	assert.Equal(t, "STAGE_NOT_FOUND", result["error"].(map[string]interface{})["code"])
	assert.Equal(t, drag.Idle, app.Drag.TaskState())
}

func TestBoard_NoWorkflow(t *testing.T) {
	t.Parallel()
	app := cli.SetupCLITest(t)

	_, err := cli.ExecuteCLICommand(t, app, BoardCmd(), nil)
	assert.Equal(t, clipkg.ExitUsage, clipkg.ExitCode(err))
}
