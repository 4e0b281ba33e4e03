package stage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	clipkg "github.com/thenoetrevino/flowmaster/internal/cli"
	"github.com/thenoetrevino/flowmaster/internal/drag"
	"github.com/thenoetrevino/flowmaster/internal/models"
	"github.com/thenoetrevino/flowmaster/internal/testutil/cli"
)

func titles(stages []*models.Stage) []string {
	out := make([]string, len(stages))
	for i, st := range stages {
		out[i] = st.Title
	}
	return out
}

// ============================================================================
// TEST CASES
// ============================================================================

func TestAddStage(t *testing.T) {
	t.Parallel()
	app := cli.SetupCLITest(t)
	wf := cli.CreateTestWorkflow(t, app, "Board")

	output, err := cli.ExecuteCLICommand(t, app, AddCmd(), []string{"--title", "Review", "--quiet"})
	require.NoError(t, err)

	st, ok := app.Store.Stage(strings.TrimSpace(output))
	require.True(t, ok)
	assert.Equal(t, "Review", st.Title)
	assert.Equal(t, 3, st.Order)
	assert.Equal(t, wf.ID, st.WorkflowID)
}

func TestAddStage_DefaultTitle(t *testing.T) {
	t.Parallel()
	app := cli.SetupCLITest(t)
	wf := cli.CreateTestWorkflow(t, app, "Board")

	output, err := cli.ExecuteCLICommand(t, app, AddCmd(), []string{"--workflow", wf.ID, "--json"})
	require.NoError(t, err)
	assert.Equal(t, "New Stage", cli.JSONData(t, output)["title"])
}

func TestAddStage_NoWorkflow(t *testing.T) {
	t.Parallel()
	app := cli.SetupCLITest(t)

	_, err := cli.ExecuteCLICommand(t, app, AddCmd(), []string{"--title", "Orphan"})
	assert.Equal(t, clipkg.ExitUsage, clipkg.ExitCode(err))

	_, err = cli.ExecuteCLICommand(t, app, AddCmd(), []string{"--workflow", "missing"})
	assert.Equal(t, clipkg.ExitNotFound, clipkg.ExitCode(err))
}

func TestListStages(t *testing.T) {
	t.Parallel()
	app := cli.SetupCLITest(t)
	wf := cli.CreateTestWorkflow(t, app, "Board")
	stages := app.Store.WorkflowStages(wf.ID)

	output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--quiet"})
	require.NoError(t, err)
	assert.Equal(t, stages[0].ID+"\n"+stages[1].ID+"\n"+stages[2].ID+"\n", output)

	output, err = cli.ExecuteCLICommand(t, app, ListCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "In Progress")
}

func TestRenameStage(t *testing.T) {
	t.Parallel()
	app := cli.SetupCLITest(t)
	wf := cli.CreateTestWorkflow(t, app, "Board")
	backlog := cli.StageByTitle(t, app, wf.ID, "Backlog")

	_, err := cli.ExecuteCLICommand(t, app, RenameCmd(), []string{"--id", backlog.ID, "--title", "Ideas"})
	require.NoError(t, err)
	got, _ := app.Store.Stage(backlog.ID)
	assert.Equal(t, "Ideas", got.Title)

	_, err = cli.ExecuteCLICommand(t, app, RenameCmd(), []string{"--id", "missing", "--title", "x"})
	assert.Equal(t, clipkg.ExitNotFound, clipkg.ExitCode(err))
}

func TestDeleteStage_Renumbers(t *testing.T) {
	t.Parallel()
	app := cli.SetupCLITest(t)
	wf := cli.CreateTestWorkflow(t, app, "Board")
	backlog := cli.StageByTitle(t, app, wf.ID, "Backlog")

	_, err := cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", backlog.ID})
	require.NoError(t, err)

	stages := app.Store.WorkflowStages(wf.ID)
	assert.Equal(t, []string{"In Progress", "Done"}, titles(stages))
	assert.Equal(t, 0, stages[0].Order)
	assert.Equal(t, 1, stages[1].Order)
}

func TestMoveStage_ByIndex(t *testing.T) {
	t.Parallel()
	app := cli.SetupCLITest(t)
	wf := cli.CreateTestWorkflow(t, app, "Board")

	output, err := cli.ExecuteCLICommand(t, app, MoveCmd(), []string{"--from", "0", "--to", "2", "--json"})
	require.NoError(t, err)

	data := cli.JSONData(t, output)
	assert.Equal(t, "Backlog", data["title"])
	assert.Equal(t, float64(2), data["order"])
	assert.Equal(t, true, data["moved"])
	assert.Equal(t, []string{"In Progress", "Done", "Backlog"}, titles(app.Store.WorkflowStages(wf.ID)))
}

func TestMoveStage_ClampsTarget(t *testing.T) {
	t.Parallel()
	app := cli.SetupCLITest(t)
	wf := cli.CreateTestWorkflow(t, app, "Board")

	_, err := cli.ExecuteCLICommand(t, app, MoveCmd(), []string{"--from", "2", "--to=-5"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Done", "Backlog", "In Progress"}, titles(app.Store.WorkflowStages(wf.ID)))
}

func TestMoveStage_ByPointer(t *testing.T) {
	t.Parallel()
	app := cli.SetupCLITest(t)
	wf := cli.CreateTestWorkflow(t, app, "Board")

	// Default geometry: 280 wide stages with a 16 gap, so the third stage
	// starts at x=592 and its midpoint sits at x=732.
	_, err := cli.ExecuteCLICommand(t, app, MoveCmd(), []string{"--from", "0", "--pointer-x", "750"})
	require.NoError(t, err)

	assert.Equal(t, []string{"In Progress", "Done", "Backlog"}, titles(app.Store.WorkflowStages(wf.ID)))
	assert.Equal(t, drag.Idle, app.Drag.StageState(), "drop clears the preview")
}

func TestMoveStage_PointerOverSelfIsNoOp(t *testing.T) {
	t.Parallel()
	app := cli.SetupCLITest(t)
	wf := cli.CreateTestWorkflow(t, app, "Board")

	output, err := cli.ExecuteCLICommand(t, app, MoveCmd(), []string{"--from", "1", "--pointer-x", "440", "--json"})
	require.NoError(t, err)

	assert.Equal(t, false, cli.JSONData(t, output)["moved"])
	assert.Equal(t, []string{"Backlog", "In Progress", "Done"}, titles(app.Store.WorkflowStages(wf.ID)))
}

func TestMoveStage_FromOutOfRange(t *testing.T) {
	t.Parallel()
	app := cli.SetupCLITest(t)
	cli.CreateTestWorkflow(t, app, "Board")

	_, err := cli.ExecuteCLICommand(t, app, MoveCmd(), []string{"--from", "3", "--to", "0"})
	assert.Equal(t, clipkg.ExitValidation, clipkg.ExitCode(err))
}
