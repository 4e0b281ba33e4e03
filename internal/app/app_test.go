package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/flowmaster/internal/config"
	"github.com/thenoetrevino/flowmaster/internal/events"
	"github.com/thenoetrevino/flowmaster/internal/storage"
	"github.com/thenoetrevino/flowmaster/internal/store"
	"github.com/thenoetrevino/flowmaster/internal/testutil"
)

func TestNew_WithKeyValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	a, err := New(ctx, nil, WithKeyValue(storage.NewMemoryKV()), WithHost("tester"))
	require.NoError(t, err)
	defer func() { _ = a.Close() }()

	assert.NotNil(t, a.Store)
	assert.NotNil(t, a.Auth)
	assert.NotNil(t, a.Drag)
	assert.NotNil(t, a.Events)
	assert.False(t, a.Auth.IsAuthenticated())
	assert.Empty(t, a.Store.Workflows())
}

func TestNew_SharedKeyValueRehydrates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := storage.NewMemoryKV()

	first, err := New(ctx, nil, WithKeyValue(kv), WithHost("tester"))
	require.NoError(t, err)
	require.NoError(t, first.Auth.Login(ctx, "demo@example.com", "demo123"))
	wf := first.Store.AddWorkflow(ctx, "Sprint 1")
	require.NoError(t, first.Close())

	second, err := New(ctx, nil, WithKeyValue(kv), WithHost("tester"))
	require.NoError(t, err)
	defer func() { _ = second.Close() }()

	assert.True(t, second.Auth.IsAuthenticated())
	assert.Equal(t, wf.ID, second.Store.ActiveWorkflowID())
	assert.Len(t, second.Store.WorkflowStages(wf.ID), 3)
}

func TestNew_SQLiteFile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cfg := config.Default()
	cfg.Storage.Path = filepath.Join(t.TempDir(), "flowmaster.db")

	a, err := New(ctx, cfg, WithHost("tester"))
	require.NoError(t, err)
	wf := a.Store.AddWorkflow(ctx, "persisted")
	stage := a.Store.WorkflowStages(wf.ID)[0]
	_, ok := a.Store.AddTask(ctx, stage.ID, store.CreateTaskRequest{Title: "task"})
	require.True(t, ok)
	require.NoError(t, a.Close())

	reopened, err := New(ctx, cfg, WithHost("tester"))
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	assert.Len(t, reopened.Store.StageTasks(stage.ID), 1)
	require.NoError(t, reopened.Store.Validate())
}

func TestClose_Idempotent(t *testing.T) {
	t.Parallel()
	a, err := New(context.Background(), nil, WithKeyValue(storage.NewMemoryKV()))
	require.NoError(t, err)

	assert.NoError(t, a.Close())
	assert.NoError(t, a.Close())
}

func TestEvents_PublishedOnMutation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	a, err := New(ctx, nil, WithKeyValue(testutil.SetupTestKV(t)), WithHost("tester"))
	require.NoError(t, err)
	defer func() { _ = a.Close() }()

	changes, cancel := a.Events.Subscribe(16)
	defer cancel()

	wf := a.Store.AddWorkflow(ctx, "Sprint")
	event := testutil.WaitForEvent(t, changes, time.Second)
	assert.Equal(t, events.EventWorkflowChanged, event.Type)
	assert.Equal(t, wf.ID, event.WorkflowID)

	stages := a.Store.WorkflowStages(wf.ID)
	require.True(t, a.Store.MoveStage(ctx, wf.ID, 0, 2))
	require.True(t, a.Store.UpdateStage(ctx, stages[1].ID, "Doing"))

	pending := testutil.DrainEvents(changes)
	require.Len(t, pending, 2)
	assert.Equal(t, events.EventStageMoved, pending[0].Type)
	assert.Less(t, event.SequenceID, pending[0].SequenceID)

	assert.False(t, a.Store.MoveStage(ctx, "missing", 0, 1))
	testutil.WaitForNoEvent(t, changes, 20*time.Millisecond)

	assert.Equal(t, int32(2), a.Events.Metrics().Subscribers, "audit log plus this test")
}
