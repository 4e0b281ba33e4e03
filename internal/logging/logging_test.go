package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RespectsLevel(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelWarn)

	logger.Info("hidden")
	logger.Warn("shown", "workflow_id", "w1")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "workflow_id=w1")
}

func TestInit_WritesLogFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	dir := t.TempDir()
	closer, err := Init(dir, slog.LevelDebug)
	require.NoError(t, err)

	slog.Debug("board state rehydrated", "workflows", 2)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, "logs", "flowmaster.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "board state rehydrated")
}
