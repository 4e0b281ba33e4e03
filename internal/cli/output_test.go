package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Mock Types for Testing
// ============================================================================

type mockDataWithID struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (m *mockDataWithID) GetID() string {
	return m.ID
}

type mockDataWithoutID struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

func newFormatter(jsonMode, quiet bool) (*OutputFormatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &OutputFormatter{JSON: jsonMode, Quiet: quiet, Out: &out, ErrOut: &errOut}, &out, &errOut
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result), "output: %s", buf.String())
	return result
}

// ============================================================================
// Success
// ============================================================================

func TestOutputFormatter_Success_JSON(t *testing.T) {
	t.Parallel()
	f, out, _ := newFormatter(true, false)

	err := f.Success(&mockDataWithID{ID: "wf-1", Name: "Sprint"}, func(w io.Writer) error {
		t.Error("human renderer must not run in JSON mode")
		return nil
	})
	require.NoError(t, err)

	result := decode(t, out)
	assert.Equal(t, true, result["success"])
	data := result["data"].(map[string]interface{})
	assert.Equal(t, "wf-1", data["id"])
	assert.Equal(t, "Sprint", data["name"])
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	t.Parallel()

	t.Run("identifiable prints id", func(t *testing.T) {
		t.Parallel()
		f, out, _ := newFormatter(false, true)
		require.NoError(t, f.Success(&mockDataWithID{ID: "task-9"}, nil))
		assert.Equal(t, "task-9\n", out.String())
	})

	t.Run("quiet wins over json", func(t *testing.T) {
		t.Parallel()
		f, out, _ := newFormatter(true, true)
		require.NoError(t, f.Success(&mockDataWithID{ID: "task-9"}, nil))
		assert.Equal(t, "task-9\n", out.String())
	})

	t.Run("data without id prints nothing", func(t *testing.T) {
		t.Parallel()
		f, out, _ := newFormatter(false, true)
		require.NoError(t, f.Success(mockDataWithoutID{Name: "x"}, nil))
		assert.Empty(t, out.String())
	})
}

func TestOutputFormatter_Success_Human(t *testing.T) {
	t.Parallel()

	t.Run("uses renderer", func(t *testing.T) {
		t.Parallel()
		f, out, _ := newFormatter(false, false)
		err := f.Success(&mockDataWithID{ID: "1", Name: "Sprint"}, func(w io.Writer) error {
			_, err := fmt.Fprintln(w, "Workflow 'Sprint' created")
			return err
		})
		require.NoError(t, err)
		assert.Equal(t, "Workflow 'Sprint' created\n", out.String())
	})

	t.Run("renderer error is returned", func(t *testing.T) {
		t.Parallel()
		f, _, _ := newFormatter(false, false)
		boom := errors.New("boom")
		err := f.Success(nil, func(io.Writer) error { return boom })
		assert.ErrorIs(t, err, boom)
	})

	t.Run("falls back to %+v", func(t *testing.T) {
		t.Parallel()
		f, out, _ := newFormatter(false, false)
		require.NoError(t, f.Success(mockDataWithoutID{Name: "x", Value: 2}, nil))
		assert.Equal(t, "{Name:x Value:2}\n", out.String())
	})
}

// ============================================================================
// Errors
// ============================================================================

func TestOutputFormatter_Error_JSON(t *testing.T) {
	t.Parallel()
	f, out, errOut := newFormatter(true, false)

	require.NoError(t, f.ErrorWithSuggestion("TASK_NOT_FOUND", "task x not found", "List tasks"))

	result := decode(t, out)
	assert.Equal(t, false, result["success"])
	errData := result["error"].(map[string]interface{})
	assert.Equal(t, "TASK_NOT_FOUND", errData["code"])
	assert.Equal(t, "task x not found", errData["message"])
	assert.Equal(t, "List tasks", errData["suggestion"])
	assert.Empty(t, errOut.String())
}

func TestOutputFormatter_Error_JSONWithoutSuggestion(t *testing.T) {
	t.Parallel()
	f, out, _ := newFormatter(true, false)

	require.NoError(t, f.Error("AUTH_ERROR", "nope"))

	errData := decode(t, out)["error"].(map[string]interface{})
	_, hasSuggestion := errData["suggestion"]
	assert.False(t, hasSuggestion)
}

func TestOutputFormatter_Error_Human(t *testing.T) {
	t.Parallel()
	f, out, errOut := newFormatter(false, false)

	require.NoError(t, f.ErrorWithSuggestion("STAGE_NOT_FOUND", "stage s not found", "Run stage list"))

	assert.Empty(t, out.String())
	assert.Equal(t, "Error: stage s not found\nSuggestion: Run stage list\n", errOut.String())
}

func TestOutputFormatter_Fail(t *testing.T) {
	t.Parallel()
	f, _, errOut := newFormatter(false, false)

	err := f.Fail(ExitNotFound, "WORKFLOW_NOT_FOUND", "workflow w not found", "")
	require.Error(t, err)

	assert.Equal(t, ExitNotFound, ExitCode(err))
	assert.Equal(t, "workflow w not found", err.Error())
	assert.Contains(t, errOut.String(), "workflow w not found")
}
