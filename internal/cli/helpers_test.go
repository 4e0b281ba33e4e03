package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/flowmaster/internal/app"
	"github.com/thenoetrevino/flowmaster/internal/config"
	"github.com/thenoetrevino/flowmaster/internal/logging"
	"github.com/thenoetrevino/flowmaster/internal/storage"
)

func newTestApp(t *testing.T) *app.App {
	t.Helper()
	a, err := app.New(context.Background(), config.Default(),
		app.WithKeyValue(storage.NewMemoryKV()),
		app.WithLogger(logging.Discard()),
		app.WithHost("tester"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

// ============================================================================
// TEST CASES
// ============================================================================

func TestSplitList(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"1", []string{"1"}},
		{"1, 2 ,,3", []string{"1", "2", "3"}},
		{" , ", []string{}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SplitList(tt.in), "input %q", tt.in)
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()
	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitError, ExitCode(errors.New("plain")))
	assert.Equal(t, ExitValidation, ExitCode(Exit(ExitValidation, errors.New("bad date"))))

	wrapped := errors.Join(errors.New("context"), Exit(ExitNotFound, errors.New("missing")))
	assert.Equal(t, ExitNotFound, ExitCode(wrapped))
}

func TestAppFromContext(t *testing.T) {
	t.Parallel()

	_, err := AppFromContext(context.Background())
	assert.ErrorIs(t, err, ErrNoApp)

	a := newTestApp(t)
	got, err := AppFromContext(WithApp(context.Background(), a))
	require.NoError(t, err)
	assert.Same(t, a, got)
}

func TestRequireAuth(t *testing.T) {
	t.Parallel()
	a := newTestApp(t)

	cmd := &cobra.Command{}
	AddOutputFlags(cmd)
	cmd.SetContext(WithApp(context.Background(), a))

	_, _, err := RequireAuth(cmd)
	assert.Equal(t, ExitUsage, ExitCode(err))

	require.NoError(t, a.Auth.Login(context.Background(), "demo@example.com", "demo123"))
	got, _, err := RequireAuth(cmd)
	require.NoError(t, err)
	assert.Same(t, a, got)
}

func TestResolveWorkflow(t *testing.T) {
	t.Parallel()
	a := newTestApp(t)
	f, _, _ := newFormatter(false, false)

	_, err := ResolveWorkflow(a, f, "")
	assert.Equal(t, ExitUsage, ExitCode(err), "no active workflow")

	_, err = ResolveWorkflow(a, f, "missing")
	assert.Equal(t, ExitNotFound, ExitCode(err))

	wf := a.Store.AddWorkflow(context.Background(), "Sprint")
	got, err := ResolveWorkflow(a, f, "")
	require.NoError(t, err)
	assert.Equal(t, wf.ID, got.ID, "defaults to the active workflow")
}

func TestValidateDates(t *testing.T) {
	t.Parallel()
	f, _, errOut := newFormatter(false, false)

	require.NoError(t, ValidateDates(f,
		DateFlag{Flag: "start", Value: "01/02/24"},
		DateFlag{Flag: "due", Value: ""}))
	require.NoError(t, ValidateDates(f))

	err := ValidateDates(f, DateFlag{Flag: "due", Value: "32/01/24"})
	assert.Equal(t, ExitValidation, ExitCode(err))
	assert.Contains(t, errOut.String(), "--due")
}

func TestValidateDates_ReportsFirstInvalidFlag(t *testing.T) {
	t.Parallel()

	for range 20 {
		f, _, errOut := newFormatter(false, false)
		err := ValidateDates(f,
			DateFlag{Flag: "start", Value: "99/99/99"},
			DateFlag{Flag: "due", Value: "32/01/24"})
		require.Equal(t, ExitValidation, ExitCode(err))
		assert.Contains(t, errOut.String(), "--start")
		assert.NotContains(t, errOut.String(), "--due")
	}
}
