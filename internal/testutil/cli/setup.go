package cli

import (
	"context"
	"testing"

	"github.com/thenoetrevino/flowmaster/internal/app"
	"github.com/thenoetrevino/flowmaster/internal/config"
	"github.com/thenoetrevino/flowmaster/internal/logging"
	"github.com/thenoetrevino/flowmaster/internal/models"
	"github.com/thenoetrevino/flowmaster/internal/testutil"
)

// Credentials of the seeded demo account.
const (
	DemoEmail    = "demo@example.com"
	DemoPassword = "demo123"
)

// SetupCLITestLoggedOut creates an App backed by an in-memory database with
// nobody logged in.
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when app tests import testutil
func SetupCLITestLoggedOut(t *testing.T) *app.App {
	t.Helper()

	cfg := config.Default()
	cfg.Auth.HashCost = 4 // bcrypt's minimum keeps seeding cheap

	a, err := app.New(context.Background(), cfg,
		app.WithKeyValue(testutil.SetupTestKV(t)),
		app.WithLogger(logging.Discard()),
		app.WithHost("tester"),
	)
	if err != nil {
		t.Fatalf("Failed to create test app: %v", err)
	}
	t.Cleanup(func() {
		if err := a.Close(); err != nil {
			t.Logf("Warning: app close error during cleanup: %v", err)
		}
	})

	return a
}

// SetupCLITest creates an App with the demo user logged in
func SetupCLITest(t *testing.T) *app.App {
	t.Helper()

	a := SetupCLITestLoggedOut(t)
	if err := a.Auth.Login(context.Background(), DemoEmail, DemoPassword); err != nil {
		t.Fatalf("Failed to log in demo user: %v", err)
	}
	return a
}

// CreateTestWorkflow creates a workflow with the default stages and makes it active
func CreateTestWorkflow(t *testing.T, a *app.App, name string) *models.Workflow {
	t.Helper()
	return a.Store.AddWorkflow(context.Background(), name)
}

// StageByTitle returns the stage of workflowID with the given title
func StageByTitle(t *testing.T, a *app.App, workflowID, title string) *models.Stage {
	t.Helper()

	for _, st := range a.Store.WorkflowStages(workflowID) {
		if st.Title == title {
			return st
		}
	}
	t.Fatalf("Stage %q not found in workflow %s", title, workflowID)
	return nil
}
