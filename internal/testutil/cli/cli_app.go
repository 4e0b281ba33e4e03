package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowmaster/internal/app"
	"github.com/thenoetrevino/flowmaster/internal/cli"
)

// ExecuteCLICommand executes a CLI command with a test app instance and
// returns what it wrote to stdout.
// This injects the app through the context the same way the root command does
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	stdout, _, err := ExecuteCLICommandWithStderr(t, testApp, cmd, args)
	return stdout, err
}

// ExecuteCLICommandWithStderr is ExecuteCLICommand that also returns stderr
func ExecuteCLICommandWithStderr(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	var stdout, stderr bytes.Buffer
	SetupCobraCommand(cmd, args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.ExecuteContext(cli.WithApp(context.Background(), testApp))
	return stdout.String(), stderr.String(), err
}
