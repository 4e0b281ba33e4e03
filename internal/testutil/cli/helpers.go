package cli

import (
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
)

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]interface{} {
	t.Helper()

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}

// JSONData returns the "data" object of a successful JSON response
func JSONData(t *testing.T, output string) map[string]interface{} {
	t.Helper()

	result := ParseJSON(t, output)
	if result["success"] != true {
		t.Fatalf("Expected success response, got: %s", output)
	}
	data, ok := result["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected data object in response, got: %s", output)
	}
	return data
}

// SetupCobraCommand sets up a cobra command with args for testing
func SetupCobraCommand(cmd *cobra.Command, args []string) {
	cmd.SetArgs(args)
	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
}
