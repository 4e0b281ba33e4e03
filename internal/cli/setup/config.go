package setup

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowmaster/internal/cli"
	"github.com/thenoetrevino/flowmaster/internal/config"
)

// ConfigCmd returns the setup config subcommand
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Write the default config file",
		Long: `Write a config file with every setting at its default value, so it can be
edited by hand. An existing file is left alone unless --force is given.

Examples:
  # Write ~/.config/flowmaster/config.yaml
  flowmaster setup config

  # Check whether a config file exists
  flowmaster setup config --check
`,
		RunE: runConfig,
	}

	cmd.Flags().Bool("check", false, "Only report where the config file is and whether it exists")
	cmd.Flags().Bool("force", false, "Overwrite an existing config file")
	cli.AddOutputFlags(cmd)

	return cmd
}

type configStatus struct {
	Path    string `json:"path"`
	Exists  bool   `json:"exists"`
	Written bool   `json:"written"`
}

func runConfig(cmd *cobra.Command, args []string) error {
	formatter := cli.Formatter(cmd)

	check, _ := cmd.Flags().GetBool("check")
	force, _ := cmd.Flags().GetBool("force")

	path, err := config.Path()
	if err != nil {
		return formatter.Fail(cli.ExitError, "CONFIG_PATH_ERROR", err.Error(), "")
	}

	status := configStatus{Path: path}
	if _, err := os.Stat(path); err == nil {
		status.Exists = true
	}

	if !check && (!status.Exists || force) {
		if err := config.Default().Save(); err != nil {
			return formatter.Fail(cli.ExitError, "CONFIG_WRITE_ERROR", err.Error(), "")
		}
		status.Exists = true
		status.Written = true
	}

	return formatter.Success(status, func(w io.Writer) error {
		var err error
		switch {
		case status.Written:
			_, err = fmt.Fprintf(w, "Wrote default config to %s\n", path)
		case status.Exists:
			_, err = fmt.Fprintf(w, "Config file exists at %s\n", path)
		default:
			_, err = fmt.Fprintf(w, "No config file at %s\n", path)
		}
		return err
	})
}
