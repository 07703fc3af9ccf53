// Package configcmd provides config management commands.
package configcmd

import (
	"github.com/spf13/cobra"
)

// envVars lists the environment variables that override the config file.
var envVars = []string{"MDM_PARSE_MATH", "MDM_SOURCE_POSITIONS", "MDM_OUTPUT_FORMAT"}

// NewCmdConfig creates the config command.
func NewCmdConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage mdm configuration",
		Long:  `Commands for viewing and clearing mdm configuration.`,
	}

	cmd.AddCommand(NewCmdShow())
	cmd.AddCommand(NewCmdClear())

	return cmd
}
