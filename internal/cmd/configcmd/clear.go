package configcmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/markdown-math/internal/cmd/cmdutil"
	"github.com/open-cli-collective/markdown-math/internal/view"
)

// NewCmdClear creates the config clear command.
func NewCmdClear() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove stored configuration",
		Long:  `Delete the mdm configuration file. Environment variables will still be used if set.`,
		Example: `  # Clear config
  mdm config clear`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runClear(cmdutil.ConfigPath(cmd), cmd.OutOrStdout(), noColor)
		},
	}

	return cmd
}

func runClear(configPath string, w io.Writer, noColor bool) error {
	renderer := view.NewRenderer(view.FormatTable, noColor)
	renderer.SetWriter(w)

	err := os.Remove(configPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove config file: %w", err)
	}

	if os.IsNotExist(err) {
		renderer.Success("No config file to remove")
	} else {
		renderer.Success("Configuration cleared from " + configPath)
	}

	// Check if env vars are set
	var activeVars []string
	for _, v := range envVars {
		if os.Getenv(v) != "" {
			activeVars = append(activeVars, v)
		}
	}

	if len(activeVars) > 0 {
		dim := color.New(color.Faint)
		_, _ = dim.Fprintf(w, "\nNote: Environment variables will still be used: %s\n", strings.Join(activeVars, ", "))
	}

	return nil
}
