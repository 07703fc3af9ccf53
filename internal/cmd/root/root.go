// Package root provides the root command for the mdm CLI.
package root

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/markdown-math/internal/cmd/completion"
	"github.com/open-cli-collective/markdown-math/internal/cmd/configcmd"
	"github.com/open-cli-collective/markdown-math/internal/cmd/convert"
	initcmd "github.com/open-cli-collective/markdown-math/internal/cmd/init"
	"github.com/open-cli-collective/markdown-math/internal/cmd/inspect"
	"github.com/open-cli-collective/markdown-math/internal/cmd/render"
	"github.com/open-cli-collective/markdown-math/internal/version"
	"github.com/open-cli-collective/markdown-math/internal/view"
)

// NewCmdRoot creates the root command for mdm.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mdm",
		Short: "Markdown with dollar math",
		Long: `mdm is a CLI tool for Markdown documents that contain TeX math.

It detects $...$ inline math and $$...$$ display math, renders documents
to HTML, lists the math they contain, and converts rendered HTML back.

Get started by running: mdm init`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/mdm/config.yml)")
	cmd.PersistentFlags().StringP("output", "o", "table", "output format: "+strings.Join(view.ValidFormats(), ", "))
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	// Set version template
	cmd.SetVersionTemplate("mdm version {{.Version}} (commit: " + version.Commit + ", built: " + version.Date + ")\n")

	// Subcommands
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(render.NewCmdRender())
	cmd.AddCommand(inspect.NewCmdInspect())
	cmd.AddCommand(convert.NewCmdConvert())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}
