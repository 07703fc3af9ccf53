// Package init provides the init command for mdm.
package init

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/markdown-math/internal/cmd/cmdutil"
	"github.com/open-cli-collective/markdown-math/internal/config"
	"github.com/open-cli-collective/markdown-math/internal/view"
)

type initOptions struct {
	configPath string
	yes        bool
	noColor    bool
	stdout     io.Writer
}

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize mdm configuration",
		Long: `Initialize mdm with your preferred parsing and output settings.

This command will guide you through choosing whether dollar math is
detected, whether rendered math carries source positions, and the default
output format. The configuration will be saved to ~/.config/mdm/config.yml.`,
		Example: `  # Interactive setup
  mdm init

  # Write the defaults without prompting
  mdm init --yes`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.configPath = cmdutil.ConfigPath(cmd)
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			opts.stdout = cmd.OutOrStdout()
			return runInit(opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Write the default configuration without prompting")

	return cmd
}

func runInit(opts *initOptions) error {
	cfg := config.Default()
	cfg.OutputFormat = string(view.FormatTable)

	if !opts.yes {
		// Check if config already exists
		if _, err := os.Stat(opts.configPath); err == nil {
			var overwrite bool
			err := huh.NewConfirm().
				Title("Configuration already exists").
				Description(fmt.Sprintf("Overwrite %s?", opts.configPath)).
				Value(&overwrite).
				Run()
			if err != nil {
				return err
			}
			if !overwrite {
				fmt.Fprintln(opts.stdout, "Initialization cancelled.")
				return nil
			}
		}

		if err := newForm(cfg).Run(); err != nil {
			return err
		}
		// Positions are only recorded on detected math
		if !cfg.ParseMath {
			cfg.SourcePositions = false
		}
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Save configuration
	if err := cfg.Save(opts.configPath); err != nil {
		return err
	}

	renderer := view.NewRenderer(view.FormatTable, opts.noColor)
	renderer.SetWriter(opts.stdout)
	renderer.Success("Configuration saved to " + opts.configPath)
	fmt.Fprintln(opts.stdout, "\nYou're all set! Try running:")
	fmt.Fprintln(opts.stdout, "  mdm render notes.md")
	fmt.Fprintln(opts.stdout, "  mdm inspect notes.md")

	return nil
}

func newForm(cfg *config.Config) *huh.Form {
	options := make([]huh.Option[string], 0, len(view.ValidFormats()))
	for _, f := range view.ValidFormats() {
		options = append(options, huh.NewOption(f, f))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Detect math").
				Description("Read $...$ and $$...$$ as math when rendering").
				Value(&cfg.ParseMath),

			huh.NewConfirm().
				Title("Source positions").
				Description("Add data-sourcepos attributes to rendered math (needs math detection)").
				Value(&cfg.SourcePositions),

			huh.NewSelect[string]().
				Title("Output format").
				Description("Default format for mdm inspect").
				Options(options...).
				Value(&cfg.OutputFormat),
		),
	)
}
