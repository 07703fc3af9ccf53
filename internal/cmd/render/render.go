// Package render provides the render command.
package render

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/markdown-math/internal/cmd/cmdutil"
	"github.com/open-cli-collective/markdown-math/pkg/md"
)

type renderOptions struct {
	file       string
	math       bool
	noMath     bool
	sourcePos  bool
	configPath string
	stdin      io.Reader
	stdout     io.Writer
}

// NewCmdRender creates the render command.
func NewCmdRender() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render Markdown with math to HTML",
		Long: `Render a Markdown document to HTML.

Inline math written as $...$ and display math written as $$...$$ is emitted
as <code class="language-math"> elements. Reads stdin when no file is given.`,
		Example: `  # Render a file
  mdm render notes.md

  # Render from stdin with source positions on math elements
  cat notes.md | mdm render --sourcepos

  # Treat dollars as plain text
  mdm render --no-math notes.md`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.file = cmdutil.FileArg(args)
			opts.configPath = cmdutil.ConfigPath(cmd)
			opts.stdin = cmd.InOrStdin()
			opts.stdout = cmd.OutOrStdout()
			return runRender(opts)
		},
	}

	cmd.Flags().BoolVar(&opts.math, "math", false, "Detect math even if disabled in config")
	cmd.Flags().BoolVar(&opts.noMath, "no-math", false, "Leave dollar signs as plain text")
	cmd.Flags().BoolVar(&opts.sourcePos, "sourcepos", false, "Add data-sourcepos attributes to math elements")
	cmd.MarkFlagsMutuallyExclusive("math", "no-math")
	cmd.MarkFlagsMutuallyExclusive("no-math", "sourcepos")

	return cmd
}

func (o *renderOptions) parseOptions(base md.ParseOptions) md.ParseOptions {
	switch {
	case o.noMath:
		return 0
	case o.sourcePos:
		return base | md.ParseMath | md.SourcePositions
	case o.math:
		return base | md.ParseMath
	}
	return base
}

func runRender(opts *renderOptions) error {
	cfg := cmdutil.LoadConfig(opts.configPath)

	input, name, err := cmdutil.ReadInput(opts.file, opts.stdin)
	if err != nil {
		return err
	}

	doc := md.ParseNamed(input, name, opts.parseOptions(cfg.ParseOptions()))
	out, err := doc.HTML()
	if err != nil {
		return fmt.Errorf("failed to render HTML: %w", err)
	}

	_, err = io.WriteString(opts.stdout, out)
	return err
}
