// Package convert provides the convert command.
package convert

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/markdown-math/internal/cmd/cmdutil"
	"github.com/open-cli-collective/markdown-math/pkg/md"
)

type convertOptions struct {
	file   string
	stdin  io.Reader
	stdout io.Writer
}

// NewCmdConvert creates the convert command.
func NewCmdConvert() *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert HTML back to Markdown with math",
		Long: `Convert an HTML document to Markdown.

Elements rendered as <code class="language-math"> become $...$ again, and
display math inside <pre> becomes a $$ block. Literal dollar signs in text
are escaped so they are not read back as math.`,
		Example: `  # Convert rendered HTML back to Markdown
  mdm convert notes.html

  # Round trip through stdin
  mdm render notes.md | mdm convert`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.file = cmdutil.FileArg(args)
			opts.stdin = cmd.InOrStdin()
			opts.stdout = cmd.OutOrStdout()
			return runConvert(opts)
		},
	}

	return cmd
}

func runConvert(opts *convertOptions) error {
	input, _, err := cmdutil.ReadInput(opts.file, opts.stdin)
	if err != nil {
		return err
	}

	markdown, err := md.FromHTML(string(input))
	if err != nil {
		return fmt.Errorf("failed to convert HTML: %w", err)
	}

	_, err = fmt.Fprintln(opts.stdout, markdown)
	return err
}
