// Package inspect provides the inspect command.
package inspect

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/markdown-math/internal/cmd/cmdutil"
	"github.com/open-cli-collective/markdown-math/internal/view"
	"github.com/open-cli-collective/markdown-math/pkg/md"
)

type inspectOptions struct {
	file       string
	tree       bool
	output     string
	noColor    bool
	configPath string
	stdin      io.Reader
	stdout     io.Writer
}

// mathEntry is the JSON form of one math node.
type mathEntry struct {
	Kind  string          `json:"kind"`
	Range *md.SourceRange `json:"range,omitempty"`
	Code  string          `json:"code"`
}

// NewCmdInspect creates the inspect command.
func NewCmdInspect() *cobra.Command {
	opts := &inspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "List the math in a Markdown document",
		Long: `List every inline and display math node of a Markdown document with
its source range. Math detection is always enabled for this command.`,
		Example: `  # List math nodes
  mdm inspect notes.md

  # Output as JSON
  mdm inspect notes.md -o json

  # Dump the whole document tree
  mdm inspect --tree notes.md`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.file = cmdutil.FileArg(args)
			opts.configPath = cmdutil.ConfigPath(cmd)
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			opts.stdin = cmd.InOrStdin()
			opts.stdout = cmd.OutOrStdout()
			opts.output = cmdutil.OutputFlag(cmd)
			return runInspect(opts)
		},
	}

	cmd.Flags().BoolVar(&opts.tree, "tree", false, "Print the full document tree as JSON")

	return cmd
}

func runInspect(opts *inspectOptions) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}
	cfg := cmdutil.LoadConfig(opts.configPath)
	output := cmdutil.OutputFormat(opts.output, cfg)

	input, name, err := cmdutil.ReadInput(opts.file, opts.stdin)
	if err != nil {
		return err
	}

	doc := md.ParseNamed(input, name, cfg.ParseOptions()|md.ParseMath)

	format := view.Format(output)
	if opts.tree {
		format = view.FormatJSON
	}
	renderer := view.NewRenderer(format, opts.noColor)
	renderer.SetWriter(opts.stdout)

	if opts.tree {
		return renderer.RenderJSON(doc.Tree())
	}

	nodes := doc.MathNodes()

	if format == view.FormatJSON {
		entries := make([]mathEntry, 0, len(nodes))
		for _, n := range nodes {
			entries = append(entries, mathEntry{
				Kind:  n.Kind().String(),
				Range: n.Range(),
				Code:  n.Code(),
			})
		}
		return renderer.RenderJSON(entries)
	}

	if len(nodes) == 0 {
		renderer.RenderText("No math found.")
		return nil
	}

	headers := []string{"KIND", "RANGE", "CODE"}
	var rows [][]string

	for _, n := range nodes {
		rng := "-"
		if r := n.Range(); r != nil {
			rng = r.Coordinates()
		}
		code := n.Code()
		if format == view.FormatTable {
			code = view.Truncate(strings.ReplaceAll(code, "\n", `\n`), 60)
		}
		rows = append(rows, []string{n.Kind().String(), rng, code})
	}

	renderer.RenderTable(headers, rows)
	return nil
}
