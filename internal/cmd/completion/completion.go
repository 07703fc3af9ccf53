// Package completion provides shell completion generation commands.
package completion

import (
	"io"

	"github.com/spf13/cobra"
)

// shell describes one supported completion target.
type shell struct {
	name    string
	install string
	gen     func(root *cobra.Command, w io.Writer) error
}

var shells = []shell{
	{
		name: "bash",
		install: `  # Load in current session
  source <(mdm completion bash)

  # Install permanently (Linux)
  mdm completion bash | sudo tee /etc/bash_completion.d/mdm > /dev/null

  # Install permanently (macOS with Homebrew)
  mdm completion bash > $(brew --prefix)/etc/bash_completion.d/mdm`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenBashCompletion(w)
		},
	},
	{
		name: "zsh",
		install: `  # Load in current session
  source <(mdm completion zsh)

  # Install permanently
  mkdir -p ~/.zsh/completions
  mdm completion zsh > ~/.zsh/completions/_mdm

  # Then add to ~/.zshrc:
  # fpath=(~/.zsh/completions $fpath)
  # autoload -Uz compinit && compinit`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenZshCompletion(w)
		},
	},
	{
		name: "fish",
		install: `  # Load in current session
  mdm completion fish | source

  # Install permanently
  mdm completion fish > ~/.config/fish/completions/mdm.fish`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenFishCompletion(w, true)
		},
	},
	{
		name: "powershell",
		install: `  # Load in current session
  mdm completion powershell | Out-String | Invoke-Expression

  # Install permanently: add the line above to your $PROFILE`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenPowerShellCompletionWithDesc(w)
		},
	},
}

// NewCmdCompletion creates the completion command.
func NewCmdCompletion() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for mdm.

These scripts enable tab-completion for commands and flags.
See each sub-command's help for installation instructions.`,
	}

	for _, s := range shells {
		cmd.AddCommand(newCmdShell(s))
	}

	return cmd
}

func newCmdShell(s shell) *cobra.Command {
	return &cobra.Command{
		Use:                   s.name,
		Short:                 "Generate " + s.name + " completion script",
		Long:                  "Generate " + s.name + " completion script for mdm.",
		Example:               s.install,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.gen(cmd.Root(), cmd.OutOrStdout())
		},
	}
}
