package configcmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/open-cli-collective/markdown-math/internal/cmd/cmdutil"
	"github.com/open-cli-collective/markdown-math/internal/view"
)

// NewCmdShow creates the config show command.
func NewCmdShow() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  `Display the effective mdm configuration and where each value comes from.`,
		Example: `  # Show current config
  mdm config show

  # As JSON
  mdm config show -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runShow(cmdutil.ConfigPath(cmd), cmdutil.OutputFlag(cmd), cmd.OutOrStdout(), noColor)
		},
	}

	return cmd
}

func runShow(configPath, output string, w io.Writer, noColor bool) error {
	if err := view.ValidateFormat(output); err != nil {
		return err
	}

	// Keys present in the file, nil when there is no readable file
	fileKeys, fileErr := readKeys(configPath)

	cfg := cmdutil.LoadConfig(configPath)

	format := view.Format(cmdutil.OutputFormat(output, cfg))
	renderer := view.NewRenderer(format, noColor)
	renderer.SetWriter(w)

	field := func(key, value, envVar string) view.KeyValue {
		source := "default"
		if _, ok := fileKeys[key]; ok {
			source = "config"
		}
		if os.Getenv(envVar) != "" {
			source = envVar
		}
		return view.KeyValue{Key: key, Value: value, Note: "source: " + source}
	}

	err := renderer.RenderKeyValues([]view.KeyValue{
		field("parse_math", strconv.FormatBool(cfg.ParseMath), "MDM_PARSE_MATH"),
		field("source_positions", strconv.FormatBool(cfg.SourcePositions), "MDM_SOURCE_POSITIONS"),
		field("output_format", cfg.OutputFormat, "MDM_OUTPUT_FORMAT"),
	})
	if err != nil || format != view.FormatTable {
		return err
	}

	dim := color.New(color.Faint)
	fmt.Fprintln(w)
	_, _ = dim.Fprintf(w, "Config file: %s\n", configPath)
	if os.IsNotExist(fileErr) {
		_, _ = dim.Fprintln(w, "(file not found)")
	}

	return nil
}

// readKeys returns the top-level keys set in the config file.
func readKeys(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	keys := map[string]any{}
	if err := yaml.Unmarshal(data, &keys); err != nil {
		return nil, err
	}
	return keys, nil
}
