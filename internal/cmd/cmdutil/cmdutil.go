// Package cmdutil provides helpers shared by mdm subcommands.
package cmdutil

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/markdown-math/internal/config"
)

// ErrNoInput is returned when neither a file nor piped stdin is available.
var ErrNoInput = errors.New("no input: pass a file argument or pipe content on stdin")

// ConfigPath returns the --config flag value, or the default config path.
func ConfigPath(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path
	}
	return config.DefaultConfigPath()
}

// LoadConfig loads the configuration at path with environment overrides.
// A broken configuration is reported and replaced by the defaults so that
// read-only commands keep working.
func LoadConfig(path string) *config.Config {
	cfg, err := config.LoadWithEnv(path)
	if err != nil {
		log.Printf("WARN: %v (using defaults, run 'mdm init' to fix)", err)
		return config.Default()
	}
	return cfg
}

// OutputFlag returns the --output flag value when it was given explicitly.
func OutputFlag(cmd *cobra.Command) string {
	if flag := cmd.Flags().Lookup("output"); flag != nil && flag.Changed {
		return flag.Value.String()
	}
	return ""
}

// OutputFormat returns flag when set, then the configured format, then table.
func OutputFormat(flag string, cfg *config.Config) string {
	if flag != "" {
		return flag
	}
	if cfg.OutputFormat != "" {
		return cfg.OutputFormat
	}
	return "table"
}

// ReadInput returns the content of file, or of stdin when file is empty or
// "-". The returned name is file, or empty for stdin.
func ReadInput(file string, stdin io.Reader) ([]byte, string, error) {
	if file != "" && file != "-" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read file: %w", err)
		}
		return data, file, nil
	}

	// An interactive terminal has nothing to read
	if f, ok := stdin.(*os.File); ok && file == "" {
		stat, err := f.Stat()
		if err == nil && (stat.Mode()&os.ModeCharDevice) != 0 {
			return nil, "", ErrNoInput
		}
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return data, "", nil
}

// FileArg returns the optional positional file argument.
func FileArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
