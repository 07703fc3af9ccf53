package cmdutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/markdown-math/internal/config"
)

func newTestCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringP("config", "c", "", "config file")
	cmd.Flags().StringP("output", "o", "table", "output format")
	return cmd
}

func TestConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	cmd := newTestCmd()
	assert.Equal(t, filepath.Join("/tmp/xdg", "mdm", "config.yml"), ConfigPath(cmd))

	require.NoError(t, cmd.Flags().Set("config", "/etc/mdm.yml"))
	assert.Equal(t, "/etc/mdm.yml", ConfigPath(cmd))
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("MDM_PARSE_MATH", "")
	t.Setenv("MDM_SOURCE_POSITIONS", "")
	t.Setenv("MDM_OUTPUT_FORMAT", "")

	t.Run("missing file gives defaults", func(t *testing.T) {
		cfg := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("saved file is used", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, (&config.Config{OutputFormat: "json"}).Save(path))

		cfg := LoadConfig(path)
		assert.False(t, cfg.ParseMath)
		assert.Equal(t, "json", cfg.OutputFormat)
	})

	t.Run("broken file falls back to defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("output_format: xml\n"), 0600))

		assert.Equal(t, config.Default(), LoadConfig(path))
	})
}

func TestOutputFlag(t *testing.T) {
	cmd := newTestCmd()
	assert.Empty(t, OutputFlag(cmd))

	require.NoError(t, cmd.Flags().Set("output", "json"))
	assert.Equal(t, "json", OutputFlag(cmd))
}

func TestOutputFormat(t *testing.T) {
	assert.Equal(t, "table", OutputFormat("", &config.Config{}))
	assert.Equal(t, "plain", OutputFormat("", &config.Config{OutputFormat: "plain"}))
	assert.Equal(t, "json", OutputFormat("json", &config.Config{OutputFormat: "plain"}))
}

func TestReadInput(t *testing.T) {
	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "doc.md")
		require.NoError(t, os.WriteFile(path, []byte("$x$"), 0644))

		data, name, err := ReadInput(path, strings.NewReader("ignored"))
		require.NoError(t, err)
		assert.Equal(t, "$x$", string(data))
		assert.Equal(t, path, name)
	})

	t.Run("from stdin", func(t *testing.T) {
		data, name, err := ReadInput("", strings.NewReader("piped"))
		require.NoError(t, err)
		assert.Equal(t, "piped", string(data))
		assert.Empty(t, name)
	})

	t.Run("dash reads stdin", func(t *testing.T) {
		data, _, err := ReadInput("-", strings.NewReader("piped"))
		require.NoError(t, err)
		assert.Equal(t, "piped", string(data))
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := ReadInput(filepath.Join(t.TempDir(), "missing.md"), strings.NewReader(""))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read file")
	})
}

func TestFileArg(t *testing.T) {
	assert.Empty(t, FileArg(nil))
	assert.Equal(t, "a.md", FileArg([]string{"a.md"}))
}
