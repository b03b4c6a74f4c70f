package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/unigrid/internal/cli"
	"github.com/yaklabco/unigrid/internal/logging"
	"github.com/yaklabco/unigrid/pkg/reporter"
)

var testInfo = cli.BuildInfo{
	Version: "1.2.3",
	Commit:  "abc123",
	Date:    "2024-01-01",
}

// execute runs the root command with args and stdin, returning stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(testInfo)
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := cmd.Execute()
	return out.String(), err
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)

	assert.Equal(t, "unigrid", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	for _, name := range []string{"inspect", "show", "config", "init", "version"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.NotEqual(t, cmd, sub, "subcommand %q not found", name)
	}

	for _, flag := range []string{"debug", "config", "color"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), flag)
	}
}

func TestInspectCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)
	inspectCmd, _, err := cmd.Find([]string{"inspect"})
	require.NoError(t, err)

	for _, flag := range []string{
		"file", "format", "base", "hide", "names", "jobs", "output", "no-summary", "compact", "width",
	} {
		assert.NotNil(t, inspectCmd.Flags().Lookup(flag), flag)
	}
	assert.NotNil(t, inspectCmd.Flags().ShorthandLookup("f"))
	assert.NotNil(t, inspectCmd.Flags().ShorthandLookup("o"))
}

func TestInspect_Grid(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "", "inspect", "\u00E9", "--color", "never", "--no-summary")
	require.NoError(t, err)

	assert.Equal(t, "char   \u00E9\nscalar U+00E9\nutf-16 00E9\nutf-8  C3     A9\n", out)
}

func TestInspect_HideAndBase(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "", "show", "A", "--hide", "utf16,utf8", "--base", "decimal", "--no-summary")
	require.NoError(t, err)

	assert.Equal(t, "char   A\nscalar 65\n", out)
}

func TestInspect_Summary(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "", "inspect", "ab", "--color", "never")
	require.NoError(t, err)

	assert.Contains(t, out, "2 characters")
	assert.Contains(t, out, "in 1 source")
}

func TestInspect_JSON(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "", "inspect", "\U0001F600", "x", "--format", "json")
	require.NoError(t, err)

	var decoded reporter.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	require.Len(t, decoded.Documents, 2)
	assert.Len(t, decoded.Documents[0].Cells, 4)
	assert.Equal(t, "x", decoded.Documents[1].Text)
	assert.Equal(t, 2, decoded.Summary.Totals.Characters)
}

func TestInspect_Stdin(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "e\u0301\n", "inspect", "--format", "json")
	require.NoError(t, err)

	var decoded reporter.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	require.Len(t, decoded.Documents, 1)
	assert.Equal(t, "<stdin>", decoded.Documents[0].Name)
	assert.Equal(t, "e\u0301", decoded.Documents[0].Text, "one trailing newline is trimmed")
}

func TestInspect_Files(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("hi\n"), 0644))

	out, err := execute(t, "", "inspect", "--file", path, "--format", "json")
	require.NoError(t, err)

	var decoded reporter.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded.Documents, 1)
	assert.Equal(t, path, decoded.Documents[0].Name)
	assert.Equal(t, "hi", decoded.Documents[0].Text)
}

func TestInspect_MissingFile(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing.txt")
	out, err := execute(t, "", "inspect", "ok", "-f", missing, "--color", "never")

	require.ErrorIs(t, err, cli.ErrSourcesFailed)
	assert.Equal(t, cli.ExitSourcesFailed, cli.ExitCodeFromError(err))
	assert.Contains(t, out, missing+": error:")
	assert.Contains(t, out, "char")
}

func TestInspect_LogsThroughContextLogger(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	ctx := logging.WithLogger(context.Background(), logging.NewWithWriter(&logs, "debug"))

	missing := filepath.Join(t.TempDir(), "missing.txt")
	cmd := cli.NewRootCommand(testInfo)
	cmd.SetArgs([]string{"inspect", "ok", "-f", missing, "--color", "never"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.ExecuteContext(ctx)
	require.ErrorIs(t, err, cli.ErrSourcesFailed)

	assert.Contains(t, logs.String(), "source unreadable")
	assert.Contains(t, logs.String(), missing)
	assert.Contains(t, logs.String(), "decomposed source")
	assert.Contains(t, logs.String(), "decomposition finished")
}

func TestInspect_Output(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "report.json")
	out, err := execute(t, "", "inspect", "a", "--format", "json", "--compact", "-o", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded reporter.JSONOutput
	require.NoError(t, json.Unmarshal(content, &decoded))
	assert.Equal(t, "a", decoded.Documents[0].Text)
}

func TestInspect_InvalidUsage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown hidden row", args: []string{"inspect", "a", "--hide", "utf32"}},
		{name: "unknown format", args: []string{"inspect", "a", "--format", "sarif"}},
		{name: "unknown base", args: []string{"inspect", "a", "--base", "octal"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := execute(t, "", tt.args...)
			require.ErrorIs(t, err, cli.ErrInvalidUsage)
			assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCodeFromError(err))
		})
	}
}

func TestInit_ThenInspectWithConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "unigrid.yml")

	_, err := execute(t, "", "init", "--full", "--output", path)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(content), "trim_trailing_newline: true")

	edited := strings.Replace(string(content), "base: hex", "base: decimal", 1)
	require.NoError(t, os.WriteFile(path, []byte(edited), 0644))

	out, err := execute(t, "", "inspect", "A", "--config", path, "--hide", "utf16,utf8", "--no-summary")
	require.NoError(t, err)
	assert.Equal(t, "char   A\nscalar 65\n", out)

	_, err = execute(t, "", "init", "--output", path)
	require.ErrorIs(t, err, cli.ErrInvalidUsage, "existing file needs --force")

	_, err = execute(t, "", "init", "--output", path, "--force", "--format", "json")
	require.NoError(t, err)
}

func TestInspect_InvalidConfigFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("base: octal\n"), 0644))

	_, err := execute(t, "", "inspect", "a", "--config", path)
	require.Error(t, err)
	assert.Equal(t, cli.ExitConfigError, cli.ExitCodeFromError(err))
}

func TestConfigCommand(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "explicit.yml")
	require.NoError(t, os.WriteFile(path, []byte("names: true\n"), 0644))

	out, err := execute(t, "", "config", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "# explicit: "+path)
	assert.Contains(t, out, "names: true")

	out, err = execute(t, "", "config", "paths", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	out, err = execute(t, "", "config", "env")
	require.NoError(t, err)
	assert.Contains(t, out, "UNIGRID_BASE")
	assert.Contains(t, out, "UNIGRID_SHOW_UTF16")
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "1.2.3")
	assert.Contains(t, out, "abc123")
}

func TestExitCodeFromError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, cli.ExitSuccess, cli.ExitCodeFromError(nil))
	assert.Equal(t, cli.ExitIOError, cli.ExitCodeFromError(cli.ErrWriteOutput))
	assert.Equal(t, cli.ExitInternalError, cli.ExitCodeFromError(os.ErrClosed))
	assert.Equal(t, cli.ExitSuccess, cli.ExitCodeFromResult(nil))
}

func TestHelp_Root(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "", "--help", "--color", "never")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "unigrid\n\n"), out)
	for _, want := range []string{
		"Usage:\n  unigrid [command]",
		"Examples:",
		"# Decompose text",
		"Commands:",
		"inspect",
		"Flags:",
		"--color string",
		`Use "unigrid [command] --help" for more information about a command.`,
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "\x1b[")
	assert.NotContains(t, out, "Rows:")
}

func TestHelp_Inspect(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "", "inspect", "--help", "--color", "never")
	require.NoError(t, err)

	assert.Contains(t, out, "Usage:\n  unigrid inspect [text...] [flags]")
	assert.Contains(t, out, "Aliases:\n  show")
	assert.Contains(t, out, "Rows:\n  char    user-perceived character")
	assert.Contains(t, out, "Global Flags:")

	// Flag groups appear in a fixed order and hold their flags.
	sections := []string{"Input Flags:", "Display Flags:", "Output Flags:", "Execution Flags:", "Global Flags:"}
	positions := make([]int, len(sections))
	for i, section := range sections {
		positions[i] = strings.Index(out, section)
		require.NotEqual(t, -1, positions[i], section)
		if i > 0 {
			assert.Greater(t, positions[i], positions[i-1], section)
		}
	}
	hide := strings.Index(out, "--hide strings")
	assert.Greater(t, hide, positions[1])
	assert.Less(t, hide, positions[2])
	jobs := strings.Index(out, "--jobs int")
	assert.Greater(t, jobs, positions[3])
	assert.Less(t, jobs, positions[4])

	// Example comments line up in one column.
	var columns []int
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "--hide utf16") || strings.Contains(line, "--base decimal") ||
			strings.Contains(line, "--format json") {
			columns = append(columns, strings.Index(line, "# "))
		}
	}
	require.Len(t, columns, 3)
	assert.Equal(t, columns[0], columns[1])
	assert.Equal(t, columns[1], columns[2])
}

func TestHelp_InspectFlagsAreGrouped(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)
	inspectCmd, _, err := cmd.Find([]string{"inspect"})
	require.NoError(t, err)

	for _, name := range []string{
		"file", "format", "base", "hide", "names", "jobs", "output", "no-summary", "compact", "width",
	} {
		flag := inspectCmd.Flags().Lookup(name)
		require.NotNil(t, flag, name)
		assert.Len(t, flag.Annotations["unigrid_flag_group"], 1, name)
	}
}

func TestHelp_SubcommandExamples(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "", "init", "--help", "--color", "never")
	require.NoError(t, err)

	assert.Contains(t, out, "Examples:\n  unigrid init")
	assert.Contains(t, out, "# Create .unigrid.json instead")
	assert.Contains(t, out, "Flags:\n")
	assert.Contains(t, out, "--force")
	assert.NotContains(t, out, "Display Flags:")
}
