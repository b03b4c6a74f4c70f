package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/unigrid/pkg/reporter"
	"github.com/yaklabco/unigrid/pkg/runner"
	"github.com/yaklabco/unigrid/pkg/view"
)

// runSources decomposes inline texts through the runner.
func runSources(t *testing.T, texts ...string) *runner.Result {
	t.Helper()

	sources := make([]runner.Source, 0, len(texts))
	for _, text := range texts {
		sources = append(sources, runner.Source{Text: text})
	}

	result, err := runner.Run(context.Background(), runner.Options{Sources: sources, Jobs: 1})
	require.NoError(t, err)
	return result
}

func report(t *testing.T, opts reporter.Options, result *runner.Result) (string, int) {
	t.Helper()

	var buf bytes.Buffer
	opts.Writer = &buf
	if opts.Color == "" {
		opts.Color = "never"
	}

	rep, err := reporter.New(opts)
	require.NoError(t, err)

	count, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	return buf.String(), count
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    reporter.Format
		wantErr bool
	}{
		{name: "empty defaults to grid", input: "", want: reporter.FormatGrid},
		{name: "grid", input: "grid", want: reporter.FormatGrid},
		{name: "table", input: "table", want: reporter.FormatTable},
		{name: "json", input: "json", want: reporter.FormatJSON},
		{name: "summary", input: "summary", want: reporter.FormatSummary},
		{name: "unknown format", input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reporter.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_IsValid(t *testing.T) {
	for _, format := range reporter.Formats() {
		assert.True(t, format.IsValid(), format.String())
	}
	assert.False(t, reporter.Format("unknown").IsValid())
	assert.False(t, reporter.Format("").IsValid())
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		format  reporter.Format
		base    view.Base
		wantErr bool
	}{
		{name: "grid reporter", format: reporter.FormatGrid},
		{name: "table reporter", format: reporter.FormatTable},
		{name: "json reporter", format: reporter.FormatJSON},
		{name: "summary reporter", format: reporter.FormatSummary},
		{name: "empty defaults to grid", format: ""},
		{name: "unknown format", format: "xml", wantErr: true},
		{name: "unknown base", format: reporter.FormatGrid, base: "octal", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			viewOpts := view.DefaultOptions()
			if tt.base != "" {
				viewOpts.Base = tt.base
			}
			opts := reporter.Options{
				Writer: &buf,
				Format: tt.format,
				Color:  "never",
				View:   viewOpts,
			}

			rep, err := reporter.New(opts)
			if tt.wantErr {
				require.Error(t, err)
				require.Nil(t, rep)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, rep)
		})
	}
}

func TestReporter_ReturnsCellCount(t *testing.T) {
	t.Parallel()

	result := runSources(t, "\u00E9", "\U0001F600")

	for _, format := range reporter.Formats() {
		t.Run(format.String(), func(t *testing.T) {
			t.Parallel()

			_, count := report(t, reporter.Options{Format: format, View: view.DefaultOptions()}, result)
			assert.Equal(t, 6, count)
		})
	}
}

func TestReporter_NilResult(t *testing.T) {
	t.Parallel()

	for _, format := range reporter.Formats() {
		t.Run(format.String(), func(t *testing.T) {
			t.Parallel()

			out, count := report(t, reporter.Options{
				Format:      format,
				View:        view.DefaultOptions(),
				ShowSummary: true,
			}, nil)
			assert.Equal(t, 0, count)
			assert.NotEmpty(t, out)
		})
	}
}

func TestGridReporter_SingleDocument(t *testing.T) {
	t.Parallel()

	out, _ := report(t, reporter.Options{
		Format: reporter.FormatGrid,
		View:   view.DefaultOptions(),
		Width:  80,
	}, runSources(t, "\u00E9"))

	assert.Equal(t, "char   \u00E9\nscalar U+00E9\nutf-16 00E9\nutf-8  C3     A9\n", out)
}

func TestGridReporter_MultipleDocumentsWithSummary(t *testing.T) {
	t.Parallel()

	out, _ := report(t, reporter.Options{
		Format:      reporter.FormatGrid,
		View:        view.Options{ShowUTF8: true, Base: view.BaseHex},
		ShowSummary: true,
		Width:       80,
	}, runSources(t, "a", "bc"))

	assert.Contains(t, out, "arg 1 (1 character)")
	assert.Contains(t, out, "arg 2 (2 characters)")
	assert.Contains(t, out, "utf-8 62 63")
	assert.Contains(t, out, "3 characters, 3 scalars, 3 UTF-16 units, 3 UTF-8 bytes in 2 sources")
}

func TestGridReporter_EmptyAndFailedDocuments(t *testing.T) {
	t.Parallel()

	result := &runner.Result{
		Documents: []runner.Document{
			{Name: "empty"},
			{Name: "broken", Error: errors.New("permission denied")},
		},
		Stats: runner.Stats{Sources: 2, Decomposed: 1, Errored: 1},
	}

	out, count := report(t, reporter.Options{Format: reporter.FormatGrid, View: view.DefaultOptions()}, result)

	assert.Equal(t, 0, count)
	assert.Contains(t, out, "(empty)")
	assert.Contains(t, out, "broken: error: permission denied")
}

func TestTableReporter(t *testing.T) {
	t.Parallel()

	opts := view.DefaultOptions()
	opts.Names = true

	out, _ := report(t, reporter.Options{Format: reporter.FormatTable, View: opts}, runSources(t, "\U0001F600"))

	for _, want := range []string{"char", "scalar", "utf-16", "utf-8", "name", "U+1F600", "D83D", "DE00", "F0", "9F", "98", "80", "GRINNING FACE"} {
		assert.Contains(t, out, want)
	}
	assert.Equal(t, 1, strings.Count(out, "GRINNING FACE"))
}

func TestTableReporter_HiddenColumns(t *testing.T) {
	t.Parallel()

	out, _ := report(t, reporter.Options{
		Format: reporter.FormatTable,
		View:   view.Options{ShowScalars: true, Base: view.BaseDecimal},
	}, runSources(t, "A"))

	assert.Contains(t, out, "scalar")
	assert.Contains(t, out, "65")
	assert.NotContains(t, out, "utf-16")
	assert.NotContains(t, out, "utf-8")
}

func TestJSONReporter(t *testing.T) {
	t.Parallel()

	out, _ := report(t, reporter.Options{Format: reporter.FormatJSON, View: view.DefaultOptions()}, runSources(t, "\u00E9"))

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &output))

	assert.Equal(t, reporter.JSONVersion, output.Version)
	assert.Equal(t, view.BaseHex, output.Base)
	require.Len(t, output.Documents, 1)

	doc := output.Documents[0]
	assert.Equal(t, "arg 1", doc.Name)
	assert.Equal(t, "\u00E9", doc.Text)
	require.Len(t, doc.Cells, 2)
	assert.Equal(t, "U+00E9", doc.Cells[0].Scalar)
	assert.Equal(t, "A9", doc.Cells[1].UTF8)
	assert.Equal(t, -1, doc.Cells[1].ScalarIndex)
	require.NotNil(t, doc.Totals)
	assert.Equal(t, 2, doc.Totals.UTF8Bytes)
	assert.Len(t, doc.Groups, 1)

	assert.Equal(t, 1, output.Summary.Decomposed)
	assert.Equal(t, 1, output.Summary.Totals.Characters)
}

func TestJSONReporter_CompactAndErrors(t *testing.T) {
	t.Parallel()

	result := &runner.Result{
		Documents: []runner.Document{{Name: "gone", Error: errors.New("missing")}},
		Stats:     runner.Stats{Sources: 1, Errored: 1},
	}

	out, _ := report(t, reporter.Options{Format: reporter.FormatJSON, View: view.DefaultOptions(), Compact: true}, result)

	assert.Equal(t, 1, strings.Count(strings.TrimSpace(out), "\n")+1, "compact output is a single line")

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &output))
	require.Len(t, output.Documents, 1)
	assert.Equal(t, "missing", output.Documents[0].Error)
	assert.Empty(t, output.Documents[0].Cells)
	assert.Equal(t, 1, output.Summary.Errored)
}

func TestSummaryReporter(t *testing.T) {
	t.Parallel()

	result := runSources(t, "a€", "\U0001F600")
	result.Documents = append(result.Documents, runner.Document{Name: "bad.txt", Error: errors.New("nope")})
	result.Stats.Errored++

	out, _ := report(t, reporter.Options{Format: reporter.FormatSummary, View: view.DefaultOptions()}, result)

	assert.Contains(t, out, "Sources")
	assert.Contains(t, out, "arg 1")
	assert.Contains(t, out, "arg 2")
	assert.Contains(t, out, "unreadable")
	assert.Contains(t, out, "UTF-8 sequences")
	assert.Contains(t, out, "1-byte")
	assert.Contains(t, out, "3-byte")
	assert.Contains(t, out, "4-byte")
	assert.NotContains(t, out, "2-byte")
	assert.Contains(t, out, "Surrogate pairs:")
}
