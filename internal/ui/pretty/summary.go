package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/unigrid/pkg/analysis"
	"github.com/yaklabco/unigrid/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordSource          = "source"
	wordSources         = "sources"
)

// plural returns singular when n is 1 and plural otherwise.
func plural(n int, singular, pluralWord string) string {
	if n == 1 {
		return singular
	}
	return pluralWord
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "3 characters, 4 scalars, 5 UTF-16 units, 9 UTF-8 bytes in 2 sources".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats, totals analysis.Totals) string {
	if stats.Decomposed == 0 && stats.Errored == 0 {
		return s.Dim.Render("Nothing to decompose") + "\n"
	}

	parts := []string{
		fmt.Sprintf("%d %s", totals.Characters, plural(totals.Characters, "character", "characters")),
		fmt.Sprintf("%d %s", totals.Scalars, plural(totals.Scalars, "scalar", "scalars")),
		fmt.Sprintf("%d UTF-16 %s", totals.UTF16Units, plural(totals.UTF16Units, "unit", "units")),
		fmt.Sprintf("%d UTF-8 %s", totals.UTF8Bytes, plural(totals.UTF8Bytes, "byte", "bytes")),
	}

	line := strings.Join(parts, ", ")
	line += fmt.Sprintf(" in %d %s", stats.Decomposed, plural(stats.Decomposed, wordSource, wordSources))

	if stats.Errored > 0 {
		line += ", " + s.Failure.Render(fmt.Sprintf("%d failed", stats.Errored))
	}

	return line + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats, totals analysis.Totals) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	writeValue := func(label string, value int) {
		builder.WriteString(fmt.Sprintf("  %-22s", label+":") + s.SummaryValue.Render(strconv.Itoa(value)) + "\n")
	}

	writeValue("Sources", stats.Decomposed)
	if stats.Errored > 0 {
		builder.WriteString(fmt.Sprintf("  %-22s", "Sources failed:") + s.Failure.Render(strconv.Itoa(stats.Errored)) + "\n")
	}

	builder.WriteString("\n")

	writeValue("Characters", totals.Characters)
	writeValue("Scalars", totals.Scalars)
	writeValue("UTF-16 units", totals.UTF16Units)
	writeValue("UTF-8 bytes", totals.UTF8Bytes)
	writeValue("Cells", totals.Cells)

	if totals.SurrogatePairs > 0 {
		writeValue("Surrogate pairs", totals.SurrogatePairs)
	}
	if totals.MultiScalarCharacters > 0 {
		writeValue("Multi-scalar chars", totals.MultiScalarCharacters)
	}

	builder.WriteString("\n")

	switch {
	case stats.Errored > 0:
		builder.WriteString(s.Failure.Render("Some sources could not be read"))
	case totals.IsASCII():
		builder.WriteString(s.Success.Render("ASCII only"))
	default:
		builder.WriteString(s.Success.Render(fmt.Sprintf("%d non-ASCII %s",
			totals.NonASCIICharacters, plural(totals.NonASCIICharacters, "character", "characters"))))
	}
	builder.WriteString("\n")

	return builder.String()
}

// FormatDocumentHeader formats the heading printed above each document.
func (s *Styles) FormatDocumentHeader(name string, characters int) string {
	header := s.DocumentName.Render(name)
	header += s.Dim.Render(fmt.Sprintf(" (%d %s)", characters, plural(characters, "character", "characters")))
	return header
}

// FormatSourceError formats a source that could not be read.
func (s *Styles) FormatSourceError(name string, err error) string {
	return fmt.Sprintf("%s: %s", s.DocumentName.Render(name), s.Error.Render(fmt.Sprintf("error: %v", err)))
}
