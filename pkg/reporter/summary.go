package reporter

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/yaklabco/unigrid/internal/ui/pretty"
	"github.com/yaklabco/unigrid/pkg/analysis"
	"github.com/yaklabco/unigrid/pkg/runner"
)

// Table layout constants for summary output.
const (
	tableWidth        = 72 // Width of table separators.
	nameColWidth      = 24 // Width of the source name column.
	numColWidth       = 8  // Width of numeric columns.
	maxNameLength     = 22 // Maximum characters for a source name before truncation.
	byteClassColWidth = 12 // Width of the byte class label column.
)

// padRight pads a string to the given width with spaces on the right.
// This must be called BEFORE applying ANSI styles.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// padLeft pads a string to the given width with spaces on the left.
// This must be called BEFORE applying ANSI styles.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// truncateName shortens a source name to maxNameLength, keeping the tail.
func truncateName(name string) string {
	runes := []rune(name)
	if len(runes) <= maxNameLength {
		return name
	}
	return "…" + string(runes[len(runes)-(maxNameLength-1):])
}

// SummaryRenderer formats results as aggregated count tables.
type SummaryRenderer struct {
	opts   Options
	styles *pretty.Styles
	out    io.Writer
}

// NewSummaryRenderer creates a new summary renderer.
func NewSummaryRenderer(opts Options, colorEnabled bool) *SummaryRenderer {
	return &SummaryRenderer{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		out:    opts.Writer,
	}
}

// Render implements Renderer.
func (r *SummaryRenderer) Render(_ context.Context, result *runner.Result) error {
	if result == nil || len(result.Documents) == 0 {
		fmt.Fprintln(r.out, r.styles.Dim.Render("Nothing to decompose"))
		return nil
	}

	r.renderSourceTable(result.Documents)
	fmt.Fprintln(r.out)
	r.renderByteClasses(result.Documents)

	fmt.Fprint(r.out, r.styles.FormatSummary(result.Stats, result.Totals()))

	return nil
}

func (r *SummaryRenderer) renderSourceTable(docs []runner.Document) {
	fmt.Fprintln(r.out, r.styles.Bold.Render("Sources"))
	fmt.Fprintln(r.out, r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth)))

	fmt.Fprintf(r.out, "%s %s %s %s %s %s\n",
		r.styles.TableHeader.Render(padRight("Source", nameColWidth)),
		r.styles.TableHeader.Render(padLeft("Chars", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Scalars", numColWidth)),
		r.styles.TableHeader.Render(padLeft("UTF-16", numColWidth)),
		r.styles.TableHeader.Render(padLeft("UTF-8", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Cells", numColWidth)),
	)
	fmt.Fprintln(r.out, r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth)))

	for _, doc := range docs {
		name := padRight(truncateName(doc.Name), nameColWidth)

		if doc.Error != nil {
			fmt.Fprintf(r.out, "%s %s\n", r.styles.Failure.Render(name), r.styles.Error.Render("unreadable"))
			continue
		}

		totals := totalsOf(doc)
		fmt.Fprintf(r.out, "%s %s %s %s %s %s\n",
			name,
			padLeft(strconv.Itoa(totals.Characters), numColWidth),
			padLeft(strconv.Itoa(totals.Scalars), numColWidth),
			padLeft(strconv.Itoa(totals.UTF16Units), numColWidth),
			padLeft(strconv.Itoa(totals.UTF8Bytes), numColWidth),
			padLeft(strconv.Itoa(totals.Cells), numColWidth),
		)
	}
}

// renderByteClasses prints how many UTF-8 sequences of each length occur.
func (r *SummaryRenderer) renderByteClasses(docs []runner.Document) {
	classes := make(map[string]int)
	for _, doc := range docs {
		if doc.Report == nil {
			continue
		}
		for class, count := range doc.Report.ByteClasses {
			classes[class] += count
		}
	}
	if len(classes) == 0 {
		return
	}

	keys := make([]string, 0, len(classes))
	for class := range classes {
		keys = append(keys, class)
	}
	slices.Sort(keys)

	fmt.Fprintln(r.out, r.styles.Bold.Render("UTF-8 sequences"))
	fmt.Fprintln(r.out, r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth)))
	for _, class := range keys {
		label := class + "-byte"
		fmt.Fprintf(r.out, "%s %s\n",
			padRight(label, byteClassColWidth),
			padLeft(strconv.Itoa(classes[class]), numColWidth),
		)
	}
}

// totalsOf returns a document's totals, or zero totals when it failed.
func totalsOf(doc runner.Document) analysis.Totals {
	if doc.Report == nil {
		return analysis.Totals{}
	}
	return doc.Report.Totals
}
