package reporter

import (
	"context"
	"fmt"
	"io"

	"github.com/yaklabco/unigrid/internal/ui/pretty"
	"github.com/yaklabco/unigrid/pkg/runner"
	"github.com/yaklabco/unigrid/pkg/view"
)

// isColorEnabled resolves the color mode against the unbuffered writer.
func isColorEnabled(opts Options) bool {
	return pretty.IsColorEnabled(opts.Color, opts.Writer)
}

// GridRenderer prints each document as an aligned, wrapped grid.
type GridRenderer struct {
	opts      Options
	styles    *pretty.Styles
	formatter *pretty.GridFormatter
	out       io.Writer
}

// NewGridRenderer creates a new grid renderer.
func NewGridRenderer(opts Options, colorEnabled bool) *GridRenderer {
	styles := pretty.NewStyles(colorEnabled)
	return &GridRenderer{
		opts:      opts,
		styles:    styles,
		formatter: pretty.NewGridFormatter(styles, opts.termWidth()),
		out:       opts.Writer,
	}
}

// Render implements Renderer.
func (r *GridRenderer) Render(ctx context.Context, result *runner.Result) error {
	if result == nil || len(result.Documents) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.out, r.styles.Dim.Render("Nothing to decompose"))
		}
		return nil
	}

	withHeaders := len(result.Documents) > 1

	for idx, doc := range result.Documents {
		if err := ctx.Err(); err != nil {
			return err
		}
		if idx > 0 {
			fmt.Fprintln(r.out)
		}

		if doc.Error != nil {
			fmt.Fprintln(r.out, r.styles.FormatSourceError(doc.Name, doc.Error))
			continue
		}

		if withHeaders {
			fmt.Fprintln(r.out, r.styles.FormatDocumentHeader(doc.Name, doc.Cells.CharacterCount()))
		}

		rows := view.Project(doc.Cells, r.opts.View)
		if len(rows) == 0 {
			fmt.Fprintln(r.out, r.styles.Dim.Render("(empty)"))
			continue
		}
		fmt.Fprint(r.out, r.formatter.Format(rows, r.opts.View))
	}

	if r.opts.ShowSummary {
		fmt.Fprintln(r.out)
		fmt.Fprint(r.out, r.styles.FormatSummaryOneLine(result.Stats, result.Totals()))
	}

	return nil
}
