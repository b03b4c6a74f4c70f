package reporter

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/yaklabco/unigrid/internal/ui/pretty"
	"github.com/yaklabco/unigrid/pkg/runner"
	"github.com/yaklabco/unigrid/pkg/view"
)

// TableRenderer prints one bordered table row per visible cell.
type TableRenderer struct {
	opts   Options
	styles *pretty.Styles
	out    io.Writer
}

// NewTableRenderer creates a new table renderer.
func NewTableRenderer(opts Options, colorEnabled bool) *TableRenderer {
	return &TableRenderer{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		out:    opts.Writer,
	}
}

// Render implements Renderer.
func (r *TableRenderer) Render(ctx context.Context, result *runner.Result) error {
	if result == nil || len(result.Documents) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.out, r.styles.Dim.Render("Nothing to decompose"))
		}
		return nil
	}

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

		fmt.Fprintln(r.out, r.styles.FormatDocumentHeader(doc.Name, doc.Cells.CharacterCount()))
		rows := view.Project(doc.Cells, r.opts.View)
		if len(rows) == 0 {
			continue
		}
		fmt.Fprintln(r.out, r.buildTable(rows).Render())
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.out, r.styles.FormatSummary(result.Stats, result.Totals()))
	}

	return nil
}

// headers returns the column titles for the enabled encodings.
func (r *TableRenderer) headers() []string {
	headers := []string{"#", "char"}
	if r.opts.View.ShowScalars {
		headers = append(headers, "scalar")
	}
	if r.opts.View.ShowUTF16 {
		headers = append(headers, "utf-16")
	}
	if r.opts.View.ShowUTF8 {
		headers = append(headers, "utf-8")
	}
	if r.opts.View.Names && r.opts.View.ShowScalars {
		headers = append(headers, "name")
	}
	return headers
}

func (r *TableRenderer) cellValues(row view.Row) []string {
	group := ""
	if row.First {
		group = strconv.Itoa(row.GroupID)
	}

	values := []string{group, row.Display}
	if r.opts.View.ShowScalars {
		values = append(values, row.Scalar)
	}
	if r.opts.View.ShowUTF16 {
		values = append(values, row.UTF16)
	}
	if r.opts.View.ShowUTF8 {
		values = append(values, row.UTF8)
	}
	if r.opts.View.Names && r.opts.View.ShowScalars {
		values = append(values, row.ScalarName)
	}
	return values
}

func (r *TableRenderer) buildTable(rows []view.Row) *table.Table {
	data := make([][]string, 0, len(rows))
	for _, row := range rows {
		data = append(data, r.cellValues(row))
	}

	cell := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.styles.TableBorder).
		Headers(r.headers()...).
		Rows(data...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return cell.Inherit(r.styles.TableHeader)
			}
			if row < 0 || row >= len(rows) {
				return cell
			}
			return cell.Inherit(r.styles.Group(rows[row].GroupID))
		})
}
