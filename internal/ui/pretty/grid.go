package pretty

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/unigrid/pkg/view"
)

// Grid formatting constants.
const (
	defaultTermWidth = 100
	columnGap        = 1
	nameGap          = "  "
)

// gridLine identifies one horizontal line of the grid.
type gridLine int

const (
	lineCharacter gridLine = iota
	lineScalar
	lineUTF16
	lineUTF8
)

//nolint:gochecknoglobals // Read-only lookup table.
var lineLabels = map[gridLine]string{
	lineCharacter: "char",
	lineScalar:    "scalar",
	lineUTF16:     "utf-16",
	lineUTF8:      "utf-8",
}

// GridFormatter lays cells out left to right, one line per encoding, and
// wraps to the terminal width at character boundaries where possible.
type GridFormatter struct {
	styles    *Styles
	termWidth int
}

// NewGridFormatter creates a new grid formatter.
func NewGridFormatter(styles *Styles, termWidth int) *GridFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &GridFormatter{
		styles:    styles,
		termWidth: termWidth,
	}
}

// gridColumn is one cell with its rendered width.
type gridColumn struct {
	row   view.Row
	width int
}

// Format renders rows as a grid. Rows must come from view.Project with the
// same opts.
func (g *GridFormatter) Format(rows []view.Row, opts view.Options) string {
	if len(rows) == 0 {
		return ""
	}

	lines := visibleLines(opts)
	labelWidth := 0
	for _, line := range lines {
		labelWidth = max(labelWidth, len(lineLabels[line]))
	}

	columns := make([]gridColumn, 0, len(rows))
	for _, row := range rows {
		columns = append(columns, gridColumn{row: row, width: columnWidth(row)})
	}

	var builder strings.Builder
	for idx, chunk := range g.wrap(columns, labelWidth) {
		if idx > 0 {
			builder.WriteString("\n")
		}
		for _, line := range lines {
			builder.WriteString(g.formatLine(line, chunk, labelWidth))
			builder.WriteString("\n")
		}
	}

	if opts.Names {
		builder.WriteString(g.formatNames(rows))
	}

	return builder.String()
}

func visibleLines(opts view.Options) []gridLine {
	lines := []gridLine{lineCharacter}
	if opts.ShowScalars {
		lines = append(lines, lineScalar)
	}
	if opts.ShowUTF16 {
		lines = append(lines, lineUTF16)
	}
	if opts.ShowUTF8 {
		lines = append(lines, lineUTF8)
	}
	return lines
}

func columnWidth(row view.Row) int {
	return max(
		view.Width(row.Display),
		view.Width(row.Scalar),
		view.Width(row.UTF16),
		view.Width(row.UTF8),
		1,
	)
}

// wrap splits columns into chunks that fit the terminal. A group is only
// split when it is wider than a whole line on its own.
func (g *GridFormatter) wrap(columns []gridColumn, labelWidth int) [][]gridColumn {
	available := max(g.termWidth-labelWidth, 1)

	var (
		chunks [][]gridColumn
		chunk  []gridColumn
		used   int
	)
	flush := func() {
		if len(chunk) > 0 {
			chunks = append(chunks, chunk)
			chunk, used = nil, 0
		}
	}

	for start := 0; start < len(columns); {
		end := start + 1
		for end < len(columns) && columns[end].row.GroupID == columns[start].row.GroupID {
			end++
		}
		group := columns[start:end]
		start = end

		width := 0
		for _, col := range group {
			width += col.width + columnGap
		}

		if used+width > available {
			flush()
		}
		if width <= available {
			chunk = append(chunk, group...)
			used += width
			continue
		}

		for _, col := range group {
			if used > 0 && used+col.width+columnGap > available {
				flush()
			}
			chunk = append(chunk, col)
			used += col.width + columnGap
		}
	}
	flush()

	return chunks
}

func (g *GridFormatter) formatLine(line gridLine, columns []gridColumn, labelWidth int) string {
	var builder strings.Builder
	builder.WriteString(g.styles.Label.Render(padRight(lineLabels[line], labelWidth)))

	for _, col := range columns {
		text, style := g.cellText(line, col.row)
		builder.WriteString(strings.Repeat(" ", columnGap))
		builder.WriteString(g.styles.Group(col.row.GroupID).Inherit(style).Render(padRight(text, col.width)))
	}

	return strings.TrimRight(builder.String(), " ")
}

func (g *GridFormatter) cellText(line gridLine, row view.Row) (string, lipgloss.Style) {
	switch line {
	case lineCharacter:
		return row.Display, g.styles.Character
	case lineScalar:
		return row.Scalar, g.styles.Scalar
	case lineUTF16:
		if row.Surrogate {
			return row.UTF16, g.styles.Surrogate
		}
		return row.UTF16, g.styles.UTF16
	case lineUTF8:
		if row.Continuation {
			return row.UTF8, g.styles.Continuation
		}
		return row.UTF8, g.styles.UTF8
	default:
		return "", lipgloss.NewStyle()
	}
}

// formatNames lists each scalar with its Unicode name below the grid.
func (g *GridFormatter) formatNames(rows []view.Row) string {
	width := 0
	for _, row := range rows {
		if row.ScalarName != "" {
			width = max(width, view.Width(row.Scalar))
		}
	}

	var builder strings.Builder
	for _, row := range rows {
		if row.ScalarName == "" {
			continue
		}
		builder.WriteString(g.styles.Scalar.Render(padRight(row.Scalar, width)))
		builder.WriteString(nameGap)
		builder.WriteString(g.styles.Name.Render(row.ScalarName))
		builder.WriteString("\n")
	}

	if builder.Len() == 0 {
		return ""
	}
	return "\n" + builder.String()
}

// padRight pads s with spaces to width terminal columns.
// This must be called BEFORE applying ANSI styles.
func padRight(s string, width int) string {
	w := view.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
