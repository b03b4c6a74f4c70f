// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Severity styles
	Error   lipgloss.Style
	Warning lipgloss.Style

	// Grid rows
	Label        lipgloss.Style
	Character    lipgloss.Style
	Scalar       lipgloss.Style
	UTF16        lipgloss.Style
	Surrogate    lipgloss.Style
	UTF8         lipgloss.Style
	Continuation lipgloss.Style
	Name         lipgloss.Style

	// Groups alternate through these so adjacent characters stay distinguishable.
	Groups []lipgloss.Style

	// Document components
	DocumentName lipgloss.Style

	// Summary styles
	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style

	// Table styles
	TableHeader    lipgloss.Style
	TableBorder    lipgloss.Style
	TableSeparator lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),

		Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Bold(true),
		Character:    lipgloss.NewStyle().Bold(true),
		Scalar:       lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		UTF16:        lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		Surrogate:    lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Underline(true),
		UTF8:         lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Continuation: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Name:         lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),

		Groups: []lipgloss.Style{
			lipgloss.NewStyle(),
			lipgloss.NewStyle().Background(lipgloss.Color("236")),
		},

		DocumentName: lipgloss.NewStyle().Bold(true).Underline(true),

		SummaryTitle: lipgloss.NewStyle().Bold(true),
		SummaryValue: lipgloss.NewStyle(),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		TableHeader:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		TableBorder:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		TableSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Error:          plain,
		Warning:        plain,
		Label:          plain,
		Character:      plain,
		Scalar:         plain,
		UTF16:          plain,
		Surrogate:      plain,
		UTF8:           plain,
		Continuation:   plain,
		Name:           plain,
		Groups:         []lipgloss.Style{plain},
		DocumentName:   plain,
		SummaryTitle:   plain,
		SummaryValue:   plain,
		Success:        plain,
		Failure:        plain,
		TableHeader:    plain,
		TableBorder:    plain,
		TableSeparator: plain,
		Dim:            plain,
		Bold:           plain,
	}
}

// Group returns the background style for a group.
func (s *Styles) Group(groupID int) lipgloss.Style {
	if len(s.Groups) == 0 {
		return lipgloss.NewStyle()
	}
	return s.Groups[groupID%len(s.Groups)]
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// https://no-color.org/
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
