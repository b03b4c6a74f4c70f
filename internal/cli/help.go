package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yaklabco/unigrid/internal/ui/pretty"
	"github.com/yaklabco/unigrid/pkg/view"
)

// Flag groups shown as separate help sections, in display order.
const (
	flagGroupInput     = "Input"
	flagGroupDisplay   = "Display"
	flagGroupOutput    = "Output"
	flagGroupExecution = "Execution"
)

//nolint:gochecknoglobals // Read-only lookup table.
var flagGroupOrder = []string{flagGroupInput, flagGroupDisplay, flagGroupOutput, flagGroupExecution}

const (
	// annotationFlagGroup is the pflag annotation naming a flag's help group.
	annotationFlagGroup = "unigrid_flag_group"

	// annotationRows marks commands whose help lists the grid rows.
	annotationRows = "unigrid_rows"
)

// commentMarker separates an example command from its description.
const commentMarker = "# "

// setFlagGroup files the named local flags under group in help output.
func setFlagGroup(cmd *cobra.Command, group string, names ...string) {
	for _, name := range names {
		// Unknown names are a programming error caught by the help tests.
		_ = cmd.Flags().SetAnnotation(name, annotationFlagGroup, []string{group})
	}
}

// HelpStyles contains Lipgloss styles for command help.
type HelpStyles struct {
	Command     lipgloss.Style
	Heading     lipgloss.Style
	Subcommand  lipgloss.Style
	Flag        lipgloss.Style
	FlagType    lipgloss.Style
	Description lipgloss.Style
	Comment     lipgloss.Style
	Alias       lipgloss.Style
}

// NewHelpStyles creates help styles based on color mode.
func NewHelpStyles(colorEnabled bool) *HelpStyles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &HelpStyles{
			Command:     plain,
			Heading:     plain,
			Subcommand:  plain,
			Flag:        plain,
			FlagType:    plain,
			Description: plain,
			Comment:     plain,
			Alias:       plain,
		}
	}
	return &HelpStyles{
		Command:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Heading:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Subcommand:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Flag:        lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		FlagType:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Description: lipgloss.NewStyle(),
		Comment:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
		Alias:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// helpRenderer writes the help screen of one command.
type helpRenderer struct {
	styles *HelpStyles
	grid   *pretty.Styles
}

// installHelp replaces cobra's help and usage output on root and every
// command below it. Color follows the --color flag and the command's own
// writer, resolved when help is rendered.
func installHelp(root *cobra.Command) {
	root.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		r := newHelpRenderer(cmd)
		if _, err := fmt.Fprint(cmd.OutOrStdout(), r.help(cmd)); err != nil {
			cmd.PrintErrln(err)
		}
	})
	root.SetUsageFunc(func(cmd *cobra.Command) error {
		r := newHelpRenderer(cmd)
		_, err := fmt.Fprint(cmd.OutOrStderr(), r.usage(cmd))
		return err
	})
}

func newHelpRenderer(cmd *cobra.Command) *helpRenderer {
	enabled := pretty.IsColorEnabled(colorMode(cmd), cmd.OutOrStdout())
	return &helpRenderer{
		styles: NewHelpStyles(enabled),
		grid:   pretty.NewStyles(enabled),
	}
}

// colorMode reads --color from the command, falling back to the root's
// persistent flag when flags have not been merged yet.
func colorMode(cmd *cobra.Command) string {
	if flag := cmd.Flags().Lookup("color"); flag != nil {
		return flag.Value.String()
	}
	if flag := cmd.Root().PersistentFlags().Lookup("color"); flag != nil {
		return flag.Value.String()
	}
	return "auto"
}

func (r *helpRenderer) help(cmd *cobra.Command) string {
	var b strings.Builder

	title := r.styles.Command.Render(cmd.CommandPath())
	if cmd.Version != "" {
		title += " " + r.styles.Alias.Render(cmd.Version)
	}
	b.WriteString(title)
	b.WriteString("\n\n")

	if desc := strings.TrimSpace(cmd.Long); desc != "" {
		b.WriteString(desc)
		b.WriteString("\n\n")
	} else if cmd.Short != "" {
		b.WriteString(cmd.Short)
		b.WriteString("\n\n")
	}

	b.WriteString(r.usage(cmd))
	return b.String()
}

func (r *helpRenderer) usage(cmd *cobra.Command) string {
	var sections []string

	usage := r.heading("Usage")
	if cmd.Runnable() {
		usage += "\n  " + r.styles.Command.Render(cmd.UseLine())
	}
	if cmd.HasAvailableSubCommands() {
		usage += "\n  " + r.styles.Command.Render(cmd.CommandPath()+" [command]")
	}
	sections = append(sections, usage)

	if len(cmd.Aliases) > 0 {
		sections = append(sections, r.heading("Aliases")+"\n  "+
			r.styles.Alias.Render(strings.Join(cmd.Aliases, ", ")))
	}
	if cmd.HasExample() {
		sections = append(sections, r.heading("Examples")+"\n"+r.examples(cmd.Example))
	}
	if cmd.Annotations[annotationRows] != "" {
		sections = append(sections, r.heading("Rows")+"\n"+r.rows())
	}
	if cmd.HasAvailableSubCommands() {
		sections = append(sections, r.heading("Commands")+"\n"+r.subcommands(cmd))
	}
	sections = append(sections, r.flagSections(cmd)...)
	if cmd.HasAvailableInheritedFlags() {
		sections = append(sections, r.heading("Global Flags")+"\n"+r.flags(cmd.InheritedFlags()))
	}
	if cmd.HasAvailableSubCommands() {
		sections = append(sections, fmt.Sprintf("Use %q for more information about a command.",
			cmd.CommandPath()+" [command] --help"))
	}

	return strings.Join(sections, "\n\n") + "\n"
}

func (r *helpRenderer) heading(name string) string {
	return r.styles.Heading.Render(name + ":")
}

// examples aligns the trailing comments of example lines and dims them.
func (r *helpRenderer) examples(example string) string {
	lines := strings.Split(strings.TrimSpace(example), "\n")

	type line struct{ command, comment string }
	parsed := make([]line, 0, len(lines))
	width := 0
	for _, raw := range lines {
		command, comment, _ := strings.Cut(strings.TrimSpace(raw), commentMarker)
		command = strings.TrimSpace(command)
		parsed = append(parsed, line{command: command, comment: strings.TrimSpace(comment)})
		if comment != "" {
			width = max(width, view.Width(command))
		}
	}

	out := make([]string, 0, len(parsed))
	for _, l := range parsed {
		text := "  " + r.styles.Command.Render(l.command)
		if l.comment != "" {
			pad := strings.Repeat(" ", width-view.Width(l.command)+2)
			text += pad + r.styles.Comment.Render(commentMarker+l.comment)
		}
		out = append(out, text)
	}
	return strings.Join(out, "\n")
}

// rows explains the grid rows using the same styles as the grid itself.
func (r *helpRenderer) rows() string {
	entries := []struct {
		label string
		style lipgloss.Style
		desc  string
	}{
		{"char", r.grid.Character, "user-perceived character (grapheme cluster)"},
		{"scalar", r.grid.Scalar, "Unicode scalar values, U+XXXX or decimal"},
		{"utf-16", r.grid.UTF16, "UTF-16 code units; surrogate pairs take two cells"},
		{"utf-8", r.grid.UTF8, "UTF-8 bytes; continuation bytes follow their lead"},
	}

	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, "  "+e.style.Render(fmt.Sprintf("%-8s", e.label))+e.desc)
	}
	return strings.Join(out, "\n")
}

func (r *helpRenderer) subcommands(cmd *cobra.Command) string {
	var out []string
	for _, sub := range cmd.Commands() {
		if !sub.IsAvailableCommand() && sub.Name() != "help" {
			continue
		}
		name := fmt.Sprintf("%-*s", sub.NamePadding(), sub.Name())
		out = append(out, "  "+r.styles.Subcommand.Render(name)+" "+r.styles.Description.Render(sub.Short))
	}
	return strings.Join(out, "\n")
}

// flagSections renders local flags grouped by annotation. Flags without a
// group are listed under a plain "Flags" heading after the named groups.
func (r *helpRenderer) flagSections(cmd *cobra.Command) []string {
	if !cmd.HasAvailableLocalFlags() {
		return nil
	}

	groups := make(map[string]*pflag.FlagSet)
	ungrouped := pflag.NewFlagSet("flags", pflag.ContinueOnError)
	cmd.LocalFlags().VisitAll(func(flag *pflag.Flag) {
		if flag.Hidden {
			return
		}
		names := flag.Annotations[annotationFlagGroup]
		if len(names) == 0 || !slices.Contains(flagGroupOrder, names[0]) {
			ungrouped.AddFlag(flag)
			return
		}
		set, ok := groups[names[0]]
		if !ok {
			set = pflag.NewFlagSet(names[0], pflag.ContinueOnError)
			groups[names[0]] = set
		}
		set.AddFlag(flag)
	})

	var sections []string
	for _, name := range flagGroupOrder {
		if set, ok := groups[name]; ok {
			sections = append(sections, r.heading(name+" Flags")+"\n"+r.flags(set))
		}
	}
	if ungrouped.HasAvailableFlags() {
		sections = append(sections, r.heading("Flags")+"\n"+r.flags(ungrouped))
	}
	return sections
}

// flags styles pflag's own aligned usage lines.
func (r *helpRenderer) flags(set *pflag.FlagSet) string {
	usages := strings.TrimRight(set.FlagUsages(), "\n")
	lines := strings.Split(usages, "\n")
	for i, line := range lines {
		lines[i] = r.flagLine(line)
	}
	return strings.Join(lines, "\n")
}

// flagLine styles "  -f, --file string   description". pflag separates the
// two columns by at least two spaces; the padding is kept as is.
func (r *helpRenderer) flagLine(line string) string {
	trimmed := strings.TrimLeft(line, " ")
	indent := line[:len(line)-len(trimmed)]

	spec, desc, found := strings.Cut(trimmed, "  ")
	if !found {
		return line
	}
	gap := desc[:len(desc)-len(strings.TrimLeft(desc, " "))]
	desc = desc[len(gap):]

	tokens := strings.Fields(spec)
	for i, token := range tokens {
		if strings.HasPrefix(token, "-") {
			name, comma := strings.CutSuffix(token, ",")
			tokens[i] = r.styles.Flag.Render(name)
			if comma {
				tokens[i] += ","
			}
			continue
		}
		tokens[i] = r.styles.FlagType.Render(token)
	}

	return indent + strings.Join(tokens, " ") + "  " + gap + r.styles.Description.Render(desc)
}
