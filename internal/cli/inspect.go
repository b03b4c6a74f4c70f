package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/yaklabco/unigrid/internal/logging"
	"github.com/yaklabco/unigrid/pkg/config"
	"github.com/yaklabco/unigrid/pkg/fsutil"
	"github.com/yaklabco/unigrid/pkg/reporter"
	"github.com/yaklabco/unigrid/pkg/runner"
	"github.com/yaklabco/unigrid/pkg/view"
)

// reportFileMode is the file mode for reports written with --output.
const reportFileMode = 0644

type inspectFlags struct {
	files     []string
	format    string
	base      string
	hide      []string
	names     bool
	jobs      int
	output    string
	noSummary bool
	compact   bool
	width     int
}

func newInspectCommand() *cobra.Command {
	flags := &inspectFlags{}

	cmd := &cobra.Command{
		Use:     "inspect [text...]",
		Aliases: []string{"show"},
		Short:   "Break text down into characters, scalars and code units",
		Long:    inspectLongDescription,
		Example: inspectExamples,
		Annotations: map[string]string{
			annotationRows: "true",
		},
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args, flags)
		},
	}

	addInspectFlags(cmd, flags)

	return cmd
}

const inspectLongDescription = `Break text down into a grid of cells.

Each argument is decomposed as-is. Use --file to read files ("-" reads
stdin). With no arguments and no files, piped stdin is read. One trailing
newline is dropped from files and stdin unless trim_trailing_newline is
false in the configuration.`

const inspectExamples = `unigrid inspect "hello"              # Grid of a literal string
unigrid inspect "naïve" --names      # Include Unicode names
unigrid inspect -f notes.txt         # Decompose a file
echo "text" | unigrid show           # Read stdin
unigrid inspect abc --hide utf16     # Drop the UTF-16 row
unigrid inspect abc --base decimal   # Decimal code points and units
unigrid inspect abc --format json    # Machine-readable output`

func runInspect(cmd *cobra.Command, args []string, flags *inspectFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)
	ctx = logging.WithLogger(ctx, logger)

	cliCfg, err := flags.toConfig(cmd)
	if err != nil {
		return err
	}

	loadResult, err := loadConfig(ctx, cmd, cliCfg)
	if err != nil {
		return err
	}
	cfg := loadResult.Config

	sources, err := collectSources(cmd, args, flags.files)
	if err != nil {
		return err
	}

	logger.Debug("starting decomposition",
		logging.FieldSources, len(sources),
		logging.FieldJobs, cfg.Jobs,
		logging.FieldFormat, cfg.Format,
		logging.FieldBase, cfg.Base,
	)

	start := time.Now()
	result, err := runner.Run(ctx, runner.Options{
		Sources:             sources,
		Jobs:                cfg.Jobs,
		TrimTrailingNewline: cfg.TrimNewline(),
		Stdin:               cmd.InOrStdin(),
	})
	if err != nil {
		return fmt.Errorf("decompose: %w", err)
	}

	logger.Debug("decomposition finished",
		logging.FieldSources, result.Stats.Sources,
		logging.FieldErrored, result.Stats.Errored,
		logging.FieldCharacters, result.Stats.Characters,
		logging.FieldCells, result.Stats.Cells,
		logging.FieldDuration, time.Since(start),
	)

	if err := writeReport(ctx, cmd, cfg, flags, result); err != nil {
		return err
	}

	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrSourcesFailed
	}
	return nil
}

// toConfig captures the flags the user actually set, so unset flags do not
// mask lower configuration layers.
func (f *inspectFlags) toConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := &config.Config{}
	changed := cmd.Flags().Changed

	if changed("format") {
		if _, err := reporter.ParseFormat(f.format); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidUsage, err)
		}
		cfg.Format = f.format
	}
	if changed("base") {
		if _, err := view.ParseBase(f.base); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidUsage, err)
		}
		cfg.Base = f.base
	}
	if changed("names") {
		cfg.Names = config.Bool(f.names)
	}
	if changed("jobs") {
		cfg.Jobs = f.jobs
	}
	if changed("output") {
		cfg.Output = f.output
	}
	if changed("no-summary") {
		cfg.Summary = config.Bool(!f.noSummary)
	}
	if changed("color") {
		color, err := cmd.Flags().GetString("color")
		if err != nil {
			return nil, fmt.Errorf("get color flag: %w", err)
		}
		cfg.Color = color
	}

	for _, row := range f.hide {
		switch strings.ToLower(strings.TrimSpace(row)) {
		case "scalars", "scalar":
			cfg.Show.Scalars = config.Bool(false)
		case "utf16", "utf-16":
			cfg.Show.UTF16 = config.Bool(false)
		case "utf8", "utf-8":
			cfg.Show.UTF8 = config.Bool(false)
		default:
			return nil, fmt.Errorf("%w: unknown row %q for --hide; valid rows: scalars, utf16, utf8", ErrInvalidUsage, row)
		}
	}

	return cfg, nil
}

// collectSources turns arguments and --file values into runner sources.
// Arguments come first, then files, each in command-line order.
func collectSources(cmd *cobra.Command, args, files []string) ([]runner.Source, error) {
	sources := make([]runner.Source, 0, len(args)+len(files))
	for _, arg := range args {
		sources = append(sources, runner.Source{Text: arg})
	}
	for _, path := range files {
		sources = append(sources, runner.Source{Path: path})
	}

	if len(sources) > 0 {
		return sources, nil
	}

	if isTerminal(cmd.InOrStdin()) {
		return nil, fmt.Errorf("%w: nothing to inspect; pass text, --file, or pipe stdin", ErrInvalidUsage)
	}
	return []runner.Source{{Path: runner.StdinPath}}, nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// writeReport renders result to stdout, or atomically to cfg.Output.
func writeReport(
	ctx context.Context,
	cmd *cobra.Command,
	cfg *config.Config,
	flags *inspectFlags,
	result *runner.Result,
) error {
	format, err := reporter.ParseFormat(cfg.Format)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
	}
	base, err := view.ParseBase(cfg.Base)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
	}

	var (
		out  io.Writer = cmd.OutOrStdout()
		file bytes.Buffer
	)
	if cfg.Output != "" {
		out = &file
	}

	rep, err := reporter.New(reporter.Options{
		Writer: out,
		Format: format,
		Color:  cfg.Color,
		View: view.Options{
			ShowScalars: cfg.ShowScalars(),
			ShowUTF16:   cfg.ShowUTF16(),
			ShowUTF8:    cfg.ShowUTF8(),
			Base:        base,
			Names:       cfg.ShowNames(),
		},
		ShowSummary: cfg.ShowSummary(),
		Compact:     flags.compact,
		Width:       flags.width,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	if cfg.Output == "" {
		return nil
	}

	if err := fsutil.WriteAtomic(ctx, cfg.Output, file.Bytes(), reportFileMode); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	logging.FromContext(ctx).Debug("wrote report", logging.FieldOutput, cfg.Output)
	return nil
}

func addInspectFlags(cmd *cobra.Command, flags *inspectFlags) {
	cmd.Flags().StringArrayVarP(&flags.files, "file", "f", nil, `read text from a file ("-" for stdin); repeatable`)
	cmd.Flags().StringVar(&flags.format, "format", "grid", "output format: grid, table, json, summary")
	cmd.Flags().StringVar(&flags.base, "base", "hex", "number base: hex, decimal")
	cmd.Flags().StringSliceVar(&flags.hide, "hide", nil, "rows to hide: scalars, utf16, utf8")
	cmd.Flags().BoolVar(&flags.names, "names", false, "show the Unicode name of each scalar")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write the report to a file instead of stdout")
	cmd.Flags().BoolVar(&flags.noSummary, "no-summary", false, "omit the summary")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output (json: single line, no groups)")
	cmd.Flags().IntVar(&flags.width, "width", 0, "wrap the grid at this many columns (0 = terminal width)")

	setFlagGroup(cmd, flagGroupInput, "file")
	setFlagGroup(cmd, flagGroupDisplay, "hide", "base", "names", "width")
	setFlagGroup(cmd, flagGroupOutput, "format", "output", "no-summary", "compact")
	setFlagGroup(cmd, flagGroupExecution, "jobs")
}
