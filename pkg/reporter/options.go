package reporter

import (
	"io"
	"os"

	"golang.org/x/term"

	"github.com/yaklabco/unigrid/pkg/view"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// defaultTermWidth is used when terminal width cannot be determined.
const defaultTermWidth = 100

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// View selects the visible encodings, the numeric base and names.
	View view.Options

	// ShowSummary displays aggregate statistics after results.
	ShowSummary bool

	// Compact uses minified output where applicable.
	Compact bool

	// Width overrides the terminal width used to wrap the grid.
	// 0 means detect from Writer.
	Width int
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		Format:      FormatGrid,
		Color:       "auto",
		View:        view.DefaultOptions(),
		ShowSummary: true,
	}
}

// termWidth returns the configured width, the terminal width of the
// writer, or defaultTermWidth.
func (o Options) termWidth() int {
	if o.Width > 0 {
		return o.Width
	}
	if f, ok := o.Writer.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}
