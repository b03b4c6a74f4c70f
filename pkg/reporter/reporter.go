// Package reporter renders decomposed text as grids, tables, JSON or summaries.
package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/unigrid/pkg/runner"
)

// Compile-time interface check for reporterFacade.
var _ Reporter = (*reporterFacade)(nil)

// Reporter formats and writes decomposition results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of cells reported and any write errors.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// reporterFacade bridges the Reporter interface to Renderer implementations.
type reporterFacade struct {
	renderer Renderer
	bw       *bufio.Writer
}

// Report implements Reporter by rendering the result and flushing output.
func (f *reporterFacade) Report(ctx context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := f.bw.Flush(); err == nil && flushErr != nil {
			err = fmt.Errorf("flush: %w", flushErr)
		}
	}()

	if err := f.renderer.Render(ctx, result); err != nil {
		return 0, fmt.Errorf("render: %w", err)
	}
	if result == nil {
		return 0, nil
	}
	return result.Stats.Cells, nil
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatGrid
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
	if !opts.View.Base.IsValid() {
		return nil, fmt.Errorf("unsupported base: %q", opts.View.Base)
	}

	// Terminal width is probed on the real writer, before buffering hides it.
	if opts.Width <= 0 {
		opts.Width = opts.termWidth()
	}

	bw := bufio.NewWriterSize(opts.Writer, bufWriterSize)
	colorEnabled := isColorEnabled(opts)
	opts.Writer = bw

	var renderer Renderer
	switch format {
	case FormatGrid:
		renderer = NewGridRenderer(opts, colorEnabled)
	case FormatTable:
		renderer = NewTableRenderer(opts, colorEnabled)
	case FormatJSON:
		renderer = NewJSONRenderer(opts)
	case FormatSummary:
		renderer = NewSummaryRenderer(opts, colorEnabled)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	return &reporterFacade{renderer: renderer, bw: bw}, nil
}
