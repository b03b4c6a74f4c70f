package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/yaklabco/unigrid/internal/logging"
	"github.com/yaklabco/unigrid/pkg/analysis"
	"github.com/yaklabco/unigrid/pkg/cells"
	"github.com/yaklabco/unigrid/pkg/fsutil"
)

// ErrNoStdin is returned for a stdin source when Options.Stdin is nil.
var ErrNoStdin = errors.New("no stdin reader configured")

// job is a source paired with its position in the output.
type job struct {
	index  int
	source Source
}

// outcome is a finished document and the position it belongs at.
type outcome struct {
	index int
	doc   Document
}

// Run loads and decomposes opts.Sources concurrently.
// Each decomposition is single-threaded; the pool only spreads sources
// across workers. Documents come back in source order.
func Run(ctx context.Context, opts Options) (*Result, error) {
	result := &Result{
		Documents: make([]Document, 0, len(opts.Sources)),
	}
	result.Stats.Sources = len(opts.Sources)

	if len(opts.Sources) == 0 {
		return result, nil
	}

	stdin := newStdinOnce(opts.Stdin)

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(opts.Sources) {
		jobs = len(opts.Sources)
	}

	workCh := make(chan job)
	outCh := make(chan outcome)

	var wg sync.WaitGroup

	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(ctx, workCh, outCh, opts, stdin)
		}()
	}

	go func() {
		defer close(workCh)
		for idx, src := range opts.Sources {
			select {
			case <-ctx.Done():
				return
			case workCh <- job{index: idx, source: src}:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers may complete out of order; slot documents by source index.
	docs := make([]*Document, len(opts.Sources))
	for out := range outCh {
		docs[out.index] = &out.doc
	}

	for _, doc := range docs {
		if doc != nil {
			result.accumulate(*doc)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// worker processes sources from workCh and sends documents to outCh.
func worker(
	ctx context.Context,
	workCh <-chan job,
	outCh chan<- outcome,
	opts Options,
	stdin *stdinOnce,
) {
	for work := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		out := outcome{index: work.index, doc: process(ctx, work, opts, stdin)}

		select {
		case <-ctx.Done():
			return
		case outCh <- out:
		}
	}
}

// process loads and decomposes a single source.
func process(ctx context.Context, work job, opts Options, stdin *stdinOnce) Document {
	src := work.source
	doc := Document{Name: displayName(src, work.index)}

	text, err := load(ctx, src, stdin)
	if err != nil {
		logging.FromContext(ctx).Warn("source unreadable",
			logging.FieldSource, doc.Name,
			logging.FieldError, err,
		)
		doc.Error = err
		return doc
	}
	if src.Path != "" && opts.TrimTrailingNewline {
		text = trimNewline(text)
	}

	doc.Text = text
	doc.Cells = cells.Decompose(text)
	doc.Report = analysis.Analyze(doc.Cells)
	logging.FromContext(ctx).Debug("decomposed source",
		logging.FieldSource, doc.Name,
		logging.FieldCharacters, doc.Report.Totals.Characters,
		logging.FieldCells, doc.Report.Totals.Cells,
	)
	return doc
}

func load(ctx context.Context, src Source, stdin *stdinOnce) (string, error) {
	switch src.Path {
	case "":
		return src.Text, nil
	case StdinPath:
		return stdin.read()
	default:
		data, err := fsutil.ReadFile(ctx, src.Path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
}

func displayName(src Source, index int) string {
	switch {
	case src.Name != "":
		return src.Name
	case src.Path == StdinPath:
		return "<stdin>"
	case src.Path != "":
		return src.Path
	default:
		return "arg " + strconv.Itoa(index+1)
	}
}

func trimNewline(text string) string {
	if trimmed, ok := strings.CutSuffix(text, "\r\n"); ok {
		return trimmed
	}
	return strings.TrimSuffix(text, "\n")
}

// stdinOnce reads a reader to completion the first time it is asked and
// serves the same text afterwards.
type stdinOnce struct {
	reader io.Reader
	once   sync.Once
	text   string
	err    error
}

func newStdinOnce(r io.Reader) *stdinOnce {
	return &stdinOnce{reader: r}
}

func (s *stdinOnce) read() (string, error) {
	s.once.Do(func() {
		if s.reader == nil {
			s.err = ErrNoStdin
			return
		}
		data, err := io.ReadAll(s.reader)
		if err != nil {
			s.err = fmt.Errorf("read stdin: %w", err)
			return
		}
		s.text = string(data)
	})
	return s.text, s.err
}
