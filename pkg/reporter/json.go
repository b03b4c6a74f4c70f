package reporter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/yaklabco/unigrid/pkg/analysis"
	"github.com/yaklabco/unigrid/pkg/runner"
	"github.com/yaklabco/unigrid/pkg/view"
)

// JSONVersion is the JSON output format version.
const JSONVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version   string         `json:"version"`
	Base      view.Base      `json:"base"`
	Documents []JSONDocument `json:"documents"`
	Summary   JSONSummary    `json:"summary"`
}

// JSONDocument represents a single source's cells.
type JSONDocument struct {
	Name   string                   `json:"name"`
	Text   string                   `json:"text"`
	Cells  []view.Row               `json:"cells"`
	Groups []analysis.GroupAnalysis `json:"groups,omitempty"`
	Totals *analysis.Totals         `json:"totals,omitempty"`
	Error  string                   `json:"error,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	Sources    int             `json:"sources"`
	Decomposed int             `json:"decomposed"`
	Errored    int             `json:"errored"`
	Totals     analysis.Totals `json:"totals"`
}

// JSONRenderer formats results as JSON.
type JSONRenderer struct {
	opts Options
	out  io.Writer
}

// NewJSONRenderer creates a new JSON renderer.
func NewJSONRenderer(opts Options) *JSONRenderer {
	return &JSONRenderer{
		opts: opts,
		out:  opts.Writer,
	}
}

// Render implements Renderer.
func (r *JSONRenderer) Render(_ context.Context, result *runner.Result) error {
	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.out)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

func (r *JSONRenderer) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version:   JSONVersion,
		Base:      r.opts.View.Base,
		Documents: make([]JSONDocument, 0),
	}

	if result == nil {
		return output
	}

	output.Documents = make([]JSONDocument, 0, len(result.Documents))
	for _, doc := range result.Documents {
		jsonDoc := JSONDocument{
			Name:  doc.Name,
			Text:  doc.Text,
			Cells: view.Project(doc.Cells, r.opts.View),
		}
		if doc.Error != nil {
			jsonDoc.Error = doc.Error.Error()
		}
		if doc.Report != nil {
			totals := doc.Report.Totals
			jsonDoc.Totals = &totals
			if !r.opts.Compact {
				jsonDoc.Groups = doc.Report.Groups
			}
		}
		output.Documents = append(output.Documents, jsonDoc)
	}

	output.Summary = JSONSummary{
		Sources:    result.Stats.Sources,
		Decomposed: result.Stats.Decomposed,
		Errored:    result.Stats.Errored,
		Totals:     result.Totals(),
	}

	return output
}
