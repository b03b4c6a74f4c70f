package runner

import (
	"github.com/yaklabco/unigrid/pkg/analysis"
	"github.com/yaklabco/unigrid/pkg/cells"
)

// Document is the outcome for one source.
type Document struct {
	// Name is the display label of the source.
	Name string

	// Text is the decomposed text.
	Text string

	// Cells is the cell sequence of Text.
	Cells cells.Sequence

	// Report holds statistics over Cells. Nil when Error is set.
	Report *analysis.Report

	// Error is set if the source could not be read.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// Sources is the number of sources requested.
	Sources int

	// Decomposed is the number of sources successfully decomposed.
	Decomposed int

	// Errored is the number of sources that could not be read.
	Errored int

	// Characters is the total character count across documents.
	Characters int

	// Cells is the total cell count across documents.
	Cells int
}

// Result is the overall runner result.
type Result struct {
	// Documents are ordered like Options.Sources.
	Documents []Document

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any source failed to load.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.Errored > 0
}

// Totals sums the per-document analysis totals.
func (r *Result) Totals() analysis.Totals {
	var totals analysis.Totals
	if r == nil {
		return totals
	}
	for _, doc := range r.Documents {
		if doc.Report != nil {
			totals.Add(doc.Report.Totals)
		}
	}
	return totals
}

// accumulate updates the result with a document.
func (r *Result) accumulate(doc Document) {
	r.Documents = append(r.Documents, doc)

	if doc.Error != nil {
		r.Stats.Errored++
		return
	}

	r.Stats.Decomposed++
	r.Stats.Cells += len(doc.Cells)
	if doc.Report != nil {
		r.Stats.Characters += doc.Report.Totals.Characters
	}
}
