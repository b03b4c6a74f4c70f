// Package analysis computes statistics over decomposed text.
package analysis

import (
	"strconv"
	"time"

	"github.com/yaklabco/unigrid/pkg/cells"
)

// ReportVersion is the current report format version.
const ReportVersion = "1.0.0"

// Analyze transforms a cell sequence into a Report.
// It performs a single pass through the groups.
func Analyze(seq cells.Sequence) *Report {
	report := &Report{
		Version:     ReportVersion,
		Timestamp:   time.Now(),
		ByteClasses: make(map[string]int),
	}

	groups := seq.Groups()
	report.Groups = make([]GroupAnalysis, 0, len(groups))

	for id, group := range groups {
		ga := analyzeGroup(id, group, report)
		report.Groups = append(report.Groups, ga)

		report.Totals.Characters++
		report.Totals.Scalars += ga.Scalars
		report.Totals.UTF16Units += ga.UTF16Units
		report.Totals.UTF8Bytes += ga.UTF8Bytes
		report.Totals.Cells += ga.Cells
		if ga.Scalars > 1 {
			report.Totals.MultiScalarCharacters++
		}
		if !ga.ASCII {
			report.Totals.NonASCIICharacters++
		}
	}

	return report
}

func analyzeGroup(id int, group cells.Sequence, report *Report) GroupAnalysis {
	ga := GroupAnalysis{GroupID: id, Cells: len(group), ASCII: true}
	for _, cell := range group {
		if cell.Character != nil {
			ga.Character = cell.Character.Value
		}
		if cell.Scalar != nil {
			ga.Scalars++
		}
		if cell.UTF16 != nil {
			ga.UTF16Units++
			if cells.IsLeadSurrogate(cell.UTF16.Value) {
				report.Totals.SurrogatePairs++
			}
		}
		if cell.UTF8 != nil {
			ga.UTF8Bytes++
			class := cells.ClassifyUTF8(cell.UTF8.Value)
			if class != cells.ByteSingle {
				ga.ASCII = false
			}
			if n := class.SequenceLength(); n > 0 {
				report.ByteClasses[strconv.Itoa(n)]++
			}
		}
	}
	return ga
}
