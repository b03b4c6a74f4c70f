package analysis

import "time"

// Report contains pre-computed statistics over a cell sequence.
// Computed once by Analyze, used by all renderers.
type Report struct {
	// Totals contains aggregate statistics.
	Totals Totals `json:"summary"`

	// Groups holds one entry per character, in order.
	Groups []GroupAnalysis `json:"groups,omitempty"`

	// ByteClasses counts UTF-8 sequences by their length ("1".."4").
	ByteClasses map[string]int `json:"byteClasses,omitempty"`

	// Version is the report format version.
	Version string `json:"version"`

	// Timestamp is when the analysis was performed.
	Timestamp time.Time `json:"timestamp"`
}

// Totals contains aggregate statistics for the report.
type Totals struct {
	Characters            int `json:"characters"`
	Scalars               int `json:"scalars"`
	UTF16Units            int `json:"utf16Units"`
	UTF8Bytes             int `json:"utf8Bytes"`
	Cells                 int `json:"cells"`
	SurrogatePairs        int `json:"surrogatePairs"`
	MultiScalarCharacters int `json:"multiScalarCharacters"`
	NonASCIICharacters    int `json:"nonAsciiCharacters"`
}

// IsASCII returns true if every character is made of ASCII bytes only.
func (t Totals) IsASCII() bool {
	return t.NonASCIICharacters == 0
}

// Add accumulates other into t.
func (t *Totals) Add(other Totals) {
	t.Characters += other.Characters
	t.Scalars += other.Scalars
	t.UTF16Units += other.UTF16Units
	t.UTF8Bytes += other.UTF8Bytes
	t.Cells += other.Cells
	t.SurrogatePairs += other.SurrogatePairs
	t.MultiScalarCharacters += other.MultiScalarCharacters
	t.NonASCIICharacters += other.NonASCIICharacters
}

// GroupAnalysis contains aggregated data for a single character.
type GroupAnalysis struct {
	GroupID    int    `json:"groupId"`
	Character  string `json:"character"`
	Scalars    int    `json:"scalars"`
	UTF16Units int    `json:"utf16Units"`
	UTF8Bytes  int    `json:"utf8Bytes"`
	Cells      int    `json:"cells"`

	// ASCII is set when every byte of the character is below 0x80.
	ASCII bool `json:"ascii"`
}
