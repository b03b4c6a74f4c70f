package view

import "github.com/yaklabco/unigrid/pkg/cells"

// Options are the display preferences applied to a cell sequence.
type Options struct {
	// ShowScalars shows the Unicode scalar row.
	ShowScalars bool

	// ShowUTF16 shows the UTF-16 code unit row.
	ShowUTF16 bool

	// ShowUTF8 shows the UTF-8 byte row.
	ShowUTF8 bool

	// Base selects hex or decimal numbers.
	Base Base

	// Names adds the Unicode name of each scalar.
	Names bool
}

// DefaultOptions shows every encoding in hex.
func DefaultOptions() Options {
	return Options{
		ShowScalars: true,
		ShowUTF16:   true,
		ShowUTF8:    true,
		Base:        BaseHex,
	}
}

// Row is a formatted, filtered cell. Index fields are -1 when the value is
// absent or hidden; string fields are empty in the same case.
type Row struct {
	GroupID int  `json:"groupId"`
	First   bool `json:"first"`

	CharacterIndex int    `json:"characterIndex"`
	Character      string `json:"character,omitempty"`
	Display        string `json:"display,omitempty"`

	ScalarIndex int    `json:"scalarIndex"`
	Scalar      string `json:"scalar,omitempty"`
	ScalarName  string `json:"scalarName,omitempty"`

	UTF16Index int    `json:"utf16Index"`
	UTF16      string `json:"utf16,omitempty"`
	Surrogate  bool   `json:"surrogate,omitempty"`

	UTF8Index    int    `json:"utf8Index"`
	UTF8         string `json:"utf8,omitempty"`
	Continuation bool   `json:"continuation,omitempty"`
}

// Visible reports whether a cell has anything to show under opts.
// The first cell of a group is always visible since it carries the character.
func Visible(cell cells.Cell, opts Options) bool {
	return cell.Character != nil ||
		(opts.ShowScalars && cell.Scalar != nil) ||
		(opts.ShowUTF16 && cell.UTF16 != nil) ||
		(opts.ShowUTF8 && cell.UTF8 != nil)
}

// Project formats the visible cells of seq in order.
func Project(seq cells.Sequence, opts Options) []Row {
	if !opts.Base.IsValid() {
		opts.Base = BaseHex
	}

	rows := make([]Row, 0, len(seq))
	for _, cell := range seq {
		if !Visible(cell, opts) {
			continue
		}
		rows = append(rows, project(cell, opts))
	}
	return rows
}

func project(cell cells.Cell, opts Options) Row {
	row := Row{
		GroupID:        cell.GroupID,
		First:          cell.IsFirst(),
		CharacterIndex: -1,
		ScalarIndex:    -1,
		UTF16Index:     -1,
		UTF8Index:      -1,
	}

	if cell.Character != nil {
		row.CharacterIndex = cell.Character.Index
		row.Character = cell.Character.Value
		row.Display = DisplayCharacter(cell.Character.Value)
	}
	if opts.ShowScalars && cell.Scalar != nil {
		row.ScalarIndex = cell.Scalar.Index
		row.Scalar = FormatScalar(cell.Scalar.Value, opts.Base)
		if opts.Names {
			row.ScalarName = Name(cell.Scalar.Value)
		}
	}
	if opts.ShowUTF16 && cell.UTF16 != nil {
		row.UTF16Index = cell.UTF16.Index
		row.UTF16 = FormatUTF16(cell.UTF16.Value, opts.Base)
		row.Surrogate = cells.IsLeadSurrogate(cell.UTF16.Value) || cells.IsTrailSurrogate(cell.UTF16.Value)
	}
	if opts.ShowUTF8 && cell.UTF8 != nil {
		row.UTF8Index = cell.UTF8.Index
		row.UTF8 = FormatUTF8(cell.UTF8.Value, opts.Base)
		row.Continuation = cells.ClassifyUTF8(cell.UTF8.Value) == cells.ByteContinuation
	}

	return row
}
