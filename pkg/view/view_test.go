package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/unigrid/pkg/cells"
	"github.com/yaklabco/unigrid/pkg/view"
)

func TestParseBase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    view.Base
		wantErr bool
	}{
		{input: "", want: view.BaseHex},
		{input: "hex", want: view.BaseHex},
		{input: "HEX", want: view.BaseHex},
		{input: "16", want: view.BaseHex},
		{input: "decimal", want: view.BaseDecimal},
		{input: "dec", want: view.BaseDecimal},
		{input: "octal", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := view.ParseBase(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "U+00E9", view.FormatScalar(0xE9, view.BaseHex))
	assert.Equal(t, "U+1F600", view.FormatScalar(0x1F600, view.BaseHex))
	assert.Equal(t, "233", view.FormatScalar(0xE9, view.BaseDecimal))

	assert.Equal(t, "D83D", view.FormatUTF16(0xD83D, view.BaseHex))
	assert.Equal(t, "0041", view.FormatUTF16(0x41, view.BaseHex))
	assert.Equal(t, "55357", view.FormatUTF16(0xD83D, view.BaseDecimal))

	assert.Equal(t, "C3", view.FormatUTF8(0xC3, view.BaseHex))
	assert.Equal(t, "0A", view.FormatUTF8(0x0A, view.BaseHex))
	assert.Equal(t, "195", view.FormatUTF8(0xC3, view.BaseDecimal))
}

func TestName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "LATIN CAPITAL LETTER A", view.Name('A'))
	assert.Equal(t, "GRINNING FACE", view.Name(0x1F600))
	assert.NotEmpty(t, view.Name('\n'))
	assert.NotEmpty(t, view.Name(0xE000))
}

func TestDisplayCharacter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{input: "a", want: "a"},
		{input: " ", want: "␠"},
		{input: "\n", want: "␊"},
		{input: "\t", want: "␉"},
		{input: "\x00", want: "␀"},
		{input: "\x7f", want: "␡"},
		{input: "\r\n", want: "␍␊"},
		{input: "\u0301", want: "\u25CC\u0301"},
		{input: "😀", want: "😀"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, view.DisplayCharacter(tt.input))
		})
	}
}

func TestWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, view.Width("a"))
	assert.Equal(t, 2, view.Width("中"))
	assert.Equal(t, 6, view.Width("U+00E9"))
}

func TestProject_AllVisible(t *testing.T) {
	t.Parallel()

	rows := view.Project(cells.Decompose("é"), view.DefaultOptions())

	require.Len(t, rows, 2)
	assert.Equal(t, view.Row{
		GroupID:        0,
		First:          true,
		CharacterIndex: 0,
		Character:      "é",
		Display:        "é",
		ScalarIndex:    0,
		Scalar:         "U+00E9",
		UTF16Index:     0,
		UTF16:          "00E9",
		UTF8Index:      0,
		UTF8:           "C3",
	}, rows[0])
	assert.Equal(t, view.Row{
		GroupID:        0,
		CharacterIndex: -1,
		ScalarIndex:    -1,
		UTF16Index:     -1,
		UTF8Index:      1,
		UTF8:           "A9",
		Continuation:   true,
	}, rows[1])
}

func TestProject_HidingUTF8DropsByteOnlyCells(t *testing.T) {
	t.Parallel()

	opts := view.DefaultOptions()
	opts.ShowUTF8 = false

	rows := view.Project(cells.Decompose("😀"), opts)

	// Cell 0 carries the character, cell 1 the trail surrogate; cells 2-3 are bytes only.
	require.Len(t, rows, 2)
	assert.Equal(t, "D83D", rows[0].UTF16)
	assert.Equal(t, "DE00", rows[1].UTF16)
	assert.True(t, rows[0].Surrogate)
	assert.True(t, rows[1].Surrogate)
	assert.Empty(t, rows[0].UTF8)
	assert.Equal(t, -1, rows[0].UTF8Index)
}

func TestProject_OnlyCharacters(t *testing.T) {
	t.Parallel()

	rows := view.Project(cells.Decompose("a😀b"), view.Options{})

	require.Len(t, rows, 3)
	for i, row := range rows {
		assert.True(t, row.First)
		assert.Equal(t, i, row.GroupID)
		assert.Empty(t, row.Scalar)
	}
}

func TestProject_DecimalWithNames(t *testing.T) {
	t.Parallel()

	opts := view.DefaultOptions()
	opts.Base = view.BaseDecimal
	opts.Names = true

	rows := view.Project(cells.Decompose("A"), opts)

	require.Len(t, rows, 1)
	assert.Equal(t, "65", rows[0].Scalar)
	assert.Equal(t, "65", rows[0].UTF16)
	assert.Equal(t, "65", rows[0].UTF8)
	assert.Equal(t, "LATIN CAPITAL LETTER A", rows[0].ScalarName)
}

func TestProject_InvalidBaseFallsBackToHex(t *testing.T) {
	t.Parallel()

	opts := view.DefaultOptions()
	opts.Base = "roman"

	rows := view.Project(cells.Decompose("A"), opts)
	require.Len(t, rows, 1)
	assert.Equal(t, "U+0041", rows[0].Scalar)
}

func TestProject_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, view.Project(nil, view.DefaultOptions()))
}
