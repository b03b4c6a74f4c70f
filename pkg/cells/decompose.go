// Package cells decomposes text into aligned cells of its encodings.
//
// Each character (extended grapheme cluster) is walked in three encodings at
// once: Unicode scalars, UTF-16 code units and UTF-8 bytes. Every step of the
// walk produces one Cell holding whatever each encoding yielded on that step,
// so a character spans as many cells as its UTF-8 form has bytes. Scalar and
// UTF-16 walkers pause after each complete scalar and wait for the UTF-8
// walker to reach the same boundary.
//
// For "é" (U+00E9) the result is two cells:
//
//	cell 0: character "é", scalar U+00E9, UTF-16 00E9, UTF-8 C3
//	cell 1:                                            UTF-8 A9
//
// Indices on each element count positions across the whole input, not per
// character. Decompose is a pure function and safe for concurrent use.
package cells

import (
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Decompose splits text into characters and returns their aligned cells in
// input order. Empty text yields an empty sequence.
//
// Go strings may hold ill-formed UTF-8; such bytes are decoded as U+FFFD
// before walking so that all three encodings describe the same scalars.
func Decompose(text string) Sequence {
	return DecomposeCharacters(Characters(text))
}

// DecomposeCharacters returns the aligned cells for pre-split characters.
// Each element of chars is treated as one character regardless of its
// grapheme structure.
func DecomposeCharacters(chars []string) Sequence {
	if len(chars) == 0 {
		return nil
	}

	var (
		out Sequence
		idx indexes
	)
	for _, char := range chars {
		if char == "" {
			continue
		}
		out = newSynchronizer(wellFormed(char)).emit(out, &idx)
	}
	return out
}

// Characters splits text into extended grapheme clusters.
func Characters(text string) []string {
	if text == "" {
		return nil
	}

	text = wellFormed(text)
	chars := make([]string, 0, utf8.RuneCountInString(text))
	state := -1
	for len(text) > 0 {
		var cluster string
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		chars = append(chars, cluster)
	}
	return chars
}

func wellFormed(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return strings.ToValidUTF8(s, string(utf8.RuneError))
}
