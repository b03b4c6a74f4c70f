package cells

import (
	"unicode/utf16"

	"github.com/yaklabco/unigrid/pkg/walker"
)

// indexes are the running positions in each encoding's linear sequence.
// They live for one decomposition and are threaded through every character.
type indexes struct {
	character int
	scalar    int
	utf16     int
	utf8      int
}

// synchronizer drives the three walkers of a single character.
type synchronizer struct {
	character string
	scalars   *walker.Walker[rune]
	units     *walker.Walker[uint16]
	bytes     *walker.Walker[byte]
}

func newSynchronizer(character string) *synchronizer {
	scalars := []rune(character)
	return &synchronizer{
		character: character,
		scalars:   walker.New(scalars),
		units:     walker.New(utf16.Encode(scalars)),
		bytes:     walker.New([]byte(character)),
	}
}

// emit appends the cells of one character to out and advances idx.
func (s *synchronizer) emit(out Sequence, idx *indexes) Sequence {
	first := true
	for {
		cell := Cell{GroupID: idx.character}

		if scalar, ok := s.scalars.Next(); ok {
			cell.Scalar = &Element[rune]{Index: idx.scalar, Value: scalar}
			idx.scalar++
			s.scalars.Hold()
		}

		if unit, ok := s.units.Next(); ok {
			cell.UTF16 = &Element[uint16]{Index: idx.utf16, Value: unit}
			idx.utf16++
			// A lead surrogate lets the trail through on the next step.
			if !IsLeadSurrogate(unit) {
				s.units.Hold()
			}
		}

		if b, ok := s.bytes.Next(); ok {
			cell.UTF8 = &Element[byte]{Index: idx.utf8, Value: b}
			idx.utf8++
			holdUTF8(s.bytes, b)
		}

		// The UTF-8 sequence is the longest; once it pauses the scalar is complete.
		if s.bytes.Held() {
			s.scalars.Resume()
			s.units.Resume()
			s.bytes.Resume()
		}

		if cell.Scalar == nil && cell.UTF16 == nil && cell.UTF8 == nil {
			break
		}

		if first {
			cell.Character = &Element[string]{Index: idx.character, Value: s.character}
			first = false
		}
		out = append(out, cell)
	}

	idx.character++
	return out
}

// holdUTF8 schedules the pause that follows byte b.
func holdUTF8(w *walker.Walker[byte], b byte) {
	switch class := ClassifyUTF8(b); class {
	case ByteContinuation:
		// Already counted down by the lead byte.
	case ByteLead2, ByteLead3, ByteLead4:
		w.HoldAfter(class.SequenceLength() - 1)
	default:
		w.Hold()
	}
}
