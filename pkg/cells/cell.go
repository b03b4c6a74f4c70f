package cells

// Element is one value of an encoding together with its 0-based position in
// the whole input's linear sequence for that encoding.
type Element[T any] struct {
	Index int `json:"index"`
	Value T   `json:"value"`
}

// Cell is one aligned step of the decomposition. It carries at most one value
// per granularity; absent values are nil. A cell never has all four nil.
type Cell struct {
	// GroupID is the index of the character this cell belongs to.
	GroupID int `json:"groupId"`

	// Character is set only on the first cell of a group.
	Character *Element[string] `json:"character,omitempty"`

	Scalar *Element[rune]   `json:"scalar,omitempty"`
	UTF16  *Element[uint16] `json:"utf16,omitempty"`
	UTF8   *Element[byte]   `json:"utf8,omitempty"`
}

// IsFirst reports whether c opens its character group.
func (c Cell) IsFirst() bool {
	return c.Character != nil
}

// Empty reports whether c carries no value at all.
func (c Cell) Empty() bool {
	return c.Character == nil && c.Scalar == nil && c.UTF16 == nil && c.UTF8 == nil
}

// Sequence is the ordered output of a decomposition.
type Sequence []Cell

// Counts holds the number of elements per encoding in a sequence.
type Counts struct {
	Characters int `json:"characters"`
	Scalars    int `json:"scalars"`
	UTF16Units int `json:"utf16Units"`
	UTF8Bytes  int `json:"utf8Bytes"`
}

// Counts tallies the populated fields of every cell.
func (s Sequence) Counts() Counts {
	var counts Counts
	for _, cell := range s {
		if cell.Character != nil {
			counts.Characters++
		}
		if cell.Scalar != nil {
			counts.Scalars++
		}
		if cell.UTF16 != nil {
			counts.UTF16Units++
		}
		if cell.UTF8 != nil {
			counts.UTF8Bytes++
		}
	}
	return counts
}

// CharacterCount returns the number of character groups.
func (s Sequence) CharacterCount() int {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1].GroupID + 1
}

// Groups splits the sequence into consecutive runs sharing a GroupID.
// The returned slices alias s.
func (s Sequence) Groups() []Sequence {
	if len(s) == 0 {
		return nil
	}

	groups := make([]Sequence, 0, s.CharacterCount())
	start := 0
	for i := 1; i <= len(s); i++ {
		if i == len(s) || s[i].GroupID != s[start].GroupID {
			groups = append(groups, s[start:i])
			start = i
		}
	}
	return groups
}

// Group returns the cells of the character at id, or nil if there is none.
func (s Sequence) Group(id int) Sequence {
	for _, group := range s.Groups() {
		if group[0].GroupID == id {
			return group
		}
	}
	return nil
}
