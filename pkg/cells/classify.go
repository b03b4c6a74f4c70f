package cells

// Bit patterns for UTF-16 surrogates and UTF-8 lead bytes.
const (
	surrogateMask     = 0xFC00 // top 6 bits of a 16-bit unit
	leadSurrogateTag  = 0xD800 // 110110xx xxxxxxxx
	trailSurrogateTag = 0xDC00 // 110111xx xxxxxxxx

	continuationMask = 0xC0 // 11000000
	continuationTag  = 0x80 // 10xxxxxx
	singleMask       = 0x80 // 10000000
	singleTag        = 0x00 // 0xxxxxxx
	lead2Mask        = 0xE0 // 11100000
	lead2Tag         = 0xC0 // 110xxxxx
	lead3Mask        = 0xF0 // 11110000
	lead3Tag         = 0xE0 // 1110xxxx
	lead4Mask        = 0xF8 // 11111000
	lead4Tag         = 0xF0 // 11110xxx
)

// IsLeadSurrogate reports whether unit is a UTF-16 high surrogate (0xD800-0xDBFF).
func IsLeadSurrogate(unit uint16) bool {
	return unit&surrogateMask == leadSurrogateTag
}

// IsTrailSurrogate reports whether unit is a UTF-16 low surrogate (0xDC00-0xDFFF).
func IsTrailSurrogate(unit uint16) bool {
	return unit&surrogateMask == trailSurrogateTag
}

// ByteClass is the role of a byte within a UTF-8 sequence.
type ByteClass int

const (
	// ByteSingle is a one-byte sequence (0xxxxxxx).
	ByteSingle ByteClass = iota
	// ByteContinuation is a trailing byte (10xxxxxx).
	ByteContinuation
	// ByteLead2 starts a two-byte sequence (110xxxxx).
	ByteLead2
	// ByteLead3 starts a three-byte sequence (1110xxxx).
	ByteLead3
	// ByteLead4 starts a four-byte sequence (11110xxx).
	ByteLead4
	// ByteInvalid never occurs in well-formed UTF-8 (11111xxx).
	ByteInvalid
)

// ClassifyUTF8 returns the class of b from its leading bit pattern.
func ClassifyUTF8(b byte) ByteClass {
	switch {
	case b&singleMask == singleTag:
		return ByteSingle
	case b&continuationMask == continuationTag:
		return ByteContinuation
	case b&lead2Mask == lead2Tag:
		return ByteLead2
	case b&lead3Mask == lead3Tag:
		return ByteLead3
	case b&lead4Mask == lead4Tag:
		return ByteLead4
	default:
		return ByteInvalid
	}
}

// SequenceLength returns the total byte length of a sequence started by a
// byte of this class, or 0 for continuation and invalid bytes.
func (c ByteClass) SequenceLength() int {
	switch c {
	case ByteSingle:
		return 1
	case ByteLead2:
		return 2
	case ByteLead3:
		return 3
	case ByteLead4:
		return 4
	default:
		return 0
	}
}

// String returns a short name for the class.
func (c ByteClass) String() string {
	switch c {
	case ByteSingle:
		return "single"
	case ByteContinuation:
		return "continuation"
	case ByteLead2:
		return "lead2"
	case ByteLead3:
		return "lead3"
	case ByteLead4:
		return "lead4"
	default:
		return "invalid"
	}
}
