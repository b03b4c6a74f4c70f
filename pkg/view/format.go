// Package view projects a cell sequence onto what a display shows.
//
// Visibility flags and the numeric base only change how cells are filtered
// and formatted; the cells themselves are never recomputed.
package view

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/runenames"
)

// Base is the numeric base used to print code points and code units.
type Base string

const (
	BaseHex     Base = "hex"
	BaseDecimal Base = "decimal"
)

// ParseBase parses a base name. The empty string means hex.
func ParseBase(s string) (Base, error) {
	switch strings.ToLower(s) {
	case "hex", "hexadecimal", "16", "":
		return BaseHex, nil
	case "decimal", "dec", "10":
		return BaseDecimal, nil
	default:
		return "", fmt.Errorf("unknown base %q; valid bases: hex, decimal", s)
	}
}

// IsValid reports whether b is a known base.
func (b Base) IsValid() bool {
	return b == BaseHex || b == BaseDecimal
}

// FormatScalar formats a code point as U+XXXX (hex) or its decimal value.
func FormatScalar(r rune, base Base) string {
	if base == BaseDecimal {
		return strconv.Itoa(int(r))
	}
	return fmt.Sprintf("U+%04X", r)
}

// FormatUTF16 formats a UTF-16 code unit.
func FormatUTF16(u uint16, base Base) string {
	if base == BaseDecimal {
		return strconv.Itoa(int(u))
	}
	return fmt.Sprintf("%04X", u)
}

// FormatUTF8 formats a UTF-8 byte.
func FormatUTF8(b byte, base Base) string {
	if base == BaseDecimal {
		return strconv.Itoa(int(b))
	}
	return fmt.Sprintf("%02X", b)
}

// Name returns the Unicode name of r, or a bracketed category for code points
// without one.
func Name(r rune) string {
	if name := runenames.Name(r); name != "" {
		return name
	}
	switch {
	case unicode.IsControl(r):
		return "<control>"
	case unicode.Is(unicode.Co, r):
		return "<private-use>"
	default:
		return "<unassigned>"
	}
}

// controlPictureBase is U+2400 SYMBOL FOR NULL; C0 controls map onto it by offset.
const controlPictureBase = 0x2400

// DisplayCharacter returns a printable stand-in for a character. C0 controls
// and DEL map to their control pictures, space to ␠, CRLF to ␍␊, and any
// character that renders with zero width is shown after a dotted circle.
func DisplayCharacter(char string) string {
	switch char {
	case " ":
		return "␠"
	case "\r\n":
		return "␍␊"
	case "\x7f":
		return "␡"
	}

	if len(char) == 1 && char[0] < 0x20 {
		return string(rune(controlPictureBase + int(char[0])))
	}

	if runewidth.StringWidth(char) == 0 {
		return "◌" + char
	}
	return char
}

// Width returns the number of terminal columns a displayed string occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}
