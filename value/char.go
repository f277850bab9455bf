package value

import "unicode/utf16"

// Char is a single UTF-16 code unit.
//
// Characters outside the Basic Multilingual Plane need two Chars (a surrogate
// pair) and cannot be held by one value.
type Char uint16

// NewChar returns r as a Char. Runes that need a surrogate pair, and invalid
// runes, map to U+FFFD.
func NewChar(r rune) Char {
	if r < 0 || r > 0xFFFF || utf16.IsSurrogate(r) {
		return Char(0xFFFD)
	}

	return Char(r)
}

// Rune returns c as a rune. Lone surrogates decode to U+FFFD.
func (c Char) Rune() rune {
	r := rune(c)
	if utf16.IsSurrogate(r) {
		return 0xFFFD
	}

	return r
}

func (c Char) String() string {
	return string(c.Rune())
}
