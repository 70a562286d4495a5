package charset

import "fmt"

// Char is a character code point in the internal multi-byte space.
type Char int32

// ID identifies a charset. IDs below 0x80 are not used except for ASCII.
type ID int

// Unspecified is the smallest byte value denoting a concrete position. Byte
// values below Unspecified mark a position of a generic character.
const Unspecified = 32

// Charset ids of pseudo charsets for single-byte characters.
const (
	ASCII     ID = 0x00
	EightBit  ID = 0x80 // raw bytes 128…255
	NoCharset ID = -1
)

// Ranges of charset ids by dimension.
const (
	MinDimension1 ID = 0x81
	MaxDimension1 ID = 0x8F
	MinDimension2 ID = 0x90
	MaxDimension2 ID = 0x99
)

// First code points of the multi-byte ranges.
const (
	MinCharDimension1 Char = Char(MinDimension1-0x70) << 7
	MinCharDimension2 Char = Char(MinDimension2-0x8F) << 14
	MaxChar           Char = Char(MaxDimension2-0x8F+1)<<14 - 1
)

// IsSingleByte returns true for characters in the range 0…255.
func IsSingleByte(c Char) bool {
	return c >= 0 && c < 256
}

// Split decomposes c into charset id and byte positions. Single-byte
// characters split to (ASCII or EightBit, c, 0). Code points outside of the
// multi-byte ranges return NoCharset.
//
// Split does not check if the charset id is assigned; use Valid for that.
func Split(c Char) (id ID, b1, b2 int) {
	switch {
	case c < 0:
		return NoCharset, 0, 0
	case c < 128:
		return ASCII, int(c), 0
	case c < 256:
		return EightBit, int(c), 0
	case c >= MinCharDimension1 && c < Char(MaxDimension1-0x70+1)<<7:
		return ID(c>>7) + 0x70, int(c & 0x7F), 0
	case c >= MinCharDimension2 && c <= MaxChar:
		return ID(c>>14) + 0x8F, int((c >> 7) & 0x7F), int(c & 0x7F)
	}
	return NoCharset, 0, 0
}

// Make composes a character from a charset id and byte positions. Byte
// values below Unspecified are normalized to 0, i.e., the result is a
// generic character for that position. For dimension-1 charsets b2 is
// ignored.
func Make(id ID, b1, b2 int) Char {
	if b1 < Unspecified {
		b1 = 0
	}
	if b2 < Unspecified {
		b2 = 0
	}
	switch {
	case id == ASCII || id == EightBit:
		return Char(b1 & 0xFF)
	case id >= MinDimension1 && id <= MaxDimension1:
		return Char(id-0x70)<<7 | Char(b1&0x7F)
	case id >= MinDimension2 && id <= MaxDimension2:
		return Char(id-0x8F)<<14 | Char(b1&0x7F)<<7 | Char(b2&0x7F)
	}
	return -1
}

// Generic returns the generic character standing for all characters of
// charset id.
func Generic(id ID) Char {
	return Make(id, 0, 0)
}

// IsGeneric returns true if c has at least one unspecified position.
// Single-byte characters are never generic.
func IsGeneric(c Char) bool {
	id, b1, b2 := Split(c)
	switch {
	case id == NoCharset || id == ASCII || id == EightBit:
		return false
	case Dimension(id) == 1:
		return b1 < Unspecified
	}
	return b1 < Unspecified || b2 < Unspecified
}

// Dimension returns the number of byte positions of a charset id, or 0 for
// ids outside of the multi-byte ranges.
func Dimension(id ID) int {
	switch {
	case id >= MinDimension1 && id <= MaxDimension1:
		return 1
	case id >= MinDimension2 && id <= MaxDimension2:
		return 2
	}
	return 0
}

// Valid returns true if c is a character of an assigned charset with byte
// positions inside the charset's alphabet. If genericOK is set, generic
// characters are accepted as well, provided that positions are unspecified
// from the right (a dimension-2 character may not leave byte1 unspecified
// while specifying byte2).
func Valid(c Char, genericOK bool) bool {
	if IsSingleByte(c) {
		return true
	}
	id, b1, b2 := Split(c)
	cs := ByID(id)
	if cs == nil {
		return false
	}
	switch cs.Dimension {
	case 1:
		if b1 == 0 {
			return genericOK
		}
		return cs.inAlphabet(b1)
	case 2:
		if b1 == 0 && b2 == 0 {
			return genericOK
		}
		if b2 == 0 {
			return genericOK && cs.inAlphabet(b1)
		}
		return cs.inAlphabet(b1) && cs.inAlphabet(b2)
	}
	return false
}

// Format returns a readable representation of c, e.g. "chinese-gb2312/54/45"
// or "chinese-gb2312/*/*" for the charset's generic character.
func Format(c Char) string {
	if IsSingleByte(c) {
		return fmt.Sprintf("%#02x", int(c))
	}
	id, b1, b2 := Split(c)
	cs := ByID(id)
	if cs == nil {
		return fmt.Sprintf("invalid(%#x)", int(c))
	}
	pos := func(b int) string {
		if b < Unspecified {
			return "*"
		}
		return fmt.Sprintf("%d", b)
	}
	if cs.Dimension == 1 {
		return cs.Name + "/" + pos(b1)
	}
	return cs.Name + "/" + pos(b1) + "/" + pos(b2)
}
