/*
Package charset defines the character repertoire fontsets are keyed by.

Characters are integer code points in an internal multi-byte space. Code
points below 256 are single-byte characters. Every other character belongs
to exactly one charset and decomposes deterministically into a triple

	(charset-id, byte1, byte2)

where byte1 and byte2 range over a 94- or 96-character sub-alphabet
(starting at 32 or 33). A byte value below 32 means "unspecified": a
character with unspecified bytes is a generic character and stands for all
characters of its charset (or of a charset row).

Dimension-1 charsets (ids 0x81…0x8F) use byte1 only; dimension-2 charsets
(ids 0x90…0x99) use both bytes.

Unicode code points may be mapped into this space with FromRune, which
encodes a rune in the legacy encoding associated with a charset
(ISO 8859, EUC, Shift_JIS, Big5).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package charset

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'fontsets.core'
func tracer() tracing.Trace {
	return tracing.Select("fontsets.core")
}
