package charset

import (
	"sort"
	"strings"
	"sync"

	"github.com/derekparker/trie"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// Charset describes one charset of the repertoire.
type Charset struct {
	ID        ID
	Name      string // symbolic name, e.g. "japanese-jisx0208"
	Dimension int    // 1 or 2, 0 for single-byte pseudo charsets
	Chars     int    // 94 or 96
	Registry  string // X registry and encoding, e.g. "jisx0208.1983-0"
	codec     codec
}

// inAlphabet checks if a byte position is inside the charset's alphabet.
func (cs *Charset) inAlphabet(b int) bool {
	if cs.Chars == 96 {
		return b >= 32 && b <= 127
	}
	return b >= 33 && b <= 126
}

// Generic returns the generic character of the charset.
func (cs *Charset) Generic() Char {
	return Generic(cs.ID)
}

// form tells how the bytes of an encoded rune map to byte positions.
type form int8

const (
	formNone      form = iota
	formRightHalf      // single byte 0xA0…0xFF
	formKana           // single byte 0xA1…0xDF (Shift_JIS half-width katakana)
	formEUC            // two bytes 0xA1…0xFE
	formEUC3           // SS3 (0x8F) followed by two bytes 0xA1…0xFE
	formBig5           // Big5 split into two 94×94 planes
)

type codec struct {
	enc  encoding.Encoding
	form form
}

var repertoire = []*Charset{
	{ID: ASCII, Name: "ascii", Chars: 94, Registry: "iso8859-1"},
	{ID: 0x81, Name: "latin-iso8859-1", Dimension: 1, Chars: 96, Registry: "iso8859-1",
		codec: codec{charmap.ISO8859_1, formRightHalf}},
	{ID: 0x82, Name: "latin-iso8859-2", Dimension: 1, Chars: 96, Registry: "iso8859-2",
		codec: codec{charmap.ISO8859_2, formRightHalf}},
	{ID: 0x83, Name: "latin-iso8859-3", Dimension: 1, Chars: 96, Registry: "iso8859-3",
		codec: codec{charmap.ISO8859_3, formRightHalf}},
	{ID: 0x84, Name: "latin-iso8859-4", Dimension: 1, Chars: 96, Registry: "iso8859-4",
		codec: codec{charmap.ISO8859_4, formRightHalf}},
	{ID: 0x85, Name: "thai-tis620", Dimension: 1, Chars: 96, Registry: "tis620.2529-1",
		codec: codec{charmap.Windows874, formRightHalf}},
	{ID: 0x86, Name: "greek-iso8859-7", Dimension: 1, Chars: 96, Registry: "iso8859-7",
		codec: codec{charmap.ISO8859_7, formRightHalf}},
	{ID: 0x87, Name: "arabic-iso8859-6", Dimension: 1, Chars: 96, Registry: "iso8859-6",
		codec: codec{charmap.ISO8859_6, formRightHalf}},
	{ID: 0x88, Name: "hebrew-iso8859-8", Dimension: 1, Chars: 96, Registry: "iso8859-8",
		codec: codec{charmap.ISO8859_8, formRightHalf}},
	{ID: 0x89, Name: "katakana-jisx0201", Dimension: 1, Chars: 94, Registry: "jisx0201.1976-0",
		codec: codec{japanese.ShiftJIS, formKana}},
	{ID: 0x8A, Name: "latin-jisx0201", Dimension: 1, Chars: 94, Registry: "jisx0201.1976-0"},
	{ID: 0x8C, Name: "cyrillic-iso8859-5", Dimension: 1, Chars: 96, Registry: "iso8859-5",
		codec: codec{charmap.ISO8859_5, formRightHalf}},
	{ID: 0x8D, Name: "latin-iso8859-9", Dimension: 1, Chars: 96, Registry: "iso8859-9",
		codec: codec{charmap.ISO8859_9, formRightHalf}},
	{ID: 0x90, Name: "japanese-jisx0208-1978", Dimension: 2, Chars: 94, Registry: "jisx0208.1978-0"},
	{ID: 0x91, Name: "chinese-gb2312", Dimension: 2, Chars: 94, Registry: "gb2312.1980-0",
		codec: codec{simplifiedchinese.GBK, formEUC}},
	{ID: 0x92, Name: "japanese-jisx0208", Dimension: 2, Chars: 94, Registry: "jisx0208.1983-0",
		codec: codec{japanese.EUCJP, formEUC}},
	{ID: 0x93, Name: "korean-ksc5601", Dimension: 2, Chars: 94, Registry: "ksc5601.1987-0",
		codec: codec{korean.EUCKR, formEUC}},
	{ID: 0x94, Name: "japanese-jisx0212", Dimension: 2, Chars: 94, Registry: "jisx0212.1990-0",
		codec: codec{japanese.EUCJP, formEUC3}},
	{ID: 0x95, Name: "chinese-cns11643-1", Dimension: 2, Chars: 94, Registry: "cns11643.1992-1"},
	{ID: 0x96, Name: "chinese-cns11643-2", Dimension: 2, Chars: 94, Registry: "cns11643.1992-2"},
	{ID: 0x98, Name: "chinese-big5-1", Dimension: 2, Chars: 94, Registry: "big5.eten-0",
		codec: codec{traditionalchinese.Big5, formBig5}},
	{ID: 0x99, Name: "chinese-big5-2", Dimension: 2, Chars: 94, Registry: "big5.eten-0",
		codec: codec{traditionalchinese.Big5, formBig5}},
}

var (
	byID      [256]*Charset
	nameIndex *trie.Trie
	indexing  sync.Once
)

func index() {
	indexing.Do(func() {
		nameIndex = trie.New()
		for _, cs := range repertoire {
			byID[cs.ID] = cs
			nameIndex.Add(cs.Name, cs)
		}
		tracer().Debugf("indexed %d charsets", len(repertoire))
	})
}

// ByID returns the charset with a given id, or nil.
func ByID(id ID) *Charset {
	if id < 0 || id > 0xFF {
		return nil
	}
	index()
	return byID[id]
}

// ByName returns the charset with a given symbolic name, or nil. Names are
// compared case-insensitively.
func ByName(name string) *Charset {
	index()
	node, ok := nameIndex.Find(strings.ToLower(name))
	if !ok {
		return nil
	}
	return node.Meta().(*Charset)
}

// Of returns the charset a character belongs to, or nil if c is not a
// character of an assigned charset. Single-byte characters belong to ASCII.
func Of(c Char) *Charset {
	if IsSingleByte(c) {
		return ByID(ASCII)
	}
	id, _, _ := Split(c)
	return ByID(id)
}

// Complete returns the names of all charsets starting with prefix, in
// lexical order.
func Complete(prefix string) []string {
	index()
	names := nameIndex.PrefixSearch(strings.ToLower(prefix))
	sort.Strings(names)
	return names
}

// All returns the multi-byte charsets in order of their ids.
func All() []*Charset {
	index()
	var all []*Charset
	for _, cs := range byID {
		if cs != nil && cs.Dimension > 0 {
			all = append(all, cs)
		}
	}
	return all
}
