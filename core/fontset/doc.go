/*
Package fontset implements a registry of fontsets.

A fontset tells which font to use for a character. Characters are code
points of the internal multi-byte space of package charset: single-byte
characters (0…255) are handled uniformly by one slot per fontset, whereas
multi-byte characters decompose into (charset, byte1, byte2) and are looked
up in a three-level sparse store. Every level of the store carries a
default, which is what generic characters (characters with unspecified
byte positions) address.

There are two kinds of fontsets:

* Base fontsets are configured by name, with font name patterns or
(family, registry) pairs for charsets, character ranges or single
characters. One distinguished base fontset, the default fontset, holds
fallbacks for every charset; other base fontsets are created as a copy
of it.

* Realized fontsets are anonymous. They are created for a rendering face on
a display and cache face ids for characters. A realized fontset refers to
its base fontset by id and records a face id at the same structural
position where the base fontset holds the font specification, so one cached
face serves all characters sharing a base entry.

Changing a base fontset clears all realized fontsets derived from it.

Fontset ids are small integers. Released ids are recycled, with low ids
preferred. A Registry is not safe for concurrent use; clients serialize
access, usually by confining the registry to a display loop.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fontset

import (
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// tracer writes to trace with key 'fontsets.core'
func tracer() tracing.Trace {
	return tracing.Select("fontsets.core")
}

// downcase folds fontset and font names. Callers may not share a Caser
// between goroutines, so we create one per call.
func downcase(s string) string {
	return cases.Lower(language.Und).String(s)
}
