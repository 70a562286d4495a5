/*
Package fontregistry manages a registry for loaded fonts, type cases and
font info records.

Fonts are stored under a normalized name (see font.NormalizeFontname), type
cases under the normalized name plus a size, and font info records under
the name a font has been opened with. Registries are safe for concurrent
use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fontregistry

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'fontsets.fonts'
func tracer() tracing.Trace {
	return tracing.Select("fontsets.fonts")
}
