/*
Package face realizes faces for frames.

A face is what a frame needs to draw characters: a font, opened for a
charset. Every frame keeps a cache of realized faces. A frame realizes one
face for single-byte characters from a fontset; faces for multi-byte
characters are realized on demand, as the fontset's entries for the
characters' charsets demand. Realized faces are recorded in a realized
fontset, owned by the frame.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package face

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'fontsets.faces'
func tracer() tracing.Trace {
	return tracing.Select("fontsets.faces")
}
