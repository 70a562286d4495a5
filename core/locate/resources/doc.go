/*
Package resources locates and opens fonts for fontsets.

A Loader opens fonts by name, where a name is either an X logical font
description (XLFD) or a plain font name like "Go Mono Bold". Fonts are
searched for in this order:

   - fonts already opened and stored in the font registry
   - fonts compiled into the binary (the Go fonts)
   - fonts known to fontconfig, if configured
   - font files in the system's font directories
   - the Google webfont service, if an API key is configured

As resource loading may be a time-consuming task, type cases are resolved in
an async/await fashion: functions named

   Resolve…(…)

will return a resource-specific promise type, which the client will call later
to receive the loaded resource. The call to the promise-function will then block
until loading has completed.

Configuration keys are

   fontconfig      absolute path of the fontconfig 'fc-list' binary
   app-key         name of the application's config and cache sub-directories
   google-api-key  API key for the Google webfont service
   font-size       size in points for fonts without size information
   font-substitutes  family=family;… of families to replace when searching

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package resources

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'fontsets.resources'.
func tracer() tracing.Trace {
	return tracing.Select("fontsets.resources")
}
