/*
Package shaper implements the itemization, shaping, line-breaking and
elision pipeline (spec §4.4): it splits a paragraph into direction, script
and font runs, merges them into maximal text runs in visual order, shapes
each run with the Harfbuzz-compatible shaping engine, and then either
line-breaks the result against a maximum width or elides it with an
ellipsis.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package shaper

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'glint.shaper'
func tracer() tracing.Trace {
	return tracing.Select("glint.shaper")
}
