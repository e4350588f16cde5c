/*
Package font implements the Font Registry (spec §4.2): it owns font file
bytes, the rasterizer face used to rasterize glyphs, and the shaping-engine
handle used to turn runs of text into positioned glyphs.

Index 0 of a Registry is always the reserved invalid-font sentinel — it
carries no file and exists so that missing-glyph substitution has a
stable font index to point at (spec §3).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package font

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'glint.font'
func tracer() tracing.Trace {
	return tracing.Select("glint.font")
}
