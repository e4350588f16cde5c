/*
Package atlas implements the Glyph Atlas (spec §4.3): it lazily rasterizes
glyphs at a fixed pixel resolution, applies a signed-distance-field
transform, packs the results into shelf-packed texture pages (§4.1), and
maintains a sorted per-font cache for fast lookup.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package atlas

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'glint.atlas'
func tracer() tracing.Trace {
	return tracing.Select("glint.atlas")
}
