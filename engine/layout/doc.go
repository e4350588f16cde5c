/*
Package layout implements the Layout Manager (spec §4.5): the public
entry point that drives the Font Registry, the Glyph Atlas and the
Shaper together, turning a UTF-16 string and a Hint into a sequence of
positioned Lines ready for a renderer to draw.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'glint.layout'
func tracer() tracing.Trace {
	return tracing.Select("glint.layout")
}
