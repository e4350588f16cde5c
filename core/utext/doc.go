/*
Package utext provides the UTF conversion helpers the layout engine
delegates to the Unicode library capability (spec §6): UTF-8, UTF-16 and
UTF-32 round-trip freely through these functions, and the rest of the
engine works natively in UTF-16 code units, matching the shaping engine's
and the BiDi/line-break algorithms' native indexing.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package utext

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'glint.utext'
func tracer() tracing.Trace {
	return tracing.Select("glint.utext")
}
