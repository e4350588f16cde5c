package shaper

import "github.com/crosswovenscript/glint/core/dimen"

// FontSearchMode selects how a Hint resolves font coverage for a code
// point (spec §4.4.1). Named after ks/text's KsTextDataTypes.hpp
// FontSearch_Fallback / FontSearch_Explicit rather than invented afresh,
// so the two strategies stay recognizable across the port.
type FontSearchMode int

const (
	// FontSearchFallback tries PrioFonts in order, then FallbackFonts with
	// a move-to-front heuristic, then gives up to the first available font.
	FontSearchFallback FontSearchMode = iota
	// FontSearchExplicit only ever considers PrioFonts[0]; uncovered code
	// points map straight to the invalid font.
	FontSearchExplicit
)

// DirectionMode is the paragraph-level direction hint (spec §3).
type DirectionMode int

const (
	DirectionLTR DirectionMode = iota
	DirectionRTL
	// DirectionMultiple enables BiDi itemization instead of assuming a
	// single paragraph-wide direction.
	DirectionMultiple
)

// ScriptMode is the paragraph-level script hint (spec §3).
type ScriptMode int

const (
	ScriptSingle ScriptMode = iota
	ScriptMultiple
)

// Hint is the caller-supplied configuration for one GetGlyphs call (spec
// §3, "Hint").
type Hint struct {
	PrioFonts     []int
	FallbackFonts []int
	FontSearch    FontSearchMode
	Direction     DirectionMode
	Script        ScriptMode

	MaxLineWidthPX dimen.Dimen // dimen.Infinity for unconstrained
	Elide          bool
	GlyphResPX     int
}

// HasFonts reports whether the hint names at least one font to try.
func (h *Hint) HasFonts() bool {
	return len(h.PrioFonts) > 0 || len(h.FallbackFonts) > 0
}
