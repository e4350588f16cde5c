package atlas

// Fractions of glyph_res_px defining the synthesized missing-glyph frame
// (spec §4.3.1). Carried over verbatim from the original engine's hardcoded
// constants rather than re-derived.
const (
	missingGlyphOuterFrac = 0.9
	missingGlyphInnerFrac = 0.6
)

// drawMissingGlyphFrame rasterizes the universal fallback glyph: a square
// frame centered in a glyphResPx×glyphResPx canvas, outer edge at
// missingGlyphOuterFrac·glyphResPx and inner edge at
// missingGlyphInnerFrac·glyphResPx, full coverage (255) between the two.
func drawMissingGlyphFrame(glyphResPx int) *rasterizedGlyph {
	w, h := glyphResPx, glyphResPx
	outer := float64(glyphResPx) * missingGlyphOuterFrac
	inner := float64(glyphResPx) * missingGlyphInnerFrac
	oLo, oHi := (float64(w)-outer)/2, (float64(w)+outer)/2
	iLo, iHi := (float64(w)-inner)/2, (float64(w)+inner)/2

	pix := make([]byte, w*h)
	for y := 0; y < h; y++ {
		fy := float64(y) + 0.5
		if fy < oLo || fy > oHi {
			continue
		}
		inOuterBand := fy < iLo || fy > iHi
		for x := 0; x < w; x++ {
			fx := float64(x) + 0.5
			if fx < oLo || fx > oHi {
				continue
			}
			if inOuterBand || fx < iLo || fx > iHi {
				pix[y*w+x] = 255
			}
		}
	}
	return &rasterizedGlyph{
		pix: pix,
		w:   w,
		h:   h,
		// bearing places the frame's origin on the baseline, ascent-aligned
		// the same way a real glyph's bearingY sits at its top.
		bearingX: 0,
		bearingY: int32(h),
	}
}
