package shaper

import (
	"github.com/crosswovenscript/glint/core/dimen"
	"github.com/crosswovenscript/glint/core/font"
)

const ellipsisText = "..."

// elide implements spec §4.4.5: shrink a single-line shaped sequence so it
// fits maxWidth, appending an ellipsis shaped in the font of the glyph at
// the truncation boundary. Returns an empty line if no prefix plus
// ellipsis fits at all.
func elide(line *ShapedLine, maxWidth dimen.Dimen, registry *font.Registry) *ShapedLine {
	var combined dimen.Dimen
	boundary := -1
	for i, off := range line.Offsets {
		combined += off.AdvanceX
		if combined >= maxWidth {
			boundary = i
			break
		}
	}
	if boundary == -1 {
		return line // the whole line already fits
	}

	boundaryFont := line.Glyphs[boundary].Font
	f := registry.Lookup(boundaryFont)
	ellipsisGlyphs := shapeRun(f, []rune(ellipsisText), scriptCommon, false)
	var e dimen.Dimen
	for _, g := range ellipsisGlyphs {
		e += px(g.xAdvance)
	}

	// prefix[k] is the total advance of glyphs[0..k] inclusive (prefix[-1]
	// implicitly 0); find the largest k ≤ boundary for which the budget
	// left after keeping glyphs[0..k] still fits the ellipsis.
	keep := -1
	var prefix dimen.Dimen
	for i := 0; i <= boundary; i++ {
		if maxWidth-prefix >= e {
			keep = i - 1
		}
		prefix += line.Offsets[i].AdvanceX
	}
	if maxWidth-prefix >= e {
		keep = boundary
	}
	if keep < 0 {
		return &ShapedLine{Start: line.Start, End: line.Start, RTL: line.RTL}
	}

	out := &ShapedLine{Start: line.Start, RTL: line.RTL}
	out.Glyphs = append(out.Glyphs, line.Glyphs[:keep+1]...)
	out.Offsets = append(out.Offsets, line.Offsets[:keep+1]...)
	out.End = line.Glyphs[keep].Cluster + 1

	for _, g := range ellipsisGlyphs {
		out.Glyphs = append(out.Glyphs, GlyphInfo{
			Font:       boundaryFont,
			GlyphIndex: g.glyphIndex,
			Cluster:    out.End,
		})
		out.Offsets = append(out.Offsets, GlyphOffset{
			AdvanceX: px(g.xAdvance),
			AdvanceY: px(g.yAdvance),
			OffsetX:  px(g.xOffset),
			OffsetY:  px(g.yOffset),
		})
	}
	return out
}
