package shaper

import "github.com/crosswovenscript/glint/core/dimen"

// GlyphInfo is one shaped glyph's identity (spec §3, "GlyphInfo").
type GlyphInfo struct {
	Font       int
	GlyphIndex uint32
	Cluster    int // UTF-16 code-unit offset into the source text
	RTL        bool
	ZeroWidth  bool
}

// GlyphOffset is one shaped glyph's pixel-space motion (spec §3,
// "GlyphOffset"), already converted from the shaping engine's 26.6
// fixed-point representation.
type GlyphOffset struct {
	AdvanceX, AdvanceY dimen.Dimen
	OffsetX, OffsetY   dimen.Dimen
}

// ShapedLine is the Shaper's output for one visual line: parallel
// Glyphs/Offsets slices plus the UTF-16 code-unit range they came from.
type ShapedLine struct {
	Start, End int
	Glyphs     []GlyphInfo
	Offsets    []GlyphOffset
	RTL        bool
}

// TotalAdvance sums AdvanceX across every glyph — the horizontal pen
// position after laying out the whole line (spec §8, testable property).
func (l *ShapedLine) TotalAdvance() dimen.Dimen {
	var sum dimen.Dimen
	for _, o := range l.Offsets {
		sum += o.AdvanceX
	}
	return sum
}
