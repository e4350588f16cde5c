package shaper

import (
	"github.com/crosswovenscript/glint/core/dimen"
	"github.com/crosswovenscript/glint/core/font"
	"github.com/crosswovenscript/glint/core/utext"
)

// shapeTextRun shapes one TextRun against registry and appends the
// resulting glyphs/offsets to line (spec §4.4.3). clipStart/clipEnd
// further restrict the run to a line's [start,end) range in UTF-16
// code-unit offsets; both must fall on code-point boundaries, which
// itemize's run boundaries guarantee.
func shapeTextRun(run TextRun, clipStart, clipEnd int, utf16Text []uint16, registry *font.Registry, line *ShapedLine) {
	start, end := run.Start, run.End
	if start < clipStart {
		start = clipStart
	}
	if end > clipEnd {
		end = clipEnd
	}
	if start >= end {
		return
	}

	sub := utf16Text[start:end]
	runes := []rune(utext.FromUTF16(sub))
	unitOffset := make([]int, len(runes)+1)
	for i, r := range runes {
		n := 1
		if r > 0xFFFF {
			n = 2
		}
		unitOffset[i+1] = unitOffset[i] + n
	}

	f := registry.Lookup(run.Font)
	shaped := shapeRun(f, runes, run.Script, run.RTL)
	for _, g := range shaped {
		clusterRune := g.cluster
		if clusterRune < 0 {
			clusterRune = 0
		}
		if clusterRune > len(runes) {
			clusterRune = len(runes)
		}
		absCluster := start + unitOffset[clusterRune]

		gid := g.glyphIndex
		advX := px(g.xAdvance)
		if gid == 0 && !f.IsInvalid() {
			// shaping engine resolved no glyph for a code point the
			// coverage search thought was covered — substitute the
			// missing glyph with a fixed advance (spec §7, "Recoverable
			// internally").
			advX = fontResPXAdvance(registry, run.Font)
		}

		zeroWidth := isBreakControlCluster(utf16Text, absCluster)
		offX := px(g.xOffset)
		if zeroWidth {
			advX = 0
			offX = 0
		}

		line.Glyphs = append(line.Glyphs, GlyphInfo{
			Font:       run.Font,
			GlyphIndex: gid,
			Cluster:    absCluster,
			RTL:        run.RTL,
			ZeroWidth:  zeroWidth,
		})
		line.Offsets = append(line.Offsets, GlyphOffset{
			AdvanceX: advX,
			AdvanceY: px(g.yAdvance),
			OffsetX:  offX,
			OffsetY:  px(g.yOffset),
		})
	}
}

// isBreakControlCluster reports whether the UTF-16 code unit at index i is
// one of HT, LF, VT, FF, CR (U+0009..U+000D) — spec §4.4.3 step 4.
func isBreakControlCluster(utf16Text []uint16, i int) bool {
	if i < 0 || i >= len(utf16Text) {
		return false
	}
	u := utf16Text[i]
	return u >= 0x0009 && u <= 0x000D
}

func fontResPXAdvance(registry *font.Registry, fontIndex int) dimen.Dimen {
	return dimen.Dimen(registry.Lookup(fontIndex).GlyphResPX())
}
