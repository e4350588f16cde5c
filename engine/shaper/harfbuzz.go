package shaper

import (
	"encoding/binary"
	"unicode"

	hb "github.com/benoitkugler/textlayout/harfbuzz"
	hblang "github.com/benoitkugler/textlayout/language"
	"github.com/crosswovenscript/glint/core/dimen"
	"github.com/crosswovenscript/glint/core/font"
)

// scriptToHB converts an ISO 15924 four-letter tag ("Latn") to HarfBuzz's
// internal Script representation, mirroring the teacher's Script4HB
// (engine/glyphing/harfbuzz/harfbuzz.go): HarfBuzz scripts are big-endian
// uint32s of the tag with the first byte lower-cased.
func scriptToHB(tag string) hblang.Script {
	b := []byte(tag)
	if len(b) != 4 {
		b = []byte("Zzzz")
	}
	b[0] = byte(unicode.ToLower(rune(b[0])))
	return hblang.Script(binary.BigEndian.Uint32(b))
}

func directionToHB(rtl bool) hb.Direction {
	if rtl {
		return hb.RightToLeft
	}
	return hb.LeftToRight
}

// shapedGlyph is one glyph as returned by shapeRun, in 26.6 fixed point —
// the shaping-engine capability contract of spec §6 ("shape(font,
// utf16[start:end], script, direction) -> (gid, cluster, xadv, yadv,
// xoff, yoff)").
type shapedGlyph struct {
	glyphIndex uint32
	cluster    int // rune index within the shaped substring
	xAdvance, yAdvance fixed26_6
	xOffset, yOffset   fixed26_6
}

type fixed26_6 = int32

// shapeRun invokes the HarfBuzz-compatible shaping engine over runes
// (already clipped to one script/direction/font run) and returns shaped
// glyphs with cluster indices relative to runes[0].
func shapeRun(f *font.Font, runes []rune, scriptTag string, rtl bool) []shapedGlyph {
	if f.IsInvalid() || len(runes) == 0 {
		return nil
	}
	buf := hb.NewBuffer()
	buf.Props = hb.SegmentProperties{
		Direction: directionToHB(rtl),
		Script:    scriptToHB(scriptTag),
	}
	buf.AddRunes(runes, 0, len(runes))
	buf.Shape(f.Shaper(), nil)

	out := make([]shapedGlyph, len(buf.Info))
	for i, gi := range buf.Info {
		pos := buf.Pos[i]
		out[i] = shapedGlyph{
			glyphIndex: uint32(gi.Glyph),
			cluster:    int(gi.Cluster),
			xAdvance:   int32(pos.XAdvance),
			yAdvance:   int32(pos.YAdvance),
			xOffset:    int32(pos.XOffset),
			yOffset:    int32(pos.YOffset),
		}
	}
	return out
}

// px converts a 26.6 fixed-point value to integer pixels (spec §4.4.3
// step 3: "divide by 64").
func px(v fixed26_6) dimen.Dimen {
	return dimen.Dimen(v >> 6)
}
