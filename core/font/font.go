package font

import (
	"bytes"

	"github.com/benoitkugler/textlayout/fonts/truetype"
	"github.com/benoitkugler/textlayout/harfbuzz"
	"github.com/crosswovenscript/glint/core"
	"github.com/crosswovenscript/glint/core/dimen"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Font is a font registered with a Registry. It is immutable after
// registration (spec §3): name, file bytes, a rasterizer face and a
// shaping-engine handle, all bound to the registry-wide glyph resolution.
//
// Index 0 of every Registry is the reserved invalid-font sentinel: Name
// is empty, Bytes is nil, and both handles are nil. Coverage queries
// against it always report "not covered", which is exactly the behavior
// missing-glyph substitution needs.
type Font struct {
	Name  string
	Bytes []byte

	sfnt     *sfnt.Font // rasterizer face backing (golang.org/x/image/font/sfnt)
	face     font.Face  // sized face, for metrics and hinting-aware bounds
	shaper   *harfbuzz.Font // shaping-engine handle (Harfbuzz-equivalent)
	glyphRes int            // glyph_res_px this font was sized at
}

// IsInvalid reports whether f is the registry's reserved sentinel font.
func (f *Font) IsInvalid() bool {
	return f == nil || f.Bytes == nil
}

// invalidFont constructs the reserved sentinel for registry index 0.
func invalidFont() *Font {
	return &Font{Name: ""}
}

// loadFont parses fbytes as an OpenType/TrueType font, forces a Unicode
// charmap, sizes it to glyphResPx square at 72dpi, and creates the
// shaping-engine handle bound to the resulting face (spec §4.2).
func loadFont(name string, fbytes []byte, glyphResPx int) (*Font, error) {
	if len(fbytes) == 0 {
		return nil, core.WrapError(nil, core.EFONTFILEINVALID, "font %q has no data", name)
	}
	sf, err := sfnt.Parse(fbytes)
	if err != nil {
		return nil, core.WrapError(err, core.EFONTLOADFAILED, "font %q: %v", name, err)
	}
	// Force a Unicode (Microsoft BMP preferred) charmap: sfnt.Font already
	// picks its best cmap subtable internally, preferring a Windows/Unicode
	// BMP table when present; GlyphIndex only errors when no usable cmap
	// subtable exists at all, which is exactly the failure we must surface.
	var buf sfnt.Buffer
	if _, err := sf.GlyphIndex(&buf, 'A'); err != nil {
		return nil, core.WrapError(err, core.ECHARMAPMISSING, "font %q has no Unicode charmap", name)
	}
	otFace, err := opentype.NewFace(sf, &opentype.FaceOptions{
		Size: float64(glyphResPx),
		DPI:  72,
	})
	if err != nil {
		return nil, core.WrapError(err, core.EFONTLOADFAILED, "font %q: sizing face: %v", name, err)
	}
	ttFont, err := truetype.Parse(bytes.NewReader(fbytes), true)
	if err != nil {
		return nil, core.WrapError(err, core.EFONTLOADFAILED, "font %q: shaper load: %v", name, err)
	}
	shaper := harfbuzz.NewFont(ttFont)
	shaper.Ptem = float32(glyphResPx)
	return &Font{
		Name:     name,
		Bytes:    fbytes,
		sfnt:     sf,
		face:     otFace,
		shaper:   shaper,
		glyphRes: glyphResPx,
	}, nil
}

// SFNT returns the rasterizer-side font container.
func (f *Font) SFNT() *sfnt.Font { return f.sfnt }

// Face returns the sized rasterizer face.
func (f *Font) Face() font.Face { return f.face }

// Shaper returns the shaping-engine handle bound to this font.
func (f *Font) Shaper() *harfbuzz.Font { return f.shaper }

// GlyphResPX returns the glyph pixel resolution this font was sized at.
func (f *Font) GlyphResPX() int { return f.glyphRes }

// GlyphIndex returns the rasterizer's glyph index for a code point, or 0
// if the font does not cover it (spec §3, "Glyph index").
func (f *Font) GlyphIndex(r rune) uint32 {
	if f.IsInvalid() {
		return 0
	}
	var buf sfnt.Buffer
	gid, err := f.sfnt.GlyphIndex(&buf, r)
	if err != nil {
		return 0
	}
	return uint32(gid)
}

// Covers reports whether the font has a non-zero glyph for r.
func (f *Font) Covers(r rune) bool {
	return f.GlyphIndex(r) != 0
}

// LineHeightPX returns the face's designer-specified line height in whole
// pixels (`ft_face.size.metrics.height / 64` in the original), used by the
// Layout Manager to compute a line's spacing (spec §4.5 step 4).
func (f *Font) LineHeightPX() dimen.Dimen {
	if f.IsInvalid() {
		return 0
	}
	return dimen.FromFixed(f.face.Metrics().Height)
}
