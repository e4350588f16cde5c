package atlas

import (
	"image"

	"github.com/crosswovenscript/glint/core/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// rasterizedGlyph is a rendered glyph before atlas packing: an 8-bit
// coverage mask plus the metrics the Layout Manager needs to place it
// relative to the pen (spec §4.2, "rasterize a glyph").
type rasterizedGlyph struct {
	pix               []byte // w*h, row-major, top-to-bottom
	w, h              int
	bearingX, bearingY int32 // pixels, glyph-origin to top-left of pix, y grows downward
	advance           fixed.Int26_6
}

// rasterizeGlyph loads gid's outline from f at f's registered glyph
// resolution and fills it into an 8-bit coverage mask using the same
// scanline rasterizer golang.org/x/image/font/sfnt's own renderer is
// built on. A glyph with no outline (space, combining marks with empty
// contours) yields a zero-size mask and a non-nil result — not an error,
// since "no ink" is a normal glyph outcome (spec §4.3.2 step 2).
func rasterizeGlyph(f *font.Font, gid uint32) (*rasterizedGlyph, error) {
	sf := f.SFNT()
	ppem := fixed.I(f.GlyphResPX())
	var buf sfnt.Buffer
	segs, err := sf.LoadGlyph(&buf, sfnt.GlyphIndex(gid), ppem, nil)
	if err != nil {
		return nil, err
	}
	adv, err := sf.GlyphAdvance(&buf, sfnt.GlyphIndex(gid), ppem, font_HintingNone)
	if err != nil {
		adv = 0
	}
	if len(segs) == 0 {
		return &rasterizedGlyph{advance: adv}, nil
	}

	minX, minY := fixed.I(1<<20), fixed.I(1<<20)
	maxX, maxY := -fixed.I(1<<20), -fixed.I(1<<20)
	for _, s := range segs {
		n := segArgCount(s.Op)
		for i := 0; i < n; i++ {
			p := s.Args[i]
			if p.X < minX {
				minX = p.X
			}
			if p.X > maxX {
				maxX = p.X
			}
			if p.Y < minY {
				minY = p.Y
			}
			if p.Y > maxY {
				maxY = p.Y
			}
		}
	}
	if minX >= maxX || minY >= maxY {
		return &rasterizedGlyph{advance: adv}, nil
	}

	// sfnt outlines use a y-up coordinate system; vector.Rasterizer, like
	// image.Image, is y-down. Flip and shift so the outline's bounding box
	// lands at [0,w]x[0,h] inside the rasterizer's canvas.
	w := int((maxX - minX + 63) >> 6)
	h := int((maxY - minY + 63) >> 6)
	if w <= 0 || h <= 0 {
		return &rasterizedGlyph{advance: adv}, nil
	}
	toCanvas := func(p fixed.Point26_6) (float32, float32) {
		x := float32(p.X-minX) / 64
		y := float32(maxY-p.Y) / 64
		return x, y
	}

	ras := vector.NewRasterizer(w, h)
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			x, y := toCanvas(s.Args[0])
			ras.MoveTo(x, y)
		case sfnt.SegmentOpLineTo:
			x, y := toCanvas(s.Args[0])
			ras.LineTo(x, y)
		case sfnt.SegmentOpQuadTo:
			cx, cy := toCanvas(s.Args[0])
			x, y := toCanvas(s.Args[1])
			ras.QuadTo(cx, cy, x, y)
		case sfnt.SegmentOpCubeTo:
			c0x, c0y := toCanvas(s.Args[0])
			c1x, c1y := toCanvas(s.Args[1])
			x, y := toCanvas(s.Args[2])
			ras.CubeTo(c0x, c0y, c1x, c1y, x, y)
		}
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	ras.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	return &rasterizedGlyph{
		pix:      mask.Pix,
		w:        w,
		h:        h,
		bearingX: int32(minX >> 6),
		bearingY: int32(maxY >> 6),
		advance:  adv,
	}, nil
}

func segArgCount(op sfnt.SegmentOp) int {
	switch op {
	case sfnt.SegmentOpMoveTo, sfnt.SegmentOpLineTo:
		return 1
	case sfnt.SegmentOpQuadTo:
		return 2
	case sfnt.SegmentOpCubeTo:
		return 3
	}
	return 0
}

// font_HintingNone mirrors golang.org/x/image/font.HintingNone without
// importing the font package solely for one constant; GlyphAdvance takes
// the same underlying int type regardless of which package names it.
const font_HintingNone = 0
