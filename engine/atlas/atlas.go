package atlas

import (
	"sort"

	"github.com/crosswovenscript/glint/core"
	"github.com/crosswovenscript/glint/core/dimen"
	"github.com/crosswovenscript/glint/core/font"
)

// GlyphImageDesc describes a rasterized, SDF-transformed, atlas-packed
// glyph image (spec §3, "GlyphImageDesc").
type GlyphImageDesc struct {
	Font       int
	GlyphIndex uint32
	Page       int
	TexX, TexY dimen.Dimen
	SDFX, SDFY dimen.Dimen
	BearingX, BearingY dimen.Dimen
	Width, Height      dimen.Dimen
}

// page is one fixed-size texture page: a packer plus the raw 8-bit pixels
// written into it so far (append-only, per spec §3's page invariant).
type page struct {
	packer *shelfPacker
	pix    []byte // sizePx*sizePx, row-major
	sizePx int
}

func newPage(sizePx int) *page {
	return &page{
		packer: newShelfPacker(dimen.Dimen(sizePx), dimen.Dimen(sizePx)),
		pix:    make([]byte, sizePx*sizePx),
		sizePx: sizePx,
	}
}

func (p *page) blit(x, y, w, h int, src []byte) {
	for row := 0; row < h; row++ {
		dstOff := (y+row)*p.sizePx + x
		srcOff := row * w
		copy(p.pix[dstOff:dstOff+w], src[srcOff:srcOff+w])
	}
}

// fontCache is the per-font sorted glyph cache of spec §3: a strictly
// ordered, duplicate-free list keyed by glyph index, binary-searched.
type fontCache struct {
	entries []GlyphImageDesc // sorted by GlyphIndex
}

func (c *fontCache) find(gid uint32) (*GlyphImageDesc, bool) {
	i := sort.Search(len(c.entries), func(i int) bool { return c.entries[i].GlyphIndex >= gid })
	if i < len(c.entries) && c.entries[i].GlyphIndex == gid {
		return &c.entries[i], true
	}
	return nil, false
}

func (c *fontCache) insert(d GlyphImageDesc) {
	i := sort.Search(len(c.entries), func(i int) bool { return c.entries[i].GlyphIndex >= d.GlyphIndex })
	c.entries = append(c.entries, GlyphImageDesc{})
	copy(c.entries[i+1:], c.entries[i:])
	c.entries[i] = d
}

// NewAtlasFunc is fired synchronously when a page is created (spec §4.3.3).
type NewAtlasFunc func(page int, sizePx int)

// NewGlyphFunc is fired synchronously when an SDF glyph image is written
// into a page (spec §4.3.3). offsetX/offsetY and the pixel slice describe
// exactly the bytes written, so the renderer can upload a sub-rectangle.
type NewGlyphFunc func(page int, offsetX, offsetY, w, h int, pix []byte)

// Atlas is the Glyph Atlas of spec §4.3: it lazily rasterizes glyphs,
// SDF-transforms them, packs them into shelf-packed pages, and serves
// cached lookups by (font, glyph-index).
type Atlas struct {
	atlasSizePx int
	glyphResPx  int
	sdfOffsetPx int

	pages  []*page
	caches map[int]*fontCache // font index -> cache

	onNewAtlas NewAtlasFunc
	onNewGlyph NewGlyphFunc
}

// NewAtlas constructs an empty Atlas. The universal missing-glyph image is
// synthesized and packed into page 0 immediately, matching spec §4.3.1's
// "first font (the invalid sentinel)" bootstrap.
func NewAtlas(atlasSizePx, glyphResPx, sdfOffsetPx int, onNewAtlas NewAtlasFunc, onNewGlyph NewGlyphFunc) *Atlas {
	a := &Atlas{
		atlasSizePx: atlasSizePx,
		glyphResPx:  glyphResPx,
		sdfOffsetPx: sdfOffsetPx,
		caches:      make(map[int]*fontCache),
		onNewAtlas:  onNewAtlas,
		onNewGlyph:  onNewGlyph,
	}
	a.newPage()
	frame := drawMissingGlyphFrame(glyphResPx)
	desc := a.packAndStore(0, frame)
	a.caches[0] = &fontCache{entries: []GlyphImageDesc{desc}}
	return a
}

func (a *Atlas) newPage() int {
	idx := len(a.pages)
	a.pages = append(a.pages, newPage(a.atlasSizePx))
	if a.onNewAtlas != nil {
		a.onNewAtlas(idx, a.atlasSizePx)
	}
	return idx
}

// universalMissingGlyph returns the font-agnostic fallback image, always
// present at index 0's cache entry for glyph index 0.
func (a *Atlas) universalMissingGlyph() GlyphImageDesc {
	return a.caches[0].entries[0]
}

// AddFont registers fontIndex with the atlas: font index 0 already got its
// frame in NewAtlas. For any other font, its own glyph index 0 becomes the
// font-specific missing glyph if it renders non-blank; otherwise the
// universal missing glyph is cloned into this font's cache (spec §4.3.1).
func (a *Atlas) AddFont(fontIndex int, f *font.Font) error {
	if fontIndex == 0 {
		return nil
	}
	if _, ok := a.caches[fontIndex]; ok {
		return nil
	}
	cache := &fontCache{}
	rg, err := rasterizeGlyph(f, 0)
	if err == nil && rg.w > 0 && rg.h > 0 {
		desc := a.packAndStore(fontIndex, rg)
		cache.entries = append(cache.entries, desc)
	} else {
		clone := a.universalMissingGlyph()
		clone.Font = fontIndex
		cache.entries = append(cache.entries, clone)
	}
	a.caches[fontIndex] = cache
	return nil
}

// GetGlyph materializes the image for (fontIndex, gid), rasterizing and
// packing it on first request and serving the cache thereafter (spec
// §4.3.2). zeroWidth glyphs (tabs, control characters folded to
// zero-advance by the shaper) short-circuit to a metrics-only record at
// page 0.
func (a *Atlas) GetGlyph(fontIndex int, gid uint32, f *font.Font, zeroWidth bool) (GlyphImageDesc, error) {
	if zeroWidth {
		return GlyphImageDesc{Font: fontIndex, GlyphIndex: gid, Page: 0}, nil
	}
	cache, ok := a.caches[fontIndex]
	if !ok {
		cache = &fontCache{}
		a.caches[fontIndex] = cache
	}
	if d, found := cache.find(gid); found {
		return *d, nil
	}

	rg, err := rasterizeGlyph(f, gid)
	if err != nil {
		return GlyphImageDesc{}, core.WrapError(err, core.ERASTERIZERFAILURE, "rasterizing font %d glyph %d: %v", fontIndex, gid, err)
	}
	if rg.w == 0 || rg.h == 0 {
		desc := GlyphImageDesc{Font: fontIndex, GlyphIndex: gid, Page: 0}
		cache.insert(desc)
		return desc, nil
	}
	desc := a.packAndStore(fontIndex, rg)
	desc.GlyphIndex = gid
	cache.insert(desc)
	return desc, nil
}

// packAndStore runs steps 3-8 of spec §4.3.2 for an already-rasterized
// glyph: pad for the SDF border, pack into the current (or a new) page,
// blit the coverage bitmap, SDF-transform in place, and notify.
func (a *Atlas) packAndStore(fontIndex int, rg *rasterizedGlyph) GlyphImageDesc {
	o := a.sdfOffsetPx
	pw, ph := rg.w+2*o, rg.h+2*o

	pageIdx := len(a.pages) - 1
	x, y, ok := a.pages[pageIdx].packer.addRectangle(dimen.Dimen(pw), dimen.Dimen(ph))
	if !ok {
		pageIdx = a.newPage()
		x, y, ok = a.pages[pageIdx].packer.addRectangle(dimen.Dimen(pw), dimen.Dimen(ph))
		if !ok {
			// glyph (plus SDF border) exceeds the page itself: fatal per
			// spec §4.3.2 step 3, surfaced to the caller as a panic since
			// the atlas has no error return on this synchronous path.
			panic(core.WrapError(nil, core.EATLASTOOSMALL, "glyph %dx%d (padded %dx%d) exceeds atlas page %d", rg.w, rg.h, pw, ph, a.atlasSizePx))
		}
	}
	p := a.pages[pageIdx]

	padded := make([]byte, pw*ph)
	if len(rg.pix) > 0 {
		for row := 0; row < rg.h; row++ {
			srcOff := row * rg.w
			dstOff := (row+o)*pw + o
			copy(padded[dstOff:dstOff+rg.w], rg.pix[srcOff:srcOff+rg.w])
		}
	}
	makeDistanceMap(padded, pw, ph, float64(o))
	p.blit(int(x), int(y), pw, ph, padded)

	if a.onNewGlyph != nil {
		a.onNewGlyph(pageIdx, int(x), int(y), pw, ph, padded)
	}

	return GlyphImageDesc{
		Font:     fontIndex,
		Page:     pageIdx,
		TexX:     x,
		TexY:     y,
		SDFX:     dimen.Dimen(o),
		SDFY:     dimen.Dimen(o),
		BearingX: dimen.Dimen(rg.bearingX),
		BearingY: dimen.Dimen(rg.bearingY),
		Width:    dimen.Dimen(rg.w),
		Height:   dimen.Dimen(rg.h),
	}
}
