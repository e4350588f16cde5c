package atlas

import (
	"testing"

	"github.com/crosswovenscript/glint/core/font"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestNewAtlasSynthesizesUniversalMissingGlyph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glint.atlas")
	defer teardown()
	//
	var pages []int
	a := NewAtlas(256, 32, 4, func(page, size int) { pages = append(pages, page) }, nil)
	require.Len(t, pages, 1)
	assert.Equal(t, 0, pages[0])

	d := a.universalMissingGlyph()
	assert.Equal(t, 0, d.Page)
	assert.Greater(t, int(d.Width), 0)
	assert.Greater(t, int(d.Height), 0)
}

func TestAtlasGetGlyphCachesOnSecondRequest(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glint.atlas")
	defer teardown()
	//
	reg := font.NewRegistry(32)
	idx, err := reg.AddFont("Go Regular", goregular.TTF)
	require.NoError(t, err)
	f := reg.Lookup(idx)

	var newGlyphCalls int
	a := NewAtlas(512, 32, 4, nil, func(page, x, y, w, h int, pix []byte) { newGlyphCalls++ })
	require.NoError(t, a.AddFont(idx, f))

	gid := f.GlyphIndex('A')
	require.NotZero(t, gid)

	d1, err := a.GetGlyph(idx, gid, f, false)
	require.NoError(t, err)
	calls := newGlyphCalls

	d2, err := a.GetGlyph(idx, gid, f, false)
	require.NoError(t, err)
	assert.Equal(t, d1, d2)
	assert.Equal(t, calls, newGlyphCalls, "cache hit must not re-rasterize or re-notify")
}

func TestAtlasGetGlyphZeroWidthShortCircuits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glint.atlas")
	defer teardown()
	//
	reg := font.NewRegistry(32)
	idx, err := reg.AddFont("Go Regular", goregular.TTF)
	require.NoError(t, err)
	f := reg.Lookup(idx)

	a := NewAtlas(512, 32, 4, nil, nil)
	require.NoError(t, a.AddFont(idx, f))

	d, err := a.GetGlyph(idx, 9, f, true) // tab, zero-width per shaper convention
	require.NoError(t, err)
	assert.Equal(t, 0, d.Page)
	assert.Equal(t, 0, int(d.Width))
}

func TestAtlasAddFontClonesUniversalMissingGlyphWhenGlyphZeroBlank(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glint.atlas")
	defer teardown()
	//
	reg := font.NewRegistry(32)
	idx, err := reg.AddFont("Go Regular", goregular.TTF)
	require.NoError(t, err)
	f := reg.Lookup(idx)

	a := NewAtlas(512, 32, 4, nil, nil)
	require.NoError(t, a.AddFont(idx, f))

	cache := a.caches[idx]
	require.Len(t, cache.entries, 1)
	assert.Equal(t, idx, cache.entries[0].Font)
}
