package atlas

import (
	"testing"

	"github.com/crosswovenscript/glint/core/font"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestRasterizeGlyphProducesNonEmptyMask(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glint.atlas")
	defer teardown()
	//
	reg := font.NewRegistry(48)
	idx, err := reg.AddFont("Go Regular", goregular.TTF)
	require.NoError(t, err)
	f := reg.Lookup(idx)

	gid := f.GlyphIndex('A')
	require.NotZero(t, gid)

	rg, err := rasterizeGlyph(f, gid)
	require.NoError(t, err)
	assert.Greater(t, rg.w, 0)
	assert.Greater(t, rg.h, 0)
	assert.Len(t, rg.pix, rg.w*rg.h)

	var sum int
	for _, b := range rg.pix {
		sum += int(b)
	}
	assert.Greater(t, sum, 0, "the letter A must leave some ink")
}

func TestRasterizeGlyphSpaceHasNoOutline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glint.atlas")
	defer teardown()
	//
	reg := font.NewRegistry(48)
	idx, err := reg.AddFont("Go Regular", goregular.TTF)
	require.NoError(t, err)
	f := reg.Lookup(idx)

	gid := f.GlyphIndex(' ')
	rg, err := rasterizeGlyph(f, gid)
	require.NoError(t, err)
	assert.Equal(t, 0, rg.w)
	assert.Equal(t, 0, rg.h)
}
