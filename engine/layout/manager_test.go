package layout

import (
	"testing"

	"github.com/crosswovenscript/glint/core"
	"github.com/crosswovenscript/glint/core/dimen"
	"github.com/crosswovenscript/glint/core/font"
	"github.com/crosswovenscript/glint/engine/shaper"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func newTestManager(t *testing.T) (*Manager, int) {
	m, err := NewManager(32, 256, 2, nil, nil)
	require.NoError(t, err)
	idx, err := m.AddFont("Go Regular", goregular.TTF)
	require.NoError(t, err)
	return m, idx
}

// Scenario 1 (spec §8): "hello", single LTR font, unconstrained width ->
// one line, five clusters 0..4, rtl=false, list_atlases=[0].
func TestManagerGetGlyphsScenario1(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glint.layout")
	defer teardown()
	//
	m, idx := newTestManager(t)
	hint, err := m.CreateHint("Go Regular", shaper.FontSearchFallback, shaper.DirectionLTR, shaper.ScriptSingle)
	require.NoError(t, err)
	require.Equal(t, []int{idx}, hint.PrioFonts)

	lines, err := m.GetGlyphs(ConvertUTF8ToUTF16("hello"), hint)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	line := lines[0]
	assert.False(t, line.RTL)
	require.Len(t, line.ListGlyphs, 5)
	for i, g := range line.ListGlyphs {
		assert.Equal(t, i, g.Cluster)
	}
	assert.Equal(t, []int{0}, line.ListAtlases)
	assert.Greater(t, line.Spacing, dimen.Zero)
}

func TestManagerCreateHintFailsWithNoFonts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glint.layout")
	defer teardown()
	//
	m, err := NewManager(32, 256, 2, nil, nil)
	require.NoError(t, err)
	_, err = m.CreateHint("anything", shaper.FontSearchFallback, shaper.DirectionLTR, shaper.ScriptSingle)
	require.Error(t, err)
	assert.Equal(t, core.ENOFONTSAVAILABLE, core.Code(err))
}

func TestManagerGetGlyphsFailsOnInvalidHint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glint.layout")
	defer teardown()
	//
	m, _ := newTestManager(t)
	_, err := m.GetGlyphs(ConvertUTF8ToUTF16("hello"), &shaper.Hint{})
	require.Error(t, err)
	assert.Equal(t, core.EHINTINVALID, core.Code(err))
}

func TestManagerGetGlyphsShortCircuitsOnEmptyText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glint.layout")
	defer teardown()
	//
	m, idx := newTestManager(t)
	hint, err := m.CreateHint("", shaper.FontSearchFallback, shaper.DirectionLTR, shaper.ScriptSingle)
	require.NoError(t, err)
	require.Contains(t, hint.FallbackFonts, idx)

	lines, err := m.GetGlyphs(nil, hint)
	require.NoError(t, err)
	assert.Nil(t, lines)
}

func TestManagerCreateHintSeparatesPrioAndFallback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glint.layout")
	defer teardown()
	//
	m, idx := newTestManager(t)
	hint, err := m.CreateHint("go regular", shaper.FontSearchFallback, shaper.DirectionLTR, shaper.ScriptSingle)
	require.NoError(t, err)
	assert.Equal(t, []int{idx}, hint.PrioFonts)
	assert.Empty(t, hint.FallbackFonts)
}

func TestManagerNewAtlasAndNewGlyphCallbacksFireSynchronously(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glint.layout")
	defer teardown()
	//
	var newAtlasCalls, newGlyphCalls int
	m, err := NewManager(32, 256, 2, func(page, sizePx int) {
		newAtlasCalls++
	}, func(page, x, y, w, h int, pix []byte) {
		newGlyphCalls++
	})
	require.NoError(t, err)
	assert.Equal(t, 1, newAtlasCalls, "NewAtlas bootstraps page 0 before NewManager returns")

	idx, err := m.AddFont("Go Regular", goregular.TTF)
	require.NoError(t, err)
	hint, err := m.CreateHint("Go Regular", shaper.FontSearchFallback, shaper.DirectionLTR, shaper.ScriptSingle)
	require.NoError(t, err)
	require.Equal(t, []int{idx}, hint.PrioFonts)

	_, err = m.GetGlyphs(ConvertUTF8ToUTF16("A"), hint)
	require.NoError(t, err)
	assert.Greater(t, newGlyphCalls, 0, "rasterizing a previously-unseen glyph must fire new_glyph synchronously")
}

func TestManagerCloseReleasesRasterizerContext(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glint.layout")
	defer teardown()
	//
	before := font.RasterizerContextRefs()
	m, _ := newTestManager(t)
	assert.Greater(t, font.RasterizerContextRefs(), before)
	require.NoError(t, m.Close())
	assert.Equal(t, before, font.RasterizerContextRefs())
}
