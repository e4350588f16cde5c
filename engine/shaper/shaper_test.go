package shaper

import (
	"testing"

	"github.com/crosswovenscript/glint/core/dimen"
	"github.com/crosswovenscript/glint/core/font"
	"github.com/crosswovenscript/glint/core/utext"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func newTestRegistry(t *testing.T) (*font.Registry, int) {
	reg := font.NewRegistry(32)
	idx, err := reg.AddFont("Go Regular", goregular.TTF)
	require.NoError(t, err)
	return reg, idx
}

// Scenario 1 (spec §8): "hello", single LTR font, unconstrained width.
func TestGetGlyphsScenario1SingleLineLTR(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glint.shaper")
	defer teardown()
	//
	reg, idx := newTestRegistry(t)
	s := NewShaper(reg)
	hint := &Hint{PrioFonts: []int{idx}, MaxLineWidthPX: dimen.Infinity, GlyphResPX: 32}

	lines, err := s.GetGlyphs(utext.ToUTF16("hello"), hint)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	line := lines[0]
	assert.False(t, line.RTL)
	require.Len(t, line.Glyphs, 5)
	for i, g := range line.Glyphs {
		assert.Equal(t, i, g.Cluster)
	}
}

// Scenario 2 (spec §8): "line1\nline2" splits into two lines at the LF,
// which must shape as zero-width.
func TestGetGlyphsScenario2MandatoryBreakAtLF(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glint.shaper")
	defer teardown()
	//
	reg, idx := newTestRegistry(t)
	s := NewShaper(reg)
	hint := &Hint{PrioFonts: []int{idx}, MaxLineWidthPX: 10000, GlyphResPX: 32}

	lines, err := s.GetGlyphs(utext.ToUTF16("line1\nline2"), hint)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.LessOrEqual(t, lines[0].End, 6)
	assert.Equal(t, 6, lines[1].Start)

	var sawLF bool
	for i, g := range lines[0].Glyphs {
		if g.Cluster == 5 {
			sawLF = true
			assert.True(t, g.ZeroWidth)
			assert.Equal(t, dimen.Dimen(0), lines[0].Offsets[i].AdvanceX)
		}
	}
	assert.True(t, sawLF, "the LF's cluster must appear in line 1")
}

// Scenario 3 (spec §8): wraps at a space when the width is constrained to
// about half the natural width.
func TestGetGlyphsScenario3WrapsAtSpace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glint.shaper")
	defer teardown()
	//
	reg, idx := newTestRegistry(t)
	s := NewShaper(reg)
	text := "the quick brown fox jumps over the lazy dog"

	unconstrained := &Hint{PrioFonts: []int{idx}, MaxLineWidthPX: dimen.Infinity, GlyphResPX: 32}
	full, err := s.GetGlyphs(utext.ToUTF16(text), unconstrained)
	require.NoError(t, err)
	require.Len(t, full, 1)
	natural := full[0].TotalAdvance()

	constrained := &Hint{PrioFonts: []int{idx}, MaxLineWidthPX: natural / 2, GlyphResPX: 32}
	lines, err := s.GetGlyphs(utext.ToUTF16(text), constrained)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(lines), 2)
	for _, l := range lines {
		assert.LessOrEqual(t, l.TotalAdvance(), natural/2+dimen.Dimen(constrained.GlyphResPX), "a single over-wide glyph is allowed to exceed the limit, but not an entire extra word")
	}
}

// Scenario 5 (spec §8): a code point covered by no font substitutes the
// missing-glyph image with a fixed advance of glyph_res_px.
func TestGetGlyphsScenario5UncoveredCodePointSubstitutesMissingGlyph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glint.shaper")
	defer teardown()
	//
	reg, idx := newTestRegistry(t)
	s := NewShaper(reg)
	hint := &Hint{PrioFonts: []int{idx}, MaxLineWidthPX: dimen.Infinity, GlyphResPX: 32}

	// U+1F600 GRINNING FACE is not covered by Go Regular.
	lines, err := s.GetGlyphs(utext.ToUTF16("a\U0001F600b"), hint)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.NotEmpty(t, lines[0].Glyphs)

	found := false
	for i, g := range lines[0].Glyphs {
		if g.GlyphIndex == 0 {
			found = true
			assert.Equal(t, dimen.Dimen(32), lines[0].Offsets[i].AdvanceX)
		}
	}
	assert.True(t, found, "the uncovered emoji must surface as glyph index 0")
}

// Scenario 6 (spec §8): elision appends a shaped ellipsis when only the
// first few glyphs fit.
func TestGetGlyphsScenario6Elision(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glint.shaper")
	defer teardown()
	//
	reg, idx := newTestRegistry(t)
	s := NewShaper(reg)
	hint := &Hint{PrioFonts: []int{idx}, MaxLineWidthPX: dimen.Infinity, GlyphResPX: 32}
	full, err := s.GetGlyphs(utext.ToUTF16("abcdefgh"), hint)
	require.NoError(t, err)
	require.Len(t, full, 1)

	var threeGlyphWidth dimen.Dimen
	for i := 0; i < 3; i++ {
		threeGlyphWidth += full[0].Offsets[i].AdvanceX
	}

	elideHint := &Hint{PrioFonts: []int{idx}, MaxLineWidthPX: threeGlyphWidth + 1, Elide: true, GlyphResPX: 32}
	lines, err := s.GetGlyphs(utext.ToUTF16("abcdefgh"), elideHint)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	n := len(lines[0].Glyphs)
	require.GreaterOrEqual(t, n, 3)
	for _, g := range lines[0].Glyphs[n-3:] {
		assert.Equal(t, idx, g.Font)
	}
}

func TestGetGlyphsEmptyTextShortCircuits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glint.shaper")
	defer teardown()
	//
	reg, idx := newTestRegistry(t)
	s := NewShaper(reg)
	lines, err := s.GetGlyphs(nil, &Hint{PrioFonts: []int{idx}, MaxLineWidthPX: dimen.Infinity})
	require.NoError(t, err)
	assert.Nil(t, lines)
}
