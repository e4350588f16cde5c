package shaper

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveToFrontRotatesInPlace(t *testing.T) {
	fallback := []int{5, 2, 7, 9}
	moveToFront(fallback, 2)
	assert.Equal(t, []int{7, 5, 2, 9}, fallback)

	moveToFront(fallback, 0)
	assert.Equal(t, []int{7, 5, 2, 9}, fallback, "index 0 is already at the front, a no-op")
}

func TestResolveFontRunsCoalescesConsecutiveSameFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glint.shaper")
	defer teardown()
	//
	reg, idx := newTestRegistry(t)
	hint := &Hint{PrioFonts: []int{idx}}
	runes := []rune("abc")
	unitLen := []int{1, 1, 1}

	runs := resolveFontRuns(runes, unitLen, reg, hint)
	require.Len(t, runs, 1)
	assert.Equal(t, idx, runs[0].font)
	assert.Equal(t, 0, runs[0].start)
	assert.Equal(t, 3, runs[0].end)
}

func TestResolveFontRunsExplicitModeFallsBackToInvalidWhenUncovered(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glint.shaper")
	defer teardown()
	//
	reg, idx := newTestRegistry(t)
	hint := &Hint{PrioFonts: []int{idx}, FontSearch: FontSearchExplicit}

	// U+1F600 is not covered by Go Regular; Explicit mode must not consult
	// any fallback list, mapping straight to the invalid sentinel (index 0).
	runs := resolveFontRuns([]rune{'a', '\U0001F600'}, []int{1, 1}, reg, hint)
	require.Len(t, runs, 2)
	assert.Equal(t, idx, runs[0].font)
	assert.Equal(t, 0, runs[1].font)
}

func TestResolveFontRunsFallbackModeUsesFirstAvailableWhenNoneCover(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glint.shaper")
	defer teardown()
	//
	reg, idx := newTestRegistry(t)
	// No entry covers U+1F600: PrioFonts and FallbackFonts both miss, so
	// the fallback-mode last resort returns PrioFonts[0] rather than the
	// invalid sentinel (spec §4.4.1: fallback mode always produces a
	// drawable, even if wrong, glyph before giving up).
	hint := &Hint{PrioFonts: []int{idx}, FontSearch: FontSearchFallback}

	runs := resolveFontRuns([]rune{'\U0001F600'}, []int{1}, reg, hint)
	require.Len(t, runs, 1)
	assert.Equal(t, idx, runs[0].font)
}
