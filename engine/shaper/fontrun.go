package shaper

import "github.com/crosswovenscript/glint/core/font"

// fontRun is one (start, end, font-index) triple over UTF-16 code-unit
// offsets (spec §4.4.1, "Font runs").
type fontRun struct {
	start, end int
	font       int
}

// resolveFontRuns assigns a registered font index to every code point of
// text and coalesces consecutive equal assignments. Font runs are always
// produced in logical (source) order — visual reordering happens later,
// when font runs are intersected with direction runs (spec §4.4.2).
//
// The fallback list's move-to-front reordering is scoped to this single
// call: fallbackFonts is a private copy, mutated in place, and discarded
// when resolveFontRuns returns, so the heuristic never leaks state across
// calls (spec §4.4.1, Design Note).
func resolveFontRuns(runes []rune, runeUnitLen []int, registry *font.Registry, hint *Hint) []fontRun {
	fallback := append([]int(nil), hint.FallbackFonts...)

	var runs []fontRun
	unit := 0
	for i, r := range runes {
		idx := selectFont(r, registry, hint, fallback)
		if len(runs) > 0 && runs[len(runs)-1].font == idx {
			runs[len(runs)-1].end = unit + runeUnitLen[i]
		} else {
			runs = append(runs, fontRun{start: unit, end: unit + runeUnitLen[i], font: idx})
		}
		unit += runeUnitLen[i]
	}
	return runs
}

// selectFont implements the per-code-point coverage search (spec
// §4.4.1, "Font runs"). When FontSearchFallback resolves a code point via
// the fallback list, selectFont moves that entry to the front of fallback
// in place, so the caller's later iterations see the reordered list.
func selectFont(r rune, registry *font.Registry, hint *Hint, fallback []int) int {
	if hint.FontSearch == FontSearchExplicit {
		if len(hint.PrioFonts) == 0 {
			return 0
		}
		if registry.Lookup(hint.PrioFonts[0]).Covers(r) {
			return hint.PrioFonts[0]
		}
		return 0
	}

	for _, idx := range hint.PrioFonts {
		if registry.Lookup(idx).Covers(r) {
			return idx
		}
	}
	for i, idx := range fallback {
		if registry.Lookup(idx).Covers(r) {
			moveToFront(fallback, i)
			return idx
		}
	}
	if len(hint.PrioFonts) > 0 {
		return hint.PrioFonts[0]
	}
	if len(fallback) > 0 {
		return fallback[0]
	}
	return 0
}

// moveToFront swaps fallback[i] to the front of the slice in place,
// shifting the intervening entries down by one — the original's
// std::rotate behavior without an allocation.
func moveToFront(fallback []int, i int) {
	if i == 0 {
		return
	}
	v := fallback[i]
	copy(fallback[1:i+1], fallback[0:i])
	fallback[0] = v
}
