package shaper

import (
	"sort"
	"unicode"
)

// scriptRun is one (start, end, script) triple over UTF-16 code-unit
// offsets (spec §4.4.1, "Script runs"). script is the Unicode long script
// name ("Latin", "Hebrew", ...), as published by the stdlib's own
// unicode.Scripts table — see scriptOf for why no third-party script
// iterator is used here.
type scriptRun struct {
	start, end int
	script     string
}

// scriptCommon and scriptInherited mirror UAX#24's pseudo-scripts: glyphs
// that do not pin a script of their own (punctuation, digits, combining
// marks) and instead take on their neighbor's.
const (
	scriptCommon    = "Common"
	scriptInherited = "Inherited"
)

// orderedScriptNames lists the unicode.Scripts keys in a fixed, stable
// order so scriptOf's linear probe is deterministic; Go map iteration
// order is not, and the table is small enough that a slice scan is cheap
// compared to the shaping work that follows it.
var orderedScriptNames = sortedScriptNames()

func sortedScriptNames() []string {
	names := make([]string, 0, len(unicode.Scripts))
	for name := range unicode.Scripts {
		names = append(names, name)
	}
	sort.Strings(names)
	// Common is moved to the front. scriptOf skips both pseudo-scripts
	// (Common and Inherited) during its probe and falls back to them only
	// after every concrete script has missed, so a code point with a real
	// script is never reported as Common or Inherited.
	for i, n := range names {
		if n == scriptCommon {
			names[0], names[i] = names[i], names[0]
			break
		}
	}
	return names
}

// scriptOf returns the Unicode script owning r, using the stdlib's own
// unicode.Scripts range tables rather than a hand-rolled range list: no
// third-party script-iteration library appears anywhere in the example
// corpus (the closest analog, gogpu-gg/text/script.go, hand-rolls its own
// ranges precisely to avoid a dependency the corpus itself never adds),
// and duplicating Unicode's script database by hand would be strictly
// worse than the table the standard library already ships.
func scriptOf(r rune) string {
	for _, name := range orderedScriptNames {
		if name == scriptCommon || name == scriptInherited {
			continue
		}
		if unicode.Is(unicode.Scripts[name], r) {
			return name
		}
	}
	if unicode.Is(unicode.Scripts[scriptInherited], r) {
		return scriptInherited
	}
	return scriptCommon
}

// resolveScriptRuns assigns a concrete script to every rune of text,
// folding Common and Inherited runs into their nearest concrete neighbor
// (UAX#24 §5.1's "script extensions" resolution, simplified to
// nearest-preceding-else-following), then coalesces into scriptRuns over
// UTF-16 code-unit offsets.
func resolveScriptRuns(utf16Text []uint16, runeScripts []string, runeUnitLen []int) []scriptRun {
	resolved := make([]string, len(runeScripts))
	copy(resolved, runeScripts)

	last := scriptCommon
	for i, s := range resolved {
		if s == scriptInherited || s == scriptCommon {
			resolved[i] = last
		} else {
			last = s
		}
	}
	next := scriptCommon
	for i := len(resolved) - 1; i >= 0; i-- {
		if resolved[i] != scriptCommon {
			next = resolved[i]
			continue
		}
		resolved[i] = next
	}

	var runs []scriptRun
	unit := 0
	for i, s := range resolved {
		if len(runs) > 0 && runs[len(runs)-1].script == s {
			runs[len(runs)-1].end = unit + runeUnitLen[i]
		} else {
			runs = append(runs, scriptRun{start: unit, end: unit + runeUnitLen[i], script: s})
		}
		unit += runeUnitLen[i]
	}
	return runs
}

// isoScriptTag maps the common Unicode long script names to their ISO
// 15924 four-letter tags, for handoff to the shaping engine's
// language.Script-keyed API (engine/shaper/harfbuzz.go). Scripts outside
// this table fall back to "Zzzz" (uncoded) which HarfBuzz treats as "let
// the font/OS default decide" — acceptable since an unrecognized script
// name is itself a rare, degenerate case.
var isoScriptTag = map[string]string{
	"Latin":      "Latn",
	"Cyrillic":   "Cyrl",
	"Greek":      "Grek",
	"Han":        "Hani",
	"Hiragana":   "Hira",
	"Katakana":   "Kana",
	"Hangul":     "Hang",
	"Hebrew":     "Hebr",
	"Arabic":     "Arab",
	"Devanagari": "Deva",
	"Thai":       "Thai",
	"Armenian":   "Armn",
	"Georgian":   "Geor",
	"Common":     "Zyyy",
	"Inherited":  "Zinh",
}

func scriptTag(name string) string {
	if tag, ok := isoScriptTag[name]; ok {
		return tag
	}
	return "Zzzz"
}
