package shaper

import (
	"github.com/crosswovenscript/glint/core/font"
	"github.com/crosswovenscript/glint/core/utext"
)

// TextRun is a maximal range sharing (direction, script, font) — the
// Shaper's itemization output, already in visual order (spec §4.4.2).
type TextRun struct {
	Start, End int // UTF-16 code-unit offsets
	RTL        bool
	Script     string
	Font       int
}

// itemize runs direction, script and font itemization over text and
// merges the three partitions into TextRuns (spec §4.4.1–4.4.2).
// paragraphRTL reflects the direction of the first run in visual order —
// what each output ShapedLine's RTL field is set from (spec §4.5 step 5).
func itemize(utf16Text []uint16, registry *font.Registry, hint *Hint) (runs []TextRun, paragraphRTL bool, err error) {
	if len(utf16Text) == 0 {
		return nil, false, nil
	}
	s := utext.FromUTF16(utf16Text)
	runes := []rune(s)
	unitLen := make([]int, len(runes))
	for i, r := range runes {
		unitLen[i] = 1
		if r > 0xFFFF {
			unitLen[i] = 2
		}
	}

	dirRuns, err := resolveDirectionRuns(s, len(utf16Text), hint.Direction)
	if err != nil {
		return nil, false, err
	}
	if len(dirRuns) > 0 {
		paragraphRTL = dirRuns[0].rtl
	}
	scriptMode := hint.Script
	var runeScripts []string
	if scriptMode == ScriptMultiple {
		runeScripts = make([]string, len(runes))
		for i, r := range runes {
			runeScripts[i] = scriptOf(r)
		}
	} else {
		runeScripts = make([]string, len(runes))
		for i := range runes {
			runeScripts[i] = scriptCommon
		}
	}
	scriptRuns := resolveScriptRuns(utf16Text, runeScripts, unitLen)
	fontRuns := resolveFontRuns(runes, unitLen, registry, hint)

	var out []TextRun
	for _, d := range dirRuns {
		rtlInsertAt := len(out)
		pos := d.start
		si, fi := runRunIndexAt(scriptRuns, pos), runIndexAt(fontRuns, pos)
		for pos < d.end {
			for si < len(scriptRuns)-1 && scriptRuns[si].end <= pos {
				si++
			}
			for fi < len(fontRuns)-1 && fontRuns[fi].end <= pos {
				fi++
			}
			end := d.end
			if scriptRuns[si].end < end {
				end = scriptRuns[si].end
			}
			if fontRuns[fi].end < end {
				end = fontRuns[fi].end
			}
			sub := TextRun{Start: pos, End: end, RTL: d.rtl, Script: scriptTag(scriptRuns[si].script), Font: fontRuns[fi].font}
			if d.rtl {
				out = insertAt(out, rtlInsertAt, sub)
			} else {
				out = append(out, sub)
			}
			pos = end
		}
	}
	return out, paragraphRTL, nil
}

func runIndexAt(runs []fontRun, unit int) int {
	for i, r := range runs {
		if unit < r.end {
			return i
		}
	}
	if len(runs) == 0 {
		return 0
	}
	return len(runs) - 1
}

func runRunIndexAt(runs []scriptRun, unit int) int {
	for i, r := range runs {
		if unit < r.end {
			return i
		}
	}
	if len(runs) == 0 {
		return 0
	}
	return len(runs) - 1
}

// insertAt inserts v at index i of s, shifting later elements right — used
// to realize the RTL sub-run reversal of spec §4.4.2.
func insertAt(s []TextRun, i int, v TextRun) []TextRun {
	s = append(s, TextRun{})
	copy(s[i+1:], s[i:len(s)-1])
	s[i] = v
	return s
}
