package shaper

import (
	"strings"

	"github.com/crosswovenscript/glint/core"
	"github.com/npillmayer/uax"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
)

// breakClass is a UTF-16 code unit's line-break classification (spec
// §4.4.4 step 1).
type breakClass int

const (
	classNoBreak breakClass = iota
	classAllowBreak
	classMustBreak
	classInsideChar
)

// isMandatoryBreakUnit reports whether u is one of the UTF-16 code units
// UAX#14 classifies as BK, CR, LF or NL — the units after which a break is
// always mandatory, regardless of what follows. classifyBreaks uses it to
// tell MUSTBREAK from ALLOWBREAK; the trailing downgrade there checks for
// LF/CR only.
func isMandatoryBreakUnit(u uint16) bool {
	switch u {
	case 0x000A, 0x000D, 0x000B, 0x000C, 0x0085, 0x2028, 0x2029:
		return true
	}
	return false
}

// classifyBreaks runs the UAX#14 line-break dictionary (the teacher's
// uax14.NewLineWrap()/segment.Segmenter pipeline, engine/khipu/
// khipukamayuq.go) over text and returns a per-UTF-16-code-unit
// classification, already carrying the trailing-MUSTBREAK downgrade of
// spec §4.4.4 step 2.
func classifyBreaks(text string, utf16Text []uint16) ([]breakClass, error) {
	classes := make([]breakClass, len(utf16Text))
	for i := range classes {
		classes[i] = classInsideChar
	}
	if text == "" {
		return classes, nil
	}

	wrap := uax14.NewLineWrap()
	seg := segment.NewSegmenter(wrap)
	seg.Init(strings.NewReader(text))

	unit := 0
	for seg.Next() {
		frag := seg.Text()
		if frag == "" {
			continue
		}
		runes := []rune(frag)
		for _, r := range runes {
			classes[unit] = classNoBreak
			if r > 0xFFFF {
				unit += 2
			} else {
				unit++
			}
		}
		last := unit - 1
		if last < 0 || last >= len(classes) {
			continue
		}
		p1, _ := seg.Penalties()
		if p1 >= uax.InfinitePenalty {
			continue // library reports no break opportunity here at all
		}
		if isMandatoryBreakUnit(utf16Text[last]) {
			classes[last] = classMustBreak
		} else {
			classes[last] = classAllowBreak
		}
	}

	// spec §4.4.4 step 2: downgrade a trailing MUSTBREAK that isn't
	// actually LF/CR, to suppress spurious empty trailing lines.
	if n := len(classes); n > 0 && classes[n-1] == classMustBreak {
		if utf16Text[n-1] != 0x000A && utf16Text[n-1] != 0x000D {
			classes[n-1] = classNoBreak
		}
	}
	return classes, nil
}

// lineBreakError wraps classifyBreaks failures with the domain error code
// (library initialization is the only realistic failure mode: segment and
// uax14 construction here cannot themselves fail, but a future break
// library swap might, so the seam is kept explicit).
func lineBreakError(err error) error {
	return core.WrapError(err, core.EBREAKLIBINIT, "line-break classification: %v", err)
}
