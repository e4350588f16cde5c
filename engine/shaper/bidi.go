package shaper

import (
	"github.com/crosswovenscript/glint/core"
	"golang.org/x/text/unicode/bidi"
)

// directionRun is one (start, end, direction) triple over UTF-16
// code-unit offsets, already in visual order (spec §4.4.1, "Direction
// runs").
type directionRun struct {
	start, end int
	rtl        bool
}

// resolveDirectionRuns runs the Unicode Bidirectional Algorithm over text
// and returns its runs in visual order. When mode is not DirectionMultiple,
// itemization is skipped and the whole text is returned as one run in the
// hint's fixed direction — BiDi analysis is reserved for the case that
// actually asked for it (spec §3: "Multiple direction enables BiDi
// itemization; otherwise a paragraph-level direction is assumed").
func resolveDirectionRuns(text string, utf16Len int, mode DirectionMode) ([]directionRun, error) {
	if mode != DirectionMultiple {
		return []directionRun{{start: 0, end: utf16Len, rtl: mode == DirectionRTL}}, nil
	}
	if text == "" {
		return nil, nil
	}

	runes := []rune(text)
	unitOffset := make([]int, len(runes)+1)
	for i, r := range runes {
		n := 1
		if r > 0xFFFF {
			n = 2
		}
		unitOffset[i+1] = unitOffset[i] + n
	}

	var p bidi.Paragraph
	if _, err := p.SetString(text, bidi.DefaultDirection(bidi.LeftToRight)); err != nil {
		return nil, core.WrapError(err, core.EBIDIFAILURE, "bidi.SetString: %v", err)
	}
	ordering, err := p.Order()
	if err != nil {
		return nil, core.WrapError(err, core.EBIDIFAILURE, "bidi.Order: %v", err)
	}

	if ordering.NumRuns() == 0 {
		return []directionRun{{start: 0, end: utf16Len, rtl: false}}, nil
	}
	runs := make([]directionRun, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		startRune, endRune := run.Pos() // inclusive rune indices, in visual order
		runs = append(runs, directionRun{
			start: unitOffset[startRune],
			end:   unitOffset[endRune+1],
			rtl:   run.Direction() == bidi.RightToLeft,
		})
	}
	return runs, nil
}
