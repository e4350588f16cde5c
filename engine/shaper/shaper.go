package shaper

import (
	"github.com/crosswovenscript/glint/core/dimen"
	"github.com/crosswovenscript/glint/core/font"
	"github.com/crosswovenscript/glint/core/utext"
)

// Shaper drives itemization, per-run shaping, line breaking and elision
// against a Font Registry (spec §4.4, the "Shaper" component).
type Shaper struct {
	registry *font.Registry
}

// NewShaper binds a Shaper to registry; the Shaper does not own it.
func NewShaper(registry *font.Registry) *Shaper {
	return &Shaper{registry: registry}
}

// GetGlyphs itemizes, shapes and (elides or line-breaks) utf16Text
// against hint, returning one or more ShapedLines in visual top-to-bottom
// order (spec §4.4).
func (s *Shaper) GetGlyphs(utf16Text []uint16, hint *Hint) ([]ShapedLine, error) {
	if len(utf16Text) == 0 {
		return nil, nil
	}
	runs, paragraphRTL, err := itemize(utf16Text, s.registry, hint)
	if err != nil {
		return nil, err
	}

	whole := s.shapeRange(utf16Text, runs, 0, len(utf16Text), paragraphRTL)

	if hint.Elide && hint.MaxLineWidthPX < dimen.Infinity {
		return []ShapedLine{*elide(&whole, hint.MaxLineWidthPX, s.registry)}, nil
	}

	if hint.MaxLineWidthPX >= dimen.Infinity {
		return []ShapedLine{whole}, nil
	}

	classes, err := classifyBreaks(utext.FromUTF16(utf16Text), utf16Text)
	if err != nil {
		return nil, lineBreakError(err)
	}
	return s.breakLines(utf16Text, runs, classes, hint.MaxLineWidthPX, paragraphRTL), nil
}

// shapeRange shapes every run overlapping [start,end) and appends their
// glyphs, in visual order, to a single ShapedLine (spec §4.4.3).
func (s *Shaper) shapeRange(utf16Text []uint16, runs []TextRun, start, end int, rtl bool) ShapedLine {
	line := ShapedLine{Start: start, End: end, RTL: rtl}
	for _, r := range runs {
		shapeTextRun(r, start, end, utf16Text, s.registry, &line)
	}
	return line
}

// breakLines implements spec §4.4.4 steps 3-4: scatter advances to
// code-unit clusters, walk forward accumulating combined_adv, and split
// at the last allowed break (or immediately on a mandatory break),
// reshaping the remainder each time a split is made.
func (s *Shaper) breakLines(utf16Text []uint16, runs []TextRun, classes []breakClass, maxWidth dimen.Dimen, rtl bool) []ShapedLine {
	textLen := len(utf16Text)
	var lines []ShapedLine
	lineStart := 0
	for {
		line := s.shapeRange(utf16Text, runs, lineStart, textLen, rtl)
		adv := scatterAdvances(&line, textLen)

		splitAt := -1
		var combined dimen.Dimen
		lastAllowed := -1
		for i := lineStart; i < textLen; i++ {
			combined += adv[i]
			if classes[i] == classMustBreak {
				splitAt = i
				break
			}
			if classes[i] == classAllowBreak {
				lastAllowed = i
			}
			if combined > maxWidth && lastAllowed > lineStart {
				splitAt = lastAllowed
				break
			}
		}
		if splitAt == -1 || splitAt == textLen-1 {
			line.End = textLen
			lines = append(lines, line)
			return lines
		}
		lines = append(lines, truncateLine(&line, splitAt+1))
		lineStart = splitAt + 1
	}
}

// scatterAdvances builds the per-code-unit advance table of spec §4.4.4
// step 3, summing when multiple glyphs share a cluster (combining marks).
func scatterAdvances(line *ShapedLine, textLen int) []dimen.Dimen {
	adv := make([]dimen.Dimen, textLen)
	for i, g := range line.Glyphs {
		if g.Cluster >= 0 && g.Cluster < textLen {
			adv[g.Cluster] += line.Offsets[i].AdvanceX
		}
	}
	return adv
}

// truncateLine keeps only the glyphs of line whose cluster is before end,
// setting the result's End to end (spec §4.4.4, "splitting policy").
func truncateLine(line *ShapedLine, end int) ShapedLine {
	out := ShapedLine{Start: line.Start, End: end, RTL: line.RTL}
	for i, g := range line.Glyphs {
		if g.Cluster < end {
			out.Glyphs = append(out.Glyphs, g)
			out.Offsets = append(out.Offsets, line.Offsets[i])
		}
	}
	return out
}
