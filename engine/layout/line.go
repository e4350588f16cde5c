package layout

import "github.com/crosswovenscript/glint/core/dimen"

// Glyph is one positioned, atlas-resolved glyph within a Line (spec §3,
// "Glyph"). (X0,Y0) is its bottom-left corner and (X1,Y1) its top-right,
// on a baseline at y=0.
type Glyph struct {
	Cluster    int
	AtlasPage  int
	TexX, TexY dimen.Dimen
	SDFX, SDFY dimen.Dimen
	X0, Y0, X1, Y1 dimen.Dimen
}

// Line is the Layout Manager's final output for one visual line (spec §3,
// "Line"). Start/End are UTF-16 code-unit offsets into the source string.
// Spacing is the designer-specified line height, not necessarily
// YMax-YMin; positioning of one line below the next is left to the
// caller, which advances its own baseline by Spacing.
type Line struct {
	Start, End int

	XMin, XMax dimen.Dimen
	YMin, YMax dimen.Dimen
	Ascent, Descent dimen.Dimen
	Spacing    dimen.Dimen

	ListAtlases []int
	ListGlyphs  []Glyph
	RTL         bool
}

// bounds accumulates r into the line's running bounding box; the first
// glyph seeds it rather than unioning against a zero rectangle, since a
// line entirely to the left of or below the origin must not be clamped
// to include (0,0).
func (l *Line) bounds(r dimen.Rect, first bool) {
	if first {
		l.XMin, l.YMin, l.XMax, l.YMax = r.X0, r.Y0, r.X1, r.Y1
		return
	}
	u := dimen.Rect{X0: l.XMin, Y0: l.YMin, X1: l.XMax, Y1: l.YMax}.Union(r)
	l.XMin, l.YMin, l.XMax, l.YMax = u.X0, u.Y0, u.X1, u.Y1
}

func (l *Line) addAtlasPage(page int) {
	for _, p := range l.ListAtlases {
		if p == page {
			return
		}
	}
	l.ListAtlases = append(l.ListAtlases, page)
}
