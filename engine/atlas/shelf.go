package atlas

import "github.com/crosswovenscript/glint/core/dimen"

// shelf is a single horizontal strip of a page, as tall as the tallest
// rectangle placed into it so far.
type shelf struct {
	y      dimen.Dimen // y-offset of this shelf within the page
	height dimen.Dimen
	cursor dimen.Dimen // x-offset of the next free slot in this shelf
}

// shelfPacker is the Bin Packer of spec §4.1: a single page, W×H, divided
// into horizontal shelves. addRectangle walks existing shelves top to
// bottom in first-fit order; failing that, it opens a new shelf. The
// packer favors O(shelves) insertion and zero bookkeeping over packing
// density — fragmentation is an accepted tradeoff.
type shelfPacker struct {
	width, height dimen.Dimen
	shelves       []shelf
}

func newShelfPacker(width, height dimen.Dimen) *shelfPacker {
	return &shelfPacker{width: width, height: height}
}

// addRectangle places a w×h rectangle and returns its (x,y) origin. ok is
// false when no shelf — existing or new — can hold the rectangle.
func (p *shelfPacker) addRectangle(w, h dimen.Dimen) (x, y dimen.Dimen, ok bool) {
	for i := range p.shelves {
		s := &p.shelves[i]
		if w <= p.width-s.cursor && h <= s.height {
			x, y = s.cursor, s.y
			s.cursor += w
			return x, y, true
		}
	}
	// open a new shelf below the existing ones
	var nextY dimen.Dimen
	if n := len(p.shelves); n > 0 {
		last := p.shelves[n-1]
		nextY = last.y + last.height
	}
	if nextY+h > p.height {
		return 0, 0, false
	}
	p.shelves = append(p.shelves, shelf{y: nextY, height: h, cursor: w})
	return 0, nextY, true
}
