// Package dimen implements the integer pixel unit used throughout the
// layout engine: glyph advances, offsets, bearings, atlas coordinates and
// line metrics are all expressed as Dimen.
//
/*
BSD License

Copyright (c) 2017–21, Norbert Pillmayer (norbert@pillmayer.com)

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */
package dimen

import (
	"fmt"
	"math"

	"golang.org/x/image/math/fixed"
)

// Dimen is an integer pixel dimension. Unlike the print-oriented scaled
// points of a page layouter, a Dimen here is a plain pixel count: the
// shaping engine and rasterizer both report positions in 26.6 fixed-point,
// and FromFixed divides that down to whole pixels once and for all — the
// division is lossy and intentional, and every later computation is
// integer arithmetic on top of it.
type Dimen int32

// Zero is the zero dimension.
const Zero Dimen = 0

// Infinity is the largest representable dimension, used as a sentinel for
// "no limit" (e.g. Hint.MaxLineWidthPX when wrapping is disabled).
const Infinity Dimen = math.MaxInt32

// FromFixed converts a 26.6 fixed-point value (as returned by the shaping
// engine or the rasterizer) to an integer pixel Dimen.
func FromFixed(v fixed.Int26_6) Dimen {
	return Dimen(v >> 6)
}

// String renders a Dimen as a pixel count, e.g. "12px".
func (d Dimen) String() string {
	return fmt.Sprintf("%dpx", int32(d))
}

// Point is a pixel position.
type Point struct {
	X, Y Dimen
}

// Origin is the zero point.
var Origin = Point{0, 0}

// Shift translates a point by a vector, returning p for chaining.
func (p *Point) Shift(vector Point) *Point {
	p.X += vector.X
	p.Y += vector.Y
	return p
}

// Rect is an axis-aligned pixel rectangle, (X0,Y0) bottom-left and
// (X1,Y1) top-right, matching the glyph and line bounding boxes of the
// layout engine (baseline at y=0).
type Rect struct {
	X0, Y0, X1, Y1 Dimen
}

// Width returns X1 - X0.
func (r Rect) Width() Dimen {
	return r.X1 - r.X0
}

// Height returns Y1 - Y0.
func (r Rect) Height() Dimen {
	return r.Y1 - r.Y0
}

// Union grows r to also cover other, used to accumulate a line's bounding
// box glyph by glyph.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		X0: Min(r.X0, other.X0),
		Y0: Min(r.Y0, other.Y0),
		X1: Max(r.X1, other.X1),
		Y1: Max(r.Y1, other.Y1),
	}
}

// Min returns the smaller of two dimensions.
func Min(a, b Dimen) Dimen {
	if a < b {
		return a
	}
	return b
}

// Max returns the greater of two dimensions.
func Max(a, b Dimen) Dimen {
	if a > b {
		return a
	}
	return b
}
