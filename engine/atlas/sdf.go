package atlas

import "math"

// makeDistanceMap implements the SDF routine named as an external
// collaborator in spec §6 ("a fixed routine mapping grayscale coverage to
// a signed distance field"). No such routine exists anywhere in the
// example corpus or its dependency graph, so unlike the rest of the
// pipeline this is a self-contained leaf: a two-pass 8-point chamfer
// distance transform (the standard cheap approximation to a true
// Euclidean SDF, as used by most real-time SDF-font generators), run
// once over the "inside" mask and once over the "outside" mask and
// combined into a signed, 8-bit-quantized field, in place.
//
// buf is w*h bytes of 8-bit grayscale coverage (0 = empty, 255 = fully
// covered); spread bounds how many pixels of distance map to the full
// [0,255] output range on either side of the contour.
func makeDistanceMap(buf []byte, w, h int, spread float64) {
	if w <= 0 || h <= 0 || spread <= 0 {
		return
	}
	inside := chamferDistance(buf, w, h, false)
	outside := chamferDistance(buf, w, h, true)
	for i := range buf {
		d := outside[i] - inside[i] // positive outside the shape, negative inside
		v := 128 - (d/spread)*128
		if v < 0 {
			v = 0
		} else if v > 255 {
			v = 255
		}
		buf[i] = byte(v + 0.5)
	}
}

const chamferInf = math.MaxFloat64 / 2

// chamferDistance returns, for every pixel, the approximate distance to
// the nearest pixel on the other side of the coverage threshold (128):
// when outside==true, distance to the nearest *covered* pixel (used to
// build the "outside" field); when outside==false, distance to the
// nearest *uncovered* pixel (the "inside" field).
func chamferDistance(buf []byte, w, h int, outside bool) []float64 {
	dist := make([]float64, w*h)
	isTarget := func(v byte) bool {
		if outside {
			return v >= 128
		}
		return v < 128
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			if isTarget(buf[i]) {
				dist[i] = 0
			} else {
				dist[i] = chamferInf
			}
		}
	}
	// forward pass: up-left to down-right
	const d1, d2 = 1.0, math.Sqrt2
	relax := func(x, y, dx, dy int, weight float64) {
		nx, ny := x+dx, y+dy
		if nx < 0 || nx >= w || ny < 0 || ny >= h {
			return
		}
		v := dist[ny*w+nx] + weight
		if v < dist[y*w+x] {
			dist[y*w+x] = v
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			relax(x, y, -1, 0, d1)
			relax(x, y, 0, -1, d1)
			relax(x, y, -1, -1, d2)
			relax(x, y, 1, -1, d2)
		}
	}
	// backward pass: down-right to up-left
	for y := h - 1; y >= 0; y-- {
		for x := w - 1; x >= 0; x-- {
			relax(x, y, 1, 0, d1)
			relax(x, y, 0, 1, d1)
			relax(x, y, 1, 1, d2)
			relax(x, y, -1, 1, d2)
		}
	}
	return dist
}
