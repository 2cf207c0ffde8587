// seehuhn.de/go/canvas - a 2D drawing library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package raster turns paths into anti-aliased pixel coverage.
//
// Coverage is computed exactly from the signed area of the path inside
// each pixel.  Results are delivered one scanline at a time through an
// [EmitFunc], so that the caller decides how coverage is composited.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage values of one scanline.  coverage[i]
// belongs to pixel (xMin+i, y).  The slice is only valid for the
// duration of the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a non-horizontal line segment in device space.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) yRange() (float64, float64) {
	return min(e.y0, e.y1), max(e.y0, e.y1)
}

// Rasterizer converts paths to pixel coverage values.
// One instance can be reused for many paths; internal buffers grow as
// needed and are never released.
type Rasterizer struct {
	// CTM maps user space to device space.  Must be non-singular.
	CTM matrix.Matrix

	// Clip is the output region in device space.  The coordinates must
	// be integers.
	Clip rect.Rect

	// Flatness is the curve flattening tolerance in device pixels.
	Flatness float64

	// Width is the stroke width in user space units.
	Width float64

	// Cap is the style used at the ends of open subpaths.
	Cap graphics.LineCapStyle

	// Join is the style used where two segments meet.
	Join graphics.LineJoinStyle

	// MiterLimit bounds the length of miter joins, relative to the
	// stroke width.  Must be >= 1.
	MiterLimit float64

	// denseLimit is the largest bounding box area, in pixels, which is
	// scanned using per-pixel buffers.  Larger areas use an active edge
	// list instead.
	denseLimit int

	cover     []float32
	area      []float32
	edges     []edge
	active    []int
	rowUsed   []bool
	crossings []float64
	box       bbox

	// stroke state
	segs    []segment
	rev     []segment
	runs    []run
	dots    []vec.Vec2
	outline []vec.Vec2
	rings   []int
}

// NewRasterizer allocates a Rasterizer for the given clip rectangle.
// All other parameters take their default values.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	r := &Rasterizer{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is kept.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit
	r.denseLimit = denseAreaLimit

	r.edges = r.edges[:0]
	r.active = r.active[:0]
	r.segs = r.segs[:0]
	r.runs = r.runs[:0]
	r.dots = r.dots[:0]
	r.outline = r.outline[:0]
	r.rings = r.rings[:0]
}

// FillNonZero fills the path using the nonzero winding rule.
// Open subpaths are closed implicitly.
func (r *Rasterizer) FillNonZero(p *path.Data, emit EmitFunc) {
	r.beginEdges()
	r.addPathEdges(p)
	r.scan(nonZero, emit)
}

// FillEvenOdd fills the path using the even-odd rule.
// Open subpaths are closed implicitly.
func (r *Rasterizer) FillEvenOdd(p *path.Data, emit EmitFunc) {
	r.beginEdges()
	r.addPathEdges(p)
	r.scan(evenOdd, emit)
}

type fillRule uint8

const (
	nonZero fillRule = iota
	evenOdd
)

// bbox is the device space extent of the collected edges.
type bbox struct {
	xMin, xMax float64
	yMin, yMax float64
	empty      bool
}

func (b *bbox) include(x, y float64) {
	if b.empty {
		b.xMin, b.xMax, b.yMin, b.yMax = x, x, y, y
		b.empty = false
		return
	}
	b.xMin = min(b.xMin, x)
	b.xMax = max(b.xMax, x)
	b.yMin = min(b.yMin, y)
	b.yMax = max(b.yMax, y)
}

func (r *Rasterizer) beginEdges() {
	r.edges = r.edges[:0]
	r.box = bbox{empty: true}
}

func (r *Rasterizer) toDevice(p vec.Vec2) (float64, float64) {
	m := &r.CTM
	return m[0]*p.X + m[2]*p.Y + m[4], m[1]*p.X + m[3]*p.Y + m[5]
}

// linear applies the CTM without its translation part.
func (r *Rasterizer) linear(v vec.Vec2) vec.Vec2 {
	m := &r.CTM
	return vec.Vec2{X: m[0]*v.X + m[2]*v.Y, Y: m[1]*v.X + m[3]*v.Y}
}

// addPathEdges walks p and records its edges in device space.
func (r *Rasterizer) addPathEdges(p *path.Data) {
	var cur, start vec.Vec2
	open := false
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				r.addEdge(cur, start)
			}
			cur = p.Coords[k]
			start = cur
			open = true
			k++
		case path.CmdLineTo:
			r.addEdge(cur, p.Coords[k])
			cur = p.Coords[k]
			open = true
			k++
		case path.CmdQuadTo:
			r.quadratic(cur, p.Coords[k], p.Coords[k+1], r.addEdge)
			cur = p.Coords[k+1]
			open = true
			k += 2
		case path.CmdCubeTo:
			r.cubic(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addEdge)
			cur = p.Coords[k+2]
			open = true
			k += 3
		case path.CmdClose:
			r.addEdge(cur, start)
			cur = start
			open = false
		}
	}
	if open {
		r.addEdge(cur, start)
	}
}

// addEdge records the segment from p0 to p1, given in user space.
func (r *Rasterizer) addEdge(p0, p1 vec.Vec2) {
	x0, y0 := r.toDevice(p0)
	x1, y1 := r.toDevice(p1)

	if !isFinite(x0) || !isFinite(y0) || !isFinite(x1) || !isFinite(y1) {
		return
	}
	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{
		x0: x0, y0: y0,
		x1: x1, y1: y1,
		dxdy: (x1 - x0) / dy,
	})
	r.box.include(x0, y0)
	r.box.include(x1, y1)
}

// pixelBounds returns the integer bounding box of the edges, clipped.
func (r *Rasterizer) pixelBounds() (xMin, xMax, yMin, yMax int, ok bool) {
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}
	xMin = max(floorInt(r.box.xMin), int(r.Clip.LLx))
	xMax = min(floorInt(r.box.xMax)+1, int(r.Clip.URx))
	yMin = max(floorInt(r.box.yMin), int(r.Clip.LLy))
	yMax = min(floorInt(r.box.yMax)+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// scan integrates the collected edges and emits coverage.
func (r *Rasterizer) scan(rule fillRule, emit EmitFunc) {
	xMin, xMax, yMin, yMax, ok := r.pixelBounds()
	if !ok {
		return
	}
	if (xMax-xMin)*(yMax-yMin) < r.denseLimit {
		r.scanDense(xMin, xMax, yMin, yMax, rule, emit)
	} else {
		r.scanSparse(xMin, xMax, yMin, yMax, rule, emit)
	}
}

// Each pixel collects two numbers:
//
//	cover: the signed height of all edge pieces inside the pixel
//	area:  the same heights, weighted by the fraction of the pixel
//	       which lies to the right of the edge
//
// Walking a row from left to right, the coverage of pixel i is the
// running sum of cover over pixels 0..i-1 plus area[i].  This is the
// signed area of the path inside the pixel.

// accumulate adds the piece of e inside scanline [y, y+1) to cover and
// area.  Index 0 of both slices corresponds to pixel column x0, and the
// slices have length x1-x0.
func (r *Rasterizer) accumulate(e *edge, y int, cover, area []float32, x0, x1 int) {
	eyMin, eyMax := e.yRange()
	top := max(float64(y), eyMin)
	bot := min(float64(y+1), eyMax)
	if bot <= top {
		return
	}

	dir := float32(1)
	if e.y1 < e.y0 {
		dir = -1
	}

	xTop := e.x0 + e.dxdy*(top-e.y0)
	xBot := e.x0 + e.dxdy*(bot-e.y0)
	colLo := floorInt(min(xTop, xBot))
	colHi := floorInt(max(xTop, xBot))

	switch {
	case colHi < x0:
		// everything is left of the window and fully covers column 0
		h := dir * float32(bot-top)
		cover[0] += h
		area[0] += h
		return
	case colLo >= x1:
		return
	case colLo == colHi:
		deposit(cover, area, x0, x1, colLo, dir*float32(bot-top), (xTop+xBot)/2)
		return
	}

	// The edge crosses column boundaries.  Split it there, so that
	// every piece inside the window lies in a single pixel.  Outside
	// the window only the boundaries x0 and x1 matter: pieces left of
	// x0 all go to column 0 and pieces right of x1 are dropped.
	r.crossings = append(r.crossings[:0], top, bot)
	dydx := 1 / e.dxdy
	for c := max(colLo+1, x0); c <= min(colHi, x1); c++ {
		yc := e.y0 + dydx*(float64(c)-e.x0)
		if yc > top && yc < bot {
			r.crossings = append(r.crossings, yc)
		}
	}
	slices.Sort(r.crossings)

	for i := 1; i < len(r.crossings); i++ {
		ya, yb := r.crossings[i-1], r.crossings[i]
		if yb <= ya {
			continue
		}
		xm := e.x0 + e.dxdy*((ya+yb)/2-e.y0)
		deposit(cover, area, x0, x1, floorInt(xm), dir*float32(yb-ya), xm)
	}
}

// deposit records an edge piece of signed height h with mean horizontal
// position xm, lying in pixel column col.
func deposit(cover, area []float32, x0, x1, col int, h float32, xm float64) {
	if col < x0 {
		cover[0] += h
		area[0] += h
		return
	}
	if col >= x1 {
		return
	}
	i := col - x0
	cover[i] += h
	area[i] += h * float32(1-(xm-float64(col)))
}

// integrate turns the accumulated values of one row into coverage,
// in place in cover.
func integrate(cover, area []float32, rule fillRule) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		if rule == evenOdd {
			raw -= 2 * float32(int(raw/2))
			if raw > 1 {
				raw = 2 - raw
			}
		} else if raw > 1 {
			raw = 1
		}
		cover[i] = raw
	}
}

// floorInt returns ⌊v⌋, clamped to a range far outside any clip
// rectangle so that the conversion to int cannot overflow.
func floorInt(v float64) int {
	const limit = 1 << 40
	return int(math.Floor(max(-limit, min(v, limit))))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// trimZeros removes leading and trailing zeros.  It returns nil if all
// values are zero.
func trimZeros(coverage []float32) ([]float32, int) {
	lo := 0
	for lo < len(coverage) && coverage[lo] == 0 {
		lo++
	}
	if lo == len(coverage) {
		return nil, 0
	}
	hi := len(coverage)
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

// scanDense accumulates all edges into a two-dimensional buffer covering
// the bounding box, and then integrates every row which was touched.
func (r *Rasterizer) scanDense(xMin, xMax, yMin, yMax int, rule fillRule, emit EmitFunc) {
	width := xMax - xMin
	height := yMax - yMin

	size := width * height
	r.cover = slices.Grow(r.cover[:0], size)[:size]
	r.area = slices.Grow(r.area[:0], size)[:size]
	clear(r.cover)
	clear(r.area)
	r.rowUsed = slices.Grow(r.rowUsed[:0], height)[:height]
	clear(r.rowUsed)

	for i := range r.edges {
		e := &r.edges[i]
		eyMin, eyMax := e.yRange()
		first := max(floorInt(eyMin), yMin)
		last := min(floorInt(eyMax)+1, yMax)
		for y := first; y < last; y++ {
			row := y - yMin
			off := row * width
			r.accumulate(e, y, r.cover[off:off+width], r.area[off:off+width], xMin, xMax)
			r.rowUsed[row] = true
		}
	}

	for row, used := range r.rowUsed {
		if !used {
			continue
		}
		off := row * width
		coverage := r.cover[off : off+width]
		integrate(coverage, r.area[off:off+width], rule)
		if span, skip := trimZeros(coverage); span != nil {
			emit(yMin+row, xMin+skip, span)
		}
	}
}

// scanSparse processes one scanline at a time, keeping only the edges
// which intersect the current line.
func (r *Rasterizer) scanSparse(xMin, xMax, yMin, yMax int, rule fillRule, emit EmitFunc) {
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		aMin, _ := a.yRange()
		bMin, _ := b.yRange()
		return cmp.Compare(aMin, bMin)
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yf := float64(y)
		for next < len(r.edges) {
			eyMin, _ := r.edges[next].yRange()
			if eyMin >= yf+1 {
				break
			}
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			if next == len(r.edges) {
				return
			}
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if _, eyMax := e.yRange(); eyMax <= yf {
				r.active[i] = r.active[len(r.active)-1]
				r.active = r.active[:len(r.active)-1]
				continue
			}
			r.accumulate(e, y, r.cover, r.area, xMin, xMax)
			touched = true
			i++
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area, rule)
		if span, skip := trimZeros(r.cover); span != nil {
			emit(y, xMin+skip, span)
		}
	}
}

const (
	// defaultFlatness is the default tolerance for flattening curves
	// and arcs, in device pixels.
	defaultFlatness = 0.25

	// defaultMiterLimit turns joins with an interior angle of less than
	// about 11.5 degrees into bevels.
	defaultMiterLimit = 10.0

	// denseAreaLimit is the default for Rasterizer.denseLimit.
	denseAreaLimit = 65536
)

// Numerical tolerances.
const (
	// horizontalEdgeThreshold is the smallest vertical extent of an edge
	// which still contributes to coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the length below which stroke segments are
	// ignored.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold bounds |sin θ| for consecutive segments which
	// need no join.
	collinearityThreshold = 1e-6

	// cuspCosineThreshold detects segments which double back on
	// themselves, cos(179.2°).
	cuspCosineThreshold = -0.9999
)
