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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// segment is a straight piece of a flattened path, in user space.
type segment struct {
	a, b vec.Vec2
	t    vec.Vec2 // unit direction from a to b
	n    vec.Vec2 // t rotated by +90°
}

// reversed returns the segment traversed from b to a.  Its left side is
// the right side of s.
func (s segment) reversed() segment {
	return segment{a: s.b, b: s.a, t: s.t.Mul(-1), n: s.n.Mul(-1)}
}

// run is a subpath, given as a range of r.segs.
type run struct {
	start, end int
	closed     bool
}

// Stroke outlines the path using the current width, cap, join and miter
// limit, and fills the outline.
//
// The outline of every subpath is built from two offset curves, one at
// each side of the centre line.  The right-hand offset is computed as the
// left-hand offset of the reversed subpath, so only one side needs to be
// implemented.
func (r *Rasterizer) Stroke(p *path.Data, emit EmitFunc) {
	r.splitSegments(p)

	r.outline = r.outline[:0]
	r.rings = r.rings[:0]
	d := r.Width / 2

	if r.Cap == graphics.LineCapRound {
		for _, pt := range r.dots {
			start := len(r.outline)
			r.arc(pt, d, vec.Vec2{X: 1}, 2*math.Pi, true)
			r.endRing(start)
		}
	}

	for _, rn := range r.runs {
		segs := r.segs[rn.start:rn.end]
		if rn.closed {
			r.closedOutline(segs, d)
		} else {
			r.openOutline(segs, d)
		}
	}

	r.beginEdges()
	for i, start := range r.rings {
		end := len(r.outline)
		if i+1 < len(r.rings) {
			end = r.rings[i+1]
		}
		ring := r.outline[start:end]
		for j := range ring {
			r.addEdge(ring[j], ring[(j+1)%len(ring)])
		}
	}
	r.scan(nonZero, emit)
}

// splitSegments flattens p into r.segs, grouped into r.runs.  Subpaths
// which consist of a single point are recorded in r.dots.
func (r *Rasterizer) splitSegments(p *path.Data) {
	r.segs = r.segs[:0]
	r.runs = r.runs[:0]
	r.dots = r.dots[:0]

	var cur, start vec.Vec2
	first := 0
	active := false // a subpath has been started
	drawn := false  // the subpath has a drawing command

	finish := func(closed bool) {
		switch {
		case len(r.segs) > first:
			r.runs = append(r.runs, run{start: first, end: len(r.segs), closed: closed})
		case drawn || closed:
			r.dots = append(r.dots, start)
		}
		first = len(r.segs)
		drawn = false
	}
	add := func(from, to vec.Vec2) {
		r.addSegment(from, to)
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if active {
				finish(false)
			}
			cur = p.Coords[k]
			start = cur
			active = true
			k++
		case path.CmdLineTo:
			if active {
				r.addSegment(cur, p.Coords[k])
				cur = p.Coords[k]
				drawn = true
			}
			k++
		case path.CmdQuadTo:
			if active {
				r.quadratic(cur, p.Coords[k], p.Coords[k+1], add)
				cur = p.Coords[k+1]
				drawn = true
			}
			k += 2
		case path.CmdCubeTo:
			if active {
				r.cubic(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2], add)
				cur = p.Coords[k+2]
				drawn = true
			}
			k += 3
		case path.CmdClose:
			if active {
				r.addSegment(cur, start)
				finish(true)
				cur = start
				active = false
			}
		}
	}
	if active {
		finish(false)
	}
}

// addSegment appends a segment, unless it is too short to have a
// direction.
func (r *Rasterizer) addSegment(a, b vec.Vec2) {
	v := b.Sub(a)
	l := v.Length()
	if l < zeroLengthThreshold {
		return
	}
	t := v.Mul(1 / l)
	r.segs = append(r.segs, segment{a: a, b: b, t: t, n: vec.Vec2{X: -t.Y, Y: t.X}})
}

// openOutline appends the outline of an open subpath as a single ring:
// left offset, end cap, right offset, start cap.
func (r *Rasterizer) openOutline(segs []segment, d float64) {
	start := len(r.outline)

	r.offset(segs, d)
	last := segs[len(segs)-1]
	r.cap(last.b, last.t, d)

	rev := r.reverse(segs)
	r.offset(rev, d)
	r.cap(segs[0].a, segs[0].t.Mul(-1), d)

	r.endRing(start)
}

// closedOutline appends the outline of a closed subpath as two rings.
// The rings run in opposite directions, so that the nonzero rule leaves
// the inside of the subpath empty.
func (r *Rasterizer) closedOutline(segs []segment, d float64) {
	start := len(r.outline)
	for i := range segs {
		r.corner(segs[i], segs[(i+1)%len(segs)], d)
	}
	r.endRing(start)

	rev := r.reverse(segs)
	start = len(r.outline)
	for i := range rev {
		r.corner(rev[i], rev[(i+1)%len(rev)], d)
	}
	r.endRing(start)
}

// reverse returns segs in reverse order with every segment reversed.
// The result is valid until the next call.
func (r *Rasterizer) reverse(segs []segment) []segment {
	r.rev = r.rev[:0]
	for i := len(segs) - 1; i >= 0; i-- {
		r.rev = append(r.rev, segs[i].reversed())
	}
	return r.rev
}

// endRing finishes the ring which starts at r.outline[start].  Rings
// with fewer than three points enclose no area and are dropped.
func (r *Rasterizer) endRing(start int) {
	if len(r.outline)-start < 3 {
		r.outline = r.outline[:start]
		return
	}
	r.rings = append(r.rings, start)
}

// offset appends the left-hand offset of an open chain of segments.
func (r *Rasterizer) offset(segs []segment, d float64) {
	r.outline = append(r.outline, segs[0].a.Add(segs[0].n.Mul(d)))
	for i := 0; i+1 < len(segs); i++ {
		r.corner(segs[i], segs[i+1], d)
	}
	last := segs[len(segs)-1]
	r.outline = append(r.outline, last.b.Add(last.n.Mul(d)))
}

// corner appends the left-hand outline points where s meets next.
func (r *Rasterizer) corner(s, next segment, d float64) {
	sin := s.t.X*next.t.Y - s.t.Y*next.t.X
	cos := s.t.Dot(next.t)
	endL := s.b.Add(s.n.Mul(d))
	startL := next.a.Add(next.n.Mul(d))

	switch {
	case cos < cuspCosineThreshold:
		// the path reverses direction
		r.outline = append(r.outline, endL)
		r.cap(s.b, s.t, d)
		r.outline = append(r.outline, startL)

	case math.Abs(sin) < collinearityThreshold:
		r.outline = append(r.outline, endL, startL)

	case sin > 0:
		// Turning left: this is the inside of the corner, where the
		// two offset lines intersect.
		if pt, ok := innerPoint(s.b, s.n, next.n, cos, d); ok {
			r.outline = append(r.outline, pt)
		} else {
			r.outline = append(r.outline, endL, startL)
		}

	default:
		r.outline = append(r.outline, endL)
		r.join(s.b, s.n, next.n, cos, d)
		r.outline = append(r.outline, startL)
	}
}

// innerPoint returns the intersection of the left offsets of two
// segments meeting at p, with normals n1 and n2.
func innerPoint(p, n1, n2 vec.Vec2, cos, d float64) (vec.Vec2, bool) {
	halfCos := math.Sqrt((1 + cos) / 2)
	if halfCos < 1e-10 {
		return vec.Vec2{}, false
	}
	bisector := n1.Add(n2)
	l := bisector.Length()
	if l < 1e-10 {
		return vec.Vec2{}, false
	}
	return p.Add(bisector.Mul(d / (l * halfCos))), true
}

// join appends the points between the two offset lines on the outside of
// a right turn at p.
func (r *Rasterizer) join(p, n1, n2 vec.Vec2, cos, d float64) {
	switch r.Join {
	case graphics.LineJoinRound:
		angle := math.Acos(max(-1, min(1, cos)))
		r.arc(p, d, n1, -angle, false)

	case graphics.LineJoinMiter:
		// The miter length relative to the width is 1/sin(φ/2), where
		// φ is the interior angle.  sin(φ/2) = cos(θ/2) for the turning
		// angle θ.
		halfCos := math.Sqrt((1 + cos) / 2)
		if halfCos == 0 || 1/halfCos > r.MiterLimit {
			return
		}
		bisector := n1.Add(n2)
		l := bisector.Length()
		if l == 0 {
			return
		}
		r.outline = append(r.outline, p.Add(bisector.Mul(d/(l*halfCos))))
	}
	// bevel: the two offset points are joined directly
}

// cap appends the end cap at p for a line arriving in direction t.  The
// cap runs from the left offset to the right offset.
func (r *Rasterizer) cap(p, t vec.Vec2, d float64) {
	n := vec.Vec2{X: -t.Y, Y: t.X}
	switch r.Cap {
	case graphics.LineCapRound:
		r.arc(p, d, n, -math.Pi, true)
	case graphics.LineCapSquare:
		ext := p.Add(t.Mul(d))
		r.outline = append(r.outline, ext.Add(n.Mul(d)), ext.Sub(n.Mul(d)))
	}
}

// arc appends points on the circle of the given radius around center,
// starting in direction dir and turning by sweep radians.  The number of
// points is chosen so that the chords stay within r.Flatness of the
// circle in device space.
func (r *Rasterizer) arc(center vec.Vec2, radius float64, dir vec.Vec2, sweep float64, withStart bool) {
	devRadius := max(
		r.linear(vec.Vec2{X: radius}).Length(),
		r.linear(vec.Vec2{Y: radius}).Length())

	n := 1
	if devRadius > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		if step > 0 {
			n = stepCount(math.Abs(sweep) / step)
		}
	}

	i0 := 1
	if withStart {
		i0 = 0
	}
	for i := i0; i <= n; i++ {
		sin, cos := math.Sincos(sweep * float64(i) / float64(n))
		v := vec.Vec2{
			X: dir.X*cos - dir.Y*sin,
			Y: dir.X*sin + dir.Y*cos,
		}
		r.outline = append(r.outline, center.Add(v.Mul(radius)))
	}
}
