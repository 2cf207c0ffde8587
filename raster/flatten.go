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

	"seehuhn.de/go/geom/vec"
)

// FlattenQuadratic approximates the quadratic Bézier curve p0, p1, p2 by
// line segments which deviate from the curve by at most tolerance.
// emit is called with the end point of every segment, the last call
// being p2.  The start point p0 is not emitted.
func FlattenQuadratic(p0, p1, p2 vec.Vec2, tolerance float64, emit func(vec.Vec2)) {
	n := quadraticSteps(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25), tolerance)
	for i := 1; i < n; i++ {
		emit(quadraticAt(p0, p1, p2, float64(i)/float64(n)))
	}
	emit(p2)
}

// FlattenCubic approximates the cubic Bézier curve p0, p1, p2, p3 by line
// segments which deviate from the curve by at most tolerance.
// emit is called with the end point of every segment, the last call
// being p3.  The start point p0 is not emitted.
func FlattenCubic(p0, p1, p2, p3 vec.Vec2, tolerance float64, emit func(vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2)
	d2 := p1.Sub(p2.Mul(2)).Add(p3)
	n := cubicSteps(d1, d2, tolerance)
	for i := 1; i < n; i++ {
		emit(cubicAt(p0, p1, p2, p3, float64(i)/float64(n)))
	}
	emit(p3)
}

// maxSteps bounds the number of segments per curve.  Curves which would
// need more are drawn with fewer, longer segments.
const maxSteps = 1 << 16

// quadraticSteps returns the number of segments needed for a quadratic
// curve with error vector e = (p0 - 2p1 + p2)/4.
func quadraticSteps(e vec.Vec2, tolerance float64) int {
	d := e.Length()
	if d <= tolerance {
		return 1
	}
	return stepCount(math.Sqrt(d / tolerance))
}

// cubicSteps implements Wang's formula, n = ⌈√(3m/4ε)⌉ where m is the
// larger of the two second differences d1 and d2.
func cubicSteps(d1, d2 vec.Vec2, tolerance float64) int {
	m := max(d1.Length(), d2.Length())
	if m == 0 {
		return 1
	}
	return stepCount(math.Sqrt(3 * m / (4 * tolerance)))
}

// stepCount rounds n up to an integer in the range 1 to maxSteps.
func stepCount(n float64) int {
	switch {
	case math.IsNaN(n) || n <= 1:
		return 1
	case n >= maxSteps:
		return maxSteps
	}
	return int(math.Ceil(n))
}

func quadraticAt(p0, p1, p2 vec.Vec2, t float64) vec.Vec2 {
	s := 1 - t
	return p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
}

func cubicAt(p0, p1, p2, p3 vec.Vec2, t float64) vec.Vec2 {
	s := 1 - t
	return p0.Mul(s * s * s).
		Add(p1.Mul(3 * s * s * t)).
		Add(p2.Mul(3 * s * t * t)).
		Add(p3.Mul(t * t * t))
}

// quadratic flattens a curve given in user space, choosing the number of
// segments from its size in device space.  emit receives consecutive
// pairs of points.
func (r *Rasterizer) quadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	e := r.linear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))
	n := quadraticSteps(e, r.Flatness)
	prev := p0
	for i := 1; i < n; i++ {
		pt := quadraticAt(p0, p1, p2, float64(i)/float64(n))
		emit(prev, pt)
		prev = pt
	}
	emit(prev, p2)
}

// cubic is the cubic counterpart of quadratic.
func (r *Rasterizer) cubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := r.linear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.linear(p1.Sub(p2.Mul(2)).Add(p3))
	n := cubicSteps(d1, d2, r.Flatness)
	prev := p0
	for i := 1; i < n; i++ {
		pt := cubicAt(p0, p1, p2, p3, float64(i)/float64(n))
		emit(prev, pt)
		prev = pt
	}
	emit(prev, p3)
}
