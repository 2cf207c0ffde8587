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

package canvas

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Shape is the geometry argument of the drawing primitives.  It is
// implemented by [Coords], [*Path] and [*Symbol].
type Shape interface {
	// lines returns the shape as a path made of straight lines only.
	lines() (*path.Data, error)
}

// Coords is a flat list of points, given as x, y pairs.  As a [Shape],
// it describes a single open subpath through the points.
type Coords []float64

func (c Coords) lines() (*path.Data, error) {
	if len(c)%2 != 0 {
		return nil, fmt.Errorf("%w: odd number of coordinates (%d)", ErrValue, len(c))
	}
	d := &path.Data{}
	for i := 0; i < len(c); i += 2 {
		v := vec.Vec2{X: c[i], Y: c[i+1]}
		if i == 0 {
			d.Cmds = append(d.Cmds, path.CmdMoveTo)
		} else {
			d.Cmds = append(d.Cmds, path.CmdLineTo)
		}
		d.Coords = append(d.Coords, v)
	}
	return d, nil
}

// closeAll returns a copy of d where every open subpath is closed.
func closeAll(d *path.Data) *path.Data {
	res := &path.Data{Coords: d.Coords}
	open := false
	for _, cmd := range d.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				res.Cmds = append(res.Cmds, path.CmdClose)
			}
			open = true
		case path.CmdClose:
			open = false
		}
		res.Cmds = append(res.Cmds, cmd)
	}
	if open {
		res.Cmds = append(res.Cmds, path.CmdClose)
	}
	return res
}

// rectangle returns the closed outline of an axis-aligned rectangle.
func rectangle(box [4]float64) *path.Data {
	x0, y0, x1, y1 := box[0], box[1], box[2], box[3]
	d := &path.Data{}
	d.Cmds = append(d.Cmds, path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose)
	d.Coords = append(d.Coords,
		vec.Vec2{X: x0, Y: y0},
		vec.Vec2{X: x1, Y: y0},
		vec.Vec2{X: x1, Y: y1},
		vec.Vec2{X: x0, Y: y1})
	return d
}

// maxEllipseSteps bounds the number of polygon edges of an ellipse.
const maxEllipseSteps = 1 << 16

// ellipseSteps returns the number of polygon edges used to approximate a
// full ellipse with the given radii.  The chord error is about 1/8 unit.
func ellipseSteps(rx, ry float64) int {
	r := (math.Abs(rx) + math.Abs(ry)) / 2
	n := 2 * math.Pi / (2 * math.Acos(r/(r+0.125)))
	switch {
	case n >= maxEllipseSteps:
		return maxEllipseSteps
	case !(n >= 4):
		return 4
	}
	return int(math.Round(n))
}

// ellipsePoint returns the point at angle theta, in radians measured
// counter-clockwise as seen on screen (where y points down).
func ellipsePoint(cx, cy, rx, ry, theta float64) vec.Vec2 {
	s, c := math.Sincos(theta)
	return vec.Vec2{X: cx + c*rx, Y: cy - s*ry}
}

// ellipse returns a closed polygon approximating the ellipse inscribed
// in box.
func ellipse(box [4]float64) *path.Data {
	cx, cy := (box[0]+box[2])/2, (box[1]+box[3])/2
	rx, ry := (box[2]-box[0])/2, (box[3]-box[1])/2
	n := ellipseSteps(rx, ry)
	step := 2 * math.Pi / float64(n)

	d := &path.Data{}
	for i := range n {
		v := ellipsePoint(cx, cy, rx, ry, float64(i)*step)
		if i == 0 {
			d.Cmds = append(d.Cmds, path.CmdMoveTo)
		} else {
			d.Cmds = append(d.Cmds, path.CmdLineTo)
		}
		d.Coords = append(d.Coords, v)
	}
	d.Cmds = append(d.Cmds, path.CmdClose)
	return d
}

// arcKind selects how an elliptical arc is completed.
type arcKind uint8

const (
	arcOpen  arcKind = iota // the arc alone
	arcChord                // closed by a straight line
	arcPie                  // closed through the centre
)

// arcSweep returns the counter-clockwise angle from start to end, in
// degrees.  The result is in the range 0 to 360.  A difference of 360
// or more gives a full turn, negative differences are taken modulo 360.
// Equal angles give an empty sweep.
func arcSweep(start, end float64) float64 {
	d := end - start
	switch {
	case d >= 360:
		return 360
	case d >= 0:
		return d
	}
	d = math.Mod(math.Mod(end, 360)-math.Mod(start, 360), 360)
	if d < 0 {
		d += 360
	}
	return d
}

// arc returns the part of the ellipse inscribed in box between the angles
// start and end, in degrees.  The arc runs counter-clockwise on screen.
func arc(box [4]float64, start, end float64, kind arcKind) *path.Data {
	cx, cy := (box[0]+box[2])/2, (box[1]+box[3])/2
	rx, ry := (box[2]-box[0])/2, (box[3]-box[1])/2

	a0 := math.Mod(start, 360) * math.Pi / 180
	sweep := arcSweep(start, end) * math.Pi / 180

	step := 2 * math.Pi / float64(ellipseSteps(rx, ry))
	n := max(int(math.Ceil(sweep/step-1e-9)), 1)

	d := &path.Data{}
	if kind == arcPie {
		d.Cmds = append(d.Cmds, path.CmdMoveTo)
		d.Coords = append(d.Coords, vec.Vec2{X: cx, Y: cy})
	}
	for i := 0; i <= n; i++ {
		v := ellipsePoint(cx, cy, rx, ry, a0+sweep*float64(i)/float64(n))
		if i == 0 && kind != arcPie {
			d.Cmds = append(d.Cmds, path.CmdMoveTo)
		} else {
			d.Cmds = append(d.Cmds, path.CmdLineTo)
		}
		d.Coords = append(d.Coords, v)
	}
	if kind != arcOpen {
		d.Cmds = append(d.Cmds, path.CmdClose)
	}
	return d
}
