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
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/canvas/raster"
)

// pathFlatness is the maximal distance, in user space units, between a
// curve and the line segments which replace it.
const pathFlatness = 0.5

// pathState records whether a path has a current point.
type pathState uint8

const (
	noPoint pathState = iota // empty, or nothing drawn yet
	open                     // a subpath is in progress
	closed                   // the last command was Close
)

// Path is a sequence of subpaths made of lines and Bézier curves.
//
// Curves are replaced by line segments when they are added, so that
// every draw call sees the same polygon.  Paths can be extended after
// they have been drawn, but must not be modified while a draw call which
// uses them is running.
type Path struct {
	data  path.Data // with curves
	flat  path.Data // lines only
	start vec.Vec2
	cur   vec.Vec2
	state pathState
}

// NewPath returns a path which consists of a single open subpath through
// the given points, given as x, y pairs.  Without arguments, the path is
// empty.
func NewPath(coords ...float64) (*Path, error) {
	if len(coords)%2 != 0 {
		return nil, fmt.Errorf("canvas: path: %w: odd number of coordinates (%d)", ErrValue, len(coords))
	}
	p := &Path{}
	for i := 0; i < len(coords); i += 2 {
		if i == 0 {
			p.MoveTo(coords[0], coords[1])
		} else {
			p.LineTo(coords[i], coords[i+1])
		}
	}
	return p, nil
}

// NewPathData returns a path with the same subpaths as d.
func NewPathData(d *path.Data) *Path {
	p := &Path{}
	if d == nil {
		return p
	}
	k := 0
	for _, cmd := range d.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			p.moveTo(d.Coords[k])
			k++
		case path.CmdLineTo:
			p.lineTo(d.Coords[k])
			k++
		case path.CmdQuadTo:
			p.quadTo(d.Coords[k], d.Coords[k+1])
			k += 2
		case path.CmdCubeTo:
			p.curveTo(d.Coords[k], d.Coords[k+1], d.Coords[k+2])
			k += 3
		case path.CmdClose:
			p.Close()
		}
	}
	return p
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) *Path {
	p.moveTo(vec.Vec2{X: x, Y: y})
	return p
}

// LineTo adds a straight line from the current point to (x, y).
// If there is no current point, this starts a new subpath at (x, y).
func (p *Path) LineTo(x, y float64) *Path {
	p.lineTo(vec.Vec2{X: x, Y: y})
	return p
}

// QuadTo adds a quadratic Bézier curve with control point (x1, y1),
// ending at (x, y).
func (p *Path) QuadTo(x1, y1, x, y float64) *Path {
	p.quadTo(vec.Vec2{X: x1, Y: y1}, vec.Vec2{X: x, Y: y})
	return p
}

// CurveTo adds a cubic Bézier curve with control points (x1, y1) and
// (x2, y2), ending at (x, y).
func (p *Path) CurveTo(x1, y1, x2, y2, x, y float64) *Path {
	p.curveTo(vec.Vec2{X: x1, Y: y1}, vec.Vec2{X: x2, Y: y2}, vec.Vec2{X: x, Y: y})
	return p
}

// RMoveTo is like MoveTo, but (dx, dy) is relative to the current point.
func (p *Path) RMoveTo(dx, dy float64) *Path {
	p.moveTo(p.cur.Add(vec.Vec2{X: dx, Y: dy}))
	return p
}

// RLineTo is like LineTo, but (dx, dy) is relative to the current point.
func (p *Path) RLineTo(dx, dy float64) *Path {
	p.lineTo(p.cur.Add(vec.Vec2{X: dx, Y: dy}))
	return p
}

// RCurveTo is like CurveTo, but all points are relative to the current
// point.
func (p *Path) RCurveTo(dx1, dy1, dx2, dy2, dx, dy float64) *Path {
	c := p.cur
	p.curveTo(c.Add(vec.Vec2{X: dx1, Y: dy1}), c.Add(vec.Vec2{X: dx2, Y: dy2}), c.Add(vec.Vec2{X: dx, Y: dy}))
	return p
}

// Close connects the current point to the start of the subpath.
// The start of the subpath becomes the current point.
func (p *Path) Close() *Path {
	if p.state != open {
		return p
	}
	p.data.Cmds = append(p.data.Cmds, path.CmdClose)
	p.flat.Cmds = append(p.flat.Cmds, path.CmdClose)
	p.cur = p.start
	p.state = closed
	return p
}

// Polygon adds a closed subpath through the given points, given as x, y
// pairs.
func (p *Path) Polygon(coords ...float64) error {
	if len(coords)%2 != 0 {
		return fmt.Errorf("canvas: polygon: %w: odd number of coordinates (%d)", ErrValue, len(coords))
	}
	if len(coords) == 0 {
		return nil
	}
	p.MoveTo(coords[0], coords[1])
	for i := 2; i < len(coords); i += 2 {
		p.LineTo(coords[i], coords[i+1])
	}
	p.Close()
	return nil
}

// Coords returns the vertices of the path, after curves have been
// replaced by line segments, as x, y pairs.
func (p *Path) Coords() []float64 {
	res := make([]float64, 0, 2*len(p.flat.Coords))
	for _, v := range p.flat.Coords {
		res = append(res, v.X, v.Y)
	}
	return res
}

// Len returns the number of vertices in [Path.Coords].
func (p *Path) Len() int {
	return len(p.flat.Coords)
}

// Data returns a copy of the path, with curves intact.
func (p *Path) Data() *path.Data {
	return &path.Data{
		Cmds:   slices.Clone(p.data.Cmds),
		Coords: slices.Clone(p.data.Coords),
	}
}

// lines implements the [Shape] interface.
func (p *Path) lines() (*path.Data, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil path", ErrType)
	}
	return &p.flat, nil
}

func (p *Path) moveTo(v vec.Vec2) {
	p.data.Cmds = append(p.data.Cmds, path.CmdMoveTo)
	p.data.Coords = append(p.data.Coords, v)
	p.flat.Cmds = append(p.flat.Cmds, path.CmdMoveTo)
	p.flat.Coords = append(p.flat.Coords, v)
	p.start = v
	p.cur = v
	p.state = open
}

// begin makes sure that a subpath is in progress, before a drawing
// command with first point v is added.  It reports whether the command
// still needs to be added.
func (p *Path) begin(v vec.Vec2) bool {
	switch p.state {
	case noPoint:
		p.moveTo(v)
		return false
	case closed:
		p.moveTo(p.start)
	}
	return true
}

func (p *Path) lineTo(v vec.Vec2) {
	if !p.begin(v) {
		return
	}
	p.data.Cmds = append(p.data.Cmds, path.CmdLineTo)
	p.data.Coords = append(p.data.Coords, v)
	p.flatLineTo(v)
	p.cur = v
}

func (p *Path) quadTo(c, v vec.Vec2) {
	p.begin(c)
	p.data.Cmds = append(p.data.Cmds, path.CmdQuadTo)
	p.data.Coords = append(p.data.Coords, c, v)
	raster.FlattenQuadratic(p.cur, c, v, pathFlatness, p.flatLineTo)
	p.cur = v
}

func (p *Path) curveTo(c1, c2, v vec.Vec2) {
	p.begin(c1)
	p.data.Cmds = append(p.data.Cmds, path.CmdCubeTo)
	p.data.Coords = append(p.data.Coords, c1, c2, v)
	raster.FlattenCubic(p.cur, c1, c2, v, pathFlatness, p.flatLineTo)
	p.cur = v
}

func (p *Path) flatLineTo(v vec.Vec2) {
	p.flat.Cmds = append(p.flat.Cmds, path.CmdLineTo)
	p.flat.Coords = append(p.flat.Coords, v)
}
