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

	"seehuhn.de/go/canvas/pixbuf"
)

// Line draws a line through the points of shape.  Only a pen can be
// given.  The shape must have at least two points.
func (s *Surface) Line(shape Shape, paints ...Paint) error {
	pen, brush, err := splitPaints("line", paints)
	if err != nil {
		return err
	}
	if brush != nil {
		return fmt.Errorf("canvas: line: %w: lines cannot be filled", ErrType)
	}
	d, err := shapeLines("line", shape, 2)
	if err != nil {
		return err
	}
	s.paint(d, 0, 0, pen, nil)
	return nil
}

// Rectangle draws the axis-parallel rectangle with corners (box[0],
// box[1]) and (box[2], box[3]).
func (s *Surface) Rectangle(box [4]float64, paints ...Paint) error {
	pen, brush, err := splitPaints("rectangle", paints)
	if err != nil {
		return err
	}
	if err := checkBox("rectangle", box); err != nil {
		return err
	}
	s.paint(rectangle(box), 0, 0, pen, brush)
	return nil
}

// Ellipse draws the ellipse inscribed in the rectangle with corners
// (box[0], box[1]) and (box[2], box[3]).
func (s *Surface) Ellipse(box [4]float64, paints ...Paint) error {
	pen, brush, err := splitPaints("ellipse", paints)
	if err != nil {
		return err
	}
	if err := checkBox("ellipse", box); err != nil {
		return err
	}
	s.paint(ellipse(box), 0, 0, pen, brush)
	return nil
}

// Polygon draws shape, with all subpaths closed.  The shape must have at
// least three points.
func (s *Surface) Polygon(shape Shape, paints ...Paint) error {
	pen, brush, err := splitPaints("polygon", paints)
	if err != nil {
		return err
	}
	d, err := shapeLines("polygon", shape, 3)
	if err != nil {
		return err
	}
	s.paint(closeAll(d), 0, 0, pen, brush)
	return nil
}

// DrawPath draws shape as it is.  Open subpaths are stroked open, and
// closed implicitly for filling.
func (s *Surface) DrawPath(shape Shape, paints ...Paint) error {
	pen, brush, err := splitPaints("path", paints)
	if err != nil {
		return err
	}
	d, err := shapeLines("path", shape, 1)
	if err != nil {
		return err
	}
	s.paint(d, 0, 0, pen, brush)
	return nil
}

// Symbol draws shape once for every position in xy, translated so that
// the origin of the shape is at the position.  The surface transformation
// is applied after the translation.
func (s *Surface) Symbol(xy Coords, shape Shape, paints ...Paint) error {
	pen, brush, err := splitPaints("symbol", paints)
	if err != nil {
		return err
	}
	if len(xy)%2 != 0 || len(xy) == 0 {
		return fmt.Errorf("canvas: symbol: %w: need x, y pairs for the positions, got %d values", ErrValue, len(xy))
	}
	d, err := shapeLines("symbol", shape, 1)
	if err != nil {
		return err
	}
	for i := 0; i < len(xy); i += 2 {
		s.paint(d, xy[i], xy[i+1], pen, brush)
	}
	return nil
}

// Arc draws part of the outline of the ellipse inscribed in box, from
// angle start to angle end.  Angles are in degrees, and increase
// counter-clockwise as seen on screen.  Only a pen can be given.
func (s *Surface) Arc(box [4]float64, start, end float64, paints ...Paint) error {
	pen, brush, err := splitPaints("arc", paints)
	if err != nil {
		return err
	}
	if brush != nil {
		return fmt.Errorf("canvas: arc: %w: arcs cannot be filled", ErrType)
	}
	if err := checkArc("arc", box, start, end); err != nil {
		return err
	}
	s.paint(arc(box, start, end, arcOpen), 0, 0, pen, nil)
	return nil
}

// Chord is like [Surface.Arc], but the end points of the arc are joined
// by a straight line.  The resulting shape can be filled.
func (s *Surface) Chord(box [4]float64, start, end float64, paints ...Paint) error {
	pen, brush, err := splitPaints("chord", paints)
	if err != nil {
		return err
	}
	if err := checkArc("chord", box, start, end); err != nil {
		return err
	}
	s.paint(arc(box, start, end, arcChord), 0, 0, pen, brush)
	return nil
}

// PieSlice is like [Surface.Arc], but the end points of the arc are
// joined to the centre of the ellipse.  The resulting shape can be
// filled.
func (s *Surface) PieSlice(box [4]float64, start, end float64, paints ...Paint) error {
	pen, brush, err := splitPaints("pieslice", paints)
	if err != nil {
		return err
	}
	if err := checkArc("pieslice", box, start, end); err != nil {
		return err
	}
	s.paint(arc(box, start, end, arcPie), 0, 0, pen, brush)
	return nil
}

// checkBox makes sure that all corners of box are finite.
func checkBox(op string, box [4]float64) error {
	for _, v := range box {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("canvas: %s: %w: invalid box %v", op, ErrValue, box)
		}
	}
	return nil
}

// checkArc checks the box and the angles of an elliptical arc.
func checkArc(op string, box [4]float64, start, end float64) error {
	if err := checkBox(op, box); err != nil {
		return err
	}
	for _, a := range []float64{start, end} {
		if math.IsNaN(a) || math.IsInf(a, 0) {
			return fmt.Errorf("canvas: %s: %w: invalid angle %g", op, ErrValue, a)
		}
	}
	return nil
}

// shapeLines converts shape to straight line segments and checks the
// number of points.
func shapeLines(op string, shape Shape, minPoints int) (*path.Data, error) {
	if shape == nil {
		return nil, fmt.Errorf("canvas: %s: %w: missing shape", op, ErrType)
	}
	d, err := shape.lines()
	if err != nil {
		return nil, fmt.Errorf("canvas: %s: %w", op, err)
	}
	if n := len(d.Coords); n < minPoints {
		return nil, fmt.Errorf("canvas: %s: %w: need at least %d points, got %d", op, ErrValue, minPoints, n)
	}
	return d, nil
}

// paint fills and then strokes d, translated by (dx, dy) and mapped to
// device space by the surface transformation.
func (s *Surface) paint(d *path.Data, dx, dy float64, pen *Pen, brush *Brush) {
	s.ops++
	if pen == nil && brush == nil {
		return
	}
	dev := s.toDevice(d, dx, dy)

	if brush != nil {
		s.ink = pixbuf.NewInk(brush.ink())
		if brush.rule == EvenOdd {
			s.r.FillEvenOdd(dev, s.emit)
		} else {
			s.r.FillNonZero(dev, s.emit)
		}
	}
	if pen != nil && pen.width > 0 {
		s.ink = pixbuf.NewInk(pen.ink())
		s.r.Width = pen.width
		s.r.Cap = pen.cap
		s.r.Join = pen.join
		s.r.MiterLimit = pen.miterLimit
		s.r.Stroke(dev, s.emit)
	}
}

func (s *Surface) emit(y, xMin int, coverage []float32) {
	s.buf.Blend(y, xMin, coverage, s.ink, !s.antialias)
}

// toDevice returns d, translated by (dx, dy) and transformed by the
// surface transformation.  The result is only valid until the next call.
func (s *Surface) toDevice(d *path.Data, dx, dy float64) *path.Data {
	m := s.ctm
	s.dev.Cmds = d.Cmds
	s.dev.Coords = s.dev.Coords[:0]
	for _, v := range d.Coords {
		x, y := v.X+dx, v.Y+dy
		s.dev.Coords = append(s.dev.Coords, vec.Vec2{
			X: m[0]*x + m[2]*y + m[4],
			Y: m[1]*x + m[3]*y + m[5],
		})
	}
	return &s.dev
}
