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

// Package scene draws the scenes from the testcases package onto a
// canvas surface.
package scene

import (
	"fmt"
	"image"

	"seehuhn.de/go/canvas"
	"seehuhn.de/go/canvas/testcases"
)

// Paint returns the pen or brush which implements the paint operation of
// tc, in the given color.
func Paint(tc testcases.TestCase, color any) (canvas.Paint, error) {
	switch op := tc.Op.(type) {
	case testcases.Fill:
		rule := canvas.NonZero
		if op.Rule == testcases.EvenOdd {
			rule = canvas.EvenOdd
		}
		return canvas.NewBrush(color, rule)
	case testcases.Stroke:
		return canvas.NewPen(color,
			canvas.Width(op.Width),
			canvas.Cap(op.Cap),
			canvas.Join(op.Join),
			canvas.MiterLimit(op.MiterLimit))
	}
	return nil, fmt.Errorf("unsupported operation %T", tc.Op)
}

// Render draws tc in white on black, onto a new surface of the given mode.
func Render(tc testcases.TestCase, mode string, antialias bool) (*canvas.Surface, error) {
	s, err := canvas.New(canvas.Config{
		Mode:       mode,
		Size:       image.Pt(tc.Width, tc.Height),
		Background: canvas.Black,
	})
	if err != nil {
		return nil, err
	}
	s.SetAntialias(antialias)

	paint, err := Paint(tc, canvas.White)
	if err != nil {
		return nil, err
	}
	s.SetMatrix(tc.Transform())
	if err := s.DrawPath(canvas.NewPathData(tc.Path), paint); err != nil {
		return nil, err
	}
	return s, nil
}
