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
	"image/color"
	"math"

	"seehuhn.de/go/pdf/graphics"
)

// Paint is implemented by [Pen] and [Brush].  A drawing primitive takes
// at most one of each, in any order.
type Paint interface {
	isPaint()
}

// Pen describes how the outline of a shape is drawn.
// Pens are immutable values, created by [NewPen].
type Pen struct {
	color      Color
	width      float64
	opacity    uint8
	cap        graphics.LineCapStyle
	join       graphics.LineJoinStyle
	miterLimit float64
}

func (Pen) isPaint() {}

// Brush describes how the inside of a shape is filled.
// Brushes are immutable values, created by [NewBrush].
type Brush struct {
	color   Color
	opacity uint8
	rule    FillRule
}

func (Brush) isPaint() {}

// PenOption modifies the defaults of [NewPen].
type PenOption interface {
	applyPen(*Pen) error
}

// BrushOption modifies the defaults of [NewBrush].
type BrushOption interface {
	applyBrush(*Brush) error
}

// Width sets the line width of a pen, in device pixels.  The default
// is 1.  A width of 0 is valid and draws nothing.
type Width float64

func (w Width) applyPen(p *Pen) error {
	if !(w >= 0) || math.IsInf(float64(w), 1) {
		return fmt.Errorf("canvas: pen: %w: width %g", ErrValue, float64(w))
	}
	p.width = float64(w)
	return nil
}

// Opacity scales the alpha value of the paint color.  The range is 0 to
// 255, the default is 255.
type Opacity int

func (o Opacity) check() error {
	if o < 0 || o > 255 {
		return fmt.Errorf("canvas: %w: opacity %d out of range", ErrValue, int(o))
	}
	return nil
}

func (o Opacity) applyPen(p *Pen) error {
	if err := o.check(); err != nil {
		return err
	}
	p.opacity = uint8(o)
	return nil
}

func (o Opacity) applyBrush(b *Brush) error {
	if err := o.check(); err != nil {
		return err
	}
	b.opacity = uint8(o)
	return nil
}

// MiterLimit limits the length of miter joins, as a multiple of the line
// width.  Corners which would exceed the limit are beveled.  The value
// must be at least 1, the default is 4.
type MiterLimit float64

func (m MiterLimit) applyPen(p *Pen) error {
	if !(m >= 1) {
		return fmt.Errorf("canvas: pen: %w: miter limit %g", ErrValue, float64(m))
	}
	p.miterLimit = float64(m)
	return nil
}

// Cap is the shape of the ends of open lines.
type Cap graphics.LineCapStyle

// These are the supported line caps.
const (
	CapButt   = Cap(graphics.LineCapButt)
	CapRound  = Cap(graphics.LineCapRound)
	CapSquare = Cap(graphics.LineCapSquare)
)

func (c Cap) applyPen(p *Pen) error {
	switch c {
	case CapButt, CapRound, CapSquare:
		p.cap = graphics.LineCapStyle(c)
		return nil
	}
	return fmt.Errorf("canvas: pen: %w: line cap %d", ErrValue, int(c))
}

// Join is the shape of the corners of lines.
type Join graphics.LineJoinStyle

// These are the supported line joins.
const (
	JoinMiter = Join(graphics.LineJoinMiter)
	JoinRound = Join(graphics.LineJoinRound)
	JoinBevel = Join(graphics.LineJoinBevel)
)

func (j Join) applyPen(p *Pen) error {
	switch j {
	case JoinMiter, JoinRound, JoinBevel:
		p.join = graphics.LineJoinStyle(j)
		return nil
	}
	return fmt.Errorf("canvas: pen: %w: line join %d", ErrValue, int(j))
}

// FillRule decides which points are inside a self-intersecting shape.
type FillRule uint8

const (
	// NonZero fills all points around which the outline winds at
	// least once.  This is the default.
	NonZero FillRule = iota

	// EvenOdd fills points around which the outline winds an odd
	// number of times.
	EvenOdd
)

func (r FillRule) applyBrush(b *Brush) error {
	if r > EvenOdd {
		return fmt.Errorf("canvas: brush: %w: fill rule %d", ErrValue, int(r))
	}
	b.rule = r
	return nil
}

// NewPen returns a pen which draws lines in the given color, see
// [ParseColor] for the accepted forms.
func NewPen(c any, opts ...PenOption) (Pen, error) {
	col, err := ParseColor(c)
	if err != nil {
		return Pen{}, err
	}
	p := Pen{
		color:      col,
		width:      1,
		opacity:    255,
		cap:        graphics.LineCapButt,
		join:       graphics.LineJoinMiter,
		miterLimit: 4,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.applyPen(&p); err != nil {
			return Pen{}, err
		}
	}
	return p, nil
}

// Color returns the color of the pen.
func (p Pen) Color() Color { return p.color }

// Width returns the line width of the pen.
func (p Pen) Width() float64 { return p.width }

// Opacity returns the opacity of the pen.
func (p Pen) Opacity() int { return int(p.opacity) }

// ink returns the color used for compositing.
func (p Pen) ink() color.NRGBA {
	return applyOpacity(p.color, p.opacity)
}

// NewBrush returns a brush which fills shapes with the given color, see
// [ParseColor] for the accepted forms.
func NewBrush(c any, opts ...BrushOption) (Brush, error) {
	col, err := ParseColor(c)
	if err != nil {
		return Brush{}, err
	}
	b := Brush{color: col, opacity: 255}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.applyBrush(&b); err != nil {
			return Brush{}, err
		}
	}
	return b, nil
}

// Color returns the color of the brush.
func (b Brush) Color() Color { return b.color }

// Opacity returns the opacity of the brush.
func (b Brush) Opacity() int { return int(b.opacity) }

// Rule returns the fill rule of the brush.
func (b Brush) Rule() FillRule { return b.rule }

func (b Brush) ink() color.NRGBA {
	return applyOpacity(b.color, b.opacity)
}

func applyOpacity(c Color, opacity uint8) color.NRGBA {
	a := (int(c.A)*int(opacity) + 127) / 255
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a)}
}

// splitPaints separates pens from brushes.  At most one of each may be
// given.
func splitPaints(op string, paints []Paint) (*Pen, *Brush, error) {
	var pen *Pen
	var brush *Brush
	for i, p := range paints {
		switch p := p.(type) {
		case Pen:
			if pen != nil {
				return nil, nil, fmt.Errorf("canvas: %s: %w: more than one pen", op, ErrType)
			}
			pen = &p
		case *Pen:
			if p == nil {
				return nil, nil, fmt.Errorf("canvas: %s: %w: paint %d is nil", op, ErrType, i)
			}
			if pen != nil {
				return nil, nil, fmt.Errorf("canvas: %s: %w: more than one pen", op, ErrType)
			}
			pen = p
		case Brush:
			if brush != nil {
				return nil, nil, fmt.Errorf("canvas: %s: %w: more than one brush", op, ErrType)
			}
			brush = &p
		case *Brush:
			if p == nil {
				return nil, nil, fmt.Errorf("canvas: %s: %w: paint %d is nil", op, ErrType, i)
			}
			if brush != nil {
				return nil, nil, fmt.Errorf("canvas: %s: %w: more than one brush", op, ErrType)
			}
			brush = p
		default:
			return nil, nil, fmt.Errorf("canvas: %s: %w: paint %d is %T", op, ErrType, i, p)
		}
	}
	return pen, brush, nil
}
