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
	"bytes"
	"errors"
	"image"
	"math"
	"testing"

	"seehuhn.de/go/canvas/pixbuf"
)

func byteSum(b []byte) int {
	sum := 0
	for _, x := range b {
		sum += int(x)
	}
	return sum
}

func mustPen(t *testing.T, c any, opts ...PenOption) Pen {
	t.Helper()
	p, err := NewPen(c, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func mustBrush(t *testing.T, c any, opts ...BrushOption) Brush {
	t.Helper()
	b, err := NewBrush(c, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func blank(t *testing.T, mode string, w, h int) *Surface {
	t.Helper()
	s, err := New(Config{Mode: mode, Size: image.Pt(w, h), Background: "black"})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

// TestSymbolLine draws a vertical hairline centred on a pixel boundary.
// The two adjacent columns are each half covered.
func TestSymbolLine(t *testing.T) {
	img := pixbuf.NewRGB(image.Rect(0, 0, 600, 800))
	s, err := Adopt(img)
	if err != nil {
		t.Fatal(err)
	}
	sym, err := ParseSymbol("M400 200 L400 400")
	if err != nil {
		t.Fatal(err)
	}
	err = s.Symbol(Coords{0, 0}, sym, mustPen(t, "red"))
	if err != nil {
		t.Fatal(err)
	}
	s.Flush()

	if got := byteSum(img.Pix); got != 50800 {
		t.Errorf("expected pixel sum 50800, got %d", got)
	}
}

func TestRectanglePixelSum(t *testing.T) {
	cases := []struct {
		box  [4]float64
		want int
	}{
		{[4]float64{10, 20, 50, 40}, 40 * 20 * 255},
		{[4]float64{50, 40, 10, 20}, 40 * 20 * 255},
		// the two outer columns are half covered
		{[4]float64{10.5, 20, 50.5, 40}, 20 * (39*255 + 2*127)},
	}
	for _, c := range cases {
		s := blank(t, "RGB", 100, 100)
		err := s.Rectangle(c.box, mustBrush(t, "red"))
		if err != nil {
			t.Fatal(err)
		}
		if got := byteSum(s.Bytes()); got != c.want {
			t.Errorf("%v: expected %d, got %d", c.box, c.want, got)
		}
	}
}

func TestFillThenStroke(t *testing.T) {
	pen := mustPen(t, "blue", Width(2))
	brush := mustBrush(t, "red")
	box := [4]float64{10, 10, 30, 30}

	s1 := blank(t, "RGB", 40, 40)
	_ = s1.Rectangle(box, pen, brush)
	s2 := blank(t, "RGB", 40, 40)
	_ = s2.Rectangle(box, brush, pen)
	if !bytes.Equal(s1.Bytes(), s2.Bytes()) {
		t.Error("order of paints changes the result")
	}

	img := s1.Snapshot()
	if c := img.NRGBAAt(10, 20); c.R != 0 || c.B != 255 {
		t.Errorf("outline pixel: expected blue, got %v", c)
	}
	if c := img.NRGBAAt(20, 20); c.R != 255 || c.B != 0 {
		t.Errorf("inside pixel: expected red, got %v", c)
	}
	if c := img.NRGBAAt(5, 5); c.R != 0 || c.B != 0 {
		t.Errorf("outside pixel: expected black, got %v", c)
	}
}

func TestPaintErrors(t *testing.T) {
	pen := mustPen(t, "white")
	brush := mustBrush(t, "white")
	tri := Coords{10, 10, 30, 10, 20, 30}

	cases := []struct {
		name string
		draw func(s *Surface) error
		want error
	}{
		{"line_brush", func(s *Surface) error { return s.Line(tri, brush) }, ErrType},
		{"line_pen_brush", func(s *Surface) error { return s.Line(tri, pen, brush) }, ErrType},
		{"two_pens", func(s *Surface) error { return s.Polygon(tri, pen, pen) }, ErrType},
		{"two_brushes", func(s *Surface) error { return s.Polygon(tri, brush, brush) }, ErrType},
		{"nil_paint", func(s *Surface) error { return s.Polygon(tri, brush, nil) }, ErrType},
		{"nil_pen", func(s *Surface) error { return s.Polygon(tri, (*Pen)(nil)) }, ErrType},
		{"nil_shape", func(s *Surface) error { return s.Polygon(nil, brush) }, ErrType},
		{"nil_path", func(s *Surface) error { return s.DrawPath((*Path)(nil), brush) }, ErrType},
		{"arc_brush", func(s *Surface) error { return s.Arc([4]float64{0, 0, 10, 10}, 0, 90, brush) }, ErrType},
		{"odd_coords", func(s *Surface) error { return s.Line(Coords{1, 2, 3}, pen) }, ErrValue},
		{"short_line", func(s *Surface) error { return s.Line(Coords{1, 2}, pen) }, ErrValue},
		{"short_polygon", func(s *Surface) error { return s.Polygon(Coords{1, 2, 3, 4}, pen) }, ErrValue},
		{"empty_path", func(s *Surface) error { return s.DrawPath(&Path{}, brush) }, ErrValue},
		{"odd_position", func(s *Surface) error { return s.Symbol(Coords{1}, tri, brush) }, ErrValue},
		{"no_position", func(s *Surface) error { return s.Symbol(nil, tri, brush) }, ErrValue},
		{"nan_box", func(s *Surface) error { return s.Rectangle([4]float64{0, 0, math.NaN(), 10}, brush) }, ErrValue},
		{"inf_box", func(s *Surface) error { return s.Ellipse([4]float64{0, 0, 10, math.Inf(1)}, brush) }, ErrValue},
		{"arc_inf_end", func(s *Surface) error { return s.Arc([4]float64{0, 0, 10, 10}, 0, math.Inf(-1), pen) }, ErrValue},
		{"chord_nan_start", func(s *Surface) error { return s.Chord([4]float64{0, 0, 10, 10}, math.NaN(), 90, brush) }, ErrValue},
		{"pieslice_inf_start", func(s *Surface) error { return s.PieSlice([4]float64{0, 0, 10, 10}, math.Inf(1), 0, brush) }, ErrValue},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := blank(t, "L", 40, 40)
			before := s.Bytes()
			err := c.draw(s)
			if !errors.Is(err, c.want) {
				t.Errorf("expected %v, got %v", c.want, err)
			}
			if !bytes.Equal(before, s.Bytes()) {
				t.Error("failed call modified the pixels")
			}
		})
	}
}

func TestNoPaints(t *testing.T) {
	s := blank(t, "L", 20, 20)
	if err := s.Polygon(Coords{1, 1, 10, 1, 5, 10}); err != nil {
		t.Errorf("unexpected error %v", err)
	}
	if err := s.Ellipse([4]float64{0, 0, 10, 10}); err != nil {
		t.Errorf("unexpected error %v", err)
	}
	if byteSum(s.Bytes()) != 0 {
		t.Error("drawing without paint modified the pixels")
	}
}

func TestInvisiblePaints(t *testing.T) {
	s := blank(t, "L", 20, 20)
	pen := mustPen(t, "white", Width(0))
	brush := mustBrush(t, "white", Opacity(0))
	if err := s.Rectangle([4]float64{2, 2, 18, 18}, pen, brush); err != nil {
		t.Fatal(err)
	}
	if byteSum(s.Bytes()) != 0 {
		t.Error("invisible paints modified the pixels")
	}
}

func TestStyleErrors(t *testing.T) {
	for _, opts := range [][]PenOption{
		{Width(-1)},
		{Width(math.NaN())},
		{Opacity(256)},
		{Opacity(-1)},
		{MiterLimit(0.5)},
		{Cap(17)},
		{Join(17)},
	} {
		if _, err := NewPen("black", opts...); !errors.Is(err, ErrValue) {
			t.Errorf("%v: expected ErrValue, got %v", opts, err)
		}
	}
	if _, err := NewBrush("black", FillRule(5)); !errors.Is(err, ErrValue) {
		t.Errorf("expected ErrValue, got %v", err)
	}
	if _, err := NewPen("nocolor"); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("expected ErrInvalidColor, got %v", err)
	}

	p := mustPen(t, 0, Width(1.5), Opacity(128))
	if p.Width() != 1.5 || p.Opacity() != 128 || p.Color() != Black {
		t.Errorf("unexpected pen %+v", p)
	}
	b := mustBrush(t, [3]int{0, 0, 0}, EvenOdd)
	if b.Rule() != EvenOdd || b.Opacity() != 255 || b.Color() != Black {
		t.Errorf("unexpected brush %+v", b)
	}
}

func TestOpacity(t *testing.T) {
	s := blank(t, "L", 4, 4)
	_ = s.Rectangle([4]float64{0, 0, 4, 4}, mustBrush(t, "white", Opacity(128)))
	for i, x := range s.Bytes() {
		if x != 127 {
			t.Fatalf("pixel %d: expected 127, got %d", i, x)
		}
	}
}

func TestAntialiasOff(t *testing.T) {
	s := blank(t, "L", 20, 10)
	s.SetAntialias(false)
	brush := mustBrush(t, "white")
	_ = s.Rectangle([4]float64{2.4, 0, 5.6, 10}, brush)

	row := s.Bytes()[:20]
	want := []byte{0, 0, 255, 255, 255, 255, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	if !bytes.Equal(row, want) {
		t.Errorf("expected %v, got %v", want, row)
	}
}

func TestEllipseArea(t *testing.T) {
	s := blank(t, "L", 100, 80)
	_ = s.Ellipse([4]float64{20, 20, 80, 60}, mustBrush(t, "white"))

	got := float64(byteSum(s.Bytes())) / 255
	want := math.Pi * 30 * 20
	if math.Abs(got-want) > 0.01*want {
		t.Errorf("expected area %.1f, got %.1f", want, got)
	}
}

func TestEllipseSteps(t *testing.T) {
	cases := []struct {
		rx, ry float64
		want   int
	}{
		{0, 0, 4},
		{0.1, 0.1, 4},
		{25, 25, 31},
		{-25, 25, 31},
		{1e12, 1e12, maxEllipseSteps},
		{1e300, 1e300, maxEllipseSteps},
	}
	for _, c := range cases {
		if got := ellipseSteps(c.rx, c.ry); got != c.want {
			t.Errorf("ellipseSteps(%g, %g) = %d, want %d", c.rx, c.ry, got, c.want)
		}
	}
}

func TestArcs(t *testing.T) {
	box := [4]float64{10, 10, 90, 90}
	white := mustBrush(t, "white")
	pen := mustPen(t, "white", Width(3))

	type sample struct {
		x, y    int
		painted bool
	}
	cases := []struct {
		name    string
		draw    func(s *Surface) error
		samples []sample
	}{
		{
			name: "arc",
			draw: func(s *Surface) error { return s.Arc(box, 0, 90, pen) },
			samples: []sample{
				{50 + 28, 50 - 29, true}, // on the arc, upper right
				{50 - 28, 50 + 28, false},
				{50, 50, false},
			},
		},
		{
			name: "pieslice",
			draw: func(s *Surface) error { return s.PieSlice(box, 0, 90, white) },
			samples: []sample{
				{60, 40, true},
				{40, 40, false},
				{60, 60, false},
			},
		},
		{
			name: "chord",
			draw: func(s *Surface) error { return s.Chord(box, 0, 180, white) },
			samples: []sample{
				{50, 40, true},
				{50, 60, false},
			},
		},
		{
			name: "wrapped",
			draw: func(s *Surface) error { return s.PieSlice(box, 270, 0, white) },
			samples: []sample{
				{60, 60, true},
				{60, 40, false},
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := blank(t, "L", 100, 100)
			if err := c.draw(s); err != nil {
				t.Fatal(err)
			}
			pix := s.Bytes()
			for _, p := range c.samples {
				v := pix[p.y*100+p.x]
				if p.painted && v < 128 || !p.painted && v != 0 {
					t.Errorf("pixel (%d,%d) = %d, painted=%t", p.x, p.y, v, p.painted)
				}
			}
		})
	}
}

func TestArcSweep(t *testing.T) {
	cases := []struct {
		start, end float64
		want       float64
	}{
		{0, 90, 90},
		{270, 0, 90},
		{-90, 0, 90},
		{0, 360, 360},
		{0, 720, 360},
		{10, 10, 0},
		{0, -360, 0},
		{0, -10, 350},
		{720, 810, 90},
	}
	for _, c := range cases {
		if got := arcSweep(c.start, c.end); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("arcSweep(%g, %g) = %g, want %g", c.start, c.end, got, c.want)
		}
	}

	for _, c := range [][2]float64{{0, -1e300}, {1e300, 0}, {1.7e308, -1.7e308}, {-1.7e308, 1.7e308}} {
		if got := arcSweep(c[0], c[1]); !(got >= 0 && got <= 360) {
			t.Errorf("arcSweep(%g, %g) = %g, out of range", c[0], c[1], got)
		}
	}
}

func TestHugeArcAngles(t *testing.T) {
	box := [4]float64{10, 10, 90, 90}
	white := mustBrush(t, "white")

	got := blank(t, "L", 100, 100)
	if err := got.Chord(box, 0, -1.234e300, white); err != nil {
		t.Fatal(err)
	}
	want := blank(t, "L", 100, 100)
	if err := want.Chord(box, 0, 360+math.Mod(-1.234e300, 360), white); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got.Bytes(), want.Bytes()) {
		t.Error("huge negative angle differs from the reduced angle")
	}
	if byteSum(got.Bytes()) == 0 {
		t.Error("nothing was drawn")
	}

	if err := got.Arc(box, -1e300, 1e300, mustPen(t, "white")); err != nil {
		t.Fatal(err)
	}
}

func TestEvenOddBrush(t *testing.T) {
	p := &Path{}
	_ = p.Polygon(0, 0, 30, 0, 30, 30, 0, 30)
	_ = p.Polygon(10, 10, 20, 10, 20, 20, 10, 20)

	nonZero := blank(t, "L", 30, 30)
	_ = nonZero.DrawPath(p, mustBrush(t, "white"))
	evenOdd := blank(t, "L", 30, 30)
	_ = evenOdd.DrawPath(p, mustBrush(t, "white", EvenOdd))

	if v := nonZero.Bytes()[15*30+15]; v != 255 {
		t.Errorf("nonzero: centre pixel %d", v)
	}
	if v := evenOdd.Bytes()[15*30+15]; v != 0 {
		t.Errorf("even-odd: centre pixel %d", v)
	}
	if got, want := byteSum(evenOdd.Bytes()), (900-100)*255; got != want {
		t.Errorf("even-odd: expected sum %d, got %d", want, got)
	}
}

func TestSymbolPositions(t *testing.T) {
	sym, _ := ParseSymbol("M0 0 h4 v4 h-4 z")
	brush := mustBrush(t, "white")

	s1 := blank(t, "L", 20, 20)
	_ = s1.Symbol(Coords{2, 2, 10, 12}, sym, brush)

	s2 := blank(t, "L", 20, 20)
	_ = s2.Rectangle([4]float64{2, 2, 6, 6}, brush)
	_ = s2.Rectangle([4]float64{10, 12, 14, 16}, brush)

	if !bytes.Equal(s1.Bytes(), s2.Bytes()) {
		t.Error("symbol placement differs from rectangles")
	}
}

func TestTransformReset(t *testing.T) {
	brush := mustBrush(t, "white")
	tri := Coords{2, 2, 12, 2, 7, 12}
	shifted := Coords{7, 9, 17, 9, 12, 19}

	s1 := blank(t, "L", 30, 30)
	_ = s1.SetTransform(5, 7)
	_ = s1.Polygon(tri, brush)
	_ = s1.SetTransform()
	_ = s1.Polygon(tri, brush)

	s2 := blank(t, "L", 30, 30)
	_ = s2.Polygon(shifted, brush)
	_ = s2.Polygon(tri, brush)

	if !bytes.Equal(s1.Bytes(), s2.Bytes()) {
		t.Error("reset transform does not restore user coordinates")
	}
}
