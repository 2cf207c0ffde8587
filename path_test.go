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
	"errors"
	"slices"
	"testing"

	"seehuhn.de/go/geom/path"
)

func TestPathCoords(t *testing.T) {
	p := &Path{}
	p.MoveTo(0, 0)
	p.LineTo(1, 1)
	if got, want := p.Coords(), []float64{0, 0, 1, 1}; !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	// fixed regression fixture for curve flattening
	p.CurveTo(0, 0, 0, 0, 0, 0)
	p.Close()
	if got, want := p.Coords(), []float64{0, 0, 1, 1, 0.125, 0.125, 0, 0}; !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if p.Len() != 4 {
		t.Errorf("expected 4 vertices, got %d", p.Len())
	}
}

func TestNewPath(t *testing.T) {
	for _, coords := range [][]float64{nil, {0, 0}, {0, 0, 0, 0}, {1, 2, 3, 4, 5, 6}} {
		p, err := NewPath(coords...)
		if err != nil {
			t.Errorf("NewPath(%v): %v", coords, err)
			continue
		}
		if got := p.Coords(); !slices.Equal(got, coords) {
			t.Errorf("NewPath(%v).Coords() = %v", coords, got)
		}
	}

	_, err := NewPath(1, 2, 3)
	if !errors.Is(err, ErrValue) {
		t.Errorf("expected ErrValue, got %v", err)
	}
}

func TestPathImplicitStart(t *testing.T) {
	p := &Path{}
	p.LineTo(3, 4).LineTo(5, 6)
	if got, want := p.Coords(), []float64{3, 4, 5, 6}; !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	d := p.Data()
	if len(d.Cmds) != 2 || d.Cmds[0] != path.CmdMoveTo || d.Cmds[1] != path.CmdLineTo {
		t.Errorf("unexpected commands %v", d.Cmds)
	}
}

func TestPathAfterClose(t *testing.T) {
	p := &Path{}
	p.MoveTo(0, 0).LineTo(10, 0).LineTo(10, 10).Close()
	p.LineTo(0, 10)

	d := p.Data()
	wantCmds := []path.Command{
		path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose,
		path.CmdMoveTo, path.CmdLineTo,
	}
	if !slices.Equal(d.Cmds, wantCmds) {
		t.Errorf("expected %v, got %v", wantCmds, d.Cmds)
	}
	if got, want := p.Coords(), []float64{0, 0, 10, 0, 10, 10, 0, 0, 0, 10}; !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	// a second Close does not add anything
	n := len(p.Data().Cmds)
	p.Close().Close()
	if got := len(p.Data().Cmds); got != n+1 {
		t.Errorf("expected %d commands, got %d", n+1, got)
	}
}

func TestPathRelative(t *testing.T) {
	abs := (&Path{}).MoveTo(10, 10).LineTo(20, 10).CurveTo(30, 10, 30, 20, 20, 30)
	rel := (&Path{}).RMoveTo(10, 10).RLineTo(10, 0).RCurveTo(10, 0, 10, 10, 0, 20)
	if !slices.Equal(abs.Coords(), rel.Coords()) {
		t.Errorf("relative path differs:\n%v\n%v", abs.Coords(), rel.Coords())
	}
}

func TestPathCurvesKept(t *testing.T) {
	p := (&Path{}).MoveTo(0, 0).QuadTo(50, 100, 100, 0).CurveTo(100, 50, 0, 50, 0, 0)
	d := p.Data()
	wantCmds := []path.Command{path.CmdMoveTo, path.CmdQuadTo, path.CmdCubeTo}
	if !slices.Equal(d.Cmds, wantCmds) {
		t.Errorf("expected %v, got %v", wantCmds, d.Cmds)
	}
	if p.Len() < 10 {
		t.Errorf("curves flattened to only %d vertices", p.Len())
	}

	// the copy is independent of the path
	d.Coords[0].X = 99
	if p.Coords()[0] != 0 {
		t.Error("Data does not return a copy")
	}

	// rebuilding from the data gives the same polygon
	q := NewPathData(p.Data())
	if !slices.Equal(p.Coords(), q.Coords()) {
		t.Error("NewPathData changes the polygon")
	}
}

func TestPathPolygon(t *testing.T) {
	p := &Path{}
	if err := p.Polygon(0, 0, 10, 0, 5, 5); err != nil {
		t.Fatal(err)
	}
	if err := p.Polygon(0, 0, 10); !errors.Is(err, ErrValue) {
		t.Errorf("expected ErrValue, got %v", err)
	}
	d := p.Data()
	if d.Cmds[len(d.Cmds)-1] != path.CmdClose {
		t.Error("polygon is not closed")
	}
}

func TestPathHugeCurve(t *testing.T) {
	for _, y := range []float64{1e16, 1e40} {
		p := (&Path{}).MoveTo(0, 0).CurveTo(0, y, 10, -y, 10, 0).QuadTo(15, y, 20, 0)
		coords := p.Coords()
		if n := len(coords) / 2; n > 2*(1<<16)+1 {
			t.Errorf("y=%g: %d vertices", y, n)
		}
		if got := coords[len(coords)-2:]; got[0] != 20 || got[1] != 0 {
			t.Errorf("y=%g: path ends at %v, expected [20 0]", y, got)
		}
		if got := p.Len(); got != len(coords)/2 {
			t.Errorf("y=%g: Len() = %d, expected %d", y, got, len(coords)/2)
		}
	}
}
