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
	"image"
	"log/slog"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/canvas/testcases"
)

// scenePaint converts the paint operation of a scene.
func scenePaint(t *testing.T, op testcases.Operation) Paint {
	t.Helper()
	switch op := op.(type) {
	case testcases.Fill:
		rule := NonZero
		if op.Rule == testcases.EvenOdd {
			rule = EvenOdd
		}
		return mustBrush(t, "white", rule)
	case testcases.Stroke:
		return mustPen(t, "white",
			Width(op.Width), Cap(op.Cap), Join(op.Join), MiterLimit(op.MiterLimit))
	}
	t.Fatalf("unknown operation %T", op)
	return nil
}

// transformed returns a copy of p with all vertices mapped by m.
func transformed(p *Path, m matrix.Matrix) *Path {
	res := &Path{}
	res.flat.Cmds = slices.Clone(p.flat.Cmds)
	for _, v := range p.flat.Coords {
		res.flat.Coords = append(res.flat.Coords, vec.Vec2{
			X: m[0]*v.X + m[2]*v.Y + m[4],
			Y: m[1]*v.X + m[3]*v.Y + m[5],
		})
	}
	return res
}

// TestSceneTransform checks that drawing under a transformation gives the
// same pixels as drawing pre-transformed geometry.
func TestSceneTransform(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				size := image.Pt(tc.Width, tc.Height)
				paint := scenePaint(t, tc.Op)
				p := NewPathData(tc.Path)
				m := tc.Transform()

				s1, _ := New(Config{Mode: "L", Size: size, Background: "black"})
				s1.SetMatrix(m)
				if err := s1.DrawPath(p, paint); err != nil {
					t.Fatal(err)
				}

				s2, _ := New(Config{Mode: "L", Size: size, Background: "black"})
				if err := s2.DrawPath(transformed(p, m), paint); err != nil {
					t.Fatal(err)
				}

				got, want := s1.Bytes(), s2.Bytes()
				if !bytes.Equal(got, want) {
					t.Error("transformed drawing differs")
				}
				if byteSum(got) == 0 {
					t.Error("scene is empty")
				}
			})
		}
	}
}

// TestSceneSymbol draws the straight-line scenes through the symbol
// parser and compares with the path.
func TestSceneSymbol(t *testing.T) {
	for _, tc := range testcases.All["fill"] {
		t.Run(tc.Name, func(t *testing.T) {
			data := symbolData(tc.Path)
			sym, err := ParseSymbol(data)
			if err != nil {
				t.Fatalf("%q: %v", data, err)
			}
			got, want := sym.Coords(), NewPathData(tc.Path).Coords()
			if len(got) != len(want) {
				t.Fatalf("%q: expected %d coordinates, got %d", data, len(want), len(got))
			}
			for i := range got {
				if math.Abs(got[i]-want[i]) > 1e-9 {
					t.Errorf("%q: coordinate %d: expected %g, got %g", data, i, want[i], got[i])
				}
			}
		})
	}
}

// symbolData writes d in path data syntax.
func symbolData(d *path.Data) string {
	var b strings.Builder
	for cmd, pts := range d.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			b.WriteString("M")
		case path.CmdLineTo:
			b.WriteString("L")
		case path.CmdQuadTo:
			b.WriteString("Q")
		case path.CmdCubeTo:
			b.WriteString("C")
		case path.CmdClose:
			b.WriteString("Z")
		}
		for _, v := range pts {
			b.WriteString(" " + strconv.FormatFloat(v.X, 'g', -1, 64) + "," + strconv.FormatFloat(v.Y, 'g', -1, 64) + " ")
		}
	}
	return b.String()
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	s, err := New(Config{Mode: "RGBA", Size: image.Pt(3, 4)})
	if err != nil {
		t.Fatal(err)
	}
	_ = s.Rectangle([4]float64{0, 0, 1, 1}, mustBrush(t, "black"))
	s.Flush()

	out := buf.String()
	for _, want := range []string{"new surface", "mode=RGBA", "width=3", "flush", "ops=1"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output misses %q:\n%s", want, out)
		}
	}

	SetLogger(nil)
	buf.Reset()
	s.Flush()
	if buf.Len() != 0 {
		t.Error("logging after SetLogger(nil)")
	}
}
