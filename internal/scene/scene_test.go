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

package scene

import (
	"testing"

	"seehuhn.de/go/canvas/testcases"
)

func TestRender(t *testing.T) {
	for category, cases := range testcases.All {
		for _, tc := range cases {
			for _, mode := range []string{"L", "RGB", "RGBA"} {
				s, err := Render(tc, mode, true)
				if err != nil {
					t.Fatalf("%s_%s: %v", category, tc.Name, err)
				}
				if s.Mode() != mode {
					t.Errorf("%s_%s: expected mode %s, got %s", category, tc.Name, mode, s.Mode())
				}
				if got := s.Flush().Bounds().Dx(); got != tc.Width {
					t.Errorf("%s_%s: expected width %d, got %d", category, tc.Name, tc.Width, got)
				}
			}
		}
	}
}

// TestModesAgree checks that the gray values of L mode match the color
// channels of the other modes, for white ink on black.
func TestModesAgree(t *testing.T) {
	for _, tc := range testcases.All["fill"] {
		gray, err := Render(tc, "L", true)
		if err != nil {
			t.Fatal(err)
		}
		rgb, err := Render(tc, "RGB", true)
		if err != nil {
			t.Fatal(err)
		}
		g, c := gray.Bytes(), rgb.Bytes()
		for i, v := range g {
			if c[3*i] != v || c[3*i+1] != v || c[3*i+2] != v {
				t.Fatalf("%s: pixel %d: gray %d, rgb %v", tc.Name, i, v, c[3*i:3*i+3])
			}
		}
	}
}
