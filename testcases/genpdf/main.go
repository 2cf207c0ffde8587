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

// Command genpdf writes every test scene as a PDF file, renders it with
// Ghostscript, and compares the result with the output of the canvas
// package.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"maps"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/canvas/internal/scene"
	"seehuhn.de/go/canvas/testcases"
)

var (
	refDir = flag.String("o", "testdata/reference", "output directory")
	gsPath = flag.String("gs", "gs", "Ghostscript executable")
)

func main() {
	flag.Parse()

	if err := os.MkdirAll(*refDir, 0755); err != nil {
		fatal(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(*refDir, name+".pdf")
			pngPath := filepath.Join(*refDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				fatal(fmt.Errorf("%s: %w", name, err))
			}
			if err := renderPNG(pdfPath, pngPath); err != nil {
				fatal(fmt.Errorf("%s: %w", name, err))
			}

			diff, count, err := compare(tc, pngPath)
			if err != nil {
				fatal(fmt.Errorf("%s: %w", name, err))
			}
			fmt.Printf("%-32s max diff %3d, %5d pixels differ\n", name, diff, count)
		}
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	// one point per pixel
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// white on black, so that gray levels are coverage values
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// PDF has the origin at the bottom left, the scenes at the top left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})
	if m := tc.Transform(); m != matrix.Identity {
		page.Transform(m)
	}

	page.SetFillColor(color.DeviceGray(1))
	page.SetStrokeColor(color.DeviceGray(1))

	if op, ok := tc.Op.(testcases.Stroke); ok {
		// canvas pens measure width in device pixels
		page.SetLineWidth(op.Width / scaleOf(tc.Transform()))
		page.SetLineCap(op.Cap)
		page.SetLineJoin(op.Join)
		page.SetMiterLimit(op.MiterLimit)
	}

	// PDF has no quadratic curves
	for cmd, pts := range tc.Path.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}

	switch op := tc.Op.(type) {
	case testcases.Fill:
		if op.Rule == testcases.EvenOdd {
			page.FillEvenOdd()
		} else {
			page.Fill()
		}
	case testcases.Stroke:
		page.Stroke()
	}

	return page.Close()
}

// scaleOf returns the factor by which m scales lengths, assuming m is
// a similarity transformation.
func scaleOf(m matrix.Matrix) float64 {
	det := m[0]*m[3] - m[1]*m[2]
	if det < 0 {
		det = -det
	}
	if det == 0 {
		return 1
	}
	return math.Sqrt(det)
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: one pixel per point
	// -dGraphicsAlphaBits=4: anti-aliasing
	cmd := exec.Command(
		*gsPath, "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// compare renders tc with the canvas package and compares the result with
// the reference image.  It returns the largest difference of gray values
// and the number of pixels which differ by more than 8 levels.
func compare(tc testcases.TestCase, pngPath string) (int, int, error) {
	f, err := os.Open(pngPath)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()
	ref, err := png.Decode(f)
	if err != nil {
		return 0, 0, err
	}
	gray, ok := ref.(*image.Gray)
	if !ok {
		return 0, 0, fmt.Errorf("unexpected image type %T", ref)
	}

	s, err := scene.Render(tc, "L", true)
	if err != nil {
		return 0, 0, err
	}
	got := s.Bytes()

	maxDiff, count := 0, 0
	for y := range tc.Height {
		for x := range tc.Width {
			d := int(got[y*tc.Width+x]) - int(gray.GrayAt(x, y).Y)
			d = max(d, -d)
			maxDiff = max(maxDiff, d)
			if d > 8 {
				count++
			}
		}
	}
	return maxDiff, count, nil
}
