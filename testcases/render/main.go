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

// Command render draws all test scenes and writes them as image files.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"seehuhn.de/go/canvas"
	"seehuhn.de/go/canvas/internal/scene"
	"seehuhn.de/go/canvas/testcases"
)

var (
	outDir    = flag.String("o", "testdata/render", "output directory")
	format    = flag.String("format", "png", "image format: png, bmp or tiff")
	mode      = flag.String("mode", "L", "pixel mode: L, RGB or RGBA")
	antialias = flag.Bool("aa", true, "enable anti-aliasing")
	verbose   = flag.Bool("v", false, "log drawing operations")
)

func main() {
	flag.Parse()

	if *verbose {
		canvas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	encode, err := encoder(*format)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			fileName := filepath.Join(*outDir, name+"."+*format)
			if err := renderScene(tc, fileName, encode); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
				os.Exit(1)
			}
		}
	}
}

func encoder(format string) (func(io.Writer, image.Image) error, error) {
	switch format {
	case "png":
		return png.Encode, nil
	case "bmp":
		return bmp.Encode, nil
	case "tiff":
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
		}, nil
	}
	return nil, fmt.Errorf("unknown image format %q", format)
}

func renderScene(tc testcases.TestCase, fileName string, encode func(io.Writer, image.Image) error) error {
	s, err := scene.Render(tc, *mode, *antialias)
	if err != nil {
		return err
	}

	// RGB surfaces use a custom image type, which the encoders only
	// handle through the generic code path.
	var img image.Image = s.Flush()
	if s.Mode() == "RGB" {
		img = s.Snapshot()
	}

	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	if err := encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
