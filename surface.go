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
	"fmt"
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/canvas/pixbuf"
	"seehuhn.de/go/canvas/raster"
)

// Config holds the parameters for [New].
type Config struct {
	// Mode is the pixel format, one of "L", "RGB" or "RGBA".
	// The default is "RGB".
	Mode string

	// Size is the width and height of the image in pixels.
	// It must be given.
	Size image.Point

	// Background is the initial color of all pixels, in any form
	// accepted by [ParseColor].  The default is opaque white.
	Background any
}

// Surface draws onto an image.
//
// Every drawing call modifies the pixels of the image before it returns.
// [Surface.Flush] must be called before the image is used elsewhere.
//
// A Surface is not safe for concurrent use.
type Surface struct {
	buf       *pixbuf.Buffer
	ctm       matrix.Matrix
	antialias bool
	ops       int // drawing calls since the last flush

	r   *raster.Rasterizer
	ink pixbuf.Ink
	dev path.Data // scratch space for device coordinates
}

// New allocates a new image and returns a Surface which draws on it.
func New(cfg Config) (*Surface, error) {
	if cfg.Size == (image.Point{}) {
		return nil, fmt.Errorf("canvas: new: %w: missing size", ErrType)
	}
	if cfg.Size.X <= 0 || cfg.Size.Y <= 0 {
		return nil, fmt.Errorf("canvas: new: %w: invalid size %dx%d", ErrValue, cfg.Size.X, cfg.Size.Y)
	}
	modeName := cfg.Mode
	if modeName == "" {
		modeName = string(pixbuf.ModeRGB)
	}
	mode, err := pixbuf.ParseMode(modeName)
	if err != nil {
		return nil, fmt.Errorf("canvas: new: %w: %w", ErrValue, err)
	}
	bg := White
	if cfg.Background != nil {
		bg, err = ParseColor(cfg.Background)
		if err != nil {
			return nil, err
		}
	}

	buf, err := pixbuf.New(mode, cfg.Size.X, cfg.Size.Y)
	if err != nil {
		return nil, fmt.Errorf("canvas: new: %w: %w", ErrValue, err)
	}
	buf.Fill(color.NRGBA(bg))

	Logger().Debug("canvas: new surface",
		"mode", mode, "width", cfg.Size.X, "height", cfg.Size.Y, "background", bg)
	return newSurface(buf), nil
}

// Adopt returns a Surface which draws directly on the pixels of img.
// The supported image types are [*image.Gray] (mode "L"), [*pixbuf.RGB]
// (mode "RGB"), and [*image.NRGBA] and [*image.RGBA] (mode "RGBA").
// For sub-images, only the pixels inside the bounds are modified, and
// (0, 0) refers to the top-left corner of the bounds.
func Adopt(img draw.Image) (*Surface, error) {
	if img == nil {
		return nil, fmt.Errorf("canvas: adopt: %w: nil image", ErrType)
	}
	buf, err := pixbuf.Wrap(img)
	switch {
	case errors.Is(err, pixbuf.ErrImage):
		return nil, fmt.Errorf("canvas: adopt: %w: %w", ErrType, err)
	case err != nil:
		return nil, fmt.Errorf("canvas: adopt: %w: %w", ErrValue, err)
	}

	Logger().Debug("canvas: adopt image",
		"type", fmt.Sprintf("%T", img), "mode", buf.Mode(), "width", buf.Width(), "height", buf.Height())
	return newSurface(buf), nil
}

func newSurface(buf *pixbuf.Buffer) *Surface {
	clip := rect.Rect{URx: float64(buf.Width()), URy: float64(buf.Height())}
	return &Surface{
		buf:       buf,
		ctm:       matrix.Identity,
		antialias: true,
		r:         raster.NewRasterizer(clip),
	}
}

// Mode returns the pixel format of the image: "L", "RGB" or "RGBA".
func (s *Surface) Mode() string {
	return string(s.buf.Mode())
}

// Size returns the width and height of the image in pixels.
func (s *Surface) Size() image.Point {
	return image.Point{X: s.buf.Width(), Y: s.buf.Height()}
}

// SetAntialias turns anti-aliasing on or off.  When anti-aliasing is
// off, a pixel is painted if at least half of it is covered, and left
// unchanged otherwise.  Anti-aliasing is on by default.
func (s *Surface) SetAntialias(on bool) {
	s.antialias = on
}

// SetTransform sets the transformation which maps the coordinates of all
// subsequent drawing calls to pixel coordinates.  The previous
// transformation is discarded.
//
// Without arguments, the transformation is reset to the identity.  With
// two arguments dx, dy, the transformation is a translation.  With six
// arguments a, b, dx, c, d, dy, the point (x, y) is mapped to
// (a*x + c*y + dx, b*x + d*y + dy).
func (s *Surface) SetTransform(v ...float64) error {
	var m matrix.Matrix
	switch len(v) {
	case 0:
		m = matrix.Identity
	case 2:
		m = matrix.Matrix{1, 0, 0, 1, v[0], v[1]}
	case 6:
		m = matrix.Matrix{v[0], v[1], v[3], v[4], v[2], v[5]}
	default:
		return fmt.Errorf("canvas: transform: %w: need 0, 2 or 6 values, got %d", ErrValue, len(v))
	}
	s.SetMatrix(m)
	return nil
}

// SetMatrix is like [Surface.SetTransform], but takes the transformation
// as a matrix.  The point (x, y) is mapped to
// (m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]).
func (s *Surface) SetMatrix(m matrix.Matrix) {
	s.ctm = m
	Logger().Debug("canvas: set transform", "matrix", m)
}

// Transform returns the current transformation.
func (s *Surface) Transform() matrix.Matrix {
	return s.ctm
}

// Flush makes sure that all drawing operations are reflected in the
// image, and returns the image.  Flush can be called any number of
// times, and drawing can continue afterwards.
//
// For surfaces created by [Adopt], the returned image is the adopted
// one.
func (s *Surface) Flush() image.Image {
	Logger().Debug("canvas: flush", "mode", s.buf.Mode(), "ops", s.ops)
	s.ops = 0
	return s.buf.Image()
}

// Snapshot returns a copy of the current image contents, with
// non-premultiplied alpha.
func (s *Surface) Snapshot() *image.NRGBA {
	src := s.Flush()
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), src, b.Min, xdraw.Src)
	return dst
}

// Clear sets all pixels to the given color.  A nil color means opaque
// white.
func (s *Surface) Clear(background any) error {
	bg := White
	if background != nil {
		var err error
		bg, err = ParseColor(background)
		if err != nil {
			return err
		}
	}
	s.buf.Fill(color.NRGBA(bg))
	s.ops++
	Logger().Debug("canvas: clear", "background", bg)
	return nil
}

// Bytes returns a copy of the pixel data.  The data is stored row by row,
// with 1, 3 or 4 bytes per pixel depending on the mode.
func (s *Surface) Bytes() []byte {
	return s.buf.Bytes()
}

// SetBytes replaces the pixel data.  The layout is the one used by
// [Surface.Bytes].
func (s *Surface) SetBytes(data []byte) error {
	if err := s.buf.SetBytes(data); err != nil {
		return fmt.Errorf("canvas: set bytes: %w: %w", ErrValue, err)
	}
	s.ops++
	return nil
}
