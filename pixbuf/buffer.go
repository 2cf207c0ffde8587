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

// Package pixbuf provides the pixel buffers which drawing operations
// write into.
//
// A [Buffer] is a view of the pixel memory of an image.  It either owns a
// freshly allocated image, or it wraps an existing one without copying.
// Pixels are written by compositing rows of coverage values, see
// [Buffer.Blend].
package pixbuf

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// Mode is the pixel format tag of a buffer.
type Mode string

// These are the supported modes.
const (
	ModeL    Mode = "L"    // 8-bit gray
	ModeRGB  Mode = "RGB"  // 3x8-bit color
	ModeRGBA Mode = "RGBA" // 4x8-bit color with alpha
)

// ParseMode checks that s names a supported mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeL, ModeRGB, ModeRGBA:
		return m, nil
	}
	return "", fmt.Errorf("%w %q", ErrMode, s)
}

// Channels returns the number of bytes per pixel.
func (m Mode) Channels() int {
	switch m {
	case ModeL:
		return 1
	case ModeRGB:
		return 3
	case ModeRGBA:
		return 4
	}
	return 0
}

var (
	// ErrMode is returned for mode names other than "L", "RGB" and
	// "RGBA".
	ErrMode = errors.New("pixbuf: unsupported mode")

	// ErrSize is returned for buffers without pixels.
	ErrSize = errors.New("pixbuf: invalid size")

	// ErrImage is returned by [Wrap] for image types it cannot write to.
	ErrImage = errors.New("pixbuf: unsupported image type")

	// ErrShortData is returned by [Buffer.SetBytes] if the data does
	// not cover all pixels.
	ErrShortData = errors.New("pixbuf: not enough data")
)

// layout describes how pixels are stored in memory.
type layout uint8

const (
	gray8     layout = iota // *image.Gray
	rgb24                   // *RGB
	rgba32                  // *image.NRGBA, straight alpha
	rgba32pre               // *image.RGBA, premultiplied alpha
)

// Buffer is a rectangular array of pixels in one of the supported modes.
// The pixel at (0, 0) is the top-left corner of the image's bounds.
type Buffer struct {
	mode   Mode
	layout layout
	width  int
	height int
	stride int
	pix    []uint8 // starts at the top-left pixel
	img    draw.Image
}

// New allocates a buffer of the given mode and size.  The pixels are
// zero: black, and transparent in RGBA mode.
func New(mode Mode, width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrSize, width, height)
	}
	r := image.Rect(0, 0, width, height)
	switch mode {
	case ModeL:
		return Wrap(image.NewGray(r))
	case ModeRGB:
		return Wrap(NewRGB(r))
	case ModeRGBA:
		return Wrap(image.NewNRGBA(r))
	}
	return nil, fmt.Errorf("%w %q", ErrMode, mode)
}

// Wrap returns a buffer which operates directly on the pixel memory of
// img.  Supported types are *image.Gray, *RGB, *image.NRGBA and
// *image.RGBA.
func Wrap(img draw.Image) (*Buffer, error) {
	b := &Buffer{img: img}
	var r image.Rectangle
	switch img := img.(type) {
	case *image.Gray:
		b.mode, b.layout = ModeL, gray8
		r, b.stride = img.Rect, img.Stride
		b.pix = img.Pix[img.PixOffset(r.Min.X, r.Min.Y):]
	case *RGB:
		b.mode, b.layout = ModeRGB, rgb24
		r, b.stride = img.Rect, img.Stride
		b.pix = img.Pix[img.PixOffset(r.Min.X, r.Min.Y):]
	case *image.NRGBA:
		b.mode, b.layout = ModeRGBA, rgba32
		r, b.stride = img.Rect, img.Stride
		b.pix = img.Pix[img.PixOffset(r.Min.X, r.Min.Y):]
	case *image.RGBA:
		b.mode, b.layout = ModeRGBA, rgba32pre
		r, b.stride = img.Rect, img.Stride
		b.pix = img.Pix[img.PixOffset(r.Min.X, r.Min.Y):]
	default:
		return nil, fmt.Errorf("%w %T", ErrImage, img)
	}
	if r.Empty() {
		return nil, fmt.Errorf("%w: empty image", ErrSize)
	}
	b.width, b.height = r.Dx(), r.Dy()
	return b, nil
}

// Mode returns the pixel format of the buffer.
func (b *Buffer) Mode() Mode { return b.mode }

// Width returns the width of the buffer in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the height of the buffer in pixels.
func (b *Buffer) Height() int { return b.height }

// Image returns the image the buffer writes into.
func (b *Buffer) Image() draw.Image { return b.img }

// Premultiplied reports whether color values are stored premultiplied
// by alpha.
func (b *Buffer) Premultiplied() bool { return b.layout == rgba32pre }

// row returns the bytes of row y.
func (b *Buffer) row(y int) []uint8 {
	n := b.width * b.mode.Channels()
	return b.pix[y*b.stride : y*b.stride+n : y*b.stride+n]
}

// Fill sets every pixel to c.
func (b *Buffer) Fill(c color.NRGBA) {
	var px []uint8
	switch b.layout {
	case gray8:
		px = []uint8{luminance(c)}
	case rgb24:
		px = []uint8{c.R, c.G, c.B}
	case rgba32:
		px = []uint8{c.R, c.G, c.B, c.A}
	case rgba32pre:
		p := color.RGBAModel.Convert(c).(color.RGBA)
		px = []uint8{p.R, p.G, p.B, p.A}
	}
	for y := range b.height {
		row := b.row(y)
		for i := 0; i < len(row); i += len(px) {
			copy(row[i:], px)
		}
	}
}

// Bytes returns a copy of the pixel data, row by row without padding.
func (b *Buffer) Bytes() []byte {
	n := b.width * b.mode.Channels()
	res := make([]byte, 0, n*b.height)
	for y := range b.height {
		res = append(res, b.row(y)...)
	}
	return res
}

// SetBytes replaces the pixel data with data, which has the layout
// returned by Bytes.  Extra bytes are ignored.
func (b *Buffer) SetBytes(data []byte) error {
	n := b.width * b.mode.Channels()
	if len(data) < n*b.height {
		return fmt.Errorf("%w: need %d bytes, got %d", ErrShortData, n*b.height, len(data))
	}
	for y := range b.height {
		copy(b.row(y), data[y*n:(y+1)*n])
	}
	return nil
}

// luminance converts a color to gray, using the ITU-R 601 weights.
func luminance(c color.NRGBA) uint8 {
	return uint8((int(c.R)*299 + int(c.G)*587 + int(c.B)*114) / 1000)
}
