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

package pixbuf

import "image/color"

// Ink is a color prepared for compositing.
type Ink struct {
	c    color.NRGBA
	gray uint8
}

// NewInk prepares c for use with [Buffer.Blend].
func NewInk(c color.NRGBA) Ink {
	return Ink{c: c, gray: luminance(c)}
}

// Blend composites ink over the pixels of row y, starting at column xMin.
// coverage[i] in [0, 1] gives the fraction of pixel xMin+i which is
// painted.  Pixels outside the buffer are ignored.
//
// If aliased is set, pixels with coverage of at least one half are
// painted fully and all others are left unchanged.
func (b *Buffer) Blend(y, xMin int, coverage []float32, ink Ink, aliased bool) {
	if y < 0 || y >= b.height || ink.c.A == 0 {
		return
	}
	if xMin < 0 {
		if -xMin >= len(coverage) {
			return
		}
		coverage = coverage[-xMin:]
		xMin = 0
	}
	if xMin+len(coverage) > b.width {
		if xMin >= b.width {
			return
		}
		coverage = coverage[:b.width-xMin]
	}

	row := b.row(y)
	for i, c := range coverage {
		alpha := coverageAlpha(c, ink.c.A, aliased)
		if alpha == 0 {
			continue
		}
		x := xMin + i
		switch b.layout {
		case gray8:
			row[x] = mix(row[x], ink.gray, alpha)
		case rgb24:
			p := row[3*x : 3*x+3 : 3*x+3]
			p[0] = mix(p[0], ink.c.R, alpha)
			p[1] = mix(p[1], ink.c.G, alpha)
			p[2] = mix(p[2], ink.c.B, alpha)
		case rgba32:
			p := row[4*x : 4*x+4 : 4*x+4]
			if alpha == 255 {
				p[0], p[1], p[2], p[3] = ink.c.R, ink.c.G, ink.c.B, 255
				continue
			}
			p[0] = mix(p[0], ink.c.R, alpha)
			p[1] = mix(p[1], ink.c.G, alpha)
			p[2] = mix(p[2], ink.c.B, alpha)
			a := int(p[3])
			p[3] = uint8(alpha + a - (alpha*a+255)>>8)
		case rgba32pre:
			p := row[4*x : 4*x+4 : 4*x+4]
			p[0] = over(p[0], ink.c.R, alpha)
			p[1] = over(p[1], ink.c.G, alpha)
			p[2] = over(p[2], ink.c.B, alpha)
			p[3] = over(p[3], 255, alpha)
		}
	}
}

// coverageAlpha combines coverage and the alpha value of the ink into an
// opacity in the range 0 to 255.
func coverageAlpha(c float32, a uint8, aliased bool) int {
	var cover int
	switch {
	case aliased:
		if c < 0.5 {
			return 0
		}
		cover = 255
	case c <= 0:
		return 0
	default:
		cover = min(int(c*256), 255)
	}
	return int(a) * (cover + 1) >> 8
}

// mix moves dst towards src by alpha/256.  An alpha of 255 replaces dst.
func mix(dst, src uint8, alpha int) uint8 {
	if alpha >= 255 {
		return src
	}
	d := int(dst)
	return uint8(d + ((int(src)-d)*alpha)>>8)
}

// over composites a straight alpha source channel over a premultiplied
// destination channel.
func over(dst, src uint8, alpha int) uint8 {
	if alpha >= 255 {
		return src
	}
	return uint8((int(src)*alpha + int(dst)*(255-alpha) + 127) / 255)
}
