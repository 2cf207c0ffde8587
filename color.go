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
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
	"golang.org/x/image/colornames"
)

// Color is an sRGB color with straight (non-premultiplied) alpha.
type Color struct {
	R, G, B, A uint8
}

// RGBA implements the [color.Color] interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA(c).RGBA()
}

func (c Color) String() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Some frequently used colors.
var (
	Black = Color{A: 255}
	White = Color{R: 255, G: 255, B: 255, A: 255}
)

// ParseColor converts a color specification into a Color.
// The following forms are understood:
//
//   - a color name like "gold", see [colornames.Map]
//   - "#rgb" and "#rrggbb"
//   - "rgb(r, g, b)" and "rgba(r, g, b, a)", with integer components
//     from 0 to 255, or percentages
//   - an integer 0xRRGGBB
//   - [3]int, [4]int or []int with 3 or 4 elements, in the order R, G, B, A
//   - any [color.Color]
//
// Colors without an alpha component are opaque.  The returned error
// wraps [ErrInvalidColor].
func ParseColor(spec any) (Color, error) {
	switch spec := spec.(type) {
	case Color:
		return spec, nil
	case string:
		return parseColorString(spec)
	case int:
		return packedColor(int64(spec))
	case int64:
		return packedColor(spec)
	case uint32:
		return packedColor(int64(spec))
	case [3]int:
		return tupleColor(spec[:])
	case [4]int:
		return tupleColor(spec[:])
	case []int:
		return tupleColor(spec)
	case color.Color:
		return Color(color.NRGBAModel.Convert(spec).(color.NRGBA)), nil
	case nil:
		return Color{}, fmt.Errorf("canvas: color: %w: missing color", ErrInvalidColor)
	}
	return Color{}, fmt.Errorf("canvas: color: %w: unsupported type %T", ErrInvalidColor, spec)
}

func packedColor(v int64) (Color, error) {
	if v < 0 || v > 0xFFFFFF {
		return Color{}, fmt.Errorf("canvas: color: %w: %#x out of range", ErrInvalidColor, v)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

func tupleColor(v []int) (Color, error) {
	if len(v) != 3 && len(v) != 4 {
		return Color{}, fmt.Errorf("canvas: color: %w: need 3 or 4 components, got %d", ErrInvalidColor, len(v))
	}
	c := [4]uint8{3: 255}
	for i, x := range v {
		if x < 0 || x > 255 {
			return Color{}, fmt.Errorf("canvas: color: %w: component %d out of range", ErrInvalidColor, x)
		}
		c[i] = uint8(x)
	}
	return Color{R: c[0], G: c[1], B: c[2], A: c[3]}, nil
}

func parseColorString(s string) (Color, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(key, "#"):
		return parseHex(key[1:], s)
	case strings.HasPrefix(key, "rgba(") && strings.HasSuffix(key, ")"):
		return parseFunctional(key[5:len(key)-1], 4, s)
	case strings.HasPrefix(key, "rgb(") && strings.HasSuffix(key, ")"):
		return parseFunctional(key[4:len(key)-1], 3, s)
	}
	if c, ok := colornames.Map[strings.ReplaceAll(key, " ", "")]; ok {
		return Color(color.NRGBAModel.Convert(c).(color.NRGBA)), nil
	}
	return Color{}, fmt.Errorf("canvas: color: %w: unknown color %q", ErrInvalidColor, s)
}

func parseHex(digits, orig string) (Color, error) {
	var v [6]uint8
	switch len(digits) {
	case 3:
		for i := range 3 {
			d, ok := hexDigit(digits[i])
			if !ok {
				return Color{}, fmt.Errorf("canvas: color: %w: malformed %q", ErrInvalidColor, orig)
			}
			v[2*i], v[2*i+1] = d, d
		}
	case 6:
		for i := range 6 {
			d, ok := hexDigit(digits[i])
			if !ok {
				return Color{}, fmt.Errorf("canvas: color: %w: malformed %q", ErrInvalidColor, orig)
			}
			v[i] = d
		}
	default:
		return Color{}, fmt.Errorf("canvas: color: %w: malformed %q", ErrInvalidColor, orig)
	}
	return Color{
		R: v[0]<<4 | v[1],
		G: v[2]<<4 | v[3],
		B: v[4]<<4 | v[5],
		A: 255,
	}, nil
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}

// parseFunctional parses the comma-separated components of an rgb() or
// rgba() specification.
func parseFunctional(body string, n int, orig string) (Color, error) {
	parts := strings.Split(body, ",")
	if len(parts) != n {
		return Color{}, fmt.Errorf("canvas: color: %w: need %d components in %q", ErrInvalidColor, n, orig)
	}
	c := [4]uint8{3: 255}
	for i, part := range parts {
		b := []byte(strings.TrimSpace(part))
		x, k := strconv.ParseFloat(b)
		if k == 0 {
			return Color{}, fmt.Errorf("canvas: color: %w: malformed component %q", ErrInvalidColor, part)
		}
		switch rest := string(b[k:]); {
		case rest == "%":
			x = math.Round(x * 255 / 100)
		case rest != "" || x != math.Trunc(x):
			return Color{}, fmt.Errorf("canvas: color: %w: malformed component %q", ErrInvalidColor, part)
		}
		if x < 0 || x > 255 {
			return Color{}, fmt.Errorf("canvas: color: %w: component %g out of range", ErrInvalidColor, x)
		}
		c[i] = uint8(x)
	}
	return Color{R: c[0], G: c[1], B: c[2], A: c[3]}, nil
}
